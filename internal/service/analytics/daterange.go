package analytics

import (
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
)

// Week convention: weeks start Monday 00:00 in the local time of `now`.
// All ranges are half-open [start, end); an entry is in range iff
// start <= clockIn < end.

// weekStart returns Monday 00:00 of the week containing t.
func weekStart(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -daysSinceMonday)
}

// CurrentWeekRange returns the week containing now.
func CurrentWeekRange(now time.Time) analytics.DateRange {
	start := weekStart(now)
	return analytics.DateRange{Start: start, End: start.AddDate(0, 0, 7)}
}

// LastWeekRange returns the week immediately before the one containing now.
func LastWeekRange(now time.Time) analytics.DateRange {
	start := weekStart(now).AddDate(0, 0, -7)
	return analytics.DateRange{Start: start, End: start.AddDate(0, 0, 7)}
}

// LastNDaysRange returns the n days ending at now. n must be positive;
// unlike the public leakage calculator, invalid arguments here fail loudly
// so callers cannot silently aggregate over an empty or inverted window.
func LastNDaysRange(now time.Time, n int) (analytics.DateRange, error) {
	if n <= 0 {
		return analytics.DateRange{}, analytics.ErrInvalidRangeDays
	}
	return analytics.DateRange{Start: now.AddDate(0, 0, -n), End: now}, nil
}
