package analytics

import (
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
)

// RPLHTarget is the benchmark revenue-per-labour-hour in dollars that the
// dashboard charts a reference line against.
const RPLHTarget = 150.0

// CalculateRPLH returns revenue per labour hour for rng: revenue of jobs
// completed in the range divided by hours logged in the range. Zero logged
// hours yields 0, not a division error.
func CalculateRPLH(jobs []job.Job, entries []timeentry.TimeEntry, rng analytics.DateRange) float64 {
	var revenue float64
	for _, j := range jobs {
		if j.CompletedAt != nil && rng.Contains(*j.CompletedAt) {
			revenue += j.RevenueFloat()
		}
	}

	var hours float64
	for _, e := range entries {
		if rng.Contains(e.ClockIn) {
			hours += e.Hours()
		}
	}

	if hours == 0 {
		return 0
	}
	return revenue / hours
}

// RPLHTrend returns one point per trailing week ending with the week
// containing now, oldest first. The series is recomputed fresh on every
// call; nothing is cached.
func RPLHTrend(jobs []job.Job, entries []timeentry.TimeEntry, now time.Time, weeks int) []analytics.RPLHTrendPoint {
	if weeks <= 0 {
		return []analytics.RPLHTrendPoint{}
	}

	points := make([]analytics.RPLHTrendPoint, 0, weeks)
	currentStart := weekStart(now)
	for i := weeks - 1; i >= 0; i-- {
		start := currentStart.AddDate(0, 0, -7*i)
		rng := analytics.DateRange{Start: start, End: start.AddDate(0, 0, 7)}
		points = append(points, analytics.RPLHTrendPoint{
			Label: start.Format("Jan 2"),
			RPLH:  CalculateRPLH(jobs, entries, rng),
		})
	}
	return points
}

// WeekOverWeekDelta returns the percentage change from previous to current.
// A zero previous value reports 0 to avoid a +/-infinity delta.
func WeekOverWeekDelta(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
