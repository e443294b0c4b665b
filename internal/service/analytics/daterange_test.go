package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, June 18 2025, 12:00 UTC
var testNow = time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)

func TestCurrentWeekRange_StartsMonday(t *testing.T) {
	rng := CurrentWeekRange(testNow)

	assert.Equal(t, time.Monday, rng.Start.Weekday())
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC), rng.End)
	assert.True(t, rng.Contains(testNow))
}

func TestCurrentWeekRange_MondayAnchorsOwnWeek(t *testing.T) {
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	rng := CurrentWeekRange(monday)

	assert.Equal(t, monday, rng.Start)
}

func TestCurrentWeekRange_SundayBelongsToPrecedingMonday(t *testing.T) {
	sunday := time.Date(2025, 6, 22, 23, 0, 0, 0, time.UTC)
	rng := CurrentWeekRange(sunday)

	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), rng.Start)
}

func TestLastWeekRange(t *testing.T) {
	rng := LastWeekRange(testNow)

	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), rng.End)
}

func TestDateRange_HalfOpen(t *testing.T) {
	rng := CurrentWeekRange(testNow)

	assert.True(t, rng.Contains(rng.Start), "start is inclusive")
	assert.False(t, rng.Contains(rng.End), "end is exclusive")
	assert.False(t, rng.Contains(rng.Start.Add(-time.Nanosecond)))
	assert.True(t, rng.Contains(rng.End.Add(-time.Nanosecond)))
}

func TestLastNDaysRange(t *testing.T) {
	rng, err := LastNDaysRange(testNow, 30)
	require.NoError(t, err)

	assert.Equal(t, testNow, rng.End)
	assert.Equal(t, testNow.AddDate(0, 0, -30), rng.Start)
}

func TestLastNDaysRange_InvalidN(t *testing.T) {
	for _, n := range []int{0, -1, -30} {
		_, err := LastNDaysRange(testNow, n)
		assert.True(t, errors.Is(err, analytics.ErrInvalidRangeDays), "n=%d", n)
	}
}
