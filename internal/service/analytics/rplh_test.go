package analytics

import (
	"testing"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRPLH_ZeroHoursReturnsZero(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	jobs := []job.Job{completedJob("j1", 5000, rng.Start.Add(24*time.Hour))}

	assert.Equal(t, 0.0, CalculateRPLH(jobs, nil, rng))
}

func TestCalculateRPLH_RevenueOverHours(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	jobs := []job.Job{
		completedJob("j1", 3000, rng.Start.Add(24*time.Hour)),
		completedJob("j2", 1500, rng.Start.Add(48*time.Hour)),
		completedJob("j3", 9999, rng.Start.AddDate(0, 0, -2)), // completed before range
	}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), rng.Start.Add(8*time.Hour), 20, timeentry.CategoryBillable),
		closedEntry("w2", jobRef("j2"), rng.Start.Add(8*time.Hour), 10, timeentry.CategoryBillable),
	}

	assert.InDelta(t, 4500.0/30.0, CalculateRPLH(jobs, entries, rng), 1e-9)
}

func TestCalculateRPLH_UncompletedJobsCarryNoRevenue(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	j := testJob("j1", job.StatusInProgress, 10)
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), rng.Start.Add(8*time.Hour), 10, timeentry.CategoryBillable),
	}

	assert.Equal(t, 0.0, CalculateRPLH([]job.Job{j}, entries, rng))
}

func TestRPLHTrend_OldestFirstFixedLength(t *testing.T) {
	points := RPLHTrend(nil, nil, testNow, 4)

	require.Len(t, points, 4)
	// Week containing testNow starts Jun 16; the series walks back weekly.
	assert.Equal(t, "May 26", points[0].Label)
	assert.Equal(t, "Jun 2", points[1].Label)
	assert.Equal(t, "Jun 9", points[2].Label)
	assert.Equal(t, "Jun 16", points[3].Label)
	for _, p := range points {
		assert.Equal(t, 0.0, p.RPLH)
	}
}

func TestRPLHTrend_ValuesPerWeek(t *testing.T) {
	thisWeek := CurrentWeekRange(testNow)
	lastWeek := LastWeekRange(testNow)

	jobs := []job.Job{
		completedJob("j1", 1000, lastWeek.Start.Add(24*time.Hour)),
		completedJob("j2", 3000, thisWeek.Start.Add(24*time.Hour)),
	}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), lastWeek.Start.Add(8*time.Hour), 10, timeentry.CategoryBillable),
		closedEntry("w1", jobRef("j2"), thisWeek.Start.Add(8*time.Hour), 10, timeentry.CategoryBillable),
	}

	points := RPLHTrend(jobs, entries, testNow, 2)
	require.Len(t, points, 2)
	assert.InDelta(t, 100.0, points[0].RPLH, 1e-9)
	assert.InDelta(t, 300.0, points[1].RPLH, 1e-9)
}

func TestRPLHTrend_NonPositiveWeeks(t *testing.T) {
	assert.Empty(t, RPLHTrend(nil, nil, testNow, 0))
	assert.Empty(t, RPLHTrend(nil, nil, testNow, -3))
}

func TestWeekOverWeekDelta(t *testing.T) {
	cases := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 75, 100, -25},
		{"flat", 100, 100, 0},
		{"zero previous avoids infinity", 100, 0, 0},
		{"both zero", 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, WeekOverWeekDelta(c.current, c.previous), 1e-9)
		})
	}
}
