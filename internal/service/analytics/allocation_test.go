package analytics

import (
	"testing"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTimeAllocation_EmptyEntries(t *testing.T) {
	alloc := CalculateTimeAllocation(nil, CurrentWeekRange(testNow))

	assert.Equal(t, 0.0, alloc.Billable)
	assert.Equal(t, 0.0, alloc.Travel)
	assert.Equal(t, 0.0, alloc.Admin)
	assert.Equal(t, 0.0, alloc.Idle)
	assert.Equal(t, 0.0, alloc.Total())
}

func TestCalculateTimeAllocation_BucketsPerCategory(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	entries := []timeentry.TimeEntry{
		closedEntry("w1", nil, rng.Start.Add(8*time.Hour), 5, timeentry.CategoryBillable),
		closedEntry("w1", nil, rng.Start.Add(14*time.Hour), 1, timeentry.CategoryTravel),
		closedEntry("w2", nil, rng.Start.Add(8*time.Hour), 2, timeentry.CategoryAdmin),
		closedEntry("w2", nil, rng.Start.Add(11*time.Hour), 0.5, timeentry.CategoryIdle),
	}

	alloc := CalculateTimeAllocation(entries, rng)

	assert.InDelta(t, 5.0, alloc.Billable, 1e-9)
	assert.InDelta(t, 1.0, alloc.Travel, 1e-9)
	assert.InDelta(t, 2.0, alloc.Admin, 1e-9)
	assert.InDelta(t, 0.5, alloc.Idle, 1e-9)
}

func TestCalculateTimeAllocation_MissingCategoryCountsAsIdle(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	entry := closedEntry("w1", nil, rng.Start.Add(8*time.Hour), 3, "")

	alloc := CalculateTimeAllocation([]timeentry.TimeEntry{entry}, rng)

	assert.InDelta(t, 3.0, alloc.Idle, 1e-9)
	assert.Equal(t, 0.0, alloc.Billable)
}

// Every in-range entry is counted exactly once: the category sums partition
// the total logged hours.
func TestCalculateTimeAllocation_PartitionsTotalHours(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	entries := []timeentry.TimeEntry{
		closedEntry("w1", nil, rng.Start.Add(8*time.Hour), 4, timeentry.CategoryBillable),
		closedEntry("w1", nil, rng.Start.Add(13*time.Hour), 1.5, timeentry.CategoryTravel),
		closedEntry("w2", nil, rng.Start.Add(9*time.Hour), 6, "unknown-tag"),
		closedEntry("w2", nil, rng.Start.Add(26*time.Hour), 2.25, timeentry.CategoryAdmin),
	}

	var total float64
	for _, e := range entries {
		total += e.Hours()
	}

	alloc := CalculateTimeAllocation(entries, rng)
	assert.InDelta(t, total, alloc.Total(), 1e-9)
}

func TestCalculateTimeAllocation_ExcludesOutOfRangeAndOpenShifts(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	entries := []timeentry.TimeEntry{
		closedEntry("w1", nil, rng.Start.AddDate(0, 0, -3), 8, timeentry.CategoryBillable), // before range
		closedEntry("w1", nil, rng.End, 8, timeentry.CategoryBillable),                     // at end, excluded
		openEntry("w2", rng.Start.Add(8*time.Hour)),                                       // open shift, zero hours
	}

	alloc := CalculateTimeAllocation(entries, rng)
	assert.Equal(t, 0.0, alloc.Total())
}
