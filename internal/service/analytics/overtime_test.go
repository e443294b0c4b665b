package analytics

import (
	"testing"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOvertime_EmptyEntries(t *testing.T) {
	result := CalculateOvertime(nil, []worker.Worker{testWorker("w1", 28)}, CurrentWeekRange(testNow))

	assert.Equal(t, 0.0, result.Hours)
	assert.Equal(t, 0.0, result.Cost)
}

func TestCalculateOvertime_UnderThresholds(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 28)}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", nil, rng.Start.Add(8*time.Hour), 8, timeentry.CategoryBillable),
		closedEntry("w1", nil, rng.Start.Add(32*time.Hour), 7, timeentry.CategoryBillable),
	}

	result := CalculateOvertime(entries, workers, rng)
	assert.Equal(t, 0.0, result.Hours)
	assert.Equal(t, 0.0, result.Cost)
}

func TestCalculateOvertime_DailyThreshold(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 30)}
	// 10 hours on Monday: 2 hours past the daily threshold.
	entries := []timeentry.TimeEntry{
		closedEntry("w1", nil, rng.Start.Add(7*time.Hour), 10, timeentry.CategoryBillable),
	}

	result := CalculateOvertime(entries, workers, rng)
	assert.InDelta(t, 2.0, result.Hours, 1e-9)
	// Premium portion only: 2h x $30 x 0.5, not full time-and-a-half pay.
	assert.InDelta(t, 30.0, result.Cost, 1e-9)
}

func TestCalculateOvertime_WeeklyThreshold(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 20)}
	// Six 8-hour days: no daily overtime, but 48 total = 8 weekly OT hours.
	var entries []timeentry.TimeEntry
	for day := 0; day < 6; day++ {
		entries = append(entries, closedEntry("w1", nil, rng.Start.AddDate(0, 0, day).Add(8*time.Hour), 8, timeentry.CategoryBillable))
	}

	result := CalculateOvertime(entries, workers, rng)
	assert.InDelta(t, 8.0, result.Hours, 1e-9)
	assert.InDelta(t, 8*20*0.5, result.Cost, 1e-9)
}

// The same hour must never count as overtime twice: when both thresholds
// trip, the worker's overtime is the larger classification, not the sum.
func TestCalculateOvertime_TakesHigherClassificationNotSum(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 20)}
	// Five 10-hour days: daily OT = 5x2 = 10h, weekly OT = 50-40 = 10h.
	var entries []timeentry.TimeEntry
	for day := 0; day < 5; day++ {
		entries = append(entries, closedEntry("w1", nil, rng.Start.AddDate(0, 0, day).Add(7*time.Hour), 10, timeentry.CategoryBillable))
	}

	result := CalculateOvertime(entries, workers, rng)
	assert.InDelta(t, 10.0, result.Hours, 1e-9, "max(daily, weekly), not 20")
}

func TestCalculateOvertime_DailyDominatesWhenWeeklyUnder(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 20)}
	// One 12-hour day, nothing else: daily OT 4h, weekly OT 0.
	entries := []timeentry.TimeEntry{
		closedEntry("w1", nil, rng.Start.Add(6*time.Hour), 12, timeentry.CategoryBillable),
	}

	result := CalculateOvertime(entries, workers, rng)
	assert.InDelta(t, 4.0, result.Hours, 1e-9)
}

func TestCalculateOvertime_OpenShiftsContributeZero(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 28)}
	entries := []timeentry.TimeEntry{
		openEntry("w1", rng.Start.Add(8*time.Hour)),
	}

	result := CalculateOvertime(entries, workers, rng)
	assert.Equal(t, 0.0, result.Hours)
}

func TestCalculateOvertime_UnknownWorkerSkipped(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 28)}
	entries := []timeentry.TimeEntry{
		closedEntry("ghost", nil, rng.Start.Add(7*time.Hour), 12, timeentry.CategoryBillable),
	}

	result := CalculateOvertime(entries, workers, rng)
	assert.Equal(t, 0.0, result.Hours)
	assert.Equal(t, 0.0, result.Cost)
}

func TestCalculateOvertime_MultipleWorkersAggregated(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 20), testWorker("w2", 40)}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", nil, rng.Start.Add(7*time.Hour), 9, timeentry.CategoryBillable),  // 1h OT @ $20
		closedEntry("w2", nil, rng.Start.Add(7*time.Hour), 11, timeentry.CategoryBillable), // 3h OT @ $40
	}

	result := CalculateOvertime(entries, workers, rng)
	assert.InDelta(t, 4.0, result.Hours, 1e-9)
	assert.InDelta(t, 1*20*0.5+3*40*0.5, result.Cost, 1e-9)
}

// Overtime hours are monotonically non-decreasing as logged hours grow.
func TestCalculateOvertime_MonotonicInHours(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 28)}

	var previous float64
	for _, dayLength := range []float64{6, 8, 9, 10, 12, 14} {
		entries := []timeentry.TimeEntry{
			closedEntry("w1", nil, rng.Start.Add(6*time.Hour), dayLength, timeentry.CategoryBillable),
		}
		result := CalculateOvertime(entries, workers, rng)
		assert.GreaterOrEqual(t, result.Hours, previous)
		previous = result.Hours
	}
}
