package analytics

import (
	"testing"
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOverruns_Empty(t *testing.T) {
	result := CalculateOverruns(nil, nil, nil, 35, CurrentWeekRange(testNow))

	assert.Equal(t, 0.0, result.EstimatedCostOverrun)
	assert.Equal(t, 0, result.OverrunJobs)
}

func TestCalculateOverruns_SingleOverrun(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 30)}
	jobs := []job.Job{testJob("j1", job.StatusInProgress, 6)}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), rng.Start.Add(8*time.Hour), 10, timeentry.CategoryBillable),
	}

	result := CalculateOverruns(jobs, entries, workers, 99, rng)

	assert.Equal(t, 1, result.OverrunJobs)
	// 4 overrun hours at the logger's wage, not the blended fallback.
	assert.InDelta(t, 4*30.0, result.EstimatedCostOverrun, 1e-9)
}

func TestCalculateOverruns_UnderEstimateNotCounted(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 30)}
	jobs := []job.Job{testJob("j1", job.StatusInProgress, 12)}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), rng.Start.Add(8*time.Hour), 10, timeentry.CategoryBillable),
	}

	result := CalculateOverruns(jobs, entries, workers, 35, rng)
	assert.Equal(t, 0, result.OverrunJobs)
	assert.Equal(t, 0.0, result.EstimatedCostOverrun)
}

// A job without an estimate is excluded from detection, not treated as an
// infinite overrun.
func TestCalculateOverruns_NoEstimateExcluded(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 30)}
	jobs := []job.Job{testJob("j1", job.StatusInProgress, 0)}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), rng.Start.Add(8*time.Hour), 40, timeentry.CategoryBillable),
	}

	result := CalculateOverruns(jobs, entries, workers, 35, rng)
	assert.Equal(t, 0, result.OverrunJobs)
}

func TestCalculateOverruns_ScheduledJobsExcluded(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 30)}
	jobs := []job.Job{testJob("j1", job.StatusScheduled, 2)}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), rng.Start.Add(8*time.Hour), 10, timeentry.CategoryBillable),
	}

	result := CalculateOverruns(jobs, entries, workers, 35, rng)
	assert.Equal(t, 0, result.OverrunJobs)
}

func TestCalculateOverruns_WeightedRateAcrossWorkers(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 20), testWorker("w2", 40)}
	jobs := []job.Job{testJob("j1", job.StatusCompleted, 10)}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), rng.Start.Add(8*time.Hour), 6, timeentry.CategoryBillable),
		closedEntry("w2", jobRef("j1"), rng.Start.AddDate(0, 0, 1).Add(8*time.Hour), 6, timeentry.CategoryBillable),
	}

	result := CalculateOverruns(jobs, entries, workers, 99, rng)

	// 12 actual vs 10 estimated; imputed rate = (6x20 + 6x40) / 12 = 30.
	assert.Equal(t, 1, result.OverrunJobs)
	assert.InDelta(t, 2*30.0, result.EstimatedCostOverrun, 1e-9)
}

func TestCalculateOverruns_UntrackedTimeIgnored(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 30)}
	jobs := []job.Job{testJob("j1", job.StatusInProgress, 1)}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", nil, rng.Start.Add(8*time.Hour), 10, timeentry.CategoryBillable), // no job ref
	}

	result := CalculateOverruns(jobs, entries, workers, 35, rng)
	assert.Equal(t, 0, result.OverrunJobs)
}

func TestCalculateOverruns_OutOfRangeEntriesIgnored(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 30)}
	jobs := []job.Job{testJob("j1", job.StatusInProgress, 1)}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), rng.Start.AddDate(0, 0, -10), 10, timeentry.CategoryBillable),
	}

	result := CalculateOverruns(jobs, entries, workers, 35, rng)
	assert.Equal(t, 0, result.OverrunJobs)
}

func TestCalculateOverruns_MultipleJobsAggregated(t *testing.T) {
	rng := CurrentWeekRange(testNow)
	workers := []worker.Worker{testWorker("w1", 25)}
	jobs := []job.Job{
		testJob("j1", job.StatusInProgress, 4),
		testJob("j2", job.StatusCompleted, 3),
		testJob("j3", job.StatusInProgress, 50), // under estimate
	}
	entries := []timeentry.TimeEntry{
		closedEntry("w1", jobRef("j1"), rng.Start.Add(7*time.Hour), 6, timeentry.CategoryBillable),
		closedEntry("w1", jobRef("j2"), rng.Start.AddDate(0, 0, 1).Add(7*time.Hour), 5, timeentry.CategoryBillable),
		closedEntry("w1", jobRef("j3"), rng.Start.AddDate(0, 0, 2).Add(7*time.Hour), 5, timeentry.CategoryBillable),
	}

	result := CalculateOverruns(jobs, entries, workers, 35, rng)

	assert.Equal(t, 2, result.OverrunJobs)
	assert.InDelta(t, (6-4)*25.0+(5-3)*25.0, result.EstimatedCostOverrun, 1e-9)
}
