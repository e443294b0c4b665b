package analytics

import (
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
)

// CalculateOverruns compares actual hours logged against job estimates over
// rng and prices the excess.
//
// Only jobs past the scheduled stage with at least one in-range entry are
// considered. Jobs without an estimate (zero estimated hours) are excluded
// from detection rather than treated as infinite overrun. Each overrun is
// costed at the job's imputed hourly rate, the hour-weighted average wage
// of the workers who logged against it, falling back to blendedRate when
// no wage can be derived.
func CalculateOverruns(
	jobs []job.Job,
	entries []timeentry.TimeEntry,
	workers []worker.Worker,
	blendedRate float64,
	rng analytics.DateRange,
) analytics.OverrunResult {
	wages := wageByWorkerID(workers)
	jobsByID := make(map[string]job.Job, len(jobs))
	for _, j := range jobs {
		jobsByID[j.ID] = j
	}

	actualHours := make(map[string]float64)   // jobID -> hours in range
	weightedWage := make(map[string]float64)  // jobID -> sum(hours * wage)

	for _, e := range entries {
		if e.JobID == nil {
			continue // untracked time never counts against a job
		}
		if !rng.Contains(e.ClockIn) {
			continue
		}
		wage, known := wages[e.WorkerID]
		if !known {
			continue
		}
		h := e.Hours()
		if h == 0 {
			continue
		}
		actualHours[*e.JobID] += h
		weightedWage[*e.JobID] += h * wage
	}

	var result analytics.OverrunResult
	for jobID, actual := range actualHours {
		j, found := jobsByID[jobID]
		if !found || j.Status == job.StatusScheduled {
			continue
		}
		if j.EstimatedHours <= 0 {
			continue
		}

		overrun := actual - j.EstimatedHours
		if overrun <= 0 {
			continue
		}

		rate := blendedRate
		if actual > 0 && weightedWage[jobID] > 0 {
			rate = weightedWage[jobID] / actual
		}

		result.EstimatedCostOverrun += overrun * rate
		result.OverrunJobs++
	}
	return result
}
