package analytics

import (
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
)

const (
	// OvertimePremium is the extra portion of wage paid beyond a threshold
	// ("time-and-a-half" means a premium of 0.5 on top of regular pay).
	OvertimePremium = 0.5

	// DailyOvertimeThresholdHours and WeeklyOvertimeThresholdHours are the
	// points past which hours count as overtime.
	DailyOvertimeThresholdHours  = 8.0
	WeeklyOvertimeThresholdHours = 40.0
)

// CalculateBlendedHourlyRate returns the arithmetic mean of all workers'
// hourly wages. An empty worker list returns 0 rather than an error so
// downstream consumers can multiply by it without branching.
func CalculateBlendedHourlyRate(workers []worker.Worker) float64 {
	if len(workers) == 0 {
		return 0
	}
	var sum float64
	for _, w := range workers {
		sum += w.WageFloat()
	}
	return sum / float64(len(workers))
}

// OvertimeHourlyCost returns a worker's effective hourly cost for an
// overtime hour (full pay, premium included).
func OvertimeHourlyCost(wage float64) float64 {
	return wage * (1 + OvertimePremium)
}

// wageByWorkerID builds the wage lookup used by the aggregators. Entries
// referencing a worker absent from this map are malformed and skipped.
func wageByWorkerID(workers []worker.Worker) map[string]float64 {
	wages := make(map[string]float64, len(workers))
	for _, w := range workers {
		wages[w.ID] = w.WageFloat()
	}
	return wages
}
