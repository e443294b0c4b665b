package analytics

import (
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
)

// CalculateTimeAllocation sums logged hours per category for entries whose
// clock-in falls in rng. Entries without a recognised category count as
// idle. Open shifts have zero duration and contribute nothing; every closed
// entry in range lands in exactly one bucket.
func CalculateTimeAllocation(entries []timeentry.TimeEntry, rng analytics.DateRange) analytics.TimeAllocation {
	var alloc analytics.TimeAllocation
	for _, e := range entries {
		if !rng.Contains(e.ClockIn) {
			continue
		}
		h := e.Hours()
		if h == 0 {
			continue
		}
		switch e.EffectiveCategory() {
		case timeentry.CategoryBillable:
			alloc.Billable += h
		case timeentry.CategoryTravel:
			alloc.Travel += h
		case timeentry.CategoryAdmin:
			alloc.Admin += h
		default:
			alloc.Idle += h
		}
	}
	return alloc
}
