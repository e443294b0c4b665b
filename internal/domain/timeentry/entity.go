package timeentry

import (
	"time"
)

// TimeEntry is a single clocked shift. ClockOut is nil while the shift is
// open; open shifts have zero duration and never contribute to hour totals.
type TimeEntry struct {
	ID        string
	CompanyID string
	WorkerID  string
	JobID     *string
	ClockIn   time.Time
	ClockOut  *time.Time
	Category  Category
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category string

const (
	CategoryBillable Category = "billable"
	CategoryTravel   Category = "travel"
	CategoryAdmin    Category = "admin"
	CategoryIdle     Category = "idle"
)

// Hours returns the entry duration in hours. Duration is always derived
// from the clock pair so it cannot drift from the stored timestamps.
func (e TimeEntry) Hours() float64 {
	if e.ClockOut == nil {
		return 0
	}
	d := e.ClockOut.Sub(e.ClockIn)
	if d < 0 {
		return 0
	}
	return d.Hours()
}

// EffectiveCategory maps a missing category to idle so unclassified time
// can never inflate billable figures.
func (e TimeEntry) EffectiveCategory() Category {
	switch e.Category {
	case CategoryBillable, CategoryTravel, CategoryAdmin, CategoryIdle:
		return e.Category
	default:
		return CategoryIdle
	}
}
