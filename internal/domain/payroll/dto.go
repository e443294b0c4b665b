package payroll

import (
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/validator"
)

// ExportRequest selects the week to export. WeekOf may be any day inside
// the target week; the service snaps it to that week's Monday.
type ExportRequest struct {
	WeekOf string `json:"week_of"` // YYYY-MM-DD
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WeekOf) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_of",
			Message: "week_of is required",
		})
	} else if _, ok := validator.IsValidDate(r.WeekOf); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_of",
			Message: "week_of must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParseWeekOf returns the requested day; Validate must pass first.
func (r *ExportRequest) ParseWeekOf() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", r.WeekOf, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidWeek
	}
	return t, nil
}
