package timeentry

import (
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	WorkerID string  `json:"worker_id"`
	JobID    *string `json:"job_id,omitempty"`
	Category string  `json:"category,omitempty"`
	ClockIn  string  `json:"clock_in,omitempty"` // RFC3339, defaults to now
	Notes    *string `json:"notes,omitempty"`
}

func (r ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "worker id is required"})
	}
	if r.Category != "" && !validator.IsInSlice(r.Category, []string{
		string(CategoryBillable), string(CategoryTravel), string(CategoryAdmin), string(CategoryIdle),
	}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be billable, travel, admin or idle"})
	}
	if r.ClockIn != "" {
		if _, ok := validator.IsValidDateTime(r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	ClockOut string `json:"clock_out,omitempty"` // RFC3339, defaults to now
}

type TimeEntryResponse struct {
	ID       string  `json:"id"`
	WorkerID string  `json:"worker_id"`
	JobID    *string `json:"job_id,omitempty"`
	ClockIn  string  `json:"clock_in"`
	ClockOut *string `json:"clock_out,omitempty"`
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
	Notes    *string `json:"notes,omitempty"`
}
