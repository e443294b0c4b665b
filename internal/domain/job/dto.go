package job

import (
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateJobRequest struct {
	Title          string   `json:"title"`
	ProjectID      *string  `json:"project_id,omitempty"`
	JobTypeID      *string  `json:"job_type_id,omitempty"`
	EstimatedHours float64  `json:"estimated_hours"`
	EstimatedCost  *float64 `json:"estimated_cost,omitempty"`
	Revenue        *float64 `json:"revenue,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
}

func (r CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if r.EstimatedHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "estimated_hours", Message: "estimated hours must not be negative"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJobRequest struct {
	Title          *string  `json:"title,omitempty"`
	Status         *string  `json:"status,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	Revenue        *float64 `json:"revenue,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
}

type JobResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	ProjectID      *string         `json:"project_id,omitempty"`
	JobTypeID      *string         `json:"job_type_id,omitempty"`
	Title          string          `json:"title"`
	Status         string          `json:"status"`
	EstimatedHours float64         `json:"estimated_hours"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
	Revenue        decimal.Decimal `json:"revenue"`
	DueDate        *string         `json:"due_date,omitempty"`
	CompletedAt    *string         `json:"completed_at,omitempty"`
}

type CreateJobTypeRequest struct {
	Name              string  `json:"name"`
	DefaultHourlyRate float64 `json:"default_hourly_rate"`
}

func (r CreateJobTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.DefaultHourlyRate < 0 {
		errs = append(errs, validator.ValidationError{Field: "default_hourly_rate", Message: "default hourly rate must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobTypeResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	DefaultHourlyRate decimal.Decimal `json:"default_hourly_rate"`
}
