package worker

import (
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	FullName    string  `json:"full_name"`
	PhoneNumber string  `json:"phone_number"`
	Role        string  `json:"role"`
	HourlyWage  float64 `json:"hourly_wage"`
}

func (r CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	}
	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "invalid phone number"})
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleTechnician), string(RoleApprentice), string(RoleOffice)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be technician, apprentice or office"})
	}
	if r.HourlyWage < 0 {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "hourly wage must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	FullName    *string  `json:"full_name,omitempty"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
	Role        *string  `json:"role,omitempty"`
	HourlyWage  *float64 `json:"hourly_wage,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

type WorkerResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        string          `json:"role"`
	HourlyWage  decimal.Decimal `json:"hourly_wage"`
	Status      string          `json:"status"`
}
