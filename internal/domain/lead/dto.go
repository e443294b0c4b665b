package lead

import (
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/validator"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/service/leakage"
)

type CreateLeadRequest struct {
	Email  string         `json:"email"`
	Inputs leakage.Inputs `json:"inputs"`
}

func (r *CreateLeadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if len(r.Email) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeadResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Report    leakage.Outputs `json:"report"`
	CreatedAt time.Time       `json:"created_at"`
}
