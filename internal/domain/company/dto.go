package company

import (
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"company_name"`
	Phone     *string   `json:"company_phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateCompanyRequest struct {
	Name  *string `json:"company_name,omitempty"`
	Phone *string `json:"company_phone,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "company_name",
				Message: "company_name cannot be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "company_name",
				Message: "company_name must not exceed 255 characters",
			})
		}
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_phone",
			Message: "company_phone must be a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
