package invite

import (
	"time"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/validator"
)

type CreateInviteRequest struct {
	WorkerID string `json:"worker_id"`
}

func (r *CreateInviteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AcceptInviteRequest struct {
	Token string `json:"token"`
}

func (r *AcceptInviteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}
	if len(r.Token) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InviteResponse struct {
	ID          string     `json:"id"`
	WorkerID    string     `json:"worker_id"`
	WorkerName  string     `json:"worker_name,omitempty"`
	PhoneNumber string     `json:"phone_number"`
	Status      Status     `json:"status"`
	ExpiresAt   time.Time  `json:"expires_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AcceptInviteResponse carries the worker's session tokens plus the names
// the welcome screen renders.
type AcceptInviteResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
	WorkerName            string `json:"worker_name"`
	CompanyName           string `json:"company_name"`
}
