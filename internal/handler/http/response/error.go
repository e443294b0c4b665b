package response

import (
	"errors"
	"net/http"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/auth"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/company"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/invite"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/job"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/payroll"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/timeentry"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrCompanyNotFound),
		errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already registered")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrPhoneNumberExists):
		Conflict(w, "Phone number already registered in this company")
	case errors.Is(err, worker.ErrInvalidRole),
		errors.Is(err, worker.ErrInvalidPhoneNumber),
		errors.Is(err, worker.ErrNegativeHourlyWage):
		BadRequest(w, err.Error(), nil)

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrJobTypeNotFound):
		NotFound(w, "Job type not found")
	case errors.Is(err, job.ErrInvalidStatus),
		errors.Is(err, job.ErrNegativeEstimatedHours):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, job.ErrJobAlreadyCompleted):
		Conflict(w, "Job is already completed")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrShiftAlreadyOpen):
		Conflict(w, "Worker already has an open shift")
	case errors.Is(err, timeentry.ErrShiftAlreadyClosed):
		Conflict(w, "Time entry is already clocked out")
	case errors.Is(err, timeentry.ErrClockOutBeforeIn),
		errors.Is(err, timeentry.ErrInvalidCategory):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timeentry.ErrWorkerNotInCompany),
		errors.Is(err, timeentry.ErrJobNotInCompany):
		NotFound(w, err.Error())

	// Invite domain errors
	case errors.Is(err, invite.ErrInviteNotFound):
		NotFound(w, "Invite not found")
	case errors.Is(err, invite.ErrInviteExpired):
		Gone(w, "Invite has expired")
	case errors.Is(err, invite.ErrInviteAlreadyUsed),
		errors.Is(err, invite.ErrInviteRevoked),
		errors.Is(err, invite.ErrWorkerAlreadyInvited),
		errors.Is(err, invite.ErrWorkerAlreadyLinked),
		errors.Is(err, invite.ErrCannotRevokeAccepted):
		Conflict(w, err.Error())
	case errors.Is(err, invite.ErrNoPendingInvite):
		NotFound(w, "No pending invite found for this worker")

	// Analytics and payroll errors
	case errors.Is(err, analytics.ErrInvalidRangeDays),
		errors.Is(err, analytics.ErrInvalidTrendRange),
		errors.Is(err, analytics.ErrInvalidTarget),
		errors.Is(err, payroll.ErrInvalidWeek):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
