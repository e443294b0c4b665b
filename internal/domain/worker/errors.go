package worker

import "errors"

var (
	ErrWorkerNotFound      = errors.New("worker not found")
	ErrPhoneNumberExists   = errors.New("phone number already registered in this company")
	ErrInvalidPhoneNumber  = errors.New("phone number must be 10-13 digits")
	ErrInvalidRole         = errors.New("role must be technician, apprentice or office")
	ErrNegativeHourlyWage  = errors.New("hourly wage must not be negative")
	ErrWorkerAlreadyActive = errors.New("worker is already active")
	ErrUnauthorized        = errors.New("unauthorized to access this worker")
)
