package job

import "errors"

var (
	ErrJobNotFound            = errors.New("job not found")
	ErrJobTypeNotFound        = errors.New("job type not found")
	ErrInvalidStatus          = errors.New("status must be scheduled, in_progress, completed or overdue")
	ErrNegativeEstimatedHours = errors.New("estimated hours must not be negative")
	ErrJobAlreadyCompleted    = errors.New("job is already completed")
)
