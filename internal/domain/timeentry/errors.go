package timeentry

import "errors"

var (
	ErrTimeEntryNotFound   = errors.New("time entry not found")
	ErrClockOutBeforeIn    = errors.New("clock-out must not be before clock-in")
	ErrShiftAlreadyOpen    = errors.New("worker already has an open shift")
	ErrShiftAlreadyClosed  = errors.New("time entry is already clocked out")
	ErrInvalidCategory     = errors.New("category must be billable, travel, admin or idle")
	ErrWorkerNotInCompany  = errors.New("worker does not belong to this company")
	ErrJobNotInCompany     = errors.New("job does not belong to this company")
	ErrInvalidTimeEntryRef = errors.New("time entry references an unknown worker")
)
