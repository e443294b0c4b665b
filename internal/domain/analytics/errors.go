package analytics

import "errors"

var (
	ErrInvalidRangeDays  = errors.New("range days must be greater than zero")
	ErrInvalidTrendRange = errors.New("trend range days must be one of 30, 90, 180 or 365")
	ErrInvalidTarget     = errors.New("target labour cost per job must not be negative")
)
