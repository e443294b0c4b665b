package payroll

import "errors"

var (
	ErrInvalidWeek = errors.New("week_of must be a valid date")
)
