package timeentry

import "context"

// TimeEntryService defines business logic for shift tracking (companyID from JWT)
type TimeEntryService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)
	ClockOut(ctx context.Context, id string, req ClockOutRequest) (TimeEntryResponse, error)
	GetTimeEntry(ctx context.Context, id string) (TimeEntryResponse, error)
	// ListTimeEntries lists entries clocked in during the last rangeDays days.
	ListTimeEntries(ctx context.Context, rangeDays int) ([]TimeEntryResponse, error)
}
