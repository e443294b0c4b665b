package timeentry

import (
	"context"
	"time"
)

type TimeEntryRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (TimeEntry, error)
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	CloseShift(ctx context.Context, id string, companyID string, clockOut time.Time) error
	GetOpenByWorkerID(ctx context.Context, workerID string, companyID string) (TimeEntry, error)
	// GetByCompanyIDInRange returns entries whose clock-in falls in [start, end).
	GetByCompanyIDInRange(ctx context.Context, companyID string, start, end time.Time) ([]TimeEntry, error)
}
