package payroll

import (
	"context"
	"time"
)

type PayrollService interface {
	// ExportWeek computes per-worker regular/overtime hours and pay for the
	// week containing weekOf.
	ExportWeek(ctx context.Context, weekOf time.Time) (WeeklyExport, error)
}
