package analytics

import "context"

// AnalyticsService fetches company-scoped collections and feeds them to the
// pure calculation functions. All derived values are recomputed per call.
type AnalyticsService interface {
	// GetRecoveryDashboard returns the combined current-week recovery view.
	GetRecoveryDashboard(ctx context.Context) (*RecoveryDashboardResponse, error)

	// GetLabourCostTrend returns the labour-cost-per-job series. rangeDays is
	// snapped to the nearest allowed value before building the payload.
	GetLabourCostTrend(ctx context.Context, rangeDays int, targetLabourCostPerJob *float64) (*LabourCostTrendPayload, error)

	// GetRPLHTrend returns revenue-per-labour-hour for the trailing weeks,
	// oldest first.
	GetRPLHTrend(ctx context.Context, weeks int) (*RPLHTrendResponse, error)

	// GetTimeAllocation buckets hours logged in the last rangeDays days.
	GetTimeAllocation(ctx context.Context, rangeDays int) (*TimeAllocation, error)
}
