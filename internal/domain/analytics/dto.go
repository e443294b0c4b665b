package analytics

import "time"

// DateRange is a half-open interval [Start, End). Every aggregation in the
// analytics core is windowed by one of these.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range: Start <= t < End.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// ========== DERIVED VALUE OBJECTS ==========
// Never persisted; recomputed on every request.

// OvertimeResult aggregates overtime hours and the premium-only cost
// (the extra 0.5x portion, not full overtime pay).
type OvertimeResult struct {
	Hours float64 `json:"hours"`
	Cost  float64 `json:"cost"`
}

// OverrunResult aggregates the cost of hours logged beyond job estimates.
type OverrunResult struct {
	EstimatedCostOverrun float64 `json:"estimated_cost_overrun"`
	OverrunJobs          int     `json:"overrun_jobs"`
}

// TimeAllocation buckets logged hours by category. All four fields are
// always present (zero-filled) so callers can destructure safely.
type TimeAllocation struct {
	Billable float64 `json:"billable"`
	Travel   float64 `json:"travel"`
	Admin    float64 `json:"admin"`
	Idle     float64 `json:"idle"`
}

// Total returns the sum of all four categories.
func (a TimeAllocation) Total() float64 {
	return a.Billable + a.Travel + a.Admin + a.Idle
}

// RPLHTrendPoint is one charted revenue-per-labour-hour period.
type RPLHTrendPoint struct {
	Label string  `json:"label"`
	RPLH  float64 `json:"rplh"`
}

// RecoverableProfitBreakdown models potential savings using fixed
// illustrative recovery percentages. Components always sum to Total.
type RecoverableProfitBreakdown struct {
	Total        float64 `json:"total"`
	FromOvertime float64 `json:"from_overtime"`
	FromOverruns float64 `json:"from_overruns"`
	FromIdle     float64 `json:"from_idle"`
}

// ========== LABOUR COST TREND ==========

// TrendBucket is one period of the labour-cost-per-job series. Buckets with
// no jobs carry value 0 so the series length is stable for charting.
type TrendBucket struct {
	PeriodLabel         string  `json:"period_label"`
	AvgLabourCostPerJob float64 `json:"avg_labour_cost_per_job"`
}

type LabourCostTrendPayload struct {
	Currency               string        `json:"currency"`
	RangeDays              int           `json:"range_days"`
	TargetLabourCostPerJob *float64      `json:"target_labour_cost_per_job,omitempty"`
	Series                 []TrendBucket `json:"series"`
}

// ========== COMBINED RECOVERY DASHBOARD ==========

type RecoveryDashboardResponse struct {
	BlendedHourlyRate float64                    `json:"blended_hourly_rate"`
	Overtime          OvertimeResult             `json:"overtime"`
	Overruns          OverrunResult              `json:"overruns"`
	TimeAllocation    TimeAllocation             `json:"time_allocation"`
	Recoverable       RecoverableProfitBreakdown `json:"recoverable"`
	CurrentRPLH       float64                    `json:"current_rplh"`
	RPLHTarget        float64                    `json:"rplh_target"`
	RPLHDeltaPct      float64                    `json:"rplh_delta_pct"`
}

type RPLHTrendResponse struct {
	Target float64          `json:"target"`
	Points []RPLHTrendPoint `json:"points"`
}
