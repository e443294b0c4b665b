package analytics

import (
	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/analytics"
)

// Fixed illustrative recovery-rate assumptions for the recoverable-profit
// breakdown: a contractor can realistically claw back a fifth of overtime
// and overrun spend and a bit less of idle time.
const (
	OvertimeRecoveryRate = 0.20
	OverrunRecoveryRate  = 0.20
	IdleRecoveryRate     = 0.15
)

// RecoverableProfitBreakdown combines overtime cost, overrun cost and idle
// hours into a single modeled-savings figure. Idle cost is idleHours x
// blendedRate. Negative inputs are clamped to 0 so the function is total
// and every output is non-negative; components always sum exactly to Total.
func RecoverableProfitBreakdown(overtimeCost, overrunCost, idleHours, blendedRate float64) analytics.RecoverableProfitBreakdown {
	overtimeCost = clampNonNegative(overtimeCost)
	overrunCost = clampNonNegative(overrunCost)
	idleCost := clampNonNegative(idleHours) * clampNonNegative(blendedRate)

	b := analytics.RecoverableProfitBreakdown{
		FromOvertime: overtimeCost * OvertimeRecoveryRate,
		FromOverruns: overrunCost * OverrunRecoveryRate,
		FromIdle:     idleCost * IdleRecoveryRate,
	}
	b.Total = b.FromOvertime + b.FromOverruns + b.FromIdle
	return b
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
