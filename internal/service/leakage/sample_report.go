package leakage

import "math"

// SampleReport is the hand-tuned illustrative dataset shown on the public
// calculator page before a visitor enters their own numbers.
type SampleReport struct {
	City                   string `json:"city"`
	Techs                  int    `json:"techs"`
	OTPremiumCost          int    `json:"ot_premium_cost"`
	JobOverrunWaste        int    `json:"job_overrun_waste"`
	UntrackedTimeRevenue   int    `json:"untracked_time_revenue"`
	TotalRecoverableProfit int    `json:"total_recoverable_profit"`
}

// HoustonSampleReport returns the fixed marketing fixture. The figures are
// a literal dataset, not a Calculate() run: the components are hand-tuned
// to sum to exactly 6420 for the narrative, and the premium cost keeps its
// original 92-hours-at-$28 derivation.
func HoustonSampleReport() SampleReport {
	return SampleReport{
		City:                   "Houston, TX",
		Techs:                  8,
		OTPremiumCost:          int(math.Round(92 * 28 * 0.5)), // 1288
		JobOverrunWaste:        3519,
		UntrackedTimeRevenue:   1613,
		TotalRecoverableProfit: 6420,
	}
}
