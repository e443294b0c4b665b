// Package leakage implements the public "Hidden Profit" estimator used by
// the lead-generation calculator. It is fully decoupled from the rest of
// the analytics engine: plain inputs in, whole-dollar figures out.
package leakage

import "math"

// WeeksPerMonth converts weekly figures to monthly ones.
const WeeksPerMonth = 4.33

// Inputs are the calculator's free-form fields. Out-of-range values are
// clamped silently before computation; the calculator never hard-fails on
// bad input.
type Inputs struct {
	Techs                        int     `json:"techs"`                            // [1, 200]
	HourlyWage                   float64 `json:"hourly_wage"`                      // [10, 150]
	BillableRate                 float64 `json:"billable_rate"`                    // [50, 400]
	OTHoursPerTechPerWeek        float64 `json:"ot_hours_per_tech_per_week"`       // [0, 30]
	UntrackedHoursPerTechPerWeek float64 `json:"untracked_hours_per_tech_per_week"` // [0, 10]
	JobOverrunRatePct            float64 `json:"job_overrun_rate_pct"`             // [0, 100]
	AvgOverrunHours              float64 `json:"avg_overrun_hours"`                // [0, 10]
	JobsPerTechPerWeek           int     `json:"jobs_per_tech_per_week"`           // [1, 100]
}

// DefaultInputs pre-fill the public calculator with a typical small shop.
var DefaultInputs = Inputs{
	Techs:                        10,
	HourlyWage:                   28,
	BillableRate:                 120,
	OTHoursPerTechPerWeek:        2.0,
	UntrackedHoursPerTechPerWeek: 1.5,
	JobOverrunRatePct:            25,
	AvgOverrunHours:              1.5,
	JobsPerTechPerWeek:           15,
}

// Outputs are monthly whole-dollar estimates. Each component is rounded
// individually and the total is the sum of the rounded components, so the
// figures a visitor sees always add up exactly.
type Outputs struct {
	OvertimePremiumWaste       int `json:"overtime_premium_waste"`
	UntrackedTimeRevenue       int `json:"untracked_time_revenue"`
	OverrunJobsEstimate        int `json:"overrun_jobs_estimate"`
	JobOverrunWaste            int `json:"job_overrun_waste"`
	TotalRecoverableProfit     int `json:"total_recoverable_profit"`
	MonthlyHoursLoggedEstimate int `json:"monthly_hours_logged_estimate"`
}

func (in Inputs) clamped() Inputs {
	return Inputs{
		Techs:                        clampInt(in.Techs, 1, 200),
		HourlyWage:                   clamp(in.HourlyWage, 10, 150),
		BillableRate:                 clamp(in.BillableRate, 50, 400),
		OTHoursPerTechPerWeek:        clamp(in.OTHoursPerTechPerWeek, 0, 30),
		UntrackedHoursPerTechPerWeek: clamp(in.UntrackedHoursPerTechPerWeek, 0, 10),
		JobOverrunRatePct:            clamp(in.JobOverrunRatePct, 0, 100),
		AvgOverrunHours:              clamp(in.AvgOverrunHours, 0, 10),
		JobsPerTechPerWeek:           clampInt(in.JobsPerTechPerWeek, 1, 100),
	}
}

// Calculate projects monthly overtime, untracked-time and overrun losses.
// Deterministic, no randomness; same inputs always produce the same report.
func Calculate(in Inputs) Outputs {
	in = in.clamped()
	techs := float64(in.Techs)

	overtimePremiumWaste := round(techs * in.OTHoursPerTechPerWeek * in.HourlyWage * 0.5 * WeeksPerMonth)
	untrackedTimeRevenue := round(techs * in.UntrackedHoursPerTechPerWeek * in.BillableRate * WeeksPerMonth)
	overrunJobsEstimate := round(techs * float64(in.JobsPerTechPerWeek) * WeeksPerMonth * in.JobOverrunRatePct / 100)
	jobOverrunWaste := round(float64(overrunJobsEstimate) * in.AvgOverrunHours * in.BillableRate)

	return Outputs{
		OvertimePremiumWaste:       overtimePremiumWaste,
		UntrackedTimeRevenue:       untrackedTimeRevenue,
		OverrunJobsEstimate:        overrunJobsEstimate,
		JobOverrunWaste:            jobOverrunWaste,
		TotalRecoverableProfit:     overtimePremiumWaste + untrackedTimeRevenue + jobOverrunWaste,
		MonthlyHoursLoggedEstimate: round(techs * 40 * WeeksPerMonth),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
