package leakage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_DefaultInputs(t *testing.T) {
	out := Calculate(DefaultInputs)

	assert.Equal(t, 1212, out.OvertimePremiumWaste)
	assert.Equal(t, 7794, out.UntrackedTimeRevenue)
	assert.Equal(t, 162, out.OverrunJobsEstimate)
	assert.Equal(t, 29160, out.JobOverrunWaste)
	assert.Equal(t, 38166, out.TotalRecoverableProfit)
	assert.Equal(t, 1732, out.MonthlyHoursLoggedEstimate)
}

func TestCalculate_ComponentsSumToTotal(t *testing.T) {
	cases := []Inputs{
		DefaultInputs,
		{Techs: 1, HourlyWage: 10, BillableRate: 50, JobsPerTechPerWeek: 1},
		{Techs: 200, HourlyWage: 150, BillableRate: 400, OTHoursPerTechPerWeek: 30,
			UntrackedHoursPerTechPerWeek: 10, JobOverrunRatePct: 100, AvgOverrunHours: 10, JobsPerTechPerWeek: 100},
		{Techs: 37, HourlyWage: 26.5, BillableRate: 135, OTHoursPerTechPerWeek: 3.25,
			UntrackedHoursPerTechPerWeek: 0.75, JobOverrunRatePct: 18, AvgOverrunHours: 2.1, JobsPerTechPerWeek: 11},
	}
	for _, in := range cases {
		out := Calculate(in)
		assert.Equal(t, out.OvertimePremiumWaste+out.UntrackedTimeRevenue+out.JobOverrunWaste, out.TotalRecoverableProfit)
	}
}

// Out-of-range fields are clamped, so an absurd submission produces the same
// report as the boundary values. The calculator never errors.
func TestCalculate_ClampsOutOfRangeInputs(t *testing.T) {
	absurd := Inputs{
		Techs:                        9999,
		HourlyWage:                   -5,
		BillableRate:                 100000,
		OTHoursPerTechPerWeek:        500,
		UntrackedHoursPerTechPerWeek: -3,
		JobOverrunRatePct:            250,
		AvgOverrunHours:              99,
		JobsPerTechPerWeek:           0,
	}
	boundary := Inputs{
		Techs:                        200,
		HourlyWage:                   10,
		BillableRate:                 400,
		OTHoursPerTechPerWeek:        30,
		UntrackedHoursPerTechPerWeek: 0,
		JobOverrunRatePct:            100,
		AvgOverrunHours:              10,
		JobsPerTechPerWeek:           1,
	}

	assert.Equal(t, Calculate(boundary), Calculate(absurd))
}

func TestCalculate_ZeroedLossFields(t *testing.T) {
	in := DefaultInputs
	in.OTHoursPerTechPerWeek = 0
	in.UntrackedHoursPerTechPerWeek = 0
	in.JobOverrunRatePct = 0

	out := Calculate(in)

	assert.Equal(t, 0, out.OvertimePremiumWaste)
	assert.Equal(t, 0, out.UntrackedTimeRevenue)
	assert.Equal(t, 0, out.OverrunJobsEstimate)
	assert.Equal(t, 0, out.JobOverrunWaste)
	assert.Equal(t, 0, out.TotalRecoverableProfit)
	// Hours logged reflects headcount, not leakage.
	assert.Equal(t, 1732, out.MonthlyHoursLoggedEstimate)
}

func TestCalculate_Deterministic(t *testing.T) {
	assert.Equal(t, Calculate(DefaultInputs), Calculate(DefaultInputs))
}

// More overtime never shrinks the projected loss.
func TestCalculate_MonotonicInOvertimeHours(t *testing.T) {
	previous := -1
	for _, ot := range []float64{0, 1, 2, 5, 10, 30} {
		in := DefaultInputs
		in.OTHoursPerTechPerWeek = ot
		out := Calculate(in)
		assert.GreaterOrEqual(t, out.OvertimePremiumWaste, previous)
		previous = out.OvertimePremiumWaste
	}
}

func TestHoustonSampleReport(t *testing.T) {
	report := HoustonSampleReport()

	assert.Equal(t, "Houston, TX", report.City)
	assert.Equal(t, 8, report.Techs)
	assert.Equal(t, 1288, report.OTPremiumCost)
	assert.Equal(t, 3519, report.JobOverrunWaste)
	assert.Equal(t, 1613, report.UntrackedTimeRevenue)
	assert.Equal(t, 6420, report.TotalRecoverableProfit)
	assert.Equal(t, report.OTPremiumCost+report.JobOverrunWaste+report.UntrackedTimeRevenue, report.TotalRecoverableProfit)
}
