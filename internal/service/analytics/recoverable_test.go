package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableProfitBreakdown_AllZero(t *testing.T) {
	for _, rate := range []float64{0, 35, 1000} {
		b := RecoverableProfitBreakdown(0, 0, 0, rate)
		assert.Equal(t, 0.0, b.Total)
		assert.Equal(t, 0.0, b.FromOvertime)
		assert.Equal(t, 0.0, b.FromOverruns)
		assert.Equal(t, 0.0, b.FromIdle)
	}
}

func TestRecoverableProfitBreakdown_FixedRecoveryRates(t *testing.T) {
	b := RecoverableProfitBreakdown(1000, 2000, 10, 30)

	assert.InDelta(t, 200.0, b.FromOvertime, 1e-9) // 20% of overtime cost
	assert.InDelta(t, 400.0, b.FromOverruns, 1e-9) // 20% of overrun cost
	assert.InDelta(t, 45.0, b.FromIdle, 1e-9)      // 15% of 10h x $30
	assert.InDelta(t, 645.0, b.Total, 1e-9)
}

// Components must sum exactly to the total for arbitrary non-negative input.
func TestRecoverableProfitBreakdown_ComponentsSumToTotal(t *testing.T) {
	cases := [][4]float64{
		{0, 0, 0, 0},
		{123.45, 678.9, 11.1, 27.25},
		{1e6, 0.01, 0.5, 199.99},
		{42, 42, 42, 42},
	}
	for _, c := range cases {
		b := RecoverableProfitBreakdown(c[0], c[1], c[2], c[3])
		assert.Equal(t, b.FromOvertime+b.FromOverruns+b.FromIdle, b.Total)
		assert.GreaterOrEqual(t, b.Total, 0.0)
	}
}

// Negative inputs are clamped at the boundary so the function stays total.
func TestRecoverableProfitBreakdown_NegativeInputsClamped(t *testing.T) {
	b := RecoverableProfitBreakdown(-100, -50, -10, -30)

	assert.Equal(t, 0.0, b.Total)
	assert.GreaterOrEqual(t, b.FromOvertime, 0.0)
	assert.GreaterOrEqual(t, b.FromOverruns, 0.0)
	assert.GreaterOrEqual(t, b.FromIdle, 0.0)
}
