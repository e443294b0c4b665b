package analytics

import (
	"testing"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBlendedHourlyRate_EmptyReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, CalculateBlendedHourlyRate(nil))
	assert.Equal(t, 0.0, CalculateBlendedHourlyRate([]worker.Worker{}))
}

func TestCalculateBlendedHourlyRate_Average(t *testing.T) {
	workers := []worker.Worker{
		testWorker("w1", 20),
		testWorker("w2", 30),
		testWorker("w3", 40),
	}

	assert.InDelta(t, 30.0, CalculateBlendedHourlyRate(workers), 1e-9)
}

func TestCalculateBlendedHourlyRate_SingleWorker(t *testing.T) {
	assert.InDelta(t, 27.5, CalculateBlendedHourlyRate([]worker.Worker{testWorker("w1", 27.5)}), 1e-9)
}

func TestOvertimeHourlyCost(t *testing.T) {
	assert.InDelta(t, 42.0, OvertimeHourlyCost(28), 1e-9)
	assert.Equal(t, 0.0, OvertimeHourlyCost(0))
}
