package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostPerHour(t *testing.T) {
	assert.InDelta(t, 0.45, CostPerHour(1500, 0.30), 1e-9)
	assert.Zero(t, CostPerHour(0, 0.30))
}

func TestCostPerYearDefaultsToContinuousOperation(t *testing.T) {
	// 1 kW at 0.25 per kWh around the clock.
	assert.InDelta(t, 2190, CostPerYear(1000, 0.25, 0), 1e-6)
}

func TestCostPerYearWithOperatingHours(t *testing.T) {
	assert.InDelta(t, 500*0.25*4000/1000, CostPerYear(500, 0.25, 4000), 1e-9)
}
