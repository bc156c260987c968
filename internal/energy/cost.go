// Package energy converts heat losses into operating cost.
package energy

// HoursPerYear is the default continuous-operation assumption.
const HoursPerYear = 8760.0

// CostPerHour converts a loss in watts and a tariff in currency per
// kWh into cost per hour.
func CostPerHour(lossWatts, tariff float64) float64 {
	return lossWatts / 1000 * tariff
}

// CostPerYear projects the hourly cost over a yearly operating time.
// A non-positive hours value assumes continuous operation.
func CostPerYear(lossWatts, tariff, hours float64) float64 {
	if hours <= 0 {
		hours = HoursPerYear
	}
	return CostPerHour(lossWatts, tariff) * hours
}
