package surface

import "math"

// estimateStandard is the simplified ISO-style estimate.
//
// Convection uses 1.32·ΔT^0.33 with a 1 K floor on ΔT and the 1/0.13
// minimum-film floor on the result. Radiation uses the exact
// Stefan–Boltzmann difference form, capped at 6.5 W/(m²·K). The 0.75
// safety factor is applied unless disabled.
func estimateStandard(in Inputs) float64 {
	dt := math.Abs(in.SurfaceTemp - in.AmbientTemp)
	if dt < 1 {
		dt = 1
	}

	hConv := math.Max(1.32*math.Pow(dt, 0.33), hConvFloor)

	hRad := radExact(in.SurfaceTemp, in.AmbientTemp, in.Emissivity)
	if hRad > radCap {
		hRad = radCap
	}

	h := hConv + hRad
	if !in.NoSafetyFactor {
		h *= safetyFactor
	}
	return round3(h)
}
