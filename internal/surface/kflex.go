package surface

import "math"

// estimateKFlex follows the manufacturer recalibration.
//
// The convection coefficient and exponent depend on orientation
// (1.646/0.33 horizontal, 1.8/0.25 vertical). In the condensation
// direction the coefficient is recalibrated linearly in ΔT. When the
// outer diameter is known, convection is rescaled by
// (0.043/D)^p with p = 0.10 horizontal, 0.15 vertical. Radiation uses
// the linearized mean-temperature form unconditionally, with no cap
// and no safety factor.
func estimateKFlex(in Inputs) float64 {
	coef, exp := convCalibration(in.Orientation)
	dt := math.Abs(in.SurfaceTemp - in.AmbientTemp)

	if in.Direction == Outside {
		coef += 0.003 * dt
	}

	hConv := coef * math.Pow(dt, exp)

	if d := in.OuterDiameter; d > 0 {
		p := 0.10
		if in.Orientation == Vertical {
			p = 0.15
		}
		hConv *= math.Pow(kflexRefDiameter/d, p)
	}

	hRad := radLinearized(in.SurfaceTemp, in.AmbientTemp, in.Emissivity)

	return round3(hConv + hRad)
}
