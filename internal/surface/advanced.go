package surface

import "math"

// estimateAdvancedPipe refines the pipe estimate.
//
// The diameter correction uses a reference diameter that is itself a
// linear function of the bare pipe diameter, with a fixed 0.474
// exponent. Convection is rounded up to the next 0.001 before summing;
// the ceiling (not nearest) rounding is calibration behavior and must
// not be "fixed". Radiation is the linearized form with a +0.75 K
// offset on the mean temperature. No cap, no safety factor, and the
// sum is not re-rounded.
func estimateAdvancedPipe(in Inputs) float64 {
	coef, exp := convCalibration(in.Orientation)
	dt := math.Abs(in.SurfaceTemp - in.AmbientTemp)

	hConv := coef * math.Pow(dt, exp)

	d := in.OuterDiameter
	if d == 0 {
		d = in.PipeDiameter
	}
	if d > 0 && in.PipeDiameter > 0 {
		dRef := 0.000955*in.PipeDiameter + 0.0244
		hConv *= math.Pow(dRef/d, 0.474)
	}
	hConv = ceil3(hConv)

	tm := (in.SurfaceTemp+in.AmbientTemp)/2 + 0.75 + kelvin
	hRad := 4 * in.Emissivity * sigma * tm * tm * tm

	return hConv + hRad
}

// sheetRadTable linearizes 4·σ·Tm³ over the working range of the sheet
// calibration. Values are W/(m²·K) per unit emissivity, keyed by mean
// temperature in °C.
var sheetRadTable = [...]struct{ t, c float64 }{
	{-20, 3.7},
	{0, 4.6},
	{20, 5.7},
	{40, 7.0},
	{60, 8.4},
}

// sheetRadCoefficient interpolates the calibration table, clamping at
// the ends and flooring the result at 1.4.
func sheetRadCoefficient(tMean float64) float64 {
	const floor = 1.4

	first, last := sheetRadTable[0], sheetRadTable[len(sheetRadTable)-1]
	c := first.c
	switch {
	case tMean <= first.t:
		c = first.c
	case tMean >= last.t:
		c = last.c
	default:
		for i := 0; i < len(sheetRadTable)-1; i++ {
			lo, hi := sheetRadTable[i], sheetRadTable[i+1]
			if tMean < lo.t || tMean > hi.t {
				continue
			}
			c = lo.c + (hi.c-lo.c)*(tMean-lo.t)/(hi.t-lo.t)
			break
		}
	}

	return math.Max(c, floor)
}

// estimateAdvancedSheet refines the flat-sheet estimate.
//
// Below 20 °C ambient the convection coefficient drops linearly
// (1.32 − 0.017·(20−T_amb)); the 1/0.13 floor still applies to the
// convection term. Radiation multiplies the emissivity directly by a
// piecewise-linear calibration coefficient of the mean temperature.
// The 0.75 safety factor is always applied.
func estimateAdvancedSheet(in Inputs) float64 {
	coef := 1.32
	if in.AmbientTemp < 20 {
		coef = 1.32 - 0.017*(20-in.AmbientTemp)
	}

	dt := math.Abs(in.SurfaceTemp - in.AmbientTemp)
	hConv := math.Max(coef*math.Pow(dt, 0.33), hConvFloor)

	tMean := (in.SurfaceTemp + in.AmbientTemp) / 2
	hRad := in.Emissivity * sheetRadCoefficient(tMean)

	return round3(safetyFactor * (hConv + hRad))
}
