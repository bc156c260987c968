package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateRejectsInvalidEmissivity(t *testing.T) {
	modes := []Mode{Standard, KFlexCalibrated, AdvancedPipe, AdvancedSheet}

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			for _, eps := range []float64{-0.1, 1.1} {
				_, err := Estimate(Inputs{
					AmbientTemp: 20,
					SurfaceTemp: 60,
					Emissivity:  eps,
					Mode:        mode,
				})
				assert.ErrorIs(t, err, ErrInvalidEmissivity)
			}
		})
	}
}

func TestStandardZeroDeltaTUsesFloors(t *testing.T) {
	// T_sup == T_amb: no division error, ΔT floored at 1 K, radiation
	// switches to the linearized fallback.
	h, err := Estimate(Inputs{
		AmbientTemp: 20,
		SurfaceTemp: 20,
		Emissivity:  0.9,
		Mode:        Standard,
	})
	require.NoError(t, err)

	// conv = max(1.32·1^0.33, 7.6923) = 7.6923
	// rad  = 4·0.9·σ·293.15³ = 5.142277...
	// h    = 0.75·(7.6923 + 5.142277) = 9.626
	assert.InDelta(t, 9.626, h, 1e-3)
}

func TestStandardRadiationCap(t *testing.T) {
	// 200 °C surface against 20 °C with ε=1 pushes the exact radiation
	// term past the 6.5 cap; convection stays on the 1/0.13 floor.
	h, err := Estimate(Inputs{
		AmbientTemp: 20,
		SurfaceTemp: 200,
		Emissivity:  1,
		Mode:        Standard,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.75*(7.6923+6.5), h, 1e-3)
}

func TestStandardSafetyFactorToggle(t *testing.T) {
	base := Inputs{
		AmbientTemp: 20,
		SurfaceTemp: 200,
		Emissivity:  1,
		Mode:        Standard,
	}

	with, err := Estimate(base)
	require.NoError(t, err)

	base.NoSafetyFactor = true
	without, err := Estimate(base)
	require.NoError(t, err)

	assert.InDelta(t, 14.192, without, 1e-3)
	assert.Less(t, with, without)
}

func TestKFlexOrientationAndDiameter(t *testing.T) {
	base := Inputs{
		AmbientTemp: 20,
		SurfaceTemp: 50,
		Emissivity:  0.9,
		Mode:        KFlexCalibrated,
	}

	horizontal, err := Estimate(base)
	require.NoError(t, err)
	assert.InDelta(t, 11.03, horizontal, 5e-3)

	base.Orientation = Vertical
	vertical, err := Estimate(base)
	require.NoError(t, err)
	assert.NotEqual(t, horizontal, vertical)

	// Smaller outer diameters exchange better.
	base.Orientation = Horizontal
	base.OuterDiameter = 0.022
	small, err := Estimate(base)
	require.NoError(t, err)
	base.OuterDiameter = 0.089
	large, err := Estimate(base)
	require.NoError(t, err)
	assert.Greater(t, small, large)

	// 3-decimal rounding.
	assert.InDelta(t, math.Round(small*1000), small*1000, 1e-9)
}

func TestKFlexCondensationRecalibration(t *testing.T) {
	base := Inputs{
		AmbientTemp: 25,
		SurfaceTemp: -5,
		Emissivity:  0.93,
		Mode:        KFlexCalibrated,
	}

	inside, err := Estimate(base)
	require.NoError(t, err)

	base.Direction = Outside
	outside, err := Estimate(base)
	require.NoError(t, err)

	assert.Greater(t, outside, inside)
}

func TestAdvancedPipeCeilsConvection(t *testing.T) {
	in := Inputs{
		AmbientTemp:   20,
		SurfaceTemp:   75,
		Emissivity:    0.88,
		Mode:          AdvancedPipe,
		PipeDiameter:  0.048,
		OuterDiameter: 0.112,
	}
	h, err := Estimate(in)
	require.NoError(t, err)
	assert.Positive(t, h)

	// Subtracting the (analytic) radiation term must leave a convection
	// value that sits exactly on a 0.001 grid.
	tm := (in.SurfaceTemp+in.AmbientTemp)/2 + 0.75 + 273.15
	hRad := 4 * in.Emissivity * 5.67e-8 * tm * tm * tm
	conv := h - hRad
	assert.InDelta(t, math.Round(conv*1000), conv*1000, 1e-6)
	assert.GreaterOrEqual(t, conv, 0.0)
}

func TestAdvancedPipeReferenceDiameterGrowsWithPipe(t *testing.T) {
	in := Inputs{
		AmbientTemp: 20,
		SurfaceTemp: 75,
		Emissivity:  0.88,
		Mode:        AdvancedPipe,
	}

	in.PipeDiameter, in.OuterDiameter = 0.022, 0.06
	small, err := Estimate(in)
	require.NoError(t, err)

	in.PipeDiameter, in.OuterDiameter = 0.108, 0.06
	large, err := Estimate(in)
	require.NoError(t, err)

	// Bigger pipe ⇒ bigger reference diameter ⇒ stronger convection at
	// the same outer diameter.
	assert.Greater(t, large, small)
}

func TestAdvancedSheetConvectionFloor(t *testing.T) {
	// Small ΔT with zero emissivity isolates the floored convection
	// term: h = 0.75 · 7.6923.
	h, err := Estimate(Inputs{
		AmbientTemp: 20,
		SurfaceTemp: 30,
		Emissivity:  0,
		Mode:        AdvancedSheet,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.769, h, 1e-3)
}

func TestAdvancedSheetRadiationCalibration(t *testing.T) {
	// Mean temperature 10 °C interpolates the calibration table between
	// 4.6 and 5.7; with ε=1 the radiation term is the coefficient.
	h, err := Estimate(Inputs{
		AmbientTemp: 20,
		SurfaceTemp: 0,
		Emissivity:  1,
		Mode:        AdvancedSheet,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.75*(7.6923+5.15), h, 1e-3)
}

func TestAdvancedSheetColdAmbientTier(t *testing.T) {
	// Large ΔT keeps convection above the floor so the ambient tier is
	// visible: colder ambient ⇒ reduced coefficient ⇒ smaller h.
	cold, err := Estimate(Inputs{
		AmbientTemp: 5,
		SurfaceTemp: 605,
		Emissivity:  0,
		Mode:        AdvancedSheet,
	})
	require.NoError(t, err)

	warm, err := Estimate(Inputs{
		AmbientTemp: 25,
		SurfaceTemp: 625,
		Emissivity:  0,
		Mode:        AdvancedSheet,
	})
	require.NoError(t, err)

	assert.Less(t, cold, warm)
}

func TestSheetRadCoefficientClampsAndFloors(t *testing.T) {
	assert.InDelta(t, 3.7, sheetRadCoefficient(-60), 1e-12)
	assert.InDelta(t, 8.4, sheetRadCoefficient(120), 1e-12)
	assert.InDelta(t, 5.7, sheetRadCoefficient(20), 1e-12)
	assert.GreaterOrEqual(t, sheetRadCoefficient(-300), 1.4)
}

func TestParseModeAndOrientation(t *testing.T) {
	mode, err := ParseMode("kflex")
	require.NoError(t, err)
	assert.Equal(t, KFlexCalibrated, mode)

	mode, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Standard, mode)

	_, err = ParseMode("bogus")
	assert.Error(t, err)

	o, err := ParseOrientation("vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, o)

	_, err = ParseOrientation("diagonal")
	assert.Error(t, err)
}
