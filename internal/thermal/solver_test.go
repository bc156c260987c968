package thermal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkessler/goinsul/internal/surface"
)

func TestPipeNetworkComposition(t *testing.T) {
	// 48 mm tube, no wall, 32 mm insulation, λ=0.04, h=10.
	net, err := PipeNetwork(0.048, 0, 0.032, 0.04, 10)
	require.NoError(t, err)

	rIns := math.Log(0.056/0.024) / (2 * math.Pi * 0.04)
	rConv := 1 / (10 * 2 * math.Pi * 0.056)

	assert.Equal(t, 0.0, net.Component(ComponentWall))
	assert.InDelta(t, rIns, net.Component(ComponentInsulation), 1e-9)
	assert.InDelta(t, rConv, net.Component(ComponentConvection), 1e-9)
	assert.InDelta(t, rIns+rConv, net.Total(), 1e-9)
}

func TestPipeNetworkWallResistance(t *testing.T) {
	net, err := PipeNetwork(0.048, 0.004, 0.032, 0.04, 10)
	require.NoError(t, err)

	rWall := math.Log(0.024/0.020) / (2 * math.Pi * lambdaSteel)
	assert.InDelta(t, rWall, net.Component(ComponentWall), 1e-9)
	assert.Positive(t, net.Component(ComponentWall))
}

func TestPipeNetworkValidation(t *testing.T) {
	_, err := PipeNetwork(0, 0, 0.01, 0.04, 10)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	// Wall swallows the whole bore.
	_, err = PipeNetwork(0.048, 0.030, 0.01, 0.04, 10)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = PipeNetwork(0.048, 0, 0.01, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidConductivity)

	_, err = PipeNetwork(0.048, 0, 0.01, 0.04, 0)
	assert.ErrorIs(t, err, ErrInvalidCoefficient)
}

func TestSheetNetworkComposition(t *testing.T) {
	net, err := SheetNetwork(0.019, 2, 0.04, 8)
	require.NoError(t, err)

	assert.InDelta(t, 0.019/(0.04*2), net.Component(ComponentInsulation), 1e-9)
	assert.InDelta(t, 1.0/(8*2), net.Component(ComponentConvection), 1e-9)

	_, err = SheetNetwork(0.019, 0, 0.04, 8)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestSolvePipeBasics(t *testing.T) {
	res, err := SolvePipe(PipeParams{
		OuterDiameter: 0.048,
		Insulation:    0.032,
		Length:        10,
		AmbientTemp:   20,
		MediumTemp:    90,
		Emissivity:    0.93,
		Material:      "ROKAFLEX ST",
		Tariff:        0.30,
	})
	require.NoError(t, err)

	// Reference temperature (90+20)/2 = 55 °C is above the last table
	// breakpoint, so λ falls back to the default.
	assert.InDelta(t, 0.036, res.MeanLambda, 1e-12)

	assert.Positive(t, res.SurfaceCoefficient)
	assert.Positive(t, res.HeatLoss)
	assert.InDelta(t, res.HeatFlow*10, res.HeatLoss, 1e-9)
	assert.Greater(t, res.Reduction, 0.0)
	assert.Less(t, res.Reduction, 100.0)
	assert.False(t, res.CriticalDiameter)
	assert.Empty(t, res.Warnings)

	// Every component non-negative, total positive.
	for _, r := range res.Network.Components {
		assert.GreaterOrEqual(t, r.Value, 0.0, r.Name)
	}
	assert.Positive(t, res.Network.Total())
	assert.InDelta(t, 1/res.Network.Total(), res.Transmittance, 1e-9)

	// Cost figures follow the loss.
	assert.InDelta(t, res.HeatLoss/1000*0.30, res.CostPerHour, 1e-9)
	assert.InDelta(t, res.CostPerHour*8760, res.CostPerYear, 1e-6)
}

func TestSolvePipeMeanLambdaAtReferenceTemperature(t *testing.T) {
	// Cold line: reference temperature (25 + (-5))/2 = 10 °C lands
	// between the 0 °C (0.034) and 20 °C (0.036) breakpoints.
	res, err := SolvePipe(PipeParams{
		OuterDiameter: 0.022,
		Insulation:    0.013,
		Length:        1,
		AmbientTemp:   25,
		MediumTemp:    -5,
		Emissivity:    0.93,
		Material:      "ROKAFLEX ST",
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.035, res.MeanLambda, 1e-12)
}

func TestSolvePipeZeroDeltaT(t *testing.T) {
	res, err := SolvePipe(PipeParams{
		OuterDiameter: 0.048,
		Insulation:    0.019,
		Length:        5,
		AmbientTemp:   20,
		MediumTemp:    20,
		Emissivity:    0.93,
		Material:      "ROKAFLEX ST",
	})
	require.NoError(t, err)
	assert.Zero(t, res.HeatLoss)
	assert.Zero(t, res.Reduction)
}

func TestSolvePipeCriticalDiameterWarning(t *testing.T) {
	// A 4 mm capillary with 0.1 mm of poor insulation sits below the
	// critical diameter: total resistance drops under the bare value.
	res, err := SolvePipe(PipeParams{
		OuterDiameter: 0.004,
		Insulation:    0.0001,
		Length:        1,
		AmbientTemp:   20,
		MediumTemp:    80,
		Emissivity:    0.9,
		Conductivity:  0.05,
	})
	require.NoError(t, err)

	assert.True(t, res.CriticalDiameter)
	assert.NotEmpty(t, res.Warnings)
	assert.Negative(t, res.Reduction)
}

func TestSolvePipeSmallBoreCorrection(t *testing.T) {
	params := PipeParams{
		OuterDiameter: 0.022,
		Insulation:    0.013,
		Length:        1,
		AmbientTemp:   25,
		MediumTemp:    -5,
		Emissivity:    0.93,
		Material:      "ROKAFLEX ST",
	}

	plain, err := SolvePipe(params)
	require.NoError(t, err)

	params.SmallBoreCorrection = true
	boosted, err := SolvePipe(params)
	require.NoError(t, err)

	assert.Greater(t, boosted.BareHeatFlow, plain.BareHeatFlow)
	assert.Greater(t, boosted.Reduction, plain.Reduction)
}

func TestSolvePipeValidation(t *testing.T) {
	_, err := SolvePipe(PipeParams{OuterDiameter: 0, Length: 1, MediumTemp: 50})
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = SolvePipe(PipeParams{OuterDiameter: 0.048, Length: 0, MediumTemp: 50})
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = SolvePipe(PipeParams{
		OuterDiameter: 0.048,
		Length:        1,
		MediumTemp:    50,
		Conductivity:  -0.04,
	})
	assert.ErrorIs(t, err, ErrInvalidConductivity)

	_, err = SolvePipe(PipeParams{
		OuterDiameter: 0.048,
		Insulation:    0.019,
		Length:        1,
		MediumTemp:    50,
		Emissivity:    1.5,
	})
	assert.ErrorIs(t, err, surface.ErrInvalidEmissivity)
}

func TestSolveSheetBasics(t *testing.T) {
	res, err := SolveSheet(SheetParams{
		Thickness:   0.019,
		Area:        4,
		AmbientTemp: 20,
		MediumTemp:  60,
		Emissivity:  0.93,
		Orientation: surface.Vertical,
		Mode:        surface.AdvancedSheet,
		Material:    "MINERAL WOOL WM640",
		Tariff:      0.25,
	})
	require.NoError(t, err)

	assert.Positive(t, res.HeatLoss)
	assert.Greater(t, res.Reduction, 0.0)
	assert.InDelta(t, 1/(res.Network.Total()*4), res.Transmittance, 1e-9)
	assert.InDelta(t, res.HeatLoss/1000*0.25, res.CostPerHour, 1e-9)

	_, err = SolveSheet(SheetParams{Thickness: 0.019, Area: 0, MediumTemp: 60})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestSweepPipeThickness(t *testing.T) {
	params := PipeParams{
		OuterDiameter: 0.048,
		Length:        1,
		AmbientTemp:   20,
		MediumTemp:    90,
		Emissivity:    0.93,
		Material:      "ROKAFLEX ST",
	}

	points, err := SweepPipeThickness(params, 0.005, 0.050, 0.005)
	require.NoError(t, err)
	require.Len(t, points, 10)

	// On a 48 mm pipe well above the critical diameter the loss is
	// strictly decreasing with thickness.
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i].HeatLoss, points[i-1].HeatLoss)
		assert.Greater(t, points[i].Thickness, points[i-1].Thickness)
	}

	_, err = SweepPipeThickness(params, 0.01, 0.005, 0.001)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}
