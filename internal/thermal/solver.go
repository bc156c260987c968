package thermal

import (
	"fmt"
	"math"

	"github.com/tkessler/goinsul/internal/energy"
	"github.com/tkessler/goinsul/internal/material"
	"github.com/tkessler/goinsul/internal/surface"
)

// Small-bore baseline calibration: bare pipes thinner than the
// reference diameter exchange noticeably better than the flat-surface
// correlations predict.
const (
	smallBoreRef      = 0.043
	smallBoreExponent = 0.15
)

// PipeParams configures a cylindrical heat-loss calculation. All
// dimensions are metres, temperatures °C.
type PipeParams struct {
	OuterDiameter float64 // bare pipe OD
	WallThickness float64 // 0 for thin-walled tube
	Insulation    float64 // insulation thickness
	Length        float64

	AmbientTemp float64
	MediumTemp  float64
	Emissivity  float64
	Orientation surface.Orientation
	Direction   surface.Direction
	Mode        surface.Mode

	// Material names a catalog entry; Conductivity, when positive,
	// overrides the lookup.
	Material     string
	Conductivity float64
	Catalog      material.Catalog

	Tariff         float64 // currency per kWh; 0 skips the cost figures
	OperatingHours float64 // per year; 0 assumes continuous operation

	NoSafetyFactor      bool
	SmallBoreCorrection bool
}

// SheetParams configures a planar heat-loss calculation.
type SheetParams struct {
	Thickness float64 // insulation thickness, m
	Area      float64 // exchange area, m²
	Height    float64 // characteristic height, m (vertical correlation)

	AmbientTemp float64
	MediumTemp  float64
	Emissivity  float64
	Orientation surface.Orientation
	Direction   surface.Direction
	Mode        surface.Mode

	Material     string
	Conductivity float64
	Catalog      material.Catalog

	Tariff         float64
	OperatingHours float64

	NoSafetyFactor bool
}

// Result carries everything a caller needs to present a heat-loss
// calculation. Anomalies that do not invalidate the numbers (the
// critical-diameter effect) are reported as data, never printed.
type Result struct {
	SurfaceCoefficient float64 // h, W/(m²·K)
	MeanLambda         float64 // λ at the reference temperature, W/(m·K)
	Network            Network

	Transmittance float64 // pipe: W/(m·K) per metre; sheet: W/(m²·K)
	HeatFlow      float64 // pipe: W/m; sheet: W
	HeatLoss      float64 // total W
	BareHeatFlow  float64 // uninsulated baseline, same unit as HeatFlow
	Reduction     float64 // % versus the bare baseline

	CostPerHour float64
	CostPerYear float64

	CriticalDiameter bool
	Warnings         []string
}

// referenceTemp is the temperature at which the material conductivity
// is evaluated: the arithmetic mean of medium and ambient.
func referenceTemp(ambient, medium float64) float64 {
	return (ambient + medium) / 2
}

func resolveLambda(cat material.Catalog, name string, override, tRef float64) (float64, error) {
	if override != 0 {
		if override < 0 {
			return 0, fmt.Errorf("%w: λ = %.4f W/(m·K)", ErrInvalidConductivity, override)
		}
		return override, nil
	}
	if cat == nil {
		cat = material.Default()
	}
	return cat.Lambda(name, tRef), nil
}

// SolvePipe computes heat loss, transmittance and loss reduction for
// an insulated pipe.
func SolvePipe(p PipeParams) (*Result, error) {
	if p.OuterDiameter <= 0 {
		return nil, fmt.Errorf("%w: pipe outer diameter %.4f m", ErrInvalidGeometry, p.OuterDiameter)
	}
	if p.Length <= 0 {
		return nil, fmt.Errorf("%w: pipe length %.4f m", ErrInvalidGeometry, p.Length)
	}

	tRef := referenceTemp(p.AmbientTemp, p.MediumTemp)
	lambda, err := resolveLambda(p.Catalog, p.Material, p.Conductivity, tRef)
	if err != nil {
		return nil, err
	}

	in := surface.Inputs{
		AmbientTemp:    p.AmbientTemp,
		SurfaceTemp:    p.MediumTemp,
		Emissivity:     p.Emissivity,
		Orientation:    p.Orientation,
		Direction:      p.Direction,
		Mode:           p.Mode,
		PipeDiameter:   p.OuterDiameter,
		OuterDiameter:  p.OuterDiameter + 2*p.Insulation,
		NoSafetyFactor: p.NoSafetyFactor,
	}
	h, err := surface.Estimate(in)
	if err != nil {
		return nil, err
	}

	net, err := PipeNetwork(p.OuterDiameter, p.WallThickness, p.Insulation, lambda, h)
	if err != nil {
		return nil, err
	}
	rTotal := net.Total()

	dt := math.Abs(p.MediumTemp - p.AmbientTemp)
	q := dt / rTotal

	// Bare baseline: the same estimator with zero insulation.
	bareIn := in
	bareIn.OuterDiameter = p.OuterDiameter
	hBare, err := surface.Estimate(bareIn)
	if err != nil {
		return nil, err
	}
	if p.SmallBoreCorrection && p.OuterDiameter < smallBoreRef {
		hBare *= math.Pow(smallBoreRef/p.OuterDiameter, smallBoreExponent)
	}
	bareNet, err := PipeNetwork(p.OuterDiameter, p.WallThickness, 0, lambda, hBare)
	if err != nil {
		return nil, err
	}
	rBare := bareNet.Total()
	qBare := dt / rBare

	res := &Result{
		SurfaceCoefficient: h,
		MeanLambda:         lambda,
		Network:            net,
		Transmittance:      1 / rTotal,
		HeatFlow:           q,
		HeatLoss:           q * p.Length,
		BareHeatFlow:       qBare,
	}
	if qBare > 0 {
		res.Reduction = (qBare - q) / qBare * 100
	}
	if p.Insulation > 0 && rTotal <= rBare {
		res.CriticalDiameter = true
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"insulated resistance %.4f m·K/W does not exceed the bare-pipe resistance %.4f m·K/W (critical-diameter regime); added insulation is not reducing the loss",
			rTotal, rBare))
	}
	if p.Tariff > 0 {
		res.CostPerHour = energy.CostPerHour(res.HeatLoss, p.Tariff)
		res.CostPerYear = energy.CostPerYear(res.HeatLoss, p.Tariff, p.OperatingHours)
	}
	return res, nil
}

// SolveSheet computes heat loss, transmittance and loss reduction for
// an insulated flat sheet.
func SolveSheet(p SheetParams) (*Result, error) {
	if p.Area <= 0 {
		return nil, fmt.Errorf("%w: exchange area %.4f m²", ErrInvalidGeometry, p.Area)
	}

	tRef := referenceTemp(p.AmbientTemp, p.MediumTemp)
	lambda, err := resolveLambda(p.Catalog, p.Material, p.Conductivity, tRef)
	if err != nil {
		return nil, err
	}

	in := surface.Inputs{
		AmbientTemp:    p.AmbientTemp,
		SurfaceTemp:    p.MediumTemp,
		Emissivity:     p.Emissivity,
		Orientation:    p.Orientation,
		Direction:      p.Direction,
		Mode:           p.Mode,
		NoSafetyFactor: p.NoSafetyFactor,
	}
	h, err := surface.Estimate(in)
	if err != nil {
		return nil, err
	}

	net, err := SheetNetwork(p.Thickness, p.Area, lambda, h)
	if err != nil {
		return nil, err
	}
	rTotal := net.Total()

	dt := math.Abs(p.MediumTemp - p.AmbientTemp)
	q := dt / rTotal

	bareNet, err := SheetNetwork(0, p.Area, lambda, h)
	if err != nil {
		return nil, err
	}
	rBare := bareNet.Total()
	qBare := dt / rBare

	res := &Result{
		SurfaceCoefficient: h,
		MeanLambda:         lambda,
		Network:            net,
		Transmittance:      1 / (rTotal * p.Area),
		HeatFlow:           q,
		HeatLoss:           q,
		BareHeatFlow:       qBare,
	}
	if qBare > 0 {
		res.Reduction = (qBare - q) / qBare * 100
	}
	if p.Tariff > 0 {
		res.CostPerHour = energy.CostPerHour(res.HeatLoss, p.Tariff)
		res.CostPerYear = energy.CostPerYear(res.HeatLoss, p.Tariff, p.OperatingHours)
	}
	return res, nil
}
