// Package condensation sizes insulation so the outer surface stays
// above the dew point of the ambient air.
package condensation

import (
	"errors"
	"fmt"
	"math"

	"github.com/tkessler/goinsul/internal/material"
	"github.com/tkessler/goinsul/internal/stock"
	"github.com/tkessler/goinsul/internal/surface"
	"github.com/tkessler/goinsul/internal/thermal"
)

// Margin is the required clearance of the surface temperature above
// the dew point, °C. A calibration constant: surfaces closer than this
// to the dew point sweat in practice.
const Margin = 0.4

// Search resolution and hard ceilings, metres.
const (
	pipeStep     = 0.0001 // 0.1 mm
	pipeCeiling  = 0.050
	sheetStep    = 0.001 // 1 mm
	sheetCeiling = 0.100
)

var (
	// ErrInvalidHumidity reports a dew point at or above the ambient
	// temperature, a physically inconsistent input.
	ErrInvalidHumidity = errors.New("invalid humidity")

	// ErrUnreachableTarget reports a dew point so close to ambient
	// that no surface can be held above it by the required margin.
	ErrUnreachableTarget = errors.New("unreachable surface temperature")
)

// DewPoint computes the Magnus-formula dew point (°C) of air at tAir
// °C and rh percent relative humidity.
func DewPoint(tAir, rh float64) (float64, error) {
	if rh <= 0 {
		return 0, fmt.Errorf("%w: relative humidity %.1f %% must be positive", ErrInvalidHumidity, rh)
	}
	gamma := math.Log(rh/100) + 17.62*tAir/(243.12+tAir)
	return 243.12 * gamma / (17.62 - gamma), nil
}

// PipeParams configures a condensation sizing for a cold pipe. All
// dimensions are metres, temperatures °C.
type PipeParams struct {
	OuterDiameter float64
	WallThickness float64

	AmbientTemp      float64
	MediumTemp       float64
	RelativeHumidity float64 // %
	Emissivity       float64
	Orientation      surface.Orientation
	Mode             surface.Mode

	Material     string
	Conductivity float64 // overrides the catalog lookup when positive
	Catalog      material.Catalog
}

// SheetParams configures a condensation sizing for a cold sheet.
type SheetParams struct {
	Area   float64 // m²; 0 sizes per square metre
	Height float64 // characteristic height, m

	AmbientTemp      float64
	MediumTemp       float64
	RelativeHumidity float64
	Emissivity       float64
	Orientation      surface.Orientation
	Mode             surface.Mode

	Material     string
	Conductivity float64
	Catalog      material.Catalog
}

// Result is a condensation sizing recommendation. When Exhausted is
// set, MinimumThickness is the search ceiling and is not guaranteed to
// keep the surface dry; callers are expected to flag it.
type Result struct {
	DewPoint          float64 // °C
	TargetSurfaceTemp float64 // dew point + Margin, °C
	SurfaceTemp       float64 // at MinimumThickness, °C
	MinimumThickness  float64 // mm
	NominalThickness  float64 // mm, stocked size
	Exhausted         bool
	Warnings          []string
}

// preflight validates the humidity inputs shared by both geometries
// and returns the dew point and target surface temperature.
func preflight(ambient, rh float64) (dew, target float64, err error) {
	dew, err = DewPoint(ambient, rh)
	if err != nil {
		return 0, 0, err
	}
	if dew >= ambient {
		return 0, 0, fmt.Errorf("%w: dew point %.2f °C is not below ambient %.2f °C",
			ErrInvalidHumidity, dew, ambient)
	}
	target = dew + Margin
	if target > ambient {
		return 0, 0, fmt.Errorf("%w: dew point %.2f °C + %.1f K margin exceeds ambient %.2f °C",
			ErrUnreachableTarget, dew, Margin, ambient)
	}
	return dew, target, nil
}

func resolveLambda(cat material.Catalog, name string, override, tRef float64) float64 {
	if override > 0 {
		return override
	}
	if cat == nil {
		cat = material.Default()
	}
	return cat.Lambda(name, tRef)
}

// SolvePipe finds the minimum insulation thickness that keeps the
// outer surface of a cold pipe at least Margin above the dew point,
// then rounds it to a stocked nominal size.
func SolvePipe(p PipeParams) (*Result, error) {
	if p.OuterDiameter <= 0 {
		return nil, fmt.Errorf("%w: pipe outer diameter %.4f m", thermal.ErrInvalidGeometry, p.OuterDiameter)
	}

	dew, target, err := preflight(p.AmbientTemp, p.RelativeHumidity)
	if err != nil {
		return nil, err
	}

	tRef := (p.AmbientTemp + p.MediumTemp) / 2
	lambda := resolveLambda(p.Catalog, p.Material, p.Conductivity, tRef)

	in := surface.Inputs{
		AmbientTemp:  p.AmbientTemp,
		SurfaceTemp:  p.MediumTemp,
		Emissivity:   p.Emissivity,
		Orientation:  p.Orientation,
		Direction:    surface.Outside,
		Mode:         p.Mode,
		PipeDiameter: p.OuterDiameter,
	}

	res := &Result{DewPoint: dew, TargetSurfaceTemp: target}

	steps := int(math.Round(pipeCeiling / pipeStep))
	for i := 1; i <= steps; i++ {
		t := float64(i) * pipeStep
		in.OuterDiameter = p.OuterDiameter + 2*t

		h, err := surface.Estimate(in)
		if err != nil {
			return nil, err
		}
		net, err := thermal.PipeNetwork(p.OuterDiameter, p.WallThickness, t, lambda, h)
		if err != nil {
			return nil, err
		}

		q := (p.MediumTemp - p.AmbientTemp) / net.Total()
		tSurf := p.MediumTemp - q*(net.Component(thermal.ComponentWall)+net.Component(thermal.ComponentInsulation))

		res.SurfaceTemp = tSurf
		if tSurf >= target {
			res.MinimumThickness = t * 1000
			break
		}
	}

	if res.MinimumThickness == 0 {
		// Ceiling reached: best-effort answer, not guaranteed dry.
		res.MinimumThickness = pipeCeiling * 1000
		res.Exhausted = true
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"no thickness up to %.0f mm holds the surface at %.2f °C (reached %.2f °C); result is not guaranteed condensation-safe",
			pipeCeiling*1000, target, res.SurfaceTemp))
	}

	res.NominalThickness = stock.Nominal(stock.Pipe, p.OuterDiameter*1000, res.MinimumThickness)
	return res, nil
}

// SolveSheet finds the minimum insulation thickness for a cold flat
// sheet; see SolvePipe.
func SolveSheet(p SheetParams) (*Result, error) {
	area := p.Area
	if area == 0 {
		area = 1
	}
	if area < 0 {
		return nil, fmt.Errorf("%w: exchange area %.4f m²", thermal.ErrInvalidGeometry, area)
	}

	dew, target, err := preflight(p.AmbientTemp, p.RelativeHumidity)
	if err != nil {
		return nil, err
	}

	tRef := (p.AmbientTemp + p.MediumTemp) / 2
	lambda := resolveLambda(p.Catalog, p.Material, p.Conductivity, tRef)

	in := surface.Inputs{
		AmbientTemp: p.AmbientTemp,
		SurfaceTemp: p.MediumTemp,
		Emissivity:  p.Emissivity,
		Orientation: p.Orientation,
		Direction:   surface.Outside,
		Mode:        p.Mode,
	}

	// Sheet h does not depend on the running thickness, so one
	// estimate serves the whole search.
	h, err := surface.Estimate(in)
	if err != nil {
		return nil, err
	}

	res := &Result{DewPoint: dew, TargetSurfaceTemp: target}

	steps := int(math.Round(sheetCeiling / sheetStep))
	for i := 1; i <= steps; i++ {
		t := float64(i) * sheetStep

		net, err := thermal.SheetNetwork(t, area, lambda, h)
		if err != nil {
			return nil, err
		}

		q := (p.MediumTemp - p.AmbientTemp) / net.Total()
		tSurf := p.MediumTemp - q*net.Component(thermal.ComponentInsulation)

		res.SurfaceTemp = tSurf
		if tSurf >= target {
			res.MinimumThickness = t * 1000
			break
		}
	}

	if res.MinimumThickness == 0 {
		res.MinimumThickness = sheetCeiling * 1000
		res.Exhausted = true
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"no thickness up to %.0f mm holds the surface at %.2f °C (reached %.2f °C); result is not guaranteed condensation-safe",
			sheetCeiling*1000, target, res.SurfaceTemp))
	}

	res.NominalThickness = stock.Nominal(stock.Sheet, 0, res.MinimumThickness)
	return res, nil
}
