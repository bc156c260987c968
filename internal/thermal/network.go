// Package thermal composes series thermal-resistance networks for
// cylindrical (pipe) and planar (sheet) geometry and solves them for
// heat flow, transmittance and energy cost.
package thermal

import (
	"errors"
	"fmt"
	"math"
)

// Resistance component names within a Network.
const (
	ComponentWall       = "wall"
	ComponentInsulation = "insulation"
	ComponentConvection = "convection"
)

// lambdaSteel is the fixed wall conductivity in W/(m·K). Carbon-steel
// pipe walls contribute almost nothing next to the insulation, so a
// single representative value is used.
const lambdaSteel = 50.0

var (
	// ErrInvalidGeometry reports a non-positive length, area or
	// diameter, or an inner diameter at or above the outer one.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidConductivity reports a non-positive λ supplied to the
	// solver.
	ErrInvalidConductivity = errors.New("invalid conductivity")

	// ErrInvalidCoefficient reports a non-positive surface coefficient.
	ErrInvalidCoefficient = errors.New("invalid surface coefficient")
)

// Resistance is one series component of a network. Pipe components are
// per unit length (m·K/W); sheet components are absolute (K/W).
type Resistance struct {
	Name  string
	Value float64
}

// Network is an ordered series of resistances: wall, insulation,
// convection. Every component is ≥ 0 and only the wall may be exactly
// zero (bare-tube and zero-wall cases also zero the insulation term).
type Network struct {
	Components []Resistance
}

// Total returns the series sum.
func (n Network) Total() float64 {
	var sum float64
	for _, r := range n.Components {
		sum += r.Value
	}
	return sum
}

// Component returns the named resistance, or 0 when absent.
func (n Network) Component(name string) float64 {
	for _, r := range n.Components {
		if r.Name == name {
			return r.Value
		}
	}
	return 0
}

// PipeNetwork builds the per-unit-length resistance chain of an
// insulated pipe: wall, insulation, outer-surface convection. All
// dimensions are metres; insulation may be zero for a bare baseline.
func PipeNetwork(outerDiameter, wallThickness, insulation, lambda, h float64) (Network, error) {
	if outerDiameter <= 0 {
		return Network{}, fmt.Errorf("%w: pipe outer diameter %.4f m", ErrInvalidGeometry, outerDiameter)
	}
	if wallThickness < 0 || insulation < 0 {
		return Network{}, fmt.Errorf("%w: negative wall or insulation thickness", ErrInvalidGeometry)
	}
	rOuter := outerDiameter / 2
	rInner := rOuter - wallThickness
	if rInner <= 0 {
		return Network{}, fmt.Errorf("%w: wall thickness %.4f m leaves no bore in a %.4f m pipe",
			ErrInvalidGeometry, wallThickness, outerDiameter)
	}
	if insulation > 0 && lambda <= 0 {
		return Network{}, fmt.Errorf("%w: λ = %.4f W/(m·K)", ErrInvalidConductivity, lambda)
	}
	if h <= 0 {
		return Network{}, fmt.Errorf("%w: h = %.4f W/(m²·K)", ErrInvalidCoefficient, h)
	}

	var rWall float64
	if wallThickness > 0 {
		rWall = math.Log(rOuter/rInner) / (2 * math.Pi * lambdaSteel)
	}

	rIns := rOuter + insulation
	var rInsulation float64
	if insulation > 0 {
		rInsulation = math.Log(rIns/rOuter) / (2 * math.Pi * lambda)
	}

	rConvection := 1 / (h * 2 * math.Pi * rIns)

	return Network{Components: []Resistance{
		{Name: ComponentWall, Value: rWall},
		{Name: ComponentInsulation, Value: rInsulation},
		{Name: ComponentConvection, Value: rConvection},
	}}, nil
}

// SheetNetwork builds the resistance chain of an insulated flat sheet:
// insulation conduction and surface convection, both area-based.
func SheetNetwork(thickness, area, lambda, h float64) (Network, error) {
	if area <= 0 {
		return Network{}, fmt.Errorf("%w: exchange area %.4f m²", ErrInvalidGeometry, area)
	}
	if thickness < 0 {
		return Network{}, fmt.Errorf("%w: negative insulation thickness", ErrInvalidGeometry)
	}
	if thickness > 0 && lambda <= 0 {
		return Network{}, fmt.Errorf("%w: λ = %.4f W/(m·K)", ErrInvalidConductivity, lambda)
	}
	if h <= 0 {
		return Network{}, fmt.Errorf("%w: h = %.4f W/(m²·K)", ErrInvalidCoefficient, h)
	}

	var rInsulation float64
	if thickness > 0 {
		rInsulation = thickness / (lambda * area)
	}
	rConvection := 1 / (h * area)

	return Network{Components: []Resistance{
		{Name: ComponentInsulation, Value: rInsulation},
		{Name: ComponentConvection, Value: rConvection},
	}}, nil
}
