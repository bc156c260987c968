package material

import (
	"sort"
	"strings"
)

// DefaultLambda is the fallback conductivity in W/(m·K) used when a
// material is unknown or the requested temperature falls outside the
// tabulated breakpoints. Tables are never extrapolated.
const DefaultLambda = 0.036

// Breakpoint is one entry of a temperature→conductivity table.
type Breakpoint struct {
	Temperature float64 // °C
	Lambda      float64 // W/(m·K)
}

// Material describes an insulation product: its conductivity table,
// water-vapor diffusion resistance factor μ and service range.
type Material struct {
	Name            string
	Points          []Breakpoint
	VaporResistance float64 // μ (dimensionless), 0 when not published
	MinTemp         float64 // °C, lower service limit
	MaxTemp         float64 // °C, upper service limit
}

// Catalog maps a normalized material name to its specification. It is
// built once at startup and treated as read-only afterwards, so
// concurrent lookups need no locking.
type Catalog map[string]Material

// normalize folds user input onto catalog keys.
func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Default returns the built-in product catalog.
func Default() Catalog {
	materials := []Material{
		{
			Name: "ROKAFLEX ST",
			Points: []Breakpoint{
				{-20, 0.032},
				{0, 0.034},
				{20, 0.036},
				{40, 0.039},
			},
			VaporResistance: 10000,
			MinTemp:         -50,
			MaxTemp:         110,
		},
		{
			Name: "ROKAFLEX PLUS",
			Points: []Breakpoint{
				{-20, 0.031},
				{0, 0.033},
				{20, 0.035},
				{40, 0.038},
			},
			VaporResistance: 12000,
			MinTemp:         -50,
			MaxTemp:         110,
		},
		{
			Name: "K-FLEX ST",
			Points: []Breakpoint{
				{-20, 0.031},
				{0, 0.034},
				{20, 0.036},
				{40, 0.040},
			},
			VaporResistance: 10000,
			MinTemp:         -60,
			MaxTemp:         105,
		},
		{
			Name: "ARMAFLEX AF",
			Points: []Breakpoint{
				{-20, 0.031},
				{0, 0.033},
				{20, 0.035},
				{40, 0.037},
			},
			VaporResistance: 10000,
			MinTemp:         -50,
			MaxTemp:         110,
		},
		{
			Name: "MINERAL WOOL WM640",
			Points: []Breakpoint{
				{10, 0.037},
				{40, 0.042},
				{100, 0.052},
				{200, 0.071},
				{300, 0.095},
			},
			// Open-cell material, effectively vapor transparent.
			VaporResistance: 1,
			MinTemp:         0,
			MaxTemp:         640,
		},
		{
			Name: "PUR RIGID FOAM",
			Points: []Breakpoint{
				{-20, 0.024},
				{10, 0.026},
				{50, 0.029},
				{100, 0.034},
			},
			VaporResistance: 100,
			MinTemp:         -180,
			MaxTemp:         120,
		},
	}

	c := make(Catalog, len(materials))
	for _, m := range materials {
		c[normalize(m.Name)] = m
	}
	return c
}

// Get looks up a material by name.
func (c Catalog) Get(name string) (Material, bool) {
	m, ok := c[normalize(name)]
	return m, ok
}

// Names returns all catalog names in stable order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, m := range c {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// Lambda returns the conductivity of the named material at temperature
// t (°C) by piecewise-linear interpolation between the bracketing
// breakpoints. Unknown materials and temperatures outside every
// bracket (including just above the last breakpoint) return
// DefaultLambda. Lambda never fails and always returns a positive
// finite value.
func (c Catalog) Lambda(name string, t float64) float64 {
	m, ok := c.Get(name)
	if !ok {
		return DefaultLambda
	}
	return m.LambdaAt(t)
}

// LambdaAt interpolates the material's own table; see Catalog.Lambda.
func (m Material) LambdaAt(t float64) float64 {
	if len(m.Points) == 0 {
		return DefaultLambda
	}

	points := make([]Breakpoint, len(m.Points))
	copy(points, m.Points)
	sort.Slice(points, func(i, j int) bool {
		return points[i].Temperature < points[j].Temperature
	})

	for i := 0; i < len(points)-1; i++ {
		lo, hi := points[i], points[i+1]
		if t < lo.Temperature || t > hi.Temperature {
			continue
		}
		span := hi.Temperature - lo.Temperature
		if span == 0 {
			return lo.Lambda
		}
		return lo.Lambda + (hi.Lambda-lo.Lambda)*(t-lo.Temperature)/span
	}

	// Out of range in either direction.
	return DefaultLambda
}
