// Package stock maps computed insulation thicknesses onto commercially
// stocked nominal sizes.
package stock

import (
	"math"
	"sort"
)

// Kind discriminates the geometry catalogs.
type Kind int

const (
	Pipe Kind = iota
	Sheet
)

// SizingMargin is applied to a computed minimum thickness before
// rounding up to a stocked size.
const SizingMargin = 1.2

// DefaultLadder is the generic size ladder (mm) used when a geometry
// has no stock table entry.
var DefaultLadder = []float64{6, 9, 13, 19, 25, 32}

// pipeLadders lists stocked tube-insulation thicknesses (mm) by pipe
// outer diameter (mm). The mapping is sparse; diameters without an
// entry fall back to DefaultLadder.
var pipeLadders = map[int][]float64{
	12:  {6, 9, 13, 19, 25},
	15:  {6, 9, 13, 19, 25, 32},
	18:  {9, 13, 19, 25, 32},
	22:  {9, 13, 19, 25, 32},
	28:  {9, 13, 19, 25, 32, 40},
	35:  {9, 13, 19, 25, 32, 40},
	42:  {13, 19, 25, 32, 40, 50},
	48:  {13, 19, 25, 32, 40, 50},
	54:  {13, 19, 25, 32, 40, 50},
	60:  {13, 19, 25, 32, 40, 50},
	76:  {19, 25, 32, 40, 50},
	89:  {19, 25, 32, 40, 50, 60},
	108: {19, 25, 32, 40, 50, 60},
	133: {25, 32, 40, 50, 60},
	159: {25, 32, 40, 50, 60},
}

// sheetLadder lists stocked flat-sheet thicknesses (mm).
var sheetLadder = []float64{10, 13, 19, 25, 32, 40, 50}

// Ladder returns the applicable size ladder, ascending. Pipe ladders
// are keyed by outer diameter in mm; unknown diameters and empty
// tables use DefaultLadder.
func Ladder(kind Kind, outerDiameterMM float64) []float64 {
	var ladder []float64
	switch kind {
	case Pipe:
		ladder = pipeLadders[int(math.Round(outerDiameterMM))]
	case Sheet:
		ladder = sheetLadder
	}
	if len(ladder) == 0 {
		ladder = DefaultLadder
	}

	sorted := make([]float64, len(ladder))
	copy(sorted, ladder)
	sort.Float64s(sorted)
	return sorted
}

// Nominal returns the smallest stocked size ≥ SizingMargin × the
// computed minimum thickness (mm). When even the largest stocked size
// falls short, the largest is returned.
func Nominal(kind Kind, outerDiameterMM, minimumMM float64) float64 {
	target := minimumMM * SizingMargin
	ladder := Ladder(kind, outerDiameterMM)
	for _, size := range ladder {
		if size >= target {
			return size
		}
	}
	return ladder[len(ladder)-1]
}
