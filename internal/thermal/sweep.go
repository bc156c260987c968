package thermal

import "fmt"

// SweepPoint is one sample of a thickness sweep.
type SweepPoint struct {
	Thickness float64 // mm
	HeatLoss  float64 // total W
}

// SweepPipeThickness evaluates the pipe solver over a thickness range
// (metres) for charting. The supplied params' Insulation field is
// overridden at every step.
func SweepPipeThickness(p PipeParams, from, to, step float64) ([]SweepPoint, error) {
	if step <= 0 || to < from {
		return nil, fmt.Errorf("%w: sweep range %.4f..%.4f step %.4f", ErrInvalidGeometry, from, to, step)
	}

	var points []SweepPoint
	for t := from; t <= to+step/2; t += step {
		p.Insulation = t
		res, err := SolvePipe(p)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Thickness: t * 1000, HeatLoss: res.HeatLoss})
	}
	return points, nil
}

// SweepSheetThickness evaluates the sheet solver over a thickness
// range (metres) for charting.
func SweepSheetThickness(p SheetParams, from, to, step float64) ([]SweepPoint, error) {
	if step <= 0 || to < from {
		return nil, fmt.Errorf("%w: sweep range %.4f..%.4f step %.4f", ErrInvalidGeometry, from, to, step)
	}

	var points []SweepPoint
	for t := from; t <= to+step/2; t += step {
		p.Thickness = t
		res, err := SolveSheet(p)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Thickness: t * 1000, HeatLoss: res.HeatLoss})
	}
	return points, nil
}
