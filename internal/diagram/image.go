package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tkessler/goinsul/internal/thermal"
)

// LossCurveData holds everything ExportLossCurve draws: the sweep plus
// optional markers for the selected and nominal thicknesses.
type LossCurveData struct {
	Points []thermal.SweepPoint

	// SelectedMM marks the thickness the calculation used, 0 to omit.
	SelectedMM float64
	// NominalMM marks a recommended stocked thickness, 0 to omit.
	NominalMM float64

	Title string
}

// ExportLossCurve exports the heat-loss-vs-thickness curve to an image
// file. The format follows the file extension (png, svg, pdf).
func ExportLossCurve(data LossCurveData, filename string) error {
	if len(data.Points) == 0 {
		return fmt.Errorf("no sweep points to plot")
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Heat Loss vs. Insulation Thickness"
	}
	p.X.Label.Text = "Insulation thickness (mm)"
	p.Y.Label.Text = "Heat loss (W)"
	p.Add(plotter.NewGrid())

	curve := make(plotter.XYs, len(data.Points))
	var maxLoss float64
	for i, pt := range data.Points {
		curve[i] = plotter.XY{X: pt.Thickness, Y: pt.HeatLoss}
		if pt.HeatLoss > maxLoss {
			maxLoss = pt.HeatLoss
		}
	}

	lossLine, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	lossLine.LineStyle.Width = vg.Points(2)
	lossLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(lossLine)
	p.Legend.Add("heat loss", lossLine)

	addMarker := func(x float64, label string, c color.RGBA) error {
		if x <= 0 {
			return nil
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: x, Y: 0},
			{X: x, Y: maxLoss},
		})
		if err != nil {
			return err
		}
		line.LineStyle.Color = c
		line.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(line)
		p.Legend.Add(label, line)
		return nil
	}

	if err := addMarker(data.SelectedMM, "selected", color.RGBA{R: 255, G: 0, B: 0, A: 255}); err != nil {
		return err
	}
	if err := addMarker(data.NominalMM, "nominal", color.RGBA{R: 255, G: 165, B: 0, A: 255}); err != nil {
		return err
	}

	width := 6 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	return p.Save(width, height, filename)
}
