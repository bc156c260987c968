package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tkessler/goinsul/internal/diagram"
	"github.com/tkessler/goinsul/internal/surface"
	"github.com/tkessler/goinsul/internal/thermal"
)

var (
	lossGeometry  string
	lossDiameter  float64
	lossWall      float64
	lossThickness float64
	lossLength    float64
	lossArea      float64
	lossHeight    float64

	lossAmbient     float64
	lossMedium      float64
	lossEmissivity  float64
	lossOrientation string
	lossMode        string
	lossMaterial    string
	lossMaterials   string
	lossTariff      float64
	lossHours       float64
	lossNoSafety    bool
	lossSmallBore   bool

	lossShowDiagram bool
	lossExportFile  string
)

var heatlossCmd = &cobra.Command{
	Use:   "heatloss",
	Short: "Compute heat loss, transmittance and energy cost",
	Long: `Compute the heat loss of an insulated pipe or flat sheet, the
thermal transmittance, the reduction versus the bare surface and the
resulting energy cost.

Examples:
  # 10 m of DN40 (48.3 mm) pipe at 90 °C with 32 mm insulation
  goinsul heatloss --geometry pipe --diameter 48 --thickness 32 \
    --length 10 --medium 90 --ambient 20

  # 4 m² duct sheet with the thickness sweep plotted in the terminal
  goinsul heatloss --geometry sheet --area 4 --thickness 19 \
    --medium 60 --ambient 20 --mode advanced-sheet --diagram`,
	RunE: runHeatloss,
}

func init() {
	rootCmd.AddCommand(heatlossCmd)

	heatlossCmd.Flags().StringVarP(&lossGeometry, "geometry", "g", "pipe", "Geometry kind (pipe, sheet)")
	heatlossCmd.Flags().Float64VarP(&lossDiameter, "diameter", "d", 0, "Pipe outer diameter (mm)")
	heatlossCmd.Flags().Float64Var(&lossWall, "wall", 0, "Pipe wall thickness (mm)")
	heatlossCmd.Flags().Float64VarP(&lossThickness, "thickness", "t", 0, "Insulation thickness (mm) [required]")
	heatlossCmd.Flags().Float64VarP(&lossLength, "length", "l", 1, "Pipe length (m)")
	heatlossCmd.Flags().Float64Var(&lossArea, "area", 1, "Sheet exchange area (m²)")
	heatlossCmd.Flags().Float64Var(&lossHeight, "height", 1, "Sheet characteristic height (m)")

	heatlossCmd.Flags().Float64VarP(&lossAmbient, "ambient", "a", 20, "Ambient air temperature (°C)")
	heatlossCmd.Flags().Float64VarP(&lossMedium, "medium", "m", 0, "Medium temperature (°C) [required]")
	heatlossCmd.Flags().Float64VarP(&lossEmissivity, "emissivity", "e", 0.93, "Surface emissivity (0..1)")
	heatlossCmd.Flags().StringVarP(&lossOrientation, "orientation", "r", "horizontal", "Surface orientation (horizontal, vertical)")
	heatlossCmd.Flags().StringVar(&lossMode, "mode", "standard", "Estimator mode (standard, kflex, advanced-pipe, advanced-sheet)")
	heatlossCmd.Flags().StringVar(&lossMaterial, "material", "", "Insulation material (see 'goinsul materials')")
	heatlossCmd.Flags().StringVar(&lossMaterials, "materials-file", "", "YAML file with additional materials")
	heatlossCmd.Flags().Float64Var(&lossTariff, "tariff", 0, "Energy tariff (currency per kWh)")
	heatlossCmd.Flags().Float64Var(&lossHours, "hours", 0, "Operating hours per year (0 = continuous)")
	heatlossCmd.Flags().BoolVar(&lossNoSafety, "no-safety", false, "Disable the 0.75 safety factor (standard mode)")
	heatlossCmd.Flags().BoolVar(&lossSmallBore, "small-bore", false, "Boost the bare baseline on small diameters")

	heatlossCmd.Flags().BoolVar(&lossShowDiagram, "diagram", false, "Show ASCII loss-vs-thickness diagram")
	heatlossCmd.Flags().StringVarP(&lossExportFile, "output", "o", "", "Export loss curve to file (png, svg, pdf)")

	heatlossCmd.MarkFlagRequired("medium")
	heatlossCmd.MarkFlagRequired("thickness")
}

func runHeatloss(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("emissivity") {
		lossEmissivity = cfg.Emissivity
	}
	if !cmd.Flags().Changed("mode") {
		lossMode = cfg.Mode
	}
	if !cmd.Flags().Changed("material") {
		lossMaterial = cfg.Material
	}
	if !cmd.Flags().Changed("tariff") {
		lossTariff = cfg.Tariff
	}

	mode, err := surface.ParseMode(lossMode)
	if err != nil {
		return err
	}
	orientation, err := surface.ParseOrientation(lossOrientation)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(lossMaterials)
	if err != nil {
		return err
	}

	var (
		result *thermal.Result
		points []thermal.SweepPoint
	)

	switch lossGeometry {
	case "pipe":
		params := thermal.PipeParams{
			OuterDiameter:       lossDiameter / 1000,
			WallThickness:       lossWall / 1000,
			Insulation:          lossThickness / 1000,
			Length:              lossLength,
			AmbientTemp:         lossAmbient,
			MediumTemp:          lossMedium,
			Emissivity:          lossEmissivity,
			Orientation:         orientation,
			Mode:                mode,
			Material:            lossMaterial,
			Catalog:             catalog,
			Tariff:              lossTariff,
			OperatingHours:      lossHours,
			NoSafetyFactor:      lossNoSafety,
			SmallBoreCorrection: lossSmallBore,
		}
		result, err = thermal.SolvePipe(params)
		if err != nil {
			return err
		}
		if lossShowDiagram || lossExportFile != "" {
			points, err = thermal.SweepPipeThickness(params, 0.001, 2*params.Insulation+0.01, 0.001)
			if err != nil {
				return err
			}
		}
	case "sheet":
		params := thermal.SheetParams{
			Thickness:      lossThickness / 1000,
			Area:           lossArea,
			Height:         lossHeight,
			AmbientTemp:    lossAmbient,
			MediumTemp:     lossMedium,
			Emissivity:     lossEmissivity,
			Orientation:    orientation,
			Mode:           mode,
			Material:       lossMaterial,
			Catalog:        catalog,
			Tariff:         lossTariff,
			OperatingHours: lossHours,
			NoSafetyFactor: lossNoSafety,
		}
		result, err = thermal.SolveSheet(params)
		if err != nil {
			return err
		}
		if lossShowDiagram || lossExportFile != "" {
			points, err = thermal.SweepSheetThickness(params, 0.001, 2*params.Thickness+0.01, 0.001)
			if err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown geometry %q (want pipe or sheet)", lossGeometry)
	}

	for _, warning := range result.Warnings {
		logrus.Warn(warning)
	}

	printHeatlossResult(result)

	if lossShowDiagram {
		fmt.Println(diagram.DrawLossCurve(points))
	}

	if lossExportFile != "" {
		err := diagram.ExportLossCurve(diagram.LossCurveData{
			Points:     points,
			SelectedMM: lossThickness,
		}, lossExportFile)
		if err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Loss curve exported to: %s\n", lossExportFile)
	}

	return nil
}

func printHeatlossResult(result *thermal.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     INSULATION HEAT-LOSS CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Geometry:\t%s\n", lossGeometry)
	if lossGeometry == "pipe" {
		fmt.Fprintf(w, "  Pipe OD:\t%.1f mm\n", lossDiameter)
		fmt.Fprintf(w, "  Wall thickness:\t%.1f mm\n", lossWall)
		fmt.Fprintf(w, "  Length:\t%.2f m\n", lossLength)
	} else {
		fmt.Fprintf(w, "  Exchange area:\t%.2f m²\n", lossArea)
	}
	fmt.Fprintf(w, "  Insulation:\t%.1f mm %s\n", lossThickness, lossMaterial)
	fmt.Fprintf(w, "  Medium / ambient:\t%.1f / %.1f °C\n", lossMedium, lossAmbient)
	fmt.Fprintf(w, "  Estimator mode:\t%s\n", lossMode)
	w.Flush()
	fmt.Println()

	fmt.Println("RESISTANCE NETWORK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range result.Network.Components {
		fmt.Fprintf(w, "  R %s:\t%.4f\n", r.Name, r.Value)
	}
	fmt.Fprintf(w, "  R total:\t%.4f\n", result.Network.Total())
	fmt.Fprintf(w, "  λ at mean temperature:\t%.4f W/(m·K)\n", result.MeanLambda)
	fmt.Fprintf(w, "  Surface coefficient h:\t%.3f W/(m²·K)\n", result.SurfaceCoefficient)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	lines := []string{
		fmt.Sprintf("Heat loss       = %.1f W", result.HeatLoss),
		fmt.Sprintf("Transmittance   = %.4f", result.Transmittance),
		fmt.Sprintf("Reduction       = %.1f %% vs. bare", result.Reduction),
	}
	if result.CostPerHour > 0 {
		lines = append(lines,
			fmt.Sprintf("Cost            = %.4f /h", result.CostPerHour),
			fmt.Sprintf("                = %.0f /yr", result.CostPerYear))
	}
	fmt.Print(diagram.DrawSummaryBox("HEAT LOSS", lines))

	if result.CriticalDiameter {
		fmt.Println()
		fmt.Println("  NOTE: critical-diameter regime, this insulation does not")
		fmt.Println("  reduce the loss. Increase the thickness or the pipe size.")
	}
	fmt.Println()
}
