package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tkessler/goinsul/internal/condensation"
	"github.com/tkessler/goinsul/internal/diagram"
	"github.com/tkessler/goinsul/internal/surface"
)

var (
	condGeometry string
	condDiameter float64
	condWall     float64
	condArea     float64
	condHeight   float64

	condAmbient     float64
	condMedium      float64
	condHumidity    float64
	condEmissivity  float64
	condOrientation string
	condMode        string
	condMaterial    string
	condMaterials   string
)

var condensationCmd = &cobra.Command{
	Use:   "condensation",
	Short: "Size insulation against surface condensation",
	Long: `Find the minimum insulation thickness that keeps the outer surface
above the dew point of the ambient air, and the smallest stocked
nominal thickness covering it (including a 20 % sizing margin).

The surface must clear the dew point by 0.4 K. If even the search
ceiling cannot achieve that, the ceiling is reported and flagged as
not guaranteed condensation-safe.

Examples:
  # Chilled-water line, 22 mm copper, 6 °C water in a 26 °C plant room
  goinsul condensation --diameter 22 --medium 6 --ambient 26 --humidity 70

  # Cold duct sheet
  goinsul condensation --geometry sheet --medium 8 --ambient 24 --humidity 65`,
	RunE: runCondensation,
}

func init() {
	rootCmd.AddCommand(condensationCmd)

	condensationCmd.Flags().StringVarP(&condGeometry, "geometry", "g", "pipe", "Geometry kind (pipe, sheet)")
	condensationCmd.Flags().Float64VarP(&condDiameter, "diameter", "d", 0, "Pipe outer diameter (mm)")
	condensationCmd.Flags().Float64Var(&condWall, "wall", 0, "Pipe wall thickness (mm)")
	condensationCmd.Flags().Float64Var(&condArea, "area", 1, "Sheet exchange area (m²)")
	condensationCmd.Flags().Float64Var(&condHeight, "height", 1, "Sheet characteristic height (m)")

	condensationCmd.Flags().Float64VarP(&condAmbient, "ambient", "a", 20, "Ambient air temperature (°C)")
	condensationCmd.Flags().Float64VarP(&condMedium, "medium", "m", 0, "Medium temperature (°C) [required]")
	condensationCmd.Flags().Float64VarP(&condHumidity, "humidity", "u", 60, "Relative humidity (%)")
	condensationCmd.Flags().Float64VarP(&condEmissivity, "emissivity", "e", 0.93, "Surface emissivity (0..1)")
	condensationCmd.Flags().StringVarP(&condOrientation, "orientation", "r", "horizontal", "Surface orientation (horizontal, vertical)")
	condensationCmd.Flags().StringVar(&condMode, "mode", "kflex", "Estimator mode (standard, kflex, advanced-pipe, advanced-sheet)")
	condensationCmd.Flags().StringVar(&condMaterial, "material", "", "Insulation material (see 'goinsul materials')")
	condensationCmd.Flags().StringVar(&condMaterials, "materials-file", "", "YAML file with additional materials")

	condensationCmd.MarkFlagRequired("medium")
}

func runCondensation(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("emissivity") {
		condEmissivity = cfg.Emissivity
	}
	if !cmd.Flags().Changed("material") {
		condMaterial = cfg.Material
	}
	if !cmd.Flags().Changed("humidity") {
		condHumidity = cfg.Humidity
	}

	mode, err := surface.ParseMode(condMode)
	if err != nil {
		return err
	}
	orientation, err := surface.ParseOrientation(condOrientation)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(condMaterials)
	if err != nil {
		return err
	}

	var result *condensation.Result

	switch condGeometry {
	case "pipe":
		result, err = condensation.SolvePipe(condensation.PipeParams{
			OuterDiameter:    condDiameter / 1000,
			WallThickness:    condWall / 1000,
			AmbientTemp:      condAmbient,
			MediumTemp:       condMedium,
			RelativeHumidity: condHumidity,
			Emissivity:       condEmissivity,
			Orientation:      orientation,
			Mode:             mode,
			Material:         condMaterial,
			Catalog:          catalog,
		})
	case "sheet":
		result, err = condensation.SolveSheet(condensation.SheetParams{
			Area:             condArea,
			Height:           condHeight,
			AmbientTemp:      condAmbient,
			MediumTemp:       condMedium,
			RelativeHumidity: condHumidity,
			Emissivity:       condEmissivity,
			Orientation:      orientation,
			Mode:             mode,
			Material:         condMaterial,
			Catalog:          catalog,
		})
	default:
		return fmt.Errorf("unknown geometry %q (want pipe or sheet)", condGeometry)
	}
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		logrus.Warn(warning)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CONDENSATION CONTROL SIZING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Geometry:\t%s\n", condGeometry)
	if condGeometry == "pipe" {
		fmt.Fprintf(w, "  Pipe OD:\t%.1f mm\n", condDiameter)
	} else {
		fmt.Fprintf(w, "  Exchange area:\t%.2f m²\n", condArea)
	}
	fmt.Fprintf(w, "  Medium / ambient:\t%.1f / %.1f °C\n", condMedium, condAmbient)
	fmt.Fprintf(w, "  Relative humidity:\t%.0f %%\n", condHumidity)
	fmt.Fprintf(w, "  Material:\t%s\n", condMaterial)
	fmt.Fprintf(w, "  Estimator mode:\t%s\n", condMode)
	w.Flush()
	fmt.Println()

	fmt.Println("DEW POINT ANALYSIS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dew point:\t%.2f °C\n", result.DewPoint)
	fmt.Fprintf(w, "  Target surface temperature:\t%.2f °C\n", result.TargetSurfaceTemp)
	fmt.Fprintf(w, "  Surface at minimum thickness:\t%.2f °C\n", result.SurfaceTemp)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("CONDENSATION SIZING", []string{
		fmt.Sprintf("Minimum thickness = %.1f mm", result.MinimumThickness),
		fmt.Sprintf("Nominal thickness = %.0f mm (stocked)", result.NominalThickness),
	}))
	fmt.Println()

	if result.Exhausted {
		fmt.Println("  WARNING: search ceiling reached; this thickness is NOT")
		fmt.Println("  guaranteed to prevent condensation. Reconsider the layout.")
		fmt.Println()
	}

	return nil
}
