package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tkessler/goinsul/internal/diagram"
	"github.com/tkessler/goinsul/internal/surface"
)

var (
	hcoefAmbient      float64
	hcoefMedium       float64
	hcoefEmissivity   float64
	hcoefOrientation  string
	hcoefMode         string
	hcoefDiameter     float64
	hcoefInsulation   float64
	hcoefCondensation bool
	hcoefNoSafety     bool
)

var hcoefCmd = &cobra.Command{
	Use:   "hcoef",
	Short: "Estimate the surface heat-transfer coefficient h",
	Long: `Estimate the combined convective + radiative surface coefficient h
in W/(m²·K) with one of the four calibrated correlations.

Modes:
  standard        - simplified ISO estimate with 0.75 safety factor
  kflex           - manufacturer recalibration with diameter correction
  advanced-pipe   - refined pipe correlation
  advanced-sheet  - refined flat-sheet correlation

Examples:
  # Hot horizontal pipe, default standard mode
  goinsul hcoef --ambient 20 --medium 60 --diameter 48

  # Cold line sized for condensation control
  goinsul hcoef --ambient 25 --medium -5 --diameter 22 --insulation 13 \
    --mode kflex --condensation`,
	RunE: runHcoef,
}

func init() {
	rootCmd.AddCommand(hcoefCmd)

	hcoefCmd.Flags().Float64VarP(&hcoefAmbient, "ambient", "a", 20, "Ambient air temperature (°C)")
	hcoefCmd.Flags().Float64VarP(&hcoefMedium, "medium", "m", 0, "Medium/surface temperature (°C) [required]")
	hcoefCmd.Flags().Float64VarP(&hcoefEmissivity, "emissivity", "e", cfg.Emissivity, "Surface emissivity (0..1)")
	hcoefCmd.Flags().StringVarP(&hcoefOrientation, "orientation", "r", "horizontal", "Surface orientation (horizontal, vertical)")
	hcoefCmd.Flags().StringVar(&hcoefMode, "mode", cfg.Mode, "Estimator mode (standard, kflex, advanced-pipe, advanced-sheet)")
	hcoefCmd.Flags().Float64VarP(&hcoefDiameter, "diameter", "d", 0, "Bare pipe outer diameter (mm), 0 for sheets")
	hcoefCmd.Flags().Float64VarP(&hcoefInsulation, "insulation", "t", 0, "Insulation thickness (mm)")
	hcoefCmd.Flags().BoolVar(&hcoefCondensation, "condensation", false, "Use the condensation (outside) calculation direction")
	hcoefCmd.Flags().BoolVar(&hcoefNoSafety, "no-safety", false, "Disable the 0.75 safety factor (standard mode)")

	hcoefCmd.MarkFlagRequired("medium")
}

func runHcoef(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("emissivity") {
		hcoefEmissivity = cfg.Emissivity
	}
	if !cmd.Flags().Changed("mode") {
		hcoefMode = cfg.Mode
	}

	mode, err := surface.ParseMode(hcoefMode)
	if err != nil {
		return err
	}
	orientation, err := surface.ParseOrientation(hcoefOrientation)
	if err != nil {
		return err
	}

	direction := surface.Inside
	if hcoefCondensation {
		direction = surface.Outside
	}

	in := surface.Inputs{
		AmbientTemp:    hcoefAmbient,
		SurfaceTemp:    hcoefMedium,
		Emissivity:     hcoefEmissivity,
		Orientation:    orientation,
		Direction:      direction,
		Mode:           mode,
		PipeDiameter:   hcoefDiameter / 1000,
		OuterDiameter:  (hcoefDiameter + 2*hcoefInsulation) / 1000,
		NoSafetyFactor: hcoefNoSafety,
	}

	h, err := surface.Estimate(in)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SURFACE HEAT-TRANSFER COEFFICIENT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ambient temperature:\t%.1f °C\n", hcoefAmbient)
	fmt.Fprintf(w, "  Medium temperature:\t%.1f °C\n", hcoefMedium)
	fmt.Fprintf(w, "  Emissivity:\t%.2f\n", hcoefEmissivity)
	fmt.Fprintf(w, "  Orientation:\t%s\n", orientation)
	fmt.Fprintf(w, "  Mode:\t%s\n", mode)
	if hcoefDiameter > 0 {
		fmt.Fprintf(w, "  Pipe OD:\t%.1f mm\n", hcoefDiameter)
		fmt.Fprintf(w, "  Insulation:\t%.1f mm\n", hcoefInsulation)
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("SURFACE COEFFICIENT", []string{
		fmt.Sprintf("h = %.3f W/(m²·K)", h),
	}))
	fmt.Println()

	return nil
}
