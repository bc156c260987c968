package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/ini.v1"

	"github.com/tkessler/goinsul/internal/material"
	"github.com/tkessler/goinsul/internal/version"
)

var (
	flagVerbose bool
	flagConfig  string
)

// cfg holds defaults applied to flags the user did not set. An ini
// config file given via --config overrides the built-in values.
var cfg = struct {
	Material   string
	Mode       string
	Tariff     float64
	Emissivity float64
	Humidity   float64
}{
	Material:   "ROKAFLEX ST",
	Mode:       "standard",
	Tariff:     0.32,
	Emissivity: 0.93,
	Humidity:   60,
}

var rootCmd = &cobra.Command{
	Use:   "goinsul",
	Short: "Thermal Insulation Sizing Tool",
	Long: `goinsul - Go Insulation Sizing Engine

A CLI tool for sizing technical insulation on pipes and flat sheets.

This tool helps plant and HVAC engineers perform:
  - Surface heat-transfer coefficient estimation (four calibrations)
  - Heat-loss, transmittance and energy-cost calculation
  - Condensation control: minimum and stocked insulation thickness
  - Material catalog lookups with temperature-dependent conductivity

All temperatures are °C, diameters and thicknesses mm, lengths m.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if flagConfig != "" {
			return loadConfig(flagConfig)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goinsul v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Insulation Sizing Engine                             ║")
		fmt.Printf("  ║   %s ©  %s                                    ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for sizing technical insulation on pipes and sheets.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Surface coefficient h from four calibrated correlations")
		fmt.Println("    • Heat loss, transmittance and operating-cost figures")
		fmt.Println("    • Dew-point driven condensation thickness sizing")
		fmt.Println("    • Stocked nominal-size recommendation")
		fmt.Println()
		fmt.Println("  Use 'goinsul --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "ini file with default parameters")
}

func loadConfig(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	sec := file.Section("defaults")
	cfg.Material = sec.Key("material").MustString(cfg.Material)
	cfg.Mode = sec.Key("mode").MustString(cfg.Mode)
	cfg.Tariff = sec.Key("tariff").MustFloat64(cfg.Tariff)
	cfg.Emissivity = sec.Key("emissivity").MustFloat64(cfg.Emissivity)
	cfg.Humidity = file.Section("condensation").Key("humidity").MustFloat64(cfg.Humidity)

	logrus.Debugf("defaults loaded from %s: material=%q mode=%q tariff=%.3f",
		path, cfg.Material, cfg.Mode, cfg.Tariff)
	return nil
}

// loadCatalog builds the material catalog, merging a user YAML file
// when given.
func loadCatalog(path string) (material.Catalog, error) {
	cat := material.Default()
	if path != "" {
		if err := cat.MergeFile(path); err != nil {
			return nil, err
		}
		logrus.Debugf("merged material catalog from %s", path)
	}
	return cat, nil
}
