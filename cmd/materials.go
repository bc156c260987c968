package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var materialsFile string

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the insulation material catalog",
	Long: `List the built-in insulation materials with their
temperature-dependent conductivity tables, vapor diffusion resistance
and service temperature range.

A YAML file given via --materials-file is merged into the listing the
same way the calculation commands merge it.`,
	RunE: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.Flags().StringVar(&materialsFile, "materials-file", "", "YAML file with additional materials")
}

func runMaterials(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(materialsFile)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MATERIAL CATALOG")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material\tλ(T) W/(m·K)\tμ\tRange °C\n")
	fmt.Fprintf(w, "  ────────\t────────────\t─\t────────\n")

	for _, name := range catalog.Names() {
		m, _ := catalog.Get(name)

		table := ""
		for i, p := range m.Points {
			if i > 0 {
				table += "  "
			}
			table += fmt.Sprintf("%.3f@%.0f", p.Lambda, p.Temperature)
		}

		mu := "-"
		if m.VaporResistance > 0 {
			mu = fmt.Sprintf("%.0f", m.VaporResistance)
		}

		fmt.Fprintf(w, "  %s\t%s\t%s\t%.0f..%.0f\n", m.Name, table, mu, m.MinTemp, m.MaxTemp)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Unknown materials fall back to λ = 0.036 W/(m·K).")
	fmt.Println()

	return nil
}
