package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkessler/goinsul/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goinsul",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goinsul v%s\n", version.Version)
		fmt.Println("Thermal Insulation Sizing Tool")
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
