// Command lipidscan analyzes lipid content in cell culture microscopy
// images across a day-indexed time series.
package main

import (
	"fmt"
	"os"

	"lipidscan/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lipidscan",
	Short: "Lipid content analysis for cell culture time series",
	Long: `lipidscan segments yellow triglyceride staining in microscopy
images, aggregates per-day statistics, and writes graphs, CSV exports,
and a text report for a whole experiment in one batch run.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lipidscan %s (commit %s, built %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
	},
}

func main() {
	rootCmd.AddCommand(analyzeCmd, segmentCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
