package main

import (
	"fmt"

	"lipidscan/internal/collection"
	"lipidscan/internal/experiment"
	"lipidscan/internal/pipeline"
	"lipidscan/internal/segment"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	manifestPath string
	outputDir    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full analysis from a YAML manifest",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&manifestPath, "manifest", "f", "", "Path to the experiment manifest (YAML)")
	analyzeCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to create the results folder in")
	analyzeCmd.MarkFlagRequired("manifest")
}

// cliReporter prints colored per-item progress, one line per image.
type cliReporter struct{}

func (cliReporter) StartDay(day float64, imageCount int) {
	color.New(color.FgCyan, color.Bold).Printf("Day %s: %d images\n",
		pipeline.DayLabel(day), imageCount)
}

func (cliReporter) ImageDone(index, total int, name string, percentage float64) {
	fmt.Printf("  [%d/%d] %s: ", index, total, name)
	color.Green("%.2f%% lipids", percentage)
}

func (cliReporter) ImageFailed(index, total int, name string) {
	fmt.Printf("  [%d/%d] %s: ", index, total, name)
	color.Red("failed to load, recorded as 0")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	m, err := experiment.Load(manifestPath)
	if err != nil {
		return err
	}

	c := collection.New(collection.Experiment{Name: m.Name, Culture: m.Culture})
	for _, entry := range m.Days {
		paths, err := entry.Resolve()
		if err != nil {
			return err
		}
		if !c.RegisterDay(entry.Day) {
			return fmt.Errorf("day %v is registered twice", entry.Day)
		}
		if err := c.AddImages(entry.Day, paths); err != nil {
			return err
		}
	}

	fmt.Printf("Experiment: %s (%s)\n", m.Name, m.Culture)
	fmt.Printf("Processing %d images across %d days...\n\n", c.TotalImages(), len(c.Days()))

	runner := pipeline.New(segment.DefaultParams(), cliReporter{})
	summary, err := runner.Run(c, outputDir)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func printSummary(s *pipeline.RunSummary) {
	bold := color.New(color.Bold)

	fmt.Println()
	bold.Println("Analysis completed")
	fmt.Printf("  Days: %d\n", s.Days)
	fmt.Printf("  Images processed: %d/%d", s.Processed, s.TotalImages)
	if s.Failed > 0 {
		color.Red(" (%d failed)", s.Failed)
	}
	fmt.Println()

	if s.HasTrend {
		direction := "increase"
		change := s.TrendChange
		if change < 0 {
			direction = "decrease"
			change = -change
		}
		fmt.Printf("  Trend: %s of %.1f%% in lipids\n", direction, change)
	}

	fmt.Printf("  Results in: %s\n", s.ResultsDir)
	for _, g := range s.Generated {
		fmt.Printf("    %s\n", g)
	}
}
