package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"lipidscan/internal/analysis"
	"lipidscan/internal/collection"
)

// SummaryTextName is the filename of the plain-text report.
const SummaryTextName = "Analysis_Summary.txt"

const rule = "============================================================"

// WriteText writes the plain-text analysis report: a header block, one
// stanza per day, and a manifest of generated files. All numbers are
// displayed rounded to two decimals; the CSVs keep full precision.
func WriteText(c *collection.Collection, results analysis.Results, path string) error {
	var b strings.Builder

	exp := c.Experiment
	days := c.Days()

	fmt.Fprintf(&b, "%s\n CELL CULTURE ANALYSIS SUMMARY\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Experiment: %s\n", exp.Name)
	fmt.Fprintf(&b, "Culture Type: %s\n", exp.Culture)
	fmt.Fprintf(&b, "Analysis Date: %s\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Days Analyzed: %d\n", len(days))
	fmt.Fprintf(&b, "Total Images: %d\n\n", c.TotalImages())

	fmt.Fprintf(&b, "%s\n RESULTS BY DAY\n%s\n\n", rule, rule)
	for _, s := range results {
		lo, hi := s.Interval()
		fmt.Fprintf(&b, "Day %v:\n", s.Day)
		fmt.Fprintf(&b, "  Images: %d\n", s.Count)
		fmt.Fprintf(&b, "  Average: %.2f%%\n", s.Mean)
		fmt.Fprintf(&b, "  Minimum: %.2f%%\n", s.Min)
		fmt.Fprintf(&b, "  Maximum: %.2f%%\n", s.Max)
		fmt.Fprintf(&b, "  Standard Deviation: %.2f%%\n", s.StdDev)
		fmt.Fprintf(&b, "  Error Margin (95%%): ±%.2f%%\n", s.ErrorMargin95)
		fmt.Fprintf(&b, "  Interval: [%.2f%%, %.2f%%]\n\n", lo, hi)
	}

	fmt.Fprintf(&b, "%s\n GENERATED FILES\n%s\n\n", rule, rule)
	b.WriteString("1. Graphs:\n")
	b.WriteString("   - Graph_Evolution.png: Temporal evolution\n")
	b.WriteString("   - Graph_Distribution.png: Distribution by day\n")
	b.WriteString("   - Graph_Summary.png: Statistical summary\n\n")
	b.WriteString("2. CSV Data:\n")
	b.WriteString("   - Detailed_Data.csv: Results per image\n")
	b.WriteString("   - Summary_By_Day.csv: Statistics by day\n\n")
	b.WriteString("3. Processed Images:\n")
	for _, d := range days {
		fmt.Fprintf(&b, "   - Day_%v/: Images from day %v\n", d, d)
	}

	fmt.Fprintf(&b, "\n%s\n END OF REPORT\n%s\n", rule, rule)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
