// Package report writes the tabular and textual exports of a run.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"lipidscan/internal/analysis"
	"lipidscan/internal/collection"
)

// Output filenames inside the experiment results root.
const (
	DetailedCSVName = "Detailed_Data.csv"
	SummaryCSVName  = "Summary_By_Day.csv"
)

// num formats a float at full precision so CSV values round-trip
// exactly; display rounding is confined to the text report.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteDetailed writes one CSV row per successfully processed image.
// Images that failed to load have no artifacts and are omitted, matching
// the per-day summary which still counts them as zero.
func WriteDetailed(c *collection.Collection, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"Experiment", "Culture", "Day", "Image_Number", "File_Name",
		"Lipid_Percentage", "Original_Path", "Fused_Path", "Comparison_Path",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	exp := c.Experiment
	for _, rec := range c.Records() {
		for i, img := range rec.Records {
			if img.FusedPath == "" {
				continue
			}
			row := []string{
				exp.Name,
				exp.Culture,
				num(rec.Day),
				strconv.Itoa(i + 1),
				filepath.Base(img.OriginalPath),
				num(img.Percentage),
				img.OriginalPath,
				img.FusedPath,
				img.ComparisonPath,
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
	}

	w.Flush()
	return w.Error()
}

// WriteSummary writes one CSV row per day with the full statistics tuple.
func WriteSummary(results analysis.Results, path string) error {
	if results.Empty() {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"Day", "Num_Images", "Average_Lipids", "Standard_Deviation",
		"Standard_Error", "Error_Margin_95%", "Minimum", "Maximum",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	for _, s := range results {
		row := []string{
			num(s.Day),
			strconv.Itoa(s.Count),
			num(s.Mean),
			num(s.StdDev),
			num(s.StandardError),
			num(s.ErrorMargin95),
			num(s.Min),
			num(s.Max),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	w.Flush()
	return w.Error()
}
