// Package pipeline orchestrates a full analysis run: per-image
// segmentation and visualization, per-day aggregation, and all exports.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lipidscan/internal/analysis"
	"lipidscan/internal/collection"
	"lipidscan/internal/plot"
	"lipidscan/internal/report"
	"lipidscan/internal/segment"
	"lipidscan/internal/visual"

	"gocv.io/x/gocv"
)

// Graph filenames inside the experiment results root.
const (
	EvolutionGraphName    = "Graph_Evolution.png"
	DistributionGraphName = "Graph_Distribution.png"
	SummaryGraphName      = "Graph_Summary.png"
)

// Reporter receives per-item progress during a run. Implementations
// must not fail; the CLI supplies a colored printer, tests a silent one.
type Reporter interface {
	StartDay(day float64, imageCount int)
	ImageDone(index, total int, name string, percentage float64)
	ImageFailed(index, total int, name string)
}

// NopReporter discards all progress notifications.
type NopReporter struct{}

func (NopReporter) StartDay(float64, int)               {}
func (NopReporter) ImageDone(int, int, string, float64) {}
func (NopReporter) ImageFailed(int, int, string)        {}

// RunSummary describes the outcome of a completed run.
type RunSummary struct {
	ResultsDir  string
	Days        int
	TotalImages int
	Processed   int
	Failed      int
	TrendChange float64
	HasTrend    bool
	Generated   []string
}

// Runner executes the sequential batch pipeline. Images are processed
// one at a time in registration order within each day, days in
// ascending order.
type Runner struct {
	Params   segment.Params
	Reporter Reporter
}

// New returns a Runner with the given segmentation parameters.
func New(params segment.Params, reporter Reporter) *Runner {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Runner{Params: params, Reporter: reporter}
}

// ResultsRoot returns the results directory name for an experiment,
// with spaces in the name replaced by underscores.
func ResultsRoot(experimentName string) string {
	return "Results_" + strings.ReplaceAll(experimentName, " ", "_")
}

// DayLabel formats a day identifier for folder names and labels.
// Integral days print without a decimal point (0, 1), fractional days
// keep theirs (2.5).
func DayLabel(day float64) string {
	return strconv.FormatFloat(day, 'g', -1, 64)
}

// Run processes every registered image, aggregates the results, and
// writes all exports under outDir. A results-root or day-folder
// creation failure, or an artifact write failure, aborts the run;
// an image that fails to load is recorded as zero and skipped.
func (r *Runner) Run(c *collection.Collection, outDir string) (*RunSummary, error) {
	root := filepath.Join(outDir, ResultsRoot(c.Experiment.Name))
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create results root %s: %w", root, err)
	}

	summary := &RunSummary{
		ResultsDir:  root,
		Days:        len(c.Days()),
		TotalImages: c.TotalImages(),
	}

	for _, rec := range c.Records() {
		dayDir := filepath.Join(root, "Day_"+DayLabel(rec.Day))
		if err := os.MkdirAll(dayDir, 0755); err != nil {
			return nil, fmt.Errorf("create day folder %s: %w", dayDir, err)
		}

		r.Reporter.StartDay(rec.Day, len(rec.Images))

		for i, imgPath := range rec.Images {
			idx := i + 1
			if err := r.processImage(c, rec.Day, idx, len(rec.Images), imgPath, dayDir); err != nil {
				return nil, err
			}
		}
	}

	results := analysis.Aggregate(c)
	if change, ok := results.Trend(); ok {
		summary.TrendChange = change
		summary.HasTrend = true
	}
	for _, rec := range c.Records() {
		for _, img := range rec.Records {
			if img.FusedPath != "" {
				summary.Processed++
			} else {
				summary.Failed++
			}
		}
	}

	generated, err := r.export(c, results, root)
	if err != nil {
		return nil, err
	}
	summary.Generated = generated

	return summary, nil
}

// processImage segments and visualizes a single image, recording the
// outcome. Load failures consume the index with a zero percentage so
// the day's index alignment is preserved.
func (r *Runner) processImage(c *collection.Collection, day float64, idx, total int, imgPath, dayDir string) error {
	base := filepath.Base(imgPath)

	img := gocv.IMRead(imgPath, gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		r.Reporter.ImageFailed(idx, total, base)
		return c.RecordFailure(day, idx, imgPath)
	}

	percentage, mask := segment.Measure(img, r.Params)
	defer mask.Close()

	label := fmt.Sprintf("Day%s_Img%d_%s", DayLabel(day), idx, base)
	fusedPath, comparisonPath, err := visual.Compose(img, mask, label, dayDir)
	if err != nil {
		return err
	}

	if err := c.RecordResult(day, idx, collection.ProcessedImage{
		OriginalPath:   imgPath,
		FusedPath:      fusedPath,
		ComparisonPath: comparisonPath,
		Percentage:     percentage,
	}); err != nil {
		return err
	}

	r.Reporter.ImageDone(idx, total, base, percentage)
	return nil
}

// export renders graphs and writes the CSV, workbook, and text report.
// With no aggregated results every exporter is a clean no-op.
func (r *Runner) export(c *collection.Collection, results analysis.Results, root string) ([]string, error) {
	if results.Empty() {
		return nil, nil
	}

	var generated []string
	exp := c.Experiment

	evolution := filepath.Join(root, EvolutionGraphName)
	if err := plot.Evolution(results, exp, evolution); err != nil {
		return nil, err
	}
	generated = append(generated, evolution)

	// The distribution plot needs at least two days to compare.
	if len(results) > 1 {
		distribution := filepath.Join(root, DistributionGraphName)
		if err := plot.Distribution(c, results, exp, distribution); err != nil {
			return nil, err
		}
		generated = append(generated, distribution)
	}

	summaryGraph := filepath.Join(root, SummaryGraphName)
	if err := plot.Summary(results, exp, summaryGraph); err != nil {
		return nil, err
	}
	generated = append(generated, summaryGraph)

	detailed := filepath.Join(root, report.DetailedCSVName)
	if err := report.WriteDetailed(c, detailed); err != nil {
		return nil, err
	}
	generated = append(generated, detailed)

	summaryCSV := filepath.Join(root, report.SummaryCSVName)
	if err := report.WriteSummary(results, summaryCSV); err != nil {
		return nil, err
	}
	generated = append(generated, summaryCSV)

	workbook := filepath.Join(root, report.WorkbookName)
	if err := report.WriteWorkbook(c, results, workbook); err != nil {
		return nil, err
	}
	generated = append(generated, workbook)

	reportPath := filepath.Join(root, report.SummaryTextName)
	if err := report.WriteText(c, results, reportPath); err != nil {
		return nil, err
	}
	generated = append(generated, reportPath)

	return generated, nil
}
