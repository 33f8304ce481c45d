package plot

import (
	"fmt"

	"lipidscan/internal/analysis"
	"lipidscan/internal/collection"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// meanSeries pairs per-day means with their 95% CI half-widths so it
// can feed both the line plotter and the error-bar plotter.
type meanSeries struct {
	plotter.XYs
	plotter.YErrors
}

// Evolution renders the mean-versus-day line plot with 95% CI error
// bars and a faint per-day min-max range bar.
func Evolution(results analysis.Results, exp collection.Experiment, path string) error {
	if results.Empty() {
		return nil
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Lipid Evolution\n%s - %s", exp.Culture, exp.Name)
	p.X.Label.Text = "Days in Culture"
	p.Y.Label.Text = "Lipid Percentage (%)"
	p.Add(plotter.NewGrid())

	series := meanSeries{
		XYs:     make(plotter.XYs, len(results)),
		YErrors: make(plotter.YErrors, len(results)),
	}
	for i, s := range results {
		series.XYs[i] = plotter.XY{X: s.Day, Y: s.Mean}
		series.YErrors[i] = struct{ Low, High float64 }{s.ErrorMargin95, s.ErrorMargin95}
	}

	line, scatter, err := plotter.NewLinePoints(series.XYs)
	if err != nil {
		return fmt.Errorf("evolution line: %w", err)
	}
	line.Color = navy
	line.Width = vg.Points(2)
	scatter.GlyphStyle.Color = navy
	scatter.GlyphStyle.Radius = vg.Points(4)

	errBars, err := plotter.NewYErrorBars(series)
	if err != nil {
		return fmt.Errorf("evolution error bars: %w", err)
	}
	errBars.Color = navy

	// Faint vertical segments showing the raw min-max spread per day.
	for _, s := range results {
		span, err := plotter.NewLine(plotter.XYs{
			{X: s.Day, Y: s.Min},
			{X: s.Day, Y: s.Max},
		})
		if err != nil {
			return fmt.Errorf("evolution range bar: %w", err)
		}
		span.Color = faintRed
		span.Width = vg.Points(2)
		p.Add(span)
	}

	p.Add(line, scatter, errBars)
	p.Legend.Add("Average ± 95% CI", line, scatter)
	p.Legend.Top = true

	// Half-day padding on X, headroom above the largest maximum on Y.
	p.X.Min = results[0].Day - 0.5
	p.X.Max = results[len(results)-1].Day + 0.5
	p.Y.Min = 0
	yMax := 0.0
	for _, s := range results {
		if s.Max > yMax {
			yMax = s.Max
		}
	}
	if yMax == 0 {
		yMax = 50
	}
	p.Y.Max = yMax * 1.2

	return writePNG(p, 12*vg.Inch, 7*vg.Inch, path)
}
