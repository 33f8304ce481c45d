package plot

import (
	"fmt"
	"math/rand"

	"lipidscan/internal/analysis"
	"lipidscan/internal/collection"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Distribution renders a per-day box-and-whisker plot of the raw
// per-image percentages, with a jittered scatter of the individual
// points overlaid. Days without values are omitted. Callers should only
// invoke this when at least two days carry data.
func Distribution(c *collection.Collection, results analysis.Results, exp collection.Experiment, path string) error {
	if results.Empty() {
		return nil
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution by Day\n%s - %s", exp.Culture, exp.Name)
	p.X.Label.Text = "Day"
	p.Y.Label.Text = "Lipid Percentage (%)"
	p.Add(plotter.NewGrid())

	// Deterministic jitter keeps renders reproducible between runs.
	jitter := rand.New(rand.NewSource(1))

	labels := make([]string, 0, len(results))
	for i, s := range results {
		rec := c.Day(s.Day)
		if rec == nil || len(rec.Percentages) == 0 {
			continue
		}

		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(rec.Percentages))
		if err != nil {
			return fmt.Errorf("distribution box for day %v: %w", s.Day, err)
		}
		box.FillColor = plotutil.Color(i)
		p.Add(box)

		points := make(plotter.XYs, len(rec.Percentages))
		for j, v := range rec.Percentages {
			points[j] = plotter.XY{X: float64(i) + jitter.NormFloat64()*0.04, Y: v}
		}
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return fmt.Errorf("distribution scatter for day %v: %w", s.Day, err)
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		scatter.GlyphStyle.Color = faintBlack
		p.Add(scatter)

		labels = append(labels, fmt.Sprintf("Day %v", s.Day))
	}

	p.NominalX(labels...)

	return writePNG(p, 10*vg.Inch, 6*vg.Inch, path)
}
