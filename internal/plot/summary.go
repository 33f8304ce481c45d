package plot

import (
	"fmt"
	"image/color"

	"lipidscan/internal/analysis"
	"lipidscan/internal/collection"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Summary renders the three-panel statistical overview: mean bar chart,
// image count bar chart, and a min/max/mean range chart, all indexed by
// day in ascending order.
func Summary(results analysis.Results, exp collection.Experiment, path string) error {
	if results.Empty() {
		return nil
	}

	labels := make([]string, len(results))
	means := make(plotter.Values, len(results))
	counts := make(plotter.Values, len(results))
	for i, s := range results {
		labels[i] = fmt.Sprintf("Day %v", s.Day)
		means[i] = s.Mean
		counts[i] = float64(s.Count)
	}

	meansPanel, err := barPanel("Averages by Day", "Lipids (%)", means, skyBlue, labels)
	if err != nil {
		return err
	}
	countsPanel, err := barPanel("Number of Images", "Quantity", counts, lightGreen, labels)
	if err != nil {
		return err
	}
	rangePanel, err := rangeChart(results, labels)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(14*vg.Inch, 5*vg.Inch), vgimg.UseDPI(renderDPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: 1, Cols: 3,
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}
	panels := [][]*plot.Plot{{meansPanel, countsPanel, rangePanel}}
	canvases := plot.Align(panels, tiles, dc)
	for i, p := range panels[0] {
		p.Draw(canvases[0][i])
	}

	return flushPNG(img, path)
}

func barPanel(title, yLabel string, values plotter.Values, fill color.Color, labels []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Day"
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(25))
	if err != nil {
		return nil, fmt.Errorf("summary bar chart %q: %w", title, err)
	}
	bars.Color = fill
	bars.LineStyle.Width = vg.Points(0.5)

	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

// rangeChart plots the min-max span for each day as a vertical red
// segment with the mean marked as a blue square.
func rangeChart(results analysis.Results, labels []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Range and Average"
	p.X.Label.Text = "Day"
	p.Y.Label.Text = "Lipids (%)"

	for i, s := range results {
		span, err := plotter.NewLine(plotter.XYs{
			{X: float64(i), Y: s.Min},
			{X: float64(i), Y: s.Max},
		})
		if err != nil {
			return nil, fmt.Errorf("summary range segment: %w", err)
		}
		span.Color = solidRed
		span.Width = vg.Points(2)
		p.Add(span)

		mean, err := plotter.NewScatter(plotter.XYs{{X: float64(i), Y: s.Mean}})
		if err != nil {
			return nil, fmt.Errorf("summary mean marker: %w", err)
		}
		mean.GlyphStyle.Shape = draw.SquareGlyph{}
		mean.GlyphStyle.Color = steelBlue
		mean.GlyphStyle.Radius = vg.Points(4)
		p.Add(mean)
	}

	p.NominalX(labels...)
	return p, nil
}
