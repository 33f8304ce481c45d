// Package plot renders the experiment result graphs as PNG files.
package plot

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Graphs are rendered at print resolution.
const renderDPI = 300

var (
	navy       = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	faintRed   = color.NRGBA{R: 255, A: 80}
	solidRed   = color.RGBA{R: 220, A: 255}
	steelBlue  = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	skyBlue    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	lightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	faintBlack = color.NRGBA{A: 150}
)

// writePNG rasterizes a single plot at the given figure size.
func writePNG(p *plot.Plot, width, height vg.Length, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(renderDPI))
	p.Draw(draw.New(img))
	return flushPNG(img, path)
}

func flushPNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create graph %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write graph %s: %w", path, err)
	}
	return nil
}
