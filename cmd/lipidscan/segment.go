package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"lipidscan/internal/segment"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var (
	hueMin, hueMax float64
	satMin, satMax float64
	valMin, valMax float64
)

var segmentCmd = &cobra.Command{
	Use:   "segment <image>",
	Short: "Segment a single image and print its lipid percentage",
	Long: `Segment decodes one image, runs the color-threshold
segmentation, and prints the measured lipid percentage. Useful for
checking threshold parameters on a sample before a full run.`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	p := segment.DefaultParams()
	segmentCmd.Flags().Float64Var(&hueMin, "hue-min", p.HueMin, "Lower hue bound (0-180)")
	segmentCmd.Flags().Float64Var(&hueMax, "hue-max", p.HueMax, "Upper hue bound (0-180)")
	segmentCmd.Flags().Float64Var(&satMin, "sat-min", p.SatMin, "Lower saturation bound (0-255)")
	segmentCmd.Flags().Float64Var(&satMax, "sat-max", p.SatMax, "Upper saturation bound (0-255)")
	segmentCmd.Flags().Float64Var(&valMin, "val-min", p.ValMin, "Lower value bound (0-255)")
	segmentCmd.Flags().Float64Var(&valMax, "val-max", p.ValMax, "Upper value bound (0-255)")
}

func runSegment(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())

	mat, err := segment.ImageToMat(img)
	if err != nil {
		return err
	}
	defer mat.Close()

	params := segment.DefaultParams().
		WithHSV(hueMin, hueMax, satMin, satMax, valMin, valMax)
	fmt.Printf("HSV window: H(%.0f-%.0f) S(%.0f-%.0f) V(%.0f-%.0f)\n",
		params.HueMin, params.HueMax, params.SatMin, params.SatMax,
		params.ValMin, params.ValMax)

	percentage, mask := segment.Measure(mat, params)
	defer mask.Close()

	raw := segment.RawMask(mat, params)
	defer raw.Close()

	fmt.Printf("Raw coverage:     %.2f%%\n", segment.Coverage(raw))
	fmt.Printf("Lipid percentage: %.2f%%\n", percentage)
	return nil
}
