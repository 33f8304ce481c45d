// Package visual renders diagnostic visualizations for segmented images.
package visual

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"lipidscan/pkg/colorutil"

	"gocv.io/x/gocv"
)

// Overlay blending weights. The original keeps full weight and the
// magenta highlight is added at half strength on masked pixels only.
const (
	originalWeight = 1.0
	overlayWeight  = 0.5
)

// Fuse blends a solid magenta highlight over the masked regions of img.
// The caller owns the returned Mat.
func Fuse(img, mask gocv.Mat) gocv.Mat {
	m := colorutil.Magenta
	magenta := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(m.B), float64(m.G), float64(m.R), 0),
		img.Rows(), img.Cols(), gocv.MatTypeCV8UC3)
	defer magenta.Close()

	highlight := gocv.NewMat()
	defer highlight.Close()
	gocv.BitwiseAndWithMask(magenta, magenta, &highlight, mask)

	fused := gocv.NewMat()
	gocv.AddWeighted(img, originalWeight, highlight, overlayWeight, 0, &fused)
	return fused
}

// SideBySide concatenates the original and fused images horizontally and
// burns the label into the top-left corner. The caller owns the result.
func SideBySide(img, fused gocv.Mat, label string) gocv.Mat {
	combined := gocv.NewMat()
	gocv.Hconcat(img, fused, &combined)
	gocv.PutText(&combined, label, image.Pt(10, 30),
		gocv.FontHersheySimplex, 0.8, colorutil.Green, 2)
	return combined
}

// Compose writes the fused overlay and side-by-side comparison for one
// segmented image into destDir, creating the directory if absent.
// Filenames are fused_<label> and comparison_<label>.
func Compose(img, mask gocv.Mat, label, destDir string) (fusedPath, comparisonPath string, err error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", "", fmt.Errorf("create results folder %s: %w", destDir, err)
	}

	fused := Fuse(img, mask)
	defer fused.Close()

	combined := SideBySide(img, fused, label)
	defer combined.Close()

	fusedPath = filepath.Join(destDir, "fused_"+label)
	comparisonPath = filepath.Join(destDir, "comparison_"+label)

	if ok := gocv.IMWrite(fusedPath, fused); !ok {
		return "", "", fmt.Errorf("write fused image %s", fusedPath)
	}
	if ok := gocv.IMWrite(comparisonPath, combined); !ok {
		return "", "", fmt.Errorf("write comparison image %s", comparisonPath)
	}

	return fusedPath, comparisonPath, nil
}
