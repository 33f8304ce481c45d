// Package segment provides color-threshold segmentation of lipid staining.
package segment

import (
	"image"

	"gocv.io/x/gocv"
)

// Params configures lipid segmentation.
type Params struct {
	// HSV window selecting stained pixels (OpenCV ranges:
	// H 0-180, S 0-255, V 0-255).
	HueMin float64
	HueMax float64
	SatMin float64
	SatMax float64
	ValMin float64
	ValMax float64

	// Elliptical structuring element applied after thresholding.
	KernelSize       int
	DilateIterations int
}

// Measure computes the lipid coverage of a BGR image as a percentage
// of total pixels, along with the binary mask used for the measurement.
// The mask has the same dimensions as the image; the caller owns it and
// must Close it. The image must be non-empty; load failures are the
// caller's responsibility to catch beforehand.
func Measure(img gocv.Mat, p Params) (float64, gocv.Mat) {
	mask := RawMask(img, p)

	if p.KernelSize > 0 && p.DilateIterations > 0 {
		kernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(p.KernelSize, p.KernelSize))
		defer kernel.Close()

		for i := 0; i < p.DilateIterations; i++ {
			gocv.Dilate(mask, &mask, kernel)
		}
	}

	return Coverage(mask), mask
}

// RawMask builds the in-range threshold mask without dilation.
func RawMask(img gocv.Mat, p Params) gocv.Mat {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(img, &hsv, gocv.ColorBGRToHSV)

	mask := gocv.NewMat()
	gocv.InRangeWithScalar(hsv,
		gocv.NewScalar(p.HueMin, p.SatMin, p.ValMin, 0),
		gocv.NewScalar(p.HueMax, p.SatMax, p.ValMax, 0),
		&mask)

	return mask
}

// Coverage returns the percentage of nonzero pixels in a binary mask.
func Coverage(mask gocv.Mat) float64 {
	total := mask.Rows() * mask.Cols()
	if total == 0 {
		return 0
	}
	return float64(gocv.CountNonZero(mask)) / float64(total) * 100
}
