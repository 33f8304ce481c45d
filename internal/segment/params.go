package segment

// DefaultParams returns default segmentation parameters.
// The HSV window is tuned for yellow triglyceride staining on
// brightfield microscopy scans; it is a fixed tuning, not adaptive.
func DefaultParams() Params {
	return Params{
		// Yellow stain in OpenCV HSV: hue 20-35, saturated and bright.
		HueMin: 20,
		HueMax: 35,
		SatMin: 100,
		SatMax: 255,
		ValMin: 100,
		ValMax: 255,

		// Dilation closes small gaps between stained droplets and
		// slightly grows regions before measurement.
		KernelSize:       30,
		DilateIterations: 1,
	}
}

// WithHSV returns a copy of params with a custom HSV color window.
// Useful when a different stain color has been sampled from the image.
func (p Params) WithHSV(hMin, hMax, sMin, sMax, vMin, vMax float64) Params {
	p.HueMin = hMin
	p.HueMax = hMax
	p.SatMin = sMin
	p.SatMax = sMax
	p.ValMin = vMin
	p.ValMax = vMax
	return p
}

// WithKernel returns a copy of params with a custom dilation kernel size
// and iteration count. A size of zero disables dilation entirely.
func (p Params) WithKernel(size, iterations int) Params {
	p.KernelSize = size
	p.DilateIterations = iterations
	return p
}
