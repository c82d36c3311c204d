package reveal

import "math"

// midpointPercent is the reveal percentage used for fresh slides and for
// every degenerate geometry case.
const midpointPercent = 50.0

// Layout is the visual result of a reveal percentage inside a container.
// All pixel values are relative to the container's left edge.
type Layout struct {
	Percent     float64 // clamped reveal percentage in [0, 100]
	BeforeWidth float64 // visible width of the before layer
	HandleX     float64 // horizontal offset of the divider handle
	ImageWidth  float64 // width the before image is drawn at (always the full container)
}

// ClampPercent limits p to [0, 100]. NaN maps to the midpoint.
func ClampPercent(p float64) float64 {
	if math.IsNaN(p) {
		return midpointPercent
	}
	return math.Max(0, math.Min(100, p))
}

// PercentFromPointer maps a horizontal pointer coordinate to a reveal
// percentage within bounds. A container without width yields 50.
func PercentFromPointer(pointerX float64, bounds Rect) float64 {
	if !(bounds.Width > 0) {
		return midpointPercent
	}
	return ClampPercent((pointerX - bounds.X) / bounds.Width * 100)
}

// ApplyPercent computes the layer widths and handle offset for percent.
func ApplyPercent(percent float64, bounds Rect) Layout {
	p := ClampPercent(percent)
	w := math.Max(0, bounds.Width)
	return Layout{
		Percent:     p,
		BeforeWidth: w * p / 100,
		HandleX:     w * p / 100,
		ImageWidth:  w,
	}
}
