package headmap

import (
	"image/color"
	"math"
)

// Sphere scale bounds. The fraction is offset around BaseScale and clamped,
// so only fractions within 0.02 of the midpoint produce intermediate sizes.
const (
	BaseScale = 0.1
	MinScale  = 0.08
	MaxScale  = 0.12
)

// MapValue returns the color and scale for v: red at the range minimum,
// green at the maximum.
func MapValue(v float64, r ValueRange) Visual {
	p := r.Fraction(v)
	green := uint8(math.Round(255 * p))
	return Visual{
		Color: color.RGBA{R: 255 - green, G: green, B: 0, A: 255},
		Scale: ScaleFor(p),
	}
}

// ScaleFor returns the uniform sphere scale for fraction p.
func ScaleFor(p float64) float64 {
	s := BaseScale - (0.5 - p)
	return math.Max(MinScale, math.Min(MaxScale, s))
}
