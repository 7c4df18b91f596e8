package contrast

import (
	"math"

	"github.com/jmylchreest/contrast/internal/colour"
)

const wcagFlare = 0.05

// WCAG21 returns the WCAG 2.1 contrast ratio of two colours, between 1 and
// 21. It is symmetric, ignores opacity, and grows monotonically with the
// separation of the two luminances. Identical colours, and colours with a
// NaN luminance, give 1.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio
func WCAG21(a, b colour.Color) float64 {
	return RatioOfYs(luminanceY(a), luminanceY(b))
}

// RatioOfYs returns the WCAG contrast ratio of two CIE Y values.
// Negative values are treated as 0. A NaN value gives the minimum ratio, 1.
func RatioOfYs(a, b float64) float64 {
	if anyNaN(a, b) {
		return 1
	}
	a, b = nonNegative(a), nonNegative(b)
	lighter := math.Max(a, b)
	darker := math.Min(a, b)
	return (lighter + wcagFlare) / (darker + wcagFlare)
}
