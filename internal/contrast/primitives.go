// Package contrast implements perceptual and mathematical contrast metrics
// between two colours, and a solver that searches for a colour reaching a
// target contrast.
//
// Every metric is a pure function: identical inputs always give identical
// outputs, and numeric degeneracies resolve to defined values rather than
// errors. All functions are safe for concurrent use.
package contrast

import (
	"math"

	"github.com/jmylchreest/contrast/internal/colour"
)

// Metric computes a contrast scalar between two colours. The first argument
// is the foreground (text) colour and the second the background.
type Metric func(fg, bg colour.Color) float64

// Coefficients and exponent used to derive screen luminance from
// gamma-encoded sRGB for the APCA metric.
const (
	apcaMainTRC = 2.4
	apcaRCo     = 0.2126729
	apcaGCo     = 0.7151522
	apcaBCo     = 0.0721750
)

// apcaLuminance returns the estimated screen luminance of an sRGB colour.
// Negative channels contribute nothing. A NaN channel gives NaN.
func apcaLuminance(rgb colour.Color) float64 {
	return apcaRCo*math.Pow(nonNegative(rgb.C[0]), apcaMainTRC) +
		apcaGCo*math.Pow(nonNegative(rgb.C[1]), apcaMainTRC) +
		apcaBCo*math.Pow(nonNegative(rgb.C[2]), apcaMainTRC)
}

// softClamp lifts luminance values below threshold by
// (threshold - y)^exponent. Values at or above threshold are unchanged.
func softClamp(y, threshold, exponent float64) float64 {
	if y >= threshold {
		return y
	}
	return y + math.Pow(threshold-y, exponent)
}

// blend composites fg over bg using fg's opacity. Both colours must be sRGB.
// The result is opaque with every channel in [0,1].
func blend(fg, bg colour.Color) colour.Color {
	a := clamp(fg.A, 0, 1)
	out := colour.SRGB(0, 0, 0)
	for i := range out.C {
		out.C[i] = clamp(bg.C[i]*(1-a)+fg.C[i]*a, 0, 1)
	}
	return out
}

// luminanceY returns the CIE Y of a colour, clamped to be non-negative.
// NaN is passed through for the caller to reject.
func luminanceY(c colour.Color) float64 {
	return nonNegative(colour.Convert(c, colour.SpaceXYZ).C[1])
}

// inRange reports whether v lies in [lo, hi]. NaN is never in range.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// nonNegative maps negative values to 0 and leaves NaN unchanged.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// clamp limits v to [lo, hi]. NaN stays NaN.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
