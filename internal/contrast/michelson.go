package contrast

import (
	"math"

	"github.com/jmylchreest/contrast/internal/colour"
)

// MichelsonZero is returned by Michelson when both luminances are zero or
// either is NaN.
const MichelsonZero = 0.0

// Michelson returns the Michelson contrast (Ymax - Ymin) / (Ymax + Ymin) of
// two colours' CIE Y luminance. The result is symmetric, lies in [0,1], and
// ignores opacity.
func Michelson(a, b colour.Color) float64 {
	y1 := luminanceY(a)
	y2 := luminanceY(b)

	if anyNaN(y1, y2) {
		return MichelsonZero
	}

	hi := math.Max(y1, y2)
	lo := math.Min(y1, y2)
	if hi+lo == 0 {
		return MichelsonZero
	}
	return (hi - lo) / (hi + lo)
}
