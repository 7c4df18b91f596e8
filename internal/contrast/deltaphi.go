package contrast

import (
	"math"

	"github.com/jmylchreest/contrast/internal/colour"
)

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

// DefaultDeltaPhiThreshold is the Delta-Phi* value below which contrast is
// reported as 0.
const DefaultDeltaPhiThreshold = 7.5

const deltaPhiOffset = 40.0

type deltaPhiConfig struct {
	threshold float64
}

// DeltaPhiOption configures a single DeltaPhiStar call.
type DeltaPhiOption func(*deltaPhiConfig)

// WithThreshold overrides the perceptual threshold for one call.
func WithThreshold(threshold float64) DeltaPhiOption {
	return func(c *deltaPhiConfig) {
		c.threshold = threshold
	}
}

// DeltaPhiStar returns the Delta-Phi* lightness contrast between two colours.
//
// Only CIE L* is used; chroma, hue and opacity are ignored. The metric is
// symmetric and returns 0 when either L* is NaN or the result falls below
// the threshold (DefaultDeltaPhiThreshold unless overridden with
// WithThreshold).
func DeltaPhiStar(a, b colour.Color, opts ...DeltaPhiOption) float64 {
	cfg := deltaPhiConfig{threshold: DefaultDeltaPhiThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	l1 := nonNegative(colour.Convert(a, colour.SpaceLab).C[0])
	l2 := nonNegative(colour.Convert(b, colour.SpaceLab).C[0])
	if anyNaN(l1, l2) {
		return 0
	}

	delta := math.Abs(math.Pow(l1, Phi) - math.Pow(l2, Phi))
	raw := math.Pow(delta, 1/Phi)*math.Sqrt2 - deltaPhiOffset
	if raw < cfg.threshold {
		return 0
	}
	return raw
}
