package contrast

import (
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/contrast/internal/colour"
)

// Solver defaults.
const (
	DefaultMaxIterations = 32
	DefaultEpsilon       = 0.001
)

type solveConfig struct {
	maxIterations int
	epsilon       float64
	logger        hclog.Logger
}

// SolveOption configures a Solve call.
type SolveOption func(*solveConfig)

// WithMaxIterations bounds the number of bisection steps. Values below 1
// leave the default in place.
func WithMaxIterations(n int) SolveOption {
	return func(c *solveConfig) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// WithEpsilon sets the lightness interval width at which the search stops.
// Non-positive or NaN values leave the default in place.
func WithEpsilon(eps float64) SolveOption {
	return func(c *solveConfig) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

// WithLogger traces every search step to logger at trace level.
func WithLogger(logger hclog.Logger) SolveOption {
	return func(c *solveConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Solution is the outcome of a search.
type Solution struct {
	// Color is the best candidate found, in HSL.
	Color colour.Color
	// Contrast is the metric value of Color against the background.
	Contrast float64
	// Iterations is the number of bisection steps taken.
	Iterations int
}

// Solve returns the variant of fg, differing only in HSL lightness, whose
// contrast against bg under metric comes closest in magnitude to target.
//
// The search bisects lightness in [0,1] and remembers the best candidate
// seen, so an unreachable target yields the closest achievable colour
// rather than an error. The result keeps fg's hue, saturation and opacity.
func Solve(fg, bg colour.Color, target float64, metric Metric, opts ...SolveOption) colour.Color {
	return SolveDetailed(fg, bg, target, metric, opts...).Color
}

// SolveDetailed is like Solve but also reports the contrast reached and the
// number of iterations used.
func SolveDetailed(fg, bg colour.Color, target float64, metric Metric, opts ...SolveOption) Solution {
	cfg := solveConfig{
		maxIterations: DefaultMaxIterations,
		epsilon:       DefaultEpsilon,
		logger:        hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h, s, l := fg.HSL()
	candidate := func(lightness float64) colour.Color {
		return colour.HSL(h, s, lightness).WithAlpha(fg.A)
	}

	want := math.Abs(target)
	low, high := 0.0, 1.0
	closest := clamp(l, 0, 1)
	minDiff := math.Inf(1)

	iterations := 0
	for iterations < cfg.maxIterations && high-low > cfg.epsilon {
		iterations++

		mid := (low + high) / 2
		current := metric(candidate(mid), bg)

		if diff := math.Abs(want - math.Abs(current)); diff < minDiff {
			minDiff = diff
			closest = mid
		}

		// Whether the low end already exceeds the target tells us which way
		// contrast runs with lightness for this pair.
		lowExceeds := math.Abs(metric(candidate(low), bg)) > want
		below := math.Abs(current) < want
		if below == lowExceeds {
			high = mid
		} else {
			low = mid
		}

		cfg.logger.Trace("bisect", "iteration", iterations, "lightness", mid,
			"contrast", current, "low", low, "high", high)
	}

	result := candidate(closest)
	achieved := metric(result, bg)
	cfg.logger.Debug("solved", "target", target, "lightness", closest,
		"contrast", achieved, "iterations", iterations)

	return Solution{
		Color:      result,
		Contrast:   achieved,
		Iterations: iterations,
	}
}

// SolveString parses fg and bg and solves for target using the named
// algorithm's metric.
func SolveString(alg Algorithm, fg, bg string, target float64, opts ...SolveOption) (colour.Color, error) {
	metric, err := alg.Metric()
	if err != nil {
		return colour.Color{}, err
	}
	fgc, err := colour.Parse(fg, colour.SpaceSRGB)
	if err != nil {
		return colour.Color{}, err
	}
	bgc, err := colour.Parse(bg, alg.Space())
	if err != nil {
		return colour.Color{}, err
	}
	return Solve(fgc, bgc, target, metric, opts...), nil
}
