// Package accessibility maps contrast values onto pass/fail thresholds for
// different kinds of content.
package accessibility

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/contrast"
)

var (
	// ErrUnknownContentType is returned for unrecognised content type names.
	ErrUnknownContentType = errors.New("unknown content type")
	// ErrUnknownLevel is returned for unrecognised conformance level names.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrNoThresholds is returned for algorithms without a threshold table.
	ErrNoThresholds = errors.New("no thresholds for algorithm")
)

// ContentType classifies what is being drawn on the background.
type ContentType string

const (
	// ContentBody is body text and other long-form reading.
	ContentBody ContentType = "body"
	// ContentText is short text that is not body copy: labels, captions, menus.
	ContentText ContentType = "content"
	// ContentLarge is large or bold text such as headlines.
	ContentLarge ContentType = "large"
	// ContentUI is non-text interface elements: icons, borders, focus rings.
	ContentUI ContentType = "ui"
	// ContentPlaceholder is placeholder or disabled text.
	ContentPlaceholder ContentType = "placeholder"
	// ContentDecorative is purely decorative content with no minimum.
	ContentDecorative ContentType = "decorative"
)

// ValidContentTypes returns every content type.
func ValidContentTypes() []ContentType {
	return []ContentType{
		ContentBody,
		ContentText,
		ContentLarge,
		ContentUI,
		ContentPlaceholder,
		ContentDecorative,
	}
}

// ParseContentType resolves a case-insensitive content type name.
func ParseContentType(name string) (ContentType, error) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(name)))
	for _, valid := range ValidContentTypes() {
		if ct == valid {
			return ct, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid content types: %v)", ErrUnknownContentType, name, ValidContentTypes())
}

// Level is a conformance level.
type Level string

const (
	// LevelAA is the minimum recommended level.
	LevelAA Level = "AA"
	// LevelAAA is the enhanced level.
	LevelAAA Level = "AAA"
)

// ParseLevel resolves a case-insensitive level name.
func ParseLevel(name string) (Level, error) {
	switch Level(strings.ToUpper(strings.TrimSpace(name))) {
	case LevelAA:
		return LevelAA, nil
	case LevelAAA:
		return LevelAAA, nil
	default:
		return "", fmt.Errorf("%w: %q (valid levels: [AA AAA])", ErrUnknownLevel, name)
	}
}

type levels struct {
	aa, aaa float64
}

// wcagThresholds are WCAG 2.1 minimum contrast ratios (SC 1.4.3, 1.4.6, 1.4.11).
var wcagThresholds = map[ContentType]levels{
	ContentBody:        {aa: 4.5, aaa: 7},
	ContentText:        {aa: 4.5, aaa: 7},
	ContentLarge:       {aa: 3, aaa: 4.5},
	ContentUI:          {aa: 3, aaa: 3},
	ContentPlaceholder: {aa: 4.5, aaa: 7},
	ContentDecorative:  {aa: 1, aaa: 1},
}

// apcaThresholds are minimum |Lc| values following the APCA bronze
// simple-mode guidance.
var apcaThresholds = map[ContentType]levels{
	ContentBody:        {aa: 75, aaa: 90},
	ContentText:        {aa: 60, aaa: 75},
	ContentLarge:       {aa: 45, aaa: 60},
	ContentUI:          {aa: 30, aaa: 45},
	ContentPlaceholder: {aa: 30, aaa: 45},
	ContentDecorative:  {aa: 15, aaa: 15},
}

// Threshold returns the minimum contrast magnitude the algorithm requires
// for the content type at the given level.
func Threshold(alg contrast.Algorithm, ct ContentType, level Level) (float64, error) {
	var table map[ContentType]levels
	switch alg {
	case contrast.AlgorithmWCAG21:
		table = wcagThresholds
	case contrast.AlgorithmAPCA:
		table = apcaThresholds
	case contrast.AlgorithmMichelson, contrast.AlgorithmDeltaPhi:
		return 0, fmt.Errorf("%w: %s", ErrNoThresholds, alg)
	default:
		_, err := alg.Metric()
		return 0, err
	}

	l, ok := table[ct]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownContentType, string(ct))
	}
	switch level {
	case LevelAA:
		return l.aa, nil
	case LevelAAA:
		return l.aaa, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, string(level))
	}
}

// Result is the outcome of evaluating a colour pair.
type Result struct {
	Algorithm   contrast.Algorithm `json:"algorithm"`
	ContentType ContentType        `json:"content_type"`
	Level       Level              `json:"level"`
	Contrast    float64            `json:"contrast"`
	Required    float64            `json:"required"`
	Pass        bool               `json:"pass"`
}

// Evaluate computes the contrast of fg on bg and compares its magnitude
// against the threshold for the content type and level.
func Evaluate(alg contrast.Algorithm, fg, bg colour.Color, ct ContentType, level Level) (Result, error) {
	required, err := Threshold(alg, ct, level)
	if err != nil {
		return Result{}, err
	}
	value, err := contrast.Contrast(alg, fg, bg)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Algorithm:   alg,
		ContentType: ct,
		Level:       level,
		Contrast:    value,
		Required:    required,
		Pass:        math.Abs(value) >= required,
	}, nil
}

// Suggest returns fg unchanged when it already passes, and otherwise the
// variant of fg (same hue and saturation) that the solver finds closest to
// the required threshold. The returned Result describes the suggestion.
func Suggest(alg contrast.Algorithm, fg, bg colour.Color, ct ContentType, level Level, opts ...contrast.SolveOption) (colour.Color, Result, error) {
	res, err := Evaluate(alg, fg, bg, ct, level)
	if err != nil {
		return colour.Color{}, Result{}, err
	}
	if res.Pass {
		return fg, res, nil
	}

	metric, err := alg.Metric()
	if err != nil {
		return colour.Color{}, Result{}, err
	}

	// Aim slightly above the threshold so the bisection's tolerance lands
	// on the passing side.
	target := res.Required * (1 + targetMargin)
	if alg == contrast.AlgorithmAPCA && contrast.PolarityOf(fg, bg) == contrast.LightOnDark {
		target = -target
	}

	sol := contrast.SolveDetailed(fg, bg, target, metric, opts...)
	res.Contrast = sol.Contrast
	res.Pass = math.Abs(sol.Contrast) >= res.Required
	return sol.Color, res, nil
}

const targetMargin = 0.02
