package contrast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/contrast/internal/colour"
)

// ErrUnknownAlgorithm is returned when an algorithm name is not recognised.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm names a contrast metric.
type Algorithm string

const (
	// AlgorithmAPCA is the polarity-aware Accessible Perceptual Contrast Algorithm.
	AlgorithmAPCA Algorithm = "apca"
	// AlgorithmWCAG21 is the WCAG 2.1 luminance contrast ratio.
	AlgorithmWCAG21 Algorithm = "wcag21"
	// AlgorithmMichelson is the Michelson luminance contrast.
	AlgorithmMichelson Algorithm = "michelson"
	// AlgorithmDeltaPhi is the golden-ratio lightness contrast Delta-Phi*.
	AlgorithmDeltaPhi Algorithm = "deltaphi"
)

var algorithmAliases = map[string]Algorithm{
	"apca":      AlgorithmAPCA,
	"wcag21":    AlgorithmWCAG21,
	"wcag":      AlgorithmWCAG21,
	"wcag2":     AlgorithmWCAG21,
	"michelson": AlgorithmMichelson,
	"deltaphi":  AlgorithmDeltaPhi,
	"delta-phi": AlgorithmDeltaPhi,
	"dpcs":      AlgorithmDeltaPhi,
}

// ValidAlgorithms returns the canonical algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmAPCA,
		AlgorithmWCAG21,
		AlgorithmMichelson,
		AlgorithmDeltaPhi,
	}
}

// ParseAlgorithm resolves a case-insensitive algorithm name or alias.
func ParseAlgorithm(name string) (Algorithm, error) {
	if alg, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return alg, nil
	}
	return "", fmt.Errorf("%w: %q (valid algorithms: %v)", ErrUnknownAlgorithm, name, ValidAlgorithms())
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	return string(a)
}

// Metric returns the metric function for the algorithm.
func (a Algorithm) Metric() (Metric, error) {
	switch a {
	case AlgorithmAPCA:
		return APCA, nil
	case AlgorithmWCAG21:
		return WCAG21, nil
	case AlgorithmMichelson:
		return Michelson, nil
	case AlgorithmDeltaPhi:
		return func(fg, bg colour.Color) float64 { return DeltaPhiStar(fg, bg) }, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid algorithms: %v)", ErrUnknownAlgorithm, string(a), ValidAlgorithms())
	}
}

// Space returns the colour space the algorithm's inputs are read in.
func (a Algorithm) Space() colour.Space {
	switch a {
	case AlgorithmWCAG21, AlgorithmMichelson:
		return colour.SpaceXYZ
	case AlgorithmDeltaPhi:
		return colour.SpaceLab
	default:
		return colour.SpaceSRGB
	}
}

// Contrast computes the contrast of fg on bg with the named algorithm.
func Contrast(alg Algorithm, fg, bg colour.Color) (float64, error) {
	metric, err := alg.Metric()
	if err != nil {
		return 0, err
	}
	return metric(fg, bg), nil
}

// ContrastString parses fg and bg and computes their contrast with the named
// algorithm. Parse errors are returned unchanged.
func ContrastString(alg Algorithm, fg, bg string) (float64, error) {
	metric, err := alg.Metric()
	if err != nil {
		return 0, err
	}
	fgc, err := colour.Parse(fg, alg.Space())
	if err != nil {
		return 0, err
	}
	bgc, err := colour.Parse(bg, alg.Space())
	if err != nil {
		return 0, err
	}
	return metric(fgc, bgc), nil
}
