// Package harmony generates colour harmonies by rotating hue while keeping
// saturation, lightness and opacity.
package harmony

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/contrast/internal/colour"
)

// ErrUnknownScheme is returned for unrecognised scheme names.
var ErrUnknownScheme = errors.New("unknown harmony scheme")

// Scheme names a harmony.
type Scheme string

// Supported schemes.
const (
	Complementary      Scheme = "complementary"
	Analogous          Scheme = "analogous"
	Triadic            Scheme = "triadic"
	SplitComplementary Scheme = "split-complementary"
	Tetradic           Scheme = "tetradic"
	Square             Scheme = "square"
)

// hueShifts are the rotations, in degrees, applied to the base hue.
var hueShifts = map[Scheme][]float64{
	Complementary:      {180},
	Analogous:          {-30, 30},
	Triadic:            {120, 240},
	SplitComplementary: {150, 210},
	Tetradic:           {60, 180, 240},
	Square:             {90, 180, 270},
}

// ValidSchemes returns every scheme.
func ValidSchemes() []Scheme {
	return []Scheme{Complementary, Analogous, Triadic, SplitComplementary, Tetradic, Square}
}

// ParseScheme resolves a case-insensitive scheme name.
func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := hueShifts[s]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q (valid schemes: %v)", ErrUnknownScheme, name, ValidSchemes())
}

// Shifts returns a copy of the hue rotations for the scheme, or nil for an
// unknown scheme.
func (s Scheme) Shifts() []float64 {
	shifts, ok := hueShifts[s]
	if !ok {
		return nil
	}
	return append([]float64(nil), shifts...)
}

// Generate returns the base colour followed by one HSL colour per hue
// rotation of the scheme.
func Generate(base colour.Color, s Scheme) ([]colour.Color, error) {
	shifts, ok := hueShifts[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, string(s))
	}

	h, sat, l := base.HSL()
	out := make([]colour.Color, 0, len(shifts)+1)
	out = append(out, base)
	for _, shift := range shifts {
		out = append(out, colour.HSL(rotate(h, shift), sat, l).WithAlpha(base.A))
	}
	return out, nil
}

func rotate(h, shift float64) float64 {
	h = math.Mod(h+shift, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDistance returns the angular distance between two hues, between 0 and
// 180 degrees.
func HueDistance(h1, h2 float64) float64 {
	diff := math.Mod(math.Abs(h1-h2), 360)
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}

// IsAnalogous reports whether two hues are within 30 degrees of each other.
func IsAnalogous(h1, h2 float64) bool {
	return HueDistance(h1, h2) <= 30
}
