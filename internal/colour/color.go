// Package colour provides the colour value type used by the contrast engine,
// along with conversion between colour spaces and string parsing.
package colour

import (
	"fmt"
	"math"
	"strings"
)

// Space identifies the colour space a Color's channels are expressed in.
type Space int

const (
	// SpaceSRGB is gamma-encoded sRGB with channels nominally in [0,1].
	SpaceSRGB Space = iota
	// SpaceLinearRGB is linear-light sRGB with channels nominally in [0,1].
	SpaceLinearRGB
	// SpaceHSL is hue (degrees), saturation and lightness (0-1).
	SpaceHSL
	// SpaceHSV is hue (degrees), saturation and value (0-1).
	SpaceHSV
	// SpaceLab is CIE L*a*b* (D65) with L* nominally in [0,100].
	SpaceLab
	// SpaceLCh is the cylindrical form of CIE L*a*b*: L*, chroma, hue (degrees).
	SpaceLCh
	// SpaceXYZ is CIE XYZ (D65) scaled so the white point has Y = 1.
	SpaceXYZ
	// SpaceOKLab is Björn Ottosson's OKLab with L nominally in [0,1].
	SpaceOKLab
)

var spaceNames = map[Space]string{
	SpaceSRGB:      "srgb",
	SpaceLinearRGB: "srgb-linear",
	SpaceHSL:       "hsl",
	SpaceHSV:       "hsv",
	SpaceLab:       "lab",
	SpaceLCh:       "lch",
	SpaceXYZ:       "xyz",
	SpaceOKLab:     "oklab",
}

// String returns the string representation of a Space.
func (s Space) String() string {
	if name, ok := spaceNames[s]; ok {
		return name
	}
	return "unknown"
}

// Channels returns the short channel names for the space, in channel order.
func (s Space) Channels() [3]string {
	switch s {
	case SpaceSRGB, SpaceLinearRGB:
		return [3]string{"r", "g", "b"}
	case SpaceHSL:
		return [3]string{"h", "s", "l"}
	case SpaceHSV:
		return [3]string{"h", "s", "v"}
	case SpaceLab, SpaceOKLab:
		return [3]string{"l", "a", "b"}
	case SpaceLCh:
		return [3]string{"l", "c", "h"}
	case SpaceXYZ:
		return [3]string{"x", "y", "z"}
	default:
		return [3]string{"c0", "c1", "c2"}
	}
}

// Color is a colour value in a particular space.
//
// A is the opacity in [0,1]. Every constructor in this package sets A to 1,
// so colours are opaque unless WithAlpha is used. As with image/color, the
// zero Color is transparent black.
type Color struct {
	Space Space
	C     [3]float64
	A     float64
}

// New returns an opaque colour in the given space.
func New(space Space, c0, c1, c2 float64) Color {
	return Color{Space: space, C: [3]float64{c0, c1, c2}, A: 1}
}

// SRGB returns an opaque gamma-encoded sRGB colour.
func SRGB(r, g, b float64) Color { return New(SpaceSRGB, r, g, b) }

// SRGB255 returns an opaque sRGB colour from 8-bit channel values.
func SRGB255(r, g, b uint8) Color {
	return SRGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// HSL returns an opaque HSL colour. Hue is in degrees, saturation and
// lightness in [0,1].
func HSL(h, s, l float64) Color { return New(SpaceHSL, h, s, l) }

// Lab returns an opaque CIE L*a*b* colour.
func Lab(l, a, b float64) Color { return New(SpaceLab, l, a, b) }

// LCh returns an opaque CIE LCh colour.
func LCh(l, c, h float64) Color { return New(SpaceLCh, l, c, h) }

// XYZ returns an opaque CIE XYZ colour.
func XYZ(x, y, z float64) Color { return New(SpaceXYZ, x, y, z) }

// OKLab returns an opaque OKLab colour.
func OKLab(l, a, b float64) Color { return New(SpaceOKLab, l, a, b) }

// WithAlpha returns a copy of c with its opacity set to a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Opaque reports whether the colour has full opacity.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// In converts the colour to the given space.
func (c Color) In(space Space) Color {
	return Convert(c, space)
}

// HSL returns the hue (degrees), saturation and lightness of the colour.
func (c Color) HSL() (h, s, l float64) {
	hsl := Convert(c, SpaceHSL)
	return hsl.C[0], hsl.C[1], hsl.C[2]
}

// WithLightness returns an HSL colour with the hue, saturation and opacity of
// c and the given lightness.
func (c Color) WithLightness(l float64) Color {
	h, s, _ := c.HSL()
	return HSL(h, s, l).WithAlpha(c.A)
}

// Clamped returns the colour as sRGB with every channel clamped to [0,1].
func (c Color) Clamped() Color {
	rgb := Convert(c, SpaceSRGB)
	for i := range rgb.C {
		rgb.C[i] = clamp01(rgb.C[i])
	}
	rgb.A = clamp01(rgb.A)
	return rgb
}

// RGB255 returns the colour's clamped sRGB channels as 8-bit values.
func (c Color) RGB255() (r, g, b uint8) {
	rgb := c.Clamped()
	return to8(rgb.C[0]), to8(rgb.C[1]), to8(rgb.C[2])
}

// Hex returns the colour as a hex string (e.g., "#1a2b3c"), with an alpha
// byte appended when the colour is not opaque.
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	if c.Opaque() {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, to8(clamp01(c.A)))
}

// String returns the colour in a functional notation for its space,
// e.g. "hsl(210, 0.5, 0.4)".
func (c Color) String() string {
	var sb strings.Builder
	sb.WriteString(c.Space.String())
	sb.WriteByte('(')
	for i, v := range c.C {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatFloat(v))
	}
	if !c.Opaque() {
		sb.WriteString(" / ")
		sb.WriteString(formatFloat(c.A))
	}
	sb.WriteByte(')')
	return sb.String()
}

func formatFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
