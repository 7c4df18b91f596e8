package colour

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// cieScale converts between go-colorful's normalised Lab/LCh units and CIE
// units (L* in [0,100]).
const cieScale = 100.0

// Convert returns c expressed in the target space. Conversion is total:
// out-of-gamut values are carried through unclamped, and opacity is
// preserved. All conversions pivot through gamma-encoded sRGB.
func Convert(c Color, to Space) Color {
	if c.Space == to {
		return c
	}
	if c.Space == SpaceLCh && to == SpaceLab {
		return lchToLab(c)
	}
	if c.Space == SpaceLab && to == SpaceLCh {
		return labToLCh(c)
	}
	return fromColorful(toColorful(c), to, c.A)
}

// toColorful maps any supported colour onto go-colorful's sRGB representation.
func toColorful(c Color) colorful.Color {
	x, y, z := c.C[0], c.C[1], c.C[2]
	switch c.Space {
	case SpaceSRGB:
		return colorful.Color{R: x, G: y, B: z}
	case SpaceLinearRGB:
		return colorful.LinearRgb(x, y, z)
	case SpaceHSL:
		return colorful.Hsl(normaliseHue(x), y, z)
	case SpaceHSV:
		return colorful.Hsv(normaliseHue(x), y, z)
	case SpaceLab:
		return colorful.Lab(x/cieScale, y/cieScale, z/cieScale)
	case SpaceLCh:
		return colorful.Hcl(normaliseHue(z), y/cieScale, x/cieScale)
	case SpaceXYZ:
		return colorful.Xyz(x, y, z)
	case SpaceOKLab:
		return colorful.OkLab(x, y, z)
	default:
		return colorful.Color{}
	}
}

func fromColorful(cc colorful.Color, to Space, alpha float64) Color {
	var out Color
	switch to {
	case SpaceSRGB:
		out = SRGB(cc.R, cc.G, cc.B)
	case SpaceLinearRGB:
		r, g, b := cc.LinearRgb()
		out = New(SpaceLinearRGB, r, g, b)
	case SpaceHSL:
		out = HSL(cc.Hsl())
	case SpaceHSV:
		h, s, v := cc.Hsv()
		out = New(SpaceHSV, h, s, v)
	case SpaceLab:
		l, a, b := cc.Lab()
		out = Lab(l*cieScale, a*cieScale, b*cieScale)
	case SpaceLCh:
		h, ch, l := cc.Hcl()
		out = LCh(l*cieScale, ch*cieScale, h)
	case SpaceXYZ:
		out = XYZ(cc.Xyz())
	case SpaceOKLab:
		out = OKLab(cc.OkLab())
	default:
		out = SRGB(cc.R, cc.G, cc.B)
	}
	return out.WithAlpha(alpha)
}

// LCh and Lab share L*, so the cylindrical conversion is done directly
// rather than through sRGB.
func lchToLab(c Color) Color {
	rad := normaliseHue(c.C[2]) * math.Pi / 180
	return Lab(c.C[0], c.C[1]*math.Cos(rad), c.C[1]*math.Sin(rad)).WithAlpha(c.A)
}

func labToLCh(c Color) Color {
	l, a, b := c.C[0], c.C[1], c.C[2]
	h := math.Atan2(b, a) * 180 / math.Pi
	return LCh(l, math.Hypot(a, b), normaliseHue(h)).WithAlpha(c.A)
}

// normaliseHue wraps a hue angle into [0,360). Non-finite hues map to 0.
func normaliseHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
