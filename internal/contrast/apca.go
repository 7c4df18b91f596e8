package contrast

import (
	"math"

	"github.com/jmylchreest/contrast/internal/colour"
)

// APCA-W3 0.0.98G-4g constants.
const (
	apcaBlackThreshold = 0.022
	apcaBlackClamp     = 1.414
	apcaDeltaYMin      = 0.0005
	apcaLowClip        = 0.1
	apcaMinY           = 0.0
	apcaMaxY           = 1.1
	apcaOutputScale    = 100.0
)

// Polarity says which of the two compared colours is lighter.
type Polarity int

const (
	// DarkOnLight is dark text on a lighter background. APCA is positive.
	DarkOnLight Polarity = iota
	// LightOnDark is light text on a darker background. APCA is negative.
	LightOnDark
)

// String returns the string representation of a Polarity.
func (p Polarity) String() string {
	switch p {
	case DarkOnLight:
		return "dark-on-light"
	case LightOnDark:
		return "light-on-dark"
	default:
		return "unknown"
	}
}

// polarityParams holds the normalisation constants for one APCA branch.
type polarityParams struct {
	bgExp  float64
	fgExp  float64
	scale  float64
	offset float64
}

var apcaParams = map[Polarity]polarityParams{
	DarkOnLight: {bgExp: 0.56, fgExp: 0.57, scale: 1.14, offset: 0.027},
	LightOnDark: {bgExp: 0.65, fgExp: 0.62, scale: 1.14, offset: 0.027},
}

// PolarityOf returns the APCA polarity of text colour fg on background bg.
func PolarityOf(fg, bg colour.Color) Polarity {
	fgY, bgY := apcaPair(fg, bg)
	return polarity(fgY, bgY)
}

func polarity(fgY, bgY float64) Polarity {
	if bgY > fgY {
		return DarkOnLight
	}
	return LightOnDark
}

// APCA returns the lightness contrast (Lc) of text colour fg on background
// bg using the Accessible Perceptual Contrast Algorithm.
//
// The result is positive for dark text on a light background and negative
// for light text on a dark background, roughly within [-108, 106] for sRGB
// input. Near-identical colours, and colours whose luminance is NaN or falls
// outside the accepted input range, give 0. A translucent foreground is composited
// over the background first; the background's opacity is ignored.
func APCA(fg, bg colour.Color) float64 {
	fgY, bgY := apcaPair(fg, bg)

	if !inRange(fgY, apcaMinY, apcaMaxY) || !inRange(bgY, apcaMinY, apcaMaxY) {
		return 0
	}

	fgY = softClamp(fgY, apcaBlackThreshold, apcaBlackClamp)
	bgY = softClamp(bgY, apcaBlackThreshold, apcaBlackClamp)

	if math.Abs(bgY-fgY) < apcaDeltaYMin {
		return 0
	}

	pol := polarity(fgY, bgY)
	p := apcaParams[pol]

	raw := (math.Pow(bgY, p.bgExp) - math.Pow(fgY, p.fgExp)) * p.scale
	if math.Abs(raw) < apcaLowClip {
		return 0
	}

	if pol == DarkOnLight {
		return (raw - p.offset) * apcaOutputScale
	}
	return (raw + p.offset) * apcaOutputScale
}

// apcaPair returns the screen luminance of fg (composited over bg when
// translucent) and bg.
func apcaPair(fg, bg colour.Color) (fgY, bgY float64) {
	fgRGB := colour.Convert(fg, colour.SpaceSRGB)
	bgRGB := colour.Convert(bg, colour.SpaceSRGB)
	if fgRGB.A < 1 {
		fgRGB = blend(fgRGB, bgRGB)
	}
	return apcaLuminance(fgRGB), apcaLuminance(bgRGB)
}
