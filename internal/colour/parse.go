package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColour is returned when a colour string cannot be parsed.
var ErrInvalidColour = errors.New("invalid colour")

// Parse parses a colour string and converts the result to the given space.
//
// Accepted forms are hex (#rgb, #rgba, #rrggbb, #rrggbbaa, with or without
// the leading '#') and the functional notations rgb(), rgba(), hsl(), hsla(),
// lab(), lch() and oklab(). Arguments may be separated by commas or spaces,
// and alpha may follow a '/' or be given as a fourth argument.
func Parse(s string, to Space) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColour)
	}

	var (
		c   Color
		err error
	)
	if open := strings.IndexByte(in, '('); open > 0 {
		c, err = parseFunctional(in, open)
	} else {
		c, err = parseHex(in)
	}
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %w", ErrInvalidColour, s, err)
	}
	return Convert(c, to), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level colour constants.
func MustParse(s string, to Space) Color {
	c, err := Parse(s, to)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(in string) (Color, error) {
	hex := strings.TrimPrefix(in, "#")
	switch len(hex) {
	case 3, 6:
		cc, err := colorful.Hex("#" + expandHex(hex))
		if err != nil {
			return Color{}, err
		}
		return SRGB(cc.R, cc.G, cc.B), nil
	case 4, 8:
		full := expandHex(hex)
		cc, err := colorful.Hex("#" + full[:6])
		if err != nil {
			return Color{}, err
		}
		a, err := strconv.ParseUint(full[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("bad alpha %q", full[6:])
		}
		return SRGB(cc.R, cc.G, cc.B).WithAlpha(float64(a) / 255), nil
	default:
		return Color{}, fmt.Errorf("hex colour must have 3, 4, 6 or 8 digits, got %d", len(hex))
	}
}

// expandHex turns the short forms #rgb and #rgba into #rrggbb and #rrggbbaa.
func expandHex(hex string) string {
	if len(hex) != 3 && len(hex) != 4 {
		return hex
	}
	var sb strings.Builder
	for _, r := range hex {
		sb.WriteRune(r)
		sb.WriteRune(r)
	}
	return sb.String()
}

func parseFunctional(in string, open int) (Color, error) {
	if !strings.HasSuffix(in, ")") {
		return Color{}, errors.New("missing closing parenthesis")
	}
	name := strings.TrimSpace(in[:open])
	body := in[open+1 : len(in)-1]

	args, alpha, err := splitArgs(body)
	if err != nil {
		return Color{}, err
	}
	if len(args) != 3 {
		return Color{}, fmt.Errorf("%s() takes 3 channel arguments, got %d", name, len(args))
	}

	var c Color
	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		for i, a := range args {
			if ch[i], err = parseNumber(a, 255); err != nil {
				return Color{}, err
			}
		}
		c = SRGB(ch[0]/255, ch[1]/255, ch[2]/255)
	case "hsl", "hsla":
		h, err := parseHue(args[0])
		if err != nil {
			return Color{}, err
		}
		sat, err := parseFraction(args[1])
		if err != nil {
			return Color{}, err
		}
		l, err := parseFraction(args[2])
		if err != nil {
			return Color{}, err
		}
		c = HSL(h, sat, l)
	case "lab":
		ch, err := parseNumbers(args, 100, 125, 125)
		if err != nil {
			return Color{}, err
		}
		c = Lab(ch[0], ch[1], ch[2])
	case "lch":
		l, err := parseNumber(args[0], 100)
		if err != nil {
			return Color{}, err
		}
		chroma, err := parseNumber(args[1], 150)
		if err != nil {
			return Color{}, err
		}
		h, err := parseHue(args[2])
		if err != nil {
			return Color{}, err
		}
		c = LCh(l, chroma, h)
	case "oklab":
		ch, err := parseNumbers(args, 1, 0.4, 0.4)
		if err != nil {
			return Color{}, err
		}
		c = OKLab(ch[0], ch[1], ch[2])
	default:
		return Color{}, fmt.Errorf("unknown colour function %q", name)
	}

	if alpha != "" {
		a, err := parseFraction(alpha)
		if err != nil {
			return Color{}, fmt.Errorf("alpha: %w", err)
		}
		c = c.WithAlpha(clamp01(a))
	}
	return c, nil
}

// splitArgs splits a functional body into channel arguments and an optional
// alpha argument. Both "a, b, c, d" and "a b c / d" are accepted.
func splitArgs(body string) ([]string, string, error) {
	var alpha string
	if slash := strings.IndexByte(body, '/'); slash >= 0 {
		alpha = strings.TrimSpace(body[slash+1:])
		body = body[:slash]
		if alpha == "" {
			return nil, "", errors.New("empty alpha after '/'")
		}
	}

	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 4 && alpha == "" {
		alpha = fields[3]
		fields = fields[:3]
	}
	return fields, alpha, nil
}

func parseNumbers(args []string, percentScale ...float64) ([3]float64, error) {
	var out [3]float64
	for i, a := range args {
		v, err := parseNumber(a, percentScale[i])
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// parseNumber parses a plain number, or a percentage scaled so that 100%
// equals percentScale.
func parseNumber(s string, percentScale float64) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("bad percentage %q", s)
		}
		return v / 100 * percentScale, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return v, nil
}

// parseFraction parses a value in [0,1]. Percentages map 100% to 1, and plain
// numbers greater than 1 are read as percentages.
func parseFraction(s string) (float64, error) {
	v, err := parseNumber(s, 1)
	if err != nil {
		return 0, err
	}
	if !strings.HasSuffix(s, "%") && v > 1 {
		v /= 100
	}
	return v, nil
}

func parseHue(s string) (float64, error) {
	s = strings.TrimSuffix(s, "deg")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad hue %q", s)
	}
	return normaliseHue(v), nil
}
