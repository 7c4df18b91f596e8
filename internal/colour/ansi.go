package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// ColourPreview returns an ANSI-coloured block for a colour.
// Width specifies how many characters wide the block should be.
func ColourPreview(c Color, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bgEscape(c) + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour block with text drawn over it in
// the given text colour. The text is centred and truncated to width runes.
func ColourPreviewWithText(bg, textColour Color, label string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	display := []rune(label)
	if len(display) > width {
		display = display[:width]
	}
	padding := (width - len(display)) / 2
	text := strings.Repeat(" ", padding) + string(display) + strings.Repeat(" ", width-len(display)-padding)

	return bgEscape(bg) + fgEscape(textColour) + text + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code,
// falling back to the bare hex code when colour output is unavailable.
func FormatColourWithPreview(c Color, width int) string {
	if DisableColourOutput || !SupportsANSIColours() {
		return c.Hex()
	}
	return fmt.Sprintf("%s %s", ColourPreview(c, width), c.Hex())
}

// SupportsANSIColours reports whether stdout looks like a terminal that
// accepts 24-bit colour escapes. A non-empty NO_COLOR and TERM=dumb disable it.
func SupportsANSIColours() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func bgEscape(c Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
}

func fgEscape(c Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, r, g, b, ansiSuffix)
}
