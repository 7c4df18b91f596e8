package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrast/internal/accessibility"
	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/contrast"
)

type checkOptions struct {
	algorithm   *algorithmFlag
	contentType string
	level       string
	threshold   float64
	preview     bool
}

// newCheckCmd returns the check command.
func newCheckCmd() *cobra.Command {
	opts := &checkOptions{
		algorithm: newAlgorithmFlag(contrast.AlgorithmAPCA, true),
	}

	cmd := &cobra.Command{
		Use:   "check <foreground> <background>",
		Short: "Measure the contrast between two colours",
		Long: `Measure the contrast of a foreground (text) colour on a background colour.

Colours may be given as hex (#rgb, #rrggbb, #rrggbbaa) or in functional
notation: rgb(), hsl(), lab(), lch(), oklab(). A translucent foreground is
composited over the background for APCA.

Examples:
  # Every algorithm
  contrast check '#777' '#fff'

  # APCA only, with a pass/fail verdict for body text
  contrast check -a apca --content-type body '#777' '#fff'

  # WCAG 2.1 at level AAA for large text
  contrast check -a wcag21 --content-type large --level AAA 'hsl(210 60% 40%)' white`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	registerAlgorithmFlag(cmd.Flags(), opts.algorithm)
	cmd.Flags().StringVar(&opts.contentType, "content-type", "", "content type for a pass/fail verdict (body, content, large, ui, placeholder, decorative)")
	cmd.Flags().StringVar(&opts.level, "level", string(accessibility.LevelAA), "conformance level (AA, AAA)")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", contrast.DefaultDeltaPhiThreshold, "Delta-Phi* perceptual threshold")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string, opts *checkOptions) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, config)

	fg, err := parseColour(args[0])
	if err != nil {
		return err
	}
	bg, err := parseColour(args[1])
	if err != nil {
		return err
	}

	var (
		contentType accessibility.ContentType
		level       accessibility.Level
	)
	if opts.contentType != "" {
		if contentType, err = accessibility.ParseContentType(opts.contentType); err != nil {
			return err
		}
		if level, err = accessibility.ParseLevel(opts.level); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.preview && !colour.DisableColourOutput && colour.SupportsANSIColours() {
		fmt.Fprintf(out, "%s\n\n", colour.ColourPreviewWithText(bg, fg, "Sample", 16))
	}
	fmt.Fprintf(out, "Foreground: %s\n", fg.Hex())
	fmt.Fprintf(out, "Background: %s\n\n", bg.Hex())

	headers := []string{"Algorithm", "Contrast"}
	if contentType != "" {
		headers = append(headers, "Required", "Result")
	}
	table := NewTable(headers)
	table.AlignRight(1)

	for _, alg := range opts.algorithm.resolve(contrast.ValidAlgorithms()...) {
		value := measure(alg, fg, bg, opts.threshold)
		logger.Debug("measured", "algorithm", alg, "contrast", value)

		row := []string{alg.String(), formatContrast(value)}
		if contentType != "" {
			row = append(row, verdict(alg, fg, bg, contentType, level)...)
		}
		table.AddRow(row)
	}

	fmt.Fprint(out, table.Render())
	return nil
}

func measure(alg contrast.Algorithm, fg, bg colour.Color, threshold float64) float64 {
	if alg == contrast.AlgorithmDeltaPhi {
		return contrast.DeltaPhiStar(fg, bg, contrast.WithThreshold(threshold))
	}
	value, _ := contrast.Contrast(alg, fg, bg)
	return value
}

// verdict returns the Required and Result cells for one algorithm.
func verdict(alg contrast.Algorithm, fg, bg colour.Color, ct accessibility.ContentType, level accessibility.Level) []string {
	res, err := accessibility.Evaluate(alg, fg, bg, ct, level)
	if errors.Is(err, accessibility.ErrNoThresholds) {
		return []string{"-", "-"}
	}
	if err != nil {
		return []string{"-", err.Error()}
	}
	result := "fail"
	if res.Pass {
		result = "pass"
	}
	return []string{formatContrast(res.Required), result}
}

func formatContrast(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
