package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrast/internal/accessibility"
	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/contrast"
)

type suggestOptions struct {
	algorithm   *algorithmFlag
	contentType string
	level       string
}

// newSuggestCmd returns the suggest command.
func newSuggestCmd() *cobra.Command {
	opts := &suggestOptions{
		algorithm: newAlgorithmFlag(contrast.AlgorithmAPCA, false),
	}

	cmd := &cobra.Command{
		Use:   "suggest <foreground> <background>",
		Short: "Suggest a foreground colour that meets an accessibility threshold",
		Long: `Check a colour pair against the APCA or WCAG 2.1 threshold for a content
type, and when it fails, suggest the nearest passing variant of the foreground
with the same hue and saturation.

Examples:
  # APCA body text
  contrast suggest '#888' '#fff'

  # WCAG 2.1 AA for normal text
  contrast suggest -a wcag21 --content-type body '#888' '#fff'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, args, opts)
		},
	}

	registerAlgorithmFlag(cmd.Flags(), opts.algorithm)
	cmd.Flags().StringVar(&opts.contentType, "content-type", string(accessibility.ContentBody), "content type (body, content, large, ui, placeholder, decorative)")
	cmd.Flags().StringVar(&opts.level, "level", string(accessibility.LevelAA), "conformance level (AA, AAA)")

	return cmd
}

// runSuggest executes the suggest command.
func runSuggest(cmd *cobra.Command, args []string, opts *suggestOptions) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, config)

	alg := opts.algorithm.resolve(config.Algorithm)[0]
	ct, err := accessibility.ParseContentType(opts.contentType)
	if err != nil {
		return err
	}
	level, err := accessibility.ParseLevel(opts.level)
	if err != nil {
		return err
	}

	fg, err := parseColour(args[0])
	if err != nil {
		return err
	}
	bg, err := parseColour(args[1])
	if err != nil {
		return err
	}

	before, err := accessibility.Evaluate(alg, fg, bg, ct, level)
	if err != nil {
		return err
	}
	suggested, after, err := accessibility.Suggest(alg, fg, bg, ct, level,
		contrast.WithLogger(logger.Named("solver")))
	if err != nil {
		return err
	}
	logger.Debug("suggested", "algorithm", alg, "from", fg.Hex(), "to", suggested.Hex(), "pass", after.Pass)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Requirement: %s %s %s >= %s\n", alg, level, ct, formatContrast(before.Required))
	fmt.Fprintf(out, "Original:    %s  %s  %s\n", colour.FormatColourWithPreview(fg, 4), formatContrast(before.Contrast), passLabel(before.Pass))

	if before.Pass {
		fmt.Fprintln(out, "No change needed.")
		return nil
	}
	fmt.Fprintf(out, "Suggested:   %s  %s  %s\n", colour.FormatColourWithPreview(suggested, 4), formatContrast(after.Contrast), passLabel(after.Pass))
	if !after.Pass {
		fmt.Fprintln(out, "The requirement cannot be met by changing lightness alone.")
	}
	return nil
}

func passLabel(pass bool) string {
	if pass {
		return "pass"
	}
	return "fail"
}
