package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/contrast"
)

type solveOptions struct {
	algorithm     *algorithmFlag
	target        float64
	maxIterations int
	epsilon       float64
	format        string
}

// solveJSON is the JSON output of the solve command.
type solveJSON struct {
	Algorithm  string  `json:"algorithm"`
	Hex        string  `json:"hex"`
	HSL        string  `json:"hsl"`
	Target     float64 `json:"target"`
	Contrast   float64 `json:"contrast"`
	Iterations int     `json:"iterations"`
}

// newSolveCmd returns the solve command.
func newSolveCmd() *cobra.Command {
	opts := &solveOptions{
		algorithm: newAlgorithmFlag(contrast.AlgorithmAPCA, false),
	}

	cmd := &cobra.Command{
		Use:   "solve <foreground> <background> --target <contrast>",
		Short: "Find a foreground lightness that reaches a target contrast",
		Long: `Search for a variant of the foreground colour, with the same hue and
saturation, whose contrast against the background is as close as possible to
the target. Unreachable targets give the closest colour found.

For APCA the sign of the target does not matter: the magnitude is matched.

Examples:
  # APCA Lc 60 for grey text on white
  contrast solve --target 60 '#808080' '#ffffff'

  # WCAG 2.1 ratio 4.5 as JSON
  contrast solve -a wcag21 --target 4.5 --format json 'hsl(210 60% 40%)' '#fff'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, opts)
		},
	}

	registerAlgorithmFlag(cmd.Flags(), opts.algorithm)
	cmd.Flags().Float64VarP(&opts.target, "target", "t", 0, "target contrast")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", contrast.DefaultMaxIterations, "maximum search iterations")
	cmd.Flags().Float64Var(&opts.epsilon, "epsilon", contrast.DefaultEpsilon, "lightness tolerance at which the search stops")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// runSolve executes the solve command.
func runSolve(cmd *cobra.Command, args []string, opts *solveOptions) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, config)

	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("invalid format: %s (valid formats: text, json)", opts.format)
	}

	alg := opts.algorithm.resolve(config.Algorithm)[0]
	metric, err := alg.Metric()
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

	sol := contrast.SolveDetailed(fg, bg, opts.target, metric,
		contrast.WithMaxIterations(opts.maxIterations),
		contrast.WithEpsilon(opts.epsilon),
		contrast.WithLogger(logger.Named("solver")),
	)

	return writeSolution(cmd, alg, opts, sol)
}

func writeSolution(cmd *cobra.Command, alg contrast.Algorithm, opts *solveOptions, sol contrast.Solution) error {
	out := cmd.OutOrStdout()

	if opts.format == "json" {
		data, err := json.MarshalIndent(solveJSON{
			Algorithm:  alg.String(),
			Hex:        sol.Color.Hex(),
			HSL:        sol.Color.String(),
			Target:     opts.target,
			Contrast:   sol.Contrast,
			Iterations: sol.Iterations,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Colour:     %s\n", colour.FormatColourWithPreview(sol.Color, 4))
	fmt.Fprintf(out, "HSL:        %s\n", sol.Color)
	fmt.Fprintf(out, "Contrast:   %s (%s, target %s)\n", formatContrast(sol.Contrast), alg, formatContrast(opts.target))
	fmt.Fprintf(out, "Iterations: %d\n", sol.Iterations)
	return nil
}
