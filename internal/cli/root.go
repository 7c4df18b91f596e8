// Package cli provides the command-line interface for contrast.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/version"
)

// NewRootCmd builds the command tree. Configuration is read from the
// environment when the command runs, so each call returns an independent
// tree that is safe to use in tests.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contrast",
		Short: "Measure and fix colour contrast",
		Long: `contrast computes perceptual contrast between a text colour and a background
using APCA, WCAG 2.1, Michelson or Delta-Phi*, and solves for a variant of the
text colour (same hue and saturation) that reaches a target contrast.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newHarmonyCmd())

	return rootCmd
}

// loadConfig reads the shared configuration and applies global side effects.
func loadConfig() (Config, error) {
	config, err := NewConfigBuilder().WithEnvConfig().Build()
	if err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	if config.NoColour {
		colour.DisableColourOutput = true
	}
	return config, nil
}

// parseColour parses a command-line colour argument as sRGB.
func parseColour(arg string) (colour.Color, error) {
	c, err := colour.Parse(arg, colour.SpaceSRGB)
	if err != nil {
		return colour.Color{}, fmt.Errorf("failed to parse colour: %w", err)
	}
	return c, nil
}

// newVersionCmd returns the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
