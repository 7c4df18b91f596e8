package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrast/internal/colour"
	"github.com/jmylchreest/contrast/internal/harmony"
)

// newHarmonyCmd returns the harmony command.
func newHarmonyCmd() *cobra.Command {
	var (
		scheme  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Generate a colour harmony from a base colour",
		Long: `Rotate the hue of a base colour to produce a classic colour harmony.
Saturation and lightness are kept.

Schemes: complementary, analogous, triadic, split-complementary, tetradic, square.

Examples:
  contrast harmony '#3366cc'
  contrast harmony --scheme triadic --preview 'hsl(210 60% 40%)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cmd, config)

			s, err := harmony.ParseScheme(scheme)
			if err != nil {
				return err
			}
			base, err := parseColour(args[0])
			if err != nil {
				return err
			}

			colours, err := harmony.Generate(base, s)
			if err != nil {
				return err
			}
			logger.Debug("generated harmony", "scheme", s, "count", len(colours))

			table := NewTable([]string{"#", "Hex", "HSL"})
			table.AlignRight(0)
			for i, c := range colours {
				hex := c.Hex()
				if preview {
					hex = colour.FormatColourWithPreview(c, 4)
				}
				table.AddRow([]string{fmt.Sprintf("%d", i), hex, c.In(colour.SpaceHSL).String()})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&scheme, "scheme", "s", string(harmony.Complementary), "harmony scheme")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in terminal")

	return cmd
}
