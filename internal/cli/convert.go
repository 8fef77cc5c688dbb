package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/scheme"
)

func newSchemesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List available palette schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes := scheme.All()
			out := cmd.OutOrStdout()

			if asJSON {
				return writeJSON(out, schemes)
			}

			table := NewTable("ID", "Name", "Base", "Description")
			table.SetColumnMaxWidth(3, 50)
			for _, d := range schemes {
				base := "-"
				if scheme.RequiresBase(d.ID) {
					base = "yes"
				}
				table.AddRow(d.ID, d.Name, base, d.Description)
			}
			return table.Write(out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "convert <hex>...",
		Short: "Show RGB, HSL and text contrast for colours",
		Example: `  swatch convert "#4A90E2" ff6b6b
  swatch convert 2C3E50 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseHexArgs(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asJSON {
				described := make([]colour.ColourJSON, len(colours))
				for i, hex := range colours {
					described[i] = colour.Describe(hex)
				}
				return writeJSON(out, described)
			}

			preview := a.showPreview(out)
			headers := []string{"Hex", "RGB", "HSL", "Name", "Tone", "Text"}
			if preview {
				headers = append([]string{"Swatch"}, headers...)
			}

			table := NewTable(headers...)
			for _, hex := range colours {
				d := colour.Describe(hex)
				tone := "dark"
				if colour.IsLight(hex) {
					tone = "light"
				}
				row := []string{d.Hex, d.RGB.String(), d.HSL.String(), d.Name, tone, d.TextColor}
				if preview {
					row = append([]string{colour.ColourPreview(d.RGB, 6)}, row...)
				}
				table.AddRow(row...)
			}
			return table.Write(out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

// newTintsCmd builds the tints or shades command; both share flags and output.
func newTintsCmd(a *app, kind string) *cobra.Command {
	var count int

	steps := colour.Tints
	short := "Mix a colour towards white"
	if kind == "shades" {
		steps = colour.Shades
		short = "Mix a colour towards black"
	}

	cmd := &cobra.Command{
		Use:   kind + " <hex>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colour.ParseHex(args[0])
			if err != nil {
				return err
			}
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			out := cmd.OutOrStdout()
			palette := colour.NewPalette(steps(rgb.Hex(), count))
			_, err = fmt.Fprint(out, palette.StringWithPreview(a.showPreview(out)))
			return err
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", scheme.DefaultCount, "number of steps")
	return cmd
}

func newAdjustCmd() *cobra.Command {
	var percent float64

	cmd := &cobra.Command{
		Use:   "adjust <hex>",
		Short: "Lighten or darken a colour by a percentage of lightness",
		Example: `  swatch adjust "#4A90E2" --percent 15
  swatch adjust "#4A90E2" --percent=-20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := colour.ParseHex(args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), colour.AdjustBrightness(args[0], percent))
			return err
		},
	}

	cmd.Flags().Float64VarP(&percent, "percent", "p", 10, "relative lightness change in percent (negative darkens)")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
