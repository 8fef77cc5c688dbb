package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// contrastReport is the JSON form of the contrast command.
type contrastReport struct {
	colour.ContrastResult
	Foreground      string   `json:"foreground"`
	Background      string   `json:"background"`
	Recommendations []string `json:"recommendations"`
}

func newContrastCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast of a text and background pair",
		Example: `  swatch contrast "#FFFFFF" "#4A90E2"
  swatch contrast 767676 FFFFFF --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := parseHexArgs(args)
			if err != nil {
				return err
			}
			fg, bg := pair[0], pair[1]

			report := contrastReport{
				Foreground:      fg,
				Background:      bg,
				ContrastResult:  colour.CheckContrast(fg, bg),
				Recommendations: colour.ContrastRecommendations(fg, bg),
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, report)
			}

			fmt.Fprintf(out, "Foreground:  %s\n", fg)
			fmt.Fprintf(out, "Background:  %s\n", bg)
			fmt.Fprintf(out, "Ratio:       %s:1\n", report.Ratio)
			fmt.Fprintf(out, "Normal text: %s (%s)\n", report.NormalText.Level, report.NormalText.Status)
			fmt.Fprintf(out, "Large text:  %s (%s)\n", report.LargeText.Level, report.LargeText.Status)
			fmt.Fprintf(out, "Accessible:  %t\n", report.IsAccessible)
			fmt.Fprintln(out)
			for _, r := range report.Recommendations {
				fmt.Fprintf(out, "  %s\n", r)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newBestTextCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "best-text <background>...",
		Short: "Pick black or white text for each background colour",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseHexArgs(args)
			if err != nil {
				return err
			}

			results := colour.CheckPaletteAccessibility(colours)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, results)
			}

			preview := a.showPreview(out)
			headers := []string{"Background", "Text", "Contrast", "Level", "White", "Black"}
			if preview {
				headers = append([]string{"Sample"}, headers...)
			}

			table := NewTable(headers...)
			for _, r := range results {
				row := []string{
					r.Colour,
					r.TextColour.Colour,
					r.TextColour.Contrast,
					fmt.Sprintf("%s (%s)", r.TextColour.Accessibility.Level, r.TextColour.Accessibility.Status),
					r.WhiteTextContrast,
					r.BlackTextContrast,
				}
				if preview {
					rgb, _ := colour.HexToRGB(r.Colour)
					row = append([]string{colour.ColourPreviewWithText(rgb, "Aa", 6)}, row...)
				}
				table.AddRow(row...)
			}
			return table.Write(out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newAccentCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "accent <base> <candidate>...",
		Short:   "Pick the candidate with the highest contrast against a base colour",
		Example: `  swatch accent "#2C3E50" "#E74C3C" "#F1C40F" "#3498DB"`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseHexArgs(args)
			if err != nil {
				return err
			}

			base, candidates := colours[0], colours[1:]
			best := colour.FindBestAccentColour(base, candidates)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%.2f:1 against %s)\n", best, colour.ContrastRatio(best, base), base)
			return err
		},
	}
}
