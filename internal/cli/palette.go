package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/compression"
	"github.com/jmylchreest/swatch/internal/scheme"
	"github.com/jmylchreest/swatch/internal/security"
	"github.com/jmylchreest/swatch/internal/store"
)

func newPaletteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "palette",
		Aliases: []string{"palettes", "p"},
		Short:   "Manage saved palettes",
		Long: `Manage the local collection of saved palettes.

Palettes are stored as JSON in the data directory (--data-dir, SWATCH_DATA_DIR
or $XDG_DATA_HOME/swatch).`,
	}

	cmd.AddCommand(
		newPaletteListCmd(a),
		newPaletteShowCmd(a),
		newPaletteSaveCmd(a),
		newPaletteCurrentCmd(a),
		newPaletteDeleteCmd(a),
		newPaletteSearchCmd(a),
		newPaletteTagsCmd(a),
		newPaletteUpdateCmd(a),
		newPaletteExportCmd(a),
		newPaletteImportCmd(a),
		newPaletteClearCmd(a),
	)

	return cmd
}

func newPaletteListCmd(a *app) *cobra.Command {
	var (
		tags   []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved palettes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			var palettes []store.Palette
			if len(tags) > 0 {
				palettes, err = s.FilterByTags(cmd.Context(), tags)
			} else {
				palettes, err = s.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			return writePalettes(cmd, a, palettes, asJSON)
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "only palettes carrying all of these tags")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newPaletteSearchCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find palettes by name or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			palettes, err := s.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writePalettes(cmd, a, palettes, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

// writePalettes prints palettes as a table, or as JSON when asJSON is set.
func writePalettes(cmd *cobra.Command, a *app, palettes []store.Palette, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		if palettes == nil {
			palettes = []store.Palette{}
		}
		return writeJSON(out, palettes)
	}

	if len(palettes) == 0 {
		a.status(cmd, "No palettes found")
		return nil
	}

	preview := a.showPreview(out)
	table := NewTable("ID", "Name", "Scheme", "Colours", "Tags", "Updated")
	for _, p := range palettes {
		table.AddRow(
			p.ID,
			p.Name,
			p.Scheme,
			formatColours(p.Colors, preview),
			strings.Join(p.Tags, ", "),
			p.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}
	return table.Write(out)
}

// formatColours renders a palette as a row of swatches, or its count without colour support.
func formatColours(colours []string, preview bool) string {
	if !preview {
		return fmt.Sprintf("%d", len(colours))
	}

	var b strings.Builder
	for _, hex := range colours {
		if rgb, ok := colour.HexToRGB(hex); ok {
			b.WriteString(colour.ColourPreview(rgb, 2))
		}
	}
	return b.String()
}

func newPaletteShowCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		a11y   bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			p, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, p)
			}

			fmt.Fprintf(out, "%s (%s)\n", p.Name, p.ID)
			fmt.Fprintf(out, "Scheme:  %s\n", p.Scheme)
			if len(p.Tags) > 0 {
				fmt.Fprintf(out, "Tags:    %s\n", strings.Join(p.Tags, ", "))
			}
			fmt.Fprintf(out, "Created: %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Updated: %s\n\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprint(out, colour.NewPalette(p.Colors).StringWithPreview(a.showPreview(out)))

			if a11y {
				fmt.Fprintln(out)
				table := NewTable("Background", "Text", "Contrast", "Level")
				for _, r := range colour.CheckPaletteAccessibility(p.Colors) {
					table.AddRow(r.Colour, r.TextColour.Colour, r.TextColour.Contrast, string(r.TextColour.Accessibility.Level))
				}
				return table.Write(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&a11y, "a11y", false, "include text accessibility for each colour")
	return cmd
}

func newPaletteSaveCmd(a *app) *cobra.Command {
	var (
		schemeID string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "save <name> [hex...]",
		Short: "Save colours, or the current palette, under a name",
		Long: `Save a palette under a name. Without colours the current palette
(from the last 'swatch generate') is saved.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			name := args[0]
			var colours []string
			if len(args) > 1 {
				colours, err = parseHexArgs(args[1:])
				if err != nil {
					return err
				}
			} else {
				current, err := s.Current(cmd.Context())
				if err != nil {
					return err
				}
				colours = current.Colors
				if schemeID == "" {
					schemeID = current.Scheme
				}
			}

			if schemeID != "" {
				if _, ok := scheme.Lookup(schemeID); !ok {
					return fmt.Errorf("%w: %s", scheme.ErrUnknownScheme, schemeID)
				}
			}

			p, err := s.Save(cmd.Context(), colours, name, schemeID, tags)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return err
		},
	}

	cmd.Flags().StringVarP(&schemeID, "scheme", "s", "", "scheme the palette came from")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tags for the palette")
	return cmd
}

func newPaletteCurrentCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the current working palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			current, err := s.Current(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			palette := colour.NewPalette(current.Colors)
			if asJSON {
				data, err := palette.ToJSON(current.Scheme)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			fmt.Fprintf(out, "Scheme: %s\n", current.Scheme)
			if current.Base != "" {
				fmt.Fprintf(out, "Base:   %s\n", current.Base)
			}
			_, err = fmt.Fprint(out, palette.StringWithPreview(a.showPreview(out)))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newPaletteDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm"},
		Short:   "Delete saved palettes",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			for _, id := range args {
				if err := s.Delete(cmd.Context(), id); err != nil {
					return err
				}
				a.status(cmd, "✓ Deleted %s", id)
			}
			return nil
		},
	}
}

func newPaletteTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			tags, err := s.Tags(cmd.Context())
			if err != nil {
				return err
			}
			for _, tag := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func newPaletteUpdateCmd(a *app) *cobra.Command {
	var (
		name     string
		schemeID string
		colours  []string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename, retag or recolour a saved palette",
		Example: `  swatch palette update 0b6f... --name "Deep sea" --tags ocean,dark
  swatch palette update 0b6f... --colors "#003049,#D62828,#F77F00"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("scheme") && !flags.Changed("colors") && !flags.Changed("tags") {
				return fmt.Errorf("nothing to update: set at least one of --name, --scheme, --colors or --tags")
			}

			var u store.Update
			if flags.Changed("name") {
				u.Name = &name
			}
			if flags.Changed("scheme") {
				if _, ok := scheme.Lookup(schemeID); !ok {
					return fmt.Errorf("%w: %s", scheme.ErrUnknownScheme, schemeID)
				}
				u.Scheme = &schemeID
			}
			if flags.Changed("colors") {
				parsed, err := parseHexArgs(colours)
				if err != nil {
					return err
				}
				u.Colors = parsed
			}
			if flags.Changed("tags") {
				u.Tags = append([]string{}, tags...)
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			p, err := s.Update(cmd.Context(), args[0], u)
			if err != nil {
				return err
			}
			a.status(cmd, "✓ Updated %s (%s)", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&schemeID, "scheme", "", "new scheme id")
	cmd.Flags().StringSliceVar(&colours, "colors", nil, "replacement colours")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "replacement tags (empty clears)")
	return cmd
}

func newPaletteExportCmd(a *app) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved palettes as plain or compressed JSON",
		Example: `  swatch palette export > palettes.json
  swatch palette export -o backup.json.xz
  swatch palette export --format gzip > backup.json.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			f := store.Format(format)
			if output == "" {
				return s.Export(cmd.Context(), cmd.OutOrStdout(), f)
			}

			if err := security.ValidateOutputPath(output, ".json", ".xz", ".gz"); err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				switch compression.FromExt(output) {
				case compression.XZ:
					f = store.FormatXZ
				case compression.Gzip:
					f = store.FormatGzip
				}
			}

			file, err := os.Create(output) // #nosec G304 - output path chosen by the user and validated above
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}

			exportErr := s.Export(cmd.Context(), file, f)
			closeErr := file.Close()
			if exportErr != nil {
				return exportErr
			}
			if closeErr != nil {
				return fmt.Errorf("failed to close export file: %w", closeErr)
			}

			a.status(cmd, "✓ Exported palettes to %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a .json, .xz or .gz file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", string(store.FormatJSON), "export format (json, xz, gzip)")
	return cmd
}

func newPaletteImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Import palettes from a JSON or xz export",
		Long: `Import palettes from a file written by 'swatch palette export'.
xz, gzip and bzip2 compression is detected automatically. Use - to read stdin.
Imported palettes receive new ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			var r io.Reader
			if args[0] == "-" {
				r = cmd.InOrStdin()
			} else {
				file, err := os.Open(args[0]) // #nosec G304 - import path chosen by the user
				if err != nil {
					return fmt.Errorf("failed to open import file: %w", err)
				}
				defer file.Close()
				r = file
			}

			n, err := s.Import(cmd.Context(), r)
			if err != nil {
				return err
			}
			a.status(cmd, "✓ Imported %d palettes", n)
			return nil
		},
	}
}

func newPaletteClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			palettes, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete %d palettes without --yes", len(palettes))
			}

			if err := s.Clear(cmd.Context()); err != nil {
				return err
			}
			a.status(cmd, "✓ Deleted %d palettes", len(palettes))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deletion")
	return cmd
}
