// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/store"
	"github.com/jmylchreest/swatch/internal/version"
)

// app carries state shared by every command of one root command instance.
type app struct {
	verbose bool
	quiet   bool
	noColor bool
	dataDir string

	cfg    *config.Config
	logger hclog.Logger
	store  store.Store
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "A colour palette generator",
		Long: `Swatch generates colour palettes from colour-theory schemes, converts
between hex, RGB and HSL, checks WCAG contrast, and keeps a local collection
of named palettes.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable ANSI colour previews")
	rootCmd.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "palette storage directory (default $XDG_DATA_HOME/swatch)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(a),
		newSchemesCmd(),
		newConvertCmd(a),
		newTintsCmd(a, "tints"),
		newTintsCmd(a, "shades"),
		newAdjustCmd(),
		newContrastCmd(),
		newBestTextCmd(a),
		newAccentCmd(),
		newPaletteCmd(a),
	)

	return rootCmd
}

// setup loads configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	if a.dataDir == "" {
		a.dataDir = cfg.DataDir
	}
	if cfg.NoColor {
		a.noColor = true
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet, cfg.LogLevel)
	a.logger.Debug("configuration loaded", "data_dir", a.dataDir, "default_scheme", cfg.DefaultScheme)
	return nil
}

// newLogger configures hclog: debug when verbose, silent when quiet.
func newLogger(out io.Writer, verbose, quiet bool, level string) hclog.Logger {
	switch {
	case quiet:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "swatch",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	case verbose:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "swatch",
			Output: out,
			Level:  hclog.Debug,
		})
	}

	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: out,
		Level:  lvl,
	})
}

// openStore returns the palette store, creating it on first use.
func (a *app) openStore() (store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	s, err := store.NewFileStore(a.dataDir, store.WithLogger(a.logger.Named("store")))
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

// showPreview reports whether ANSI swatches should be written to w.
func (a *app) showPreview(w io.Writer) bool {
	return !a.noColor && colour.SupportsANSIColours(w)
}

// status prints a progress line to stderr unless quiet.
func (a *app) status(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

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
