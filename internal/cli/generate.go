package cli

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mathrand "math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/scheme"
	"github.com/jmylchreest/swatch/internal/store"
	"github.com/jmylchreest/swatch/internal/swatch"
)

type generateOptions struct {
	scheme string
	base   string
	count  int
	lock   []int
	seed   uint64
	save   string
	tags   []string
	json   bool
	image  string
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a colour palette",
		Long: `Generate a colour palette from one of the built-in schemes.

Schemes that derive from a base colour use --base, or a random base when it is
omitted. Run 'swatch schemes' for the full list.

Each generated palette becomes the current palette. Use --lock to keep colours
from the current palette at the given 1-based positions.

Examples:
  # Five random colours
  swatch generate

  # Triadic palette from a base colour
  swatch generate --scheme triadic --base "#4A90E2"

  # Keep the first and third colours, regenerate the rest
  swatch generate --lock 1,3

  # Save and render a swatch card
  swatch generate -s calm --save "Quiet morning" --tag blue --image calm.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scheme, "scheme", "s", "", "scheme id (default from SWATCH_DEFAULT_SCHEME or random)")
	cmd.Flags().VarP(newHexValue("", &opts.base), "base", "b", "base colour for derived schemes")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of colours (default from SWATCH_DEFAULT_COUNT or 5)")
	cmd.Flags().IntSliceVarP(&opts.lock, "lock", "l", nil, "1-based positions to keep from the current palette")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible output (0 = random)")
	cmd.Flags().StringVar(&opts.save, "save", "", "save the palette under this name")
	cmd.Flags().StringSliceVarP(&opts.tags, "tag", "t", nil, "tags for the saved palette")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output as JSON")
	cmd.Flags().StringVarP(&opts.image, "image", "o", "", "write a swatch image (.png or .bmp)")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, opts *generateOptions) error {
	ctx := cmd.Context()

	schemeID := opts.scheme
	if schemeID == "" {
		schemeID = a.cfg.DefaultScheme
	}
	if _, ok := scheme.Lookup(schemeID); !ok {
		return fmt.Errorf("%w: %s", scheme.ErrUnknownScheme, schemeID)
	}

	count := opts.count
	if !cmd.Flags().Changed("count") {
		count = a.cfg.DefaultCount
	}
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	seed := opts.seed
	if seed == 0 {
		var b [8]byte
		if _, err := rand.Read(b[:]); err == nil {
			seed = binary.LittleEndian.Uint64(b[:])
		}
	}
	rng := scheme.NewRand(seed)

	base := opts.base
	if base == "" && scheme.RequiresBase(schemeID) {
		base = colour.RandomColour(rng)
		a.logger.Debug("using random base colour", "base", base)
	}

	a.logger.Debug("generating palette", "scheme", schemeID, "base", base, "count", count, "seed", seed)

	colours, err := generateColours(rng, schemeID, base, count, opts.lock)
	if err != nil {
		return err
	}

	if len(colours) == 0 {
		return fmt.Errorf("scheme %s produced no colours", schemeID)
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}

	if len(opts.lock) > 0 {
		colours, err = applyLocks(cmd, a, rng, s, colours, opts.lock)
		if err != nil {
			return err
		}
	}

	if err := s.SetCurrent(ctx, store.Current{Colors: colours, Scheme: schemeID, Base: base}); err != nil {
		return err
	}

	if opts.save != "" {
		saved, err := s.Save(ctx, colours, opts.save, schemeID, opts.tags)
		if err != nil {
			return err
		}
		a.status(cmd, "✓ Saved palette %q (%s)", saved.Name, saved.ID)
	}

	if opts.image != "" {
		if err := swatch.WriteFile(opts.image, colours, swatch.DefaultOptions()); err != nil {
			return err
		}
		a.status(cmd, "✓ Wrote swatch image to %s", opts.image)
	}

	palette := colour.NewPalette(colours)
	out := cmd.OutOrStdout()

	if opts.json {
		data, err := palette.ToJSON(schemeID)
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	_, err = fmt.Fprint(out, palette.StringWithPreview(a.showPreview(out)))
	return err
}

// generateColours runs the scheme. The random scheme leaves locked slots
// (1-based positions) as scheme.Locked; applyLocks marks them for the rest.
func generateColours(rng *mathrand.Rand, schemeID, base string, count int, lock []int) ([]string, error) {
	if schemeID != scheme.RandomID || len(lock) == 0 {
		return scheme.Generate(rng, schemeID, base, count)
	}

	locked := make([]int, 0, len(lock))
	for _, pos := range lock {
		locked = append(locked, pos-1)
	}
	return scheme.Random(rng, count, locked...), nil
}

// applyLocks replaces colours at the locked positions with those of the
// current palette.
func applyLocks(cmd *cobra.Command, a *app, rng *mathrand.Rand, s store.Store, colours []string, positions []int) ([]string, error) {
	for _, pos := range positions {
		if pos < 1 || pos > len(colours) {
			return nil, fmt.Errorf("lock position %d out of range 1-%d", pos, len(colours))
		}
	}

	current, err := s.Current(cmd.Context())
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no current palette to lock colours from; run 'swatch generate' first")
	}
	if err != nil {
		return nil, err
	}

	next := make([]string, len(colours))
	copy(next, colours)
	for _, pos := range positions {
		next[pos-1] = scheme.Locked
	}

	a.logger.Debug("applying locked colours", "positions", positions, "previous", current.Colors)
	return scheme.Fill(rng, current.Colors, next), nil
}
