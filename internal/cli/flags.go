package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
)

// hexValue is a pflag.Value that accepts a hex colour and stores it normalised.
type hexValue struct {
	hex *string
}

var _ pflag.Value = (*hexValue)(nil)

func newHexValue(def string, p *string) *hexValue {
	*p = def
	return &hexValue{hex: p}
}

func (h *hexValue) String() string {
	if h.hex == nil {
		return ""
	}
	return *h.hex
}

func (h *hexValue) Set(s string) error {
	normalised, ok := colour.Normalise(s)
	if !ok {
		return fmt.Errorf("%w: %q", colour.ErrInvalidHex, s)
	}
	*h.hex = normalised
	return nil
}

func (h *hexValue) Type() string {
	return "hex"
}

// parseHexArgs normalises positional hex arguments.
func parseHexArgs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		hex, ok := colour.Normalise(arg)
		if !ok {
			return nil, fmt.Errorf("%w: %q", colour.ErrInvalidHex, arg)
		}
		out = append(out, hex)
	}
	return out, nil
}
