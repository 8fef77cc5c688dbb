package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Palette is an ordered list of canonical hex colours.
type Palette struct {
	Colours []string
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colours []string) *Palette {
	return &Palette{
		Colours: colours,
	}
}

// ColourJSON represents a colour in JSON output format. TextColor is the
// black or white text with the higher WCAG contrast ratio.
type ColourJSON struct {
	Hex       string `json:"hex"`
	RGB       RGB    `json:"rgb"`
	HSL       HSL    `json:"hsl"`
	Name      string `json:"name"`
	TextColor string `json:"textColor"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Scheme string       `json:"scheme,omitempty"`
	Count  int          `json:"count"`
	Colors []ColourJSON `json:"colors"`
}

// Describe returns the JSON view of a single colour. Entries that are not
// valid hex (such as locked placeholders) only carry their raw value.
func Describe(hex string) ColourJSON {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return ColourJSON{Hex: hex}
	}
	hsl, _ := HexToHSL(hex)
	return ColourJSON{
		Hex:       rgb.Hex(),
		RGB:       rgb,
		HSL:       hsl,
		Name:      Name(hex),
		TextColor: BestTextColour(hex).Colour,
	}
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON(scheme string) ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, hex := range p.Colours {
		colours[i] = Describe(hex)
	}

	return json.MarshalIndent(PaletteJSON{
		Scheme: scheme,
		Count:  len(p.Colours),
		Colors: colours,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	return p.StringWithPreview(false)
}

// StringWithPreview returns a string representation with optional ANSI colour previews.
func (p *Palette) StringWithPreview(showPreview bool) string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colours:\n", len(p.Colours))
	for i, hex := range p.Colours {
		rgb, ok := HexToRGB(hex)
		if !ok {
			fmt.Fprintf(&b, "  %2d: %s\n", i+1, "(locked)")
			continue
		}
		if showPreview {
			fmt.Fprintf(&b, "  %2d: %s  %s  %-7s %s\n", i+1, ColourPreviewWithText(rgb, "Aa", 8), rgb.Hex(), Name(hex), rgb.String())
		} else {
			fmt.Fprintf(&b, "  %2d: %s  %-7s %s\n", i+1, rgb.Hex(), Name(hex), rgb.String())
		}
	}
	return b.String()
}
