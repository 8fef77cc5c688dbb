// Package colour provides colour space conversion, palette helpers and WCAG
// contrast evaluation.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for strings that are not a six digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the canonical hex form (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return RGBToHex(int(rgb.R), int(rgb.G), int(rgb.B))
}

// Color converts the value to an opaque color.RGBA.
func (rgb RGB) Color() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// HSL represents a colour as hue (0-360), saturation (0-100) and lightness (0-100).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", hsl.H, hsl.S, hsl.L)
}

// HexToRGB parses a six digit hex colour with an optional leading '#'.
// Parsing is case-insensitive. The boolean is false for malformed input,
// including the three digit shorthand.
func HexToRGB(hex string) (RGB, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// ParseHex is HexToRGB for callers that want an error describing the input.
func ParseHex(hex string) (RGB, error) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q (expected #RRGGBB)", ErrInvalidHex, hex)
	}
	return rgb, nil
}

// Normalise returns the canonical upper-case "#RRGGBB" form of hex.
func Normalise(hex string) (string, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return "", false
	}
	return rgb.Hex(), true
}

// RGBToHex formats channels as an upper-case "#RRGGBB" string.
// Channels outside [0,255] are clamped.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(r), clampChannel(g), clampChannel(b))
}

func clampChannel(v int) int {
	return max(0, min(255, v))
}

// HexToHSL converts a hex colour to HSL with every component rounded to the
// nearest integer.
func HexToHSL(hex string) (HSL, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return HSL{}, false
	}

	h, s, l := rgbToHSL(rgb)
	return HSL{
		H: math.Round(h * 360),
		S: math.Round(s * 100),
		L: math.Round(l * 100),
	}, true
}

// rgbToHSL returns hue, saturation and lightness, each normalised to [0,1].
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h /= 6
	return h, s, l
}

// HSLToHex converts hue (degrees), saturation and lightness (percent) to a hex colour.
func HSLToHex(h, s, l float64) string {
	h /= 360
	s /= 100
	l /= 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return RGBToHex(
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)),
	)
}

// hueToRGB maps a normalised hue offset t onto a channel value between p and q.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// Hue wraps any angle into [0,360).
func Hue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
