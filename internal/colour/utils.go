package colour

import (
	"math"
	"math/rand/v2"
)

// Text colours used for contrast decisions.
const (
	Black = "#000000"
	White = "#FFFFFF"
)

// RandomColour returns a colour drawn uniformly from all 2^24 RGB values.
// A nil rng uses the process-wide source.
func RandomColour(rng *rand.Rand) string {
	var v int
	if rng != nil {
		v = rng.IntN(1 << 24)
	} else {
		v = rand.IntN(1 << 24) // #nosec G404 -- palette colours are not security sensitive
	}
	return RGBToHex(v>>16&0xFF, v>>8&0xFF, v&0xFF)
}

// Name returns an approximate English name for a colour.
// Low saturation colours are classed as Black, White or Gray by lightness;
// everything else falls into a fixed hue band.
func Name(hex string) string {
	hsl, ok := HexToHSL(hex)
	if !ok {
		return "Unknown"
	}

	if hsl.S < 10 {
		switch {
		case hsl.L < 10:
			return "Black"
		case hsl.L > 90:
			return "White"
		default:
			return "Gray"
		}
	}

	h := hsl.H
	switch {
	case h < 15 || h >= 345:
		return "Red"
	case h < 45:
		return "Orange"
	case h < 65:
		return "Yellow"
	case h < 150:
		return "Green"
	case h < 200:
		return "Cyan"
	case h < 260:
		return "Blue"
	case h < 290:
		return "Purple"
	case h < 345:
		return "Pink"
	}
	return "Unknown"
}

// PerceivedBrightness returns the W3C perceived brightness of a colour in [0,1].
// This is not WCAG relative luminance; see RelativeLuminance for contrast work.
func PerceivedBrightness(rgb RGB) float64 {
	return (0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)) / 255
}

// IsLight reports whether a colour's perceived brightness is above one half.
// Malformed input is treated as dark.
func IsLight(hex string) bool {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return false
	}
	return PerceivedBrightness(rgb) > 0.5
}

// ContrastTextColour returns black text for light colours and white text for dark ones.
func ContrastTextColour(hex string) string {
	if IsLight(hex) {
		return Black
	}
	return White
}

// AdjustBrightness scales lightness by (1 + percent/100), clamped to [0,100].
// The percentage is relative: +20 on lightness 50 gives 60.
// Malformed input is returned unchanged.
func AdjustBrightness(hex string, percent float64) string {
	hsl, ok := HexToHSL(hex)
	if !ok {
		return hex
	}

	l := hsl.L + hsl.L*percent/100
	l = math.Max(0, math.Min(100, l))
	return HSLToHex(hsl.H, hsl.S, l)
}

// Tints returns count colours of the same hue and saturation with lightness
// rising evenly to 100.
func Tints(hex string, count int) []string {
	hsl, ok := HexToHSL(hex)
	if !ok || count <= 0 {
		return []string{}
	}

	tints := make([]string, 0, count)
	step := 100 / float64(count)
	for i := range count {
		tints = append(tints, HSLToHex(hsl.H, hsl.S, step*float64(i+1)))
	}
	return tints
}

// Shades returns count colours falling from lightness 50 towards 0.
// The ramp always starts from 50, not from the input colour's lightness.
func Shades(hex string, count int) []string {
	hsl, ok := HexToHSL(hex)
	if !ok || count <= 0 {
		return []string{}
	}

	shades := make([]string, 0, count)
	step := 50 / float64(count)
	for i := range count {
		shades = append(shades, HSLToHex(hsl.H, hsl.S, 50-step*float64(i+1)))
	}
	return shades
}
