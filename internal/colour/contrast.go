package colour

import (
	"fmt"
	"math"
)

// Level is a WCAG conformance level.
type Level string

// WCAG levels.
const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "Fail"
)

// Display status for each level.
const (
	StatusExcellent = "Excellent"
	StatusGood      = "Good"
	StatusPoor      = "Poor"
)

// MinAccessibleRatio is the WCAG AA ratio for normal text.
const MinAccessibleRatio = 4.5

// Accessibility is a level together with its display status.
type Accessibility struct {
	Level  Level  `json:"level"`
	Status string `json:"status"`
}

// ContrastResult describes a foreground/background pair.
type ContrastResult struct {
	Ratio        string        `json:"ratio"`
	RatioValue   float64       `json:"-"`
	NormalText   Accessibility `json:"normalText"`
	LargeText    Accessibility `json:"largeText"`
	IsAccessible bool          `json:"isAccessible"`
}

// TextColour is the preferred text colour for a background.
type TextColour struct {
	Colour        string        `json:"color"`
	Contrast      string        `json:"contrast"`
	Accessibility Accessibility `json:"accessibility"`
}

// PaletteAccessibility is the per-colour entry of CheckPaletteAccessibility.
type PaletteAccessibility struct {
	Colour            string     `json:"color"`
	TextColour        TextColour `json:"textColor"`
	WhiteTextContrast string     `json:"whiteTextContrast"`
	BlackTextContrast string     `json:"blackTextContrast"`
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest); malformed input yields 0.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(hex string) float64 {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return 0
	}
	return luminance(rgb)
}

func luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b string) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// AccessibilityLevel classifies a ratio. Large text (14pt bold / 18pt and up)
// has lower thresholds.
func AccessibilityLevel(ratio float64, largeText bool) Accessibility {
	aaa, aa := 7.0, 4.5
	if largeText {
		aaa, aa = 4.5, 3.0
	}

	switch {
	case ratio >= aaa:
		return Accessibility{Level: LevelAAA, Status: StatusExcellent}
	case ratio >= aa:
		return Accessibility{Level: LevelAA, Status: StatusGood}
	default:
		return Accessibility{Level: LevelFail, Status: StatusPoor}
	}
}

// CheckContrast evaluates a text colour against a background.
func CheckContrast(fg, bg string) ContrastResult {
	ratio := ContrastRatio(fg, bg)
	return ContrastResult{
		Ratio:        formatRatio(ratio),
		RatioValue:   ratio,
		NormalText:   AccessibilityLevel(ratio, false),
		LargeText:    AccessibilityLevel(ratio, true),
		IsAccessible: ratio >= MinAccessibleRatio,
	}
}

// BestTextColour picks black or white text for a background.
// Black wins ties.
func BestTextColour(bg string) TextColour {
	blackContrast := ContrastRatio(Black, bg)
	whiteContrast := ContrastRatio(White, bg)

	colour, ratio := Black, blackContrast
	if whiteContrast > blackContrast {
		colour, ratio = White, whiteContrast
	}

	return TextColour{
		Colour:        colour,
		Contrast:      formatRatio(ratio),
		Accessibility: AccessibilityLevel(ratio, false),
	}
}

// CheckPaletteAccessibility evaluates every colour as a background for black and white text.
func CheckPaletteAccessibility(palette []string) []PaletteAccessibility {
	results := make([]PaletteAccessibility, len(palette))
	for i, hex := range palette {
		results[i] = PaletteAccessibility{
			Colour:            hex,
			TextColour:        BestTextColour(hex),
			WhiteTextContrast: formatRatio(ContrastRatio(White, hex)),
			BlackTextContrast: formatRatio(ContrastRatio(Black, hex)),
		}
	}
	return results
}

// FindBestAccentColour returns the candidate with the highest contrast against base.
// The first candidate wins ties; base is returned when there are no candidates.
func FindBestAccentColour(base string, candidates []string) string {
	if len(candidates) == 0 {
		return base
	}

	best := candidates[0]
	bestRatio := ContrastRatio(best, base)
	for _, c := range candidates[1:] {
		if ratio := ContrastRatio(c, base); ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	return best
}

// ContrastRecommendations returns two advisory messages for the pair's ratio band.
func ContrastRecommendations(fg, bg string) []string {
	ratio := ContrastRatio(fg, bg)

	switch {
	case ratio < 3:
		return []string{
			"⚠ Contrast is very low. A significant change is needed.",
			"Try a much lighter or much darker colour.",
		}
	case ratio < 4.5:
		return []string{
			"⚠ Contrast is only sufficient for large text (14pt+).",
			"Increase the lightness difference for normal text.",
		}
	case ratio < 7:
		return []string{
			"✓ Meets WCAG AA for all text sizes.",
			"Increase contrast further to reach AAA.",
		}
	default:
		return []string{
			"✓ Excellent! Meets WCAG AAA.",
			"This combination is accessible to all users.",
		}
	}
}

func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f", ratio)
}
