package colour

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   RGB
		wantOK bool
	}{
		{name: "lower case with hash", input: "#abcdef", want: RGB{R: 171, G: 205, B: 239}, wantOK: true},
		{name: "upper case without hash", input: "ABCDEF", want: RGB{R: 171, G: 205, B: 239}, wantOK: true},
		{name: "black", input: "#000000", want: RGB{}, wantOK: true},
		{name: "white", input: "#FFFFFF", want: RGB{R: 255, G: 255, B: 255}, wantOK: true},
		{name: "shorthand unsupported", input: "#abc"},
		{name: "not a colour", input: "not-a-color"},
		{name: "non hex digit", input: "#12345G"},
		{name: "sign characters", input: "#+1+2+3"},
		{name: "double hash", input: "##123456"},
		{name: "too long", input: "#1234567"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HexToRGB(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("HexToRGB(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	if _, err := ParseHex("#1e1e2e"); err != nil {
		t.Errorf("ParseHex() unexpected error: %v", err)
	}

	_, err := ParseHex("#xyz")
	if err == nil {
		t.Fatal("ParseHex() expected error for malformed input")
	}
	if !errors.Is(err, ErrInvalidHex) {
		t.Errorf("ParseHex() error = %v, want ErrInvalidHex", err)
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    string
	}{
		{name: "black", want: "#000000"},
		{name: "white", r: 255, g: 255, b: 255, want: "#FFFFFF"},
		{name: "zero padded", r: 1, g: 2, b: 3, want: "#010203"},
		{name: "upper case", r: 171, g: 205, b: 239, want: "#ABCDEF"},
		{name: "clamped", r: 300, g: -5, b: 16, want: "#FF0010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGBToHex(%d, %d, %d) = %s, want %s", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGBHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#1E1E2E", "#CDD6F4", "#F38BA8", "#4A90E2", "#010203"} {
		rgb, ok := HexToRGB(hex)
		if !ok {
			t.Fatalf("HexToRGB(%s) failed", hex)
		}
		if got := RGBToHex(int(rgb.R), int(rgb.G), int(rgb.B)); got != hex {
			t.Errorf("round trip %s = %s", hex, got)
		}
	}
}

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  HSL
	}{
		{name: "red", input: "#FF0000", want: HSL{H: 0, S: 100, L: 50}},
		{name: "green", input: "#00FF00", want: HSL{H: 120, S: 100, L: 50}},
		{name: "blue", input: "#0000FF", want: HSL{H: 240, S: 100, L: 50}},
		{name: "grey is achromatic", input: "#808080", want: HSL{H: 0, S: 0, L: 50}},
		{name: "white", input: "#FFFFFF", want: HSL{H: 0, S: 0, L: 100}},
		{name: "magenta wraps red branch", input: "#FF00FF", want: HSL{H: 300, S: 100, L: 50}},
		{name: "calm blue", input: "#4A90E2", want: HSL{H: 212, S: 72, L: 59}},
		{name: "professional slate", input: "#2C3E50", want: HSL{H: 210, S: 29, L: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HexToHSL(tt.input)
			if !ok {
				t.Fatalf("HexToHSL(%s) reported invalid", tt.input)
			}
			if got != tt.want {
				t.Errorf("HexToHSL(%s) = %+v, want %+v", tt.input, got, tt.want)
			}
			again, _ := HexToHSL(tt.input)
			if again != got {
				t.Errorf("HexToHSL(%s) not deterministic: %+v then %+v", tt.input, got, again)
			}
		})
	}

	if _, ok := HexToHSL("not-a-color"); ok {
		t.Error("HexToHSL() accepted malformed input")
	}
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{name: "red", h: 0, s: 100, l: 50, want: "#FF0000"},
		{name: "green", h: 120, s: 100, l: 50, want: "#00FF00"},
		{name: "blue", h: 240, s: 100, l: 50, want: "#0000FF"},
		{name: "yellow", h: 60, s: 100, l: 50, want: "#FFFF00"},
		{name: "orange", h: 30, s: 100, l: 50, want: "#FF8000"},
		{name: "achromatic", h: 200, s: 0, l: 50, want: "#808080"},
		{name: "white", h: 0, s: 100, l: 100, want: "#FFFFFF"},
		{name: "black", h: 0, s: 100, l: 0, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToHex(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSLToHex(%v, %v, %v) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

// HSL components are rounded to whole numbers, so hex -> HSL -> hex is not
// lossless. A stride-7 sweep of the RGB cube found about a third of colours
// drifting by more than one step, with a worst case of 4 at #009CED. The
// primaries, greys and the sample colours below stay within one step.
func TestHSLRoundTrip(t *testing.T) {
	tests := []struct {
		hex       string
		tolerance int
	}{
		{hex: "#FF0000", tolerance: 1},
		{hex: "#00FFFF", tolerance: 1},
		{hex: "#808080", tolerance: 1},
		{hex: "#FFFFFF", tolerance: 1},
		{hex: "#000000", tolerance: 1},
		{hex: "#4A90E2", tolerance: 1},
		{hex: "#2C3E50", tolerance: 1},
		{hex: "#009CED", tolerance: 4},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			hsl, _ := HexToHSL(tt.hex)
			got := HSLToHex(hsl.H, hsl.S, hsl.L)

			want, _ := HexToRGB(tt.hex)
			rgb, ok := HexToRGB(got)
			if !ok {
				t.Fatalf("HSLToHex produced invalid hex %q", got)
			}
			if absDiff(rgb.R, want.R) > tt.tolerance || absDiff(rgb.G, want.G) > tt.tolerance || absDiff(rgb.B, want.B) > tt.tolerance {
				t.Errorf("round trip %s -> %+v -> %s drifted more than %d", tt.hex, hsl, got, tt.tolerance)
			}
		})
	}
}

func TestHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 0, want: 0},
		{in: 360, want: 0},
		{in: 390, want: 30},
		{in: -30, want: 330},
		{in: -390, want: 330},
	}

	for _, tt := range tests {
		if got := Hue(tt.in); got != tt.want {
			t.Errorf("Hue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRandomColour(t *testing.T) {
	a := RandomColour(rand.New(rand.NewChaCha8([32]byte{42})))
	b := RandomColour(rand.New(rand.NewChaCha8([32]byte{42})))
	if a != b {
		t.Errorf("seeded RandomColour() differs: %s vs %s", a, b)
	}

	for range 100 {
		hex := RandomColour(nil)
		if canonical, ok := Normalise(hex); !ok || canonical != hex {
			t.Fatalf("RandomColour() = %q, not canonical", hex)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{hex: "#000000", want: "Black"},
		{hex: "#FFFFFF", want: "White"},
		{hex: "#808080", want: "Gray"},
		{hex: "#FF0000", want: "Red"},
		{hex: "#FFA500", want: "Orange"},
		{hex: "#FFFF00", want: "Yellow"},
		{hex: "#00FF00", want: "Green"},
		{hex: "#00FFFF", want: "Cyan"},
		{hex: "#0000FF", want: "Blue"},
		{hex: "#8000FF", want: "Purple"},
		{hex: "#FF1493", want: "Pink"},
		{hex: "#FF00FF", want: "Pink"},
		{hex: "bogus", want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want+" "+tt.hex, func(t *testing.T) {
			if got := Name(tt.hex); got != tt.want {
				t.Errorf("Name(%s) = %s, want %s", tt.hex, got, tt.want)
			}
		})
	}
}

func TestIsLight(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{hex: "#FFFFFF", want: true},
		{hex: "#000000", want: false},
		{hex: "#808080", want: true},
		{hex: "#777777", want: false},
		{hex: "#FFFF00", want: true},
		{hex: "#0000FF", want: false},
		{hex: "invalid", want: false},
	}

	for _, tt := range tests {
		if got := IsLight(tt.hex); got != tt.want {
			t.Errorf("IsLight(%s) = %v, want %v", tt.hex, got, tt.want)
		}
	}

	if got := ContrastTextColour("#FFFF00"); got != Black {
		t.Errorf("ContrastTextColour(yellow) = %s, want %s", got, Black)
	}
	if got := ContrastTextColour("#0000FF"); got != White {
		t.Errorf("ContrastTextColour(blue) = %s, want %s", got, White)
	}
}

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		percent float64
		want    string
	}{
		{name: "unchanged", hex: "#808080", percent: 0, want: "#808080"},
		{name: "double lightness", hex: "#808080", percent: 100, want: "#FFFFFF"},
		{name: "remove lightness", hex: "#808080", percent: -100, want: "#000000"},
		{name: "clamped high", hex: "#808080", percent: 500, want: "#FFFFFF"},
		{name: "clamped low", hex: "#FF0000", percent: -250, want: "#000000"},
		{name: "malformed passthrough", hex: "oops", percent: 20, want: "oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustBrightness(tt.hex, tt.percent); got != tt.want {
				t.Errorf("AdjustBrightness(%s, %v) = %s, want %s", tt.hex, tt.percent, got, tt.want)
			}
		})
	}
}

func TestTints(t *testing.T) {
	tints := Tints("#FF0000", 4)
	want := []string{
		HSLToHex(0, 100, 25),
		HSLToHex(0, 100, 50),
		HSLToHex(0, 100, 75),
		"#FFFFFF",
	}
	assertPalette(t, tints, want)

	if got := Tints("#FF0000", 0); len(got) != 0 {
		t.Errorf("Tints(count=0) = %v, want empty", got)
	}
	if got := Tints("bad", 3); len(got) != 0 {
		t.Errorf("Tints(malformed) = %v, want empty", got)
	}
}

func TestShades(t *testing.T) {
	shades := Shades("#FF0000", 5)
	want := []string{
		HSLToHex(0, 100, 40),
		HSLToHex(0, 100, 30),
		HSLToHex(0, 100, 20),
		HSLToHex(0, 100, 10),
		"#000000",
	}
	assertPalette(t, shades, want)

	// The ramp starts from 50 regardless of the input lightness.
	if got, want := Shades("#FFCCCC", 1), Shades("#330000", 1); got[0] != want[0] {
		t.Errorf("Shades() depends on input lightness: %s vs %s", got[0], want[0])
	}
}

func assertPalette(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("palette length = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("palette[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
