// Package scheme derives palettes from a base colour using colour-theory schemes.
//
// Every generator is a pure function of its arguments. Generators that sample
// randomness take an explicit *rand.Rand; nil falls back to the process-wide
// source.
package scheme

import (
	"encoding/binary"
	"math/rand/v2"
	"slices"

	"github.com/jmylchreest/swatch/internal/colour"
)

// DefaultCount is the palette size used when callers have no preference.
const DefaultCount = 5

// Locked marks a palette slot that the caller must fill with its previous value.
const Locked = ""

// NewRand returns a ChaCha8 backed generator. Equal seeds give equal palettes.
func NewRand(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.New(rand.NewChaCha8(key))
}

// Random returns count fresh random colours. Indices listed in locked hold the
// Locked marker instead; Random never sees the previous palette.
func Random(rng *rand.Rand, count int, locked ...int) []string {
	if count <= 0 {
		return []string{}
	}

	palette := make([]string, count)
	for i := range palette {
		if slices.Contains(locked, i) {
			palette[i] = Locked
			continue
		}
		palette[i] = colour.RandomColour(rng)
	}
	return palette
}

// Fill replaces Locked entries in next with the value at the same index of prev.
// Slots without a previous value get a fresh random colour.
func Fill(rng *rand.Rand, prev, next []string) []string {
	out := make([]string, len(next))
	for i, c := range next {
		switch {
		case c != Locked:
			out[i] = c
		case i < len(prev) && prev[i] != Locked:
			out[i] = prev[i]
		default:
			out[i] = colour.RandomColour(rng)
		}
	}
	return out
}

// Monochromatic keeps the base hue and saturation and steps lightness evenly
// through (0,100) exclusive: L = i*100/(count+1) for i in 1..count.
func Monochromatic(base string, count int) []string {
	hsl, ok := colour.HexToHSL(base)
	if !ok || count <= 0 {
		return []string{}
	}

	palette := make([]string, 0, count)
	step := 100 / float64(count+1)
	for i := 1; i <= count; i++ {
		palette = append(palette, colour.HSLToHex(hsl.H, hsl.S, step*float64(i)))
	}
	return palette
}

// Analogous walks the colour wheel in 30 degree steps either side of the base
// hue, floor(count/2) steps each way. Even counts therefore return count+1
// colours.
func Analogous(base string, count int) []string {
	hsl, ok := colour.HexToHSL(base)
	if !ok || count <= 0 {
		return []string{}
	}

	const step = 30
	offset := count / 2

	palette := make([]string, 0, 2*offset+1)
	for i := -offset; i <= offset; i++ {
		hue := colour.Hue(hsl.H + float64(step*i))
		palette = append(palette, colour.HSLToHex(hue, hsl.S, hsl.L))
	}
	return palette
}

// Complementary splits the palette between the base hue (ceil(count/2)
// colours) and its opposite (floor(count/2) colours), each half on its own
// lightness ramp from 30 spanning 40.
func Complementary(base string, count int) []string {
	hsl, ok := colour.HexToHSL(base)
	if !ok || count <= 0 {
		return []string{}
	}

	palette := make([]string, 0, count)
	palette = appendRamp(palette, hsl, hsl.H, (count+1)/2, 30)
	palette = appendRamp(palette, hsl, colour.Hue(hsl.H+180), count/2, 30)
	return truncate(palette, count)
}

// Triadic spreads ceil(count/3) colours over each of three hues 120 degrees apart.
func Triadic(base string, count int) []string {
	return split(base, count, 0, 120, 240)
}

// Tetradic spreads ceil(count/4) colours over each of four hues 90 degrees apart.
func Tetradic(base string, count int) []string {
	return split(base, count, 0, 90, 180, 270)
}

// split builds ceil(count/len(offsets)) colours per hue offset on a lightness
// ramp from 40 spanning 40, then truncates to count.
func split(base string, count int, offsets ...float64) []string {
	hsl, ok := colour.HexToHSL(base)
	if !ok || count <= 0 {
		return []string{}
	}

	perHue := (count + len(offsets) - 1) / len(offsets)
	palette := make([]string, 0, perHue*len(offsets))
	for _, offset := range offsets {
		palette = appendRamp(palette, hsl, colour.Hue(hsl.H+offset), perHue, 40)
	}
	return truncate(palette, count)
}

// appendRamp appends n colours at the given hue with lightness start+i*(40/n).
// A zero-length ramp appends nothing.
func appendRamp(palette []string, hsl colour.HSL, hue float64, n int, start float64) []string {
	if n <= 0 {
		return palette
	}

	step := 40 / float64(n)
	for i := range n {
		palette = append(palette, colour.HSLToHex(hue, hsl.S, start+float64(i)*step))
	}
	return palette
}

func truncate(palette []string, count int) []string {
	if len(palette) > count {
		return palette[:count]
	}
	return palette
}
