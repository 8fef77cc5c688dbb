package scheme

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrUnknownScheme is returned by Generate for identifiers not in the registry.
var ErrUnknownScheme = errors.New("unknown scheme")

// RandomID identifies the scheme whose colours are independent of each other.
const RandomID = "random"

// Mood identifiers understood by ByMood.
const (
	MoodCalm         = "calm"
	MoodEnergetic    = "energetic"
	MoodProfessional = "professional"
)

// Base colours for mood palettes.
const (
	calmBase         = "#4A90E2"
	energeticBase    = "#FF6B6B"
	professionalBase = "#2C3E50"
)

// GenerateFunc builds a palette of count colours from base.
// Schemes that do not use a base colour or randomness ignore those arguments.
type GenerateFunc func(rng *rand.Rand, base string, count int) []string

// Descriptor describes a registered scheme.
type Descriptor struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Generate    GenerateFunc `json:"-"`
}

// ByMood maps a mood onto a fixed base colour and scheme. Unknown moods get a
// random palette.
func ByMood(rng *rand.Rand, mood string, count int) []string {
	switch mood {
	case MoodCalm:
		return Analogous(calmBase, count)
	case MoodEnergetic:
		return Analogous(energeticBase, count)
	case MoodProfessional:
		return Monochromatic(professionalBase, count)
	default:
		return Random(rng, count)
	}
}

func baseOnly(fn func(base string, count int) []string) GenerateFunc {
	return func(_ *rand.Rand, base string, count int) []string {
		return fn(base, count)
	}
}

func mood(m string) GenerateFunc {
	return func(rng *rand.Rand, _ string, count int) []string {
		return ByMood(rng, m, count)
	}
}

var registry = []Descriptor{
	{
		ID:          RandomID,
		Name:        "Random",
		Description: "Completely random colours",
		Generate: func(rng *rand.Rand, _ string, count int) []string {
			return Random(rng, count)
		},
	},
	{ID: "monochromatic", Name: "Monochromatic", Description: "Shades of a single colour", Generate: baseOnly(Monochromatic)},
	{ID: "analogous", Name: "Analogous", Description: "Neighbouring colours on the wheel", Generate: baseOnly(Analogous)},
	{ID: "complementary", Name: "Complementary", Description: "Opposite colours", Generate: baseOnly(Complementary)},
	{ID: "triadic", Name: "Triadic", Description: "Three evenly spaced colours", Generate: baseOnly(Triadic)},
	{ID: "tetradic", Name: "Tetradic", Description: "Four colours in a rectangle", Generate: baseOnly(Tetradic)},
	{ID: MoodCalm, Name: "Calm", Description: "Soft, relaxing colours", Generate: mood(MoodCalm)},
	{ID: MoodEnergetic, Name: "Energetic", Description: "Bright, dynamic colours", Generate: mood(MoodEnergetic)},
	{ID: MoodProfessional, Name: "Professional", Description: "Conservative, business colours", Generate: mood(MoodProfessional)},
}

// All returns the registered schemes in display order.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// IDs returns the registered scheme identifiers in display order.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, d := range registry {
		ids[i] = d.ID
	}
	return ids
}

// Lookup returns the descriptor registered under id.
func Lookup(id string) (Descriptor, bool) {
	for _, d := range registry {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// RequiresBase reports whether a scheme derives its palette from the base colour.
func RequiresBase(id string) bool {
	switch id {
	case RandomID, MoodCalm, MoodEnergetic, MoodProfessional:
		return false
	default:
		_, ok := Lookup(id)
		return ok
	}
}

// Generate runs the scheme registered under id.
func Generate(rng *rand.Rand, id, base string, count int) ([]string, error) {
	d, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownScheme, id, strings.Join(IDs(), ", "))
	}
	return d.Generate(rng, base, count), nil
}
