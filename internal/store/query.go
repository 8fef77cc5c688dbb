package store

import (
	"slices"
	"strings"
)

// Matches reports whether a palette's name or any of its tags contains query,
// ignoring case.
func (p Palette) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	return slices.ContainsFunc(p.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

// HasTags reports whether the palette carries every tag in tags.
func (p Palette) HasTags(tags []string) bool {
	for _, tag := range tags {
		if !slices.Contains(p.Tags, tag) {
			return false
		}
	}
	return true
}

func filter(palettes []Palette, keep func(Palette) bool) []Palette {
	out := make([]Palette, 0, len(palettes))
	for _, p := range palettes {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func uniqueTags(palettes []Palette) []string {
	seen := make(map[string]struct{})
	for _, p := range palettes {
		for _, tag := range p.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}
