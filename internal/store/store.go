// Package store persists named palettes.
//
// Colours are opaque strings to this package: it never parses or validates
// them. Callers hand finished palettes to a Store and read them back by id,
// name or tag.
package store

import (
	"context"
	"errors"
	"io"
	"time"
)

// Defaults applied by Save when name or scheme are empty.
const (
	DefaultName   = "Palette"
	DefaultScheme = "random"
)

// ErrNotFound is returned when a palette id (or the current palette) does not exist.
var ErrNotFound = errors.New("palette not found")

// Palette is a stored, named palette.
type Palette struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Scheme    string    `json:"scheme"`
	Colors    []string  `json:"colors"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Current is the working palette of a session, kept outside the collection.
type Current struct {
	Colors []string `json:"colors"`
	Scheme string   `json:"scheme"`
	Base   string   `json:"base,omitempty"`
}

// Update holds the fields to change on an existing palette.
// Nil fields are left as they are.
type Update struct {
	Name   *string
	Scheme *string
	Colors []string
	Tags   []string
}

// Format selects the export encoding.
type Format string

// Export formats.
const (
	FormatJSON Format = "json"
	FormatXZ   Format = "xz"
	FormatGzip Format = "gzip"
)

// Store is the storage port used by the CLI.
type Store interface {
	Save(ctx context.Context, colors []string, name, scheme string, tags []string) (*Palette, error)
	Get(ctx context.Context, id string) (*Palette, error)
	Update(ctx context.Context, id string, u Update) (*Palette, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Palette, error)
	Search(ctx context.Context, query string) ([]Palette, error)
	FilterByTags(ctx context.Context, tags []string) ([]Palette, error)
	Tags(ctx context.Context) ([]string, error)
	SetCurrent(ctx context.Context, c Current) error
	Current(ctx context.Context) (*Current, error)
	Clear(ctx context.Context) error
	Export(ctx context.Context, w io.Writer, format Format) error
	Import(ctx context.Context, r io.Reader) (int, error)
}
