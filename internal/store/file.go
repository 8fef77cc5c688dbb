package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// File names inside the data directory.
const (
	PalettesFile = "palettes.json"
	CurrentFile  = "current.json"
)

// FileStore keeps palettes as a JSON array in a data directory.
// It is safe for concurrent use within one process.
type FileStore struct {
	mu     sync.Mutex
	dir    string
	logger hclog.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(logger hclog.Logger) Option {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) {
		s.now = now
	}
}

// NewFileStore creates the data directory if needed and returns a store rooted there.
func NewFileStore(dir string, opts ...Option) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}

	s := &FileStore{
		dir:    dir,
		logger: hclog.NewNullLogger(),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return s, nil
}

// Dir returns the data directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save adds a new palette to the collection.
func (s *FileStore) Save(ctx context.Context, colors []string, name, scheme string, tags []string) (*Palette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		name = DefaultName
	}
	if scheme == "" {
		scheme = DefaultScheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	palettes, err := s.load()
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := Palette{
		ID:        s.newID(),
		Name:      name,
		Scheme:    scheme,
		Colors:    slices.Clone(colors),
		Tags:      nonNil(slices.Clone(tags)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	palettes = append(palettes, p)

	if err := s.write(palettes); err != nil {
		return nil, err
	}

	s.logger.Debug("saved palette", "id", p.ID, "name", p.Name, "colours", len(p.Colors))
	return &p, nil
}

// Get returns the palette with the given id.
func (s *FileStore) Get(ctx context.Context, id string) (*Palette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	palettes, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(palettes, func(p Palette) bool { return p.ID == id })
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return &palettes[idx], nil
}

// Update applies u to the palette with the given id and refreshes UpdatedAt.
func (s *FileStore) Update(ctx context.Context, id string, u Update) (*Palette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	palettes, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(palettes, func(p Palette) bool { return p.ID == id })
	if idx == -1 {
		s.logger.Warn("update of unknown palette", "id", id)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	p := &palettes[idx]
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Scheme != nil {
		p.Scheme = *u.Scheme
	}
	if u.Colors != nil {
		p.Colors = slices.Clone(u.Colors)
	}
	if u.Tags != nil {
		p.Tags = slices.Clone(u.Tags)
	}
	p.UpdatedAt = s.now()

	if err := s.write(palettes); err != nil {
		return nil, err
	}

	s.logger.Debug("updated palette", "id", id)
	updated := *p
	return &updated, nil
}

// Delete removes the palette with the given id.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	palettes, err := s.load()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(palettes, func(p Palette) bool { return p.ID == id })
	if idx == -1 {
		s.logger.Warn("delete of unknown palette", "id", id)
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := s.write(slices.Delete(palettes, idx, idx+1)); err != nil {
		return err
	}

	s.logger.Debug("deleted palette", "id", id)
	return nil
}

// List returns every stored palette in insertion order.
func (s *FileStore) List(ctx context.Context) ([]Palette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Search returns palettes whose name or tags contain query, ignoring case.
func (s *FileStore) Search(ctx context.Context, query string) ([]Palette, error) {
	palettes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(palettes, func(p Palette) bool { return p.Matches(query) }), nil
}

// FilterByTags returns palettes carrying every tag. No tags returns everything.
func (s *FileStore) FilterByTags(ctx context.Context, tags []string) ([]Palette, error) {
	palettes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return palettes, nil
	}
	return filter(palettes, func(p Palette) bool { return p.HasTags(tags) }), nil
}

// Tags returns the sorted set of tags used across all palettes.
func (s *FileStore) Tags(ctx context.Context) ([]string, error) {
	palettes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return uniqueTags(palettes), nil
}

// SetCurrent stores the working palette.
func (s *FileStore) SetCurrent(ctx context.Context, c Current) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeJSON(CurrentFile, c)
}

// Current returns the working palette, or ErrNotFound when none was stored.
func (s *FileStore) Current(ctx context.Context) (*Current, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, CurrentFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no current palette", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read current palette: %w", err)
	}

	var c Current
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse current palette: %w", err)
	}
	return &c, nil
}

// Clear removes every stored palette. The current palette is kept.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, PalettesFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear palettes: %w", err)
	}

	s.logger.Debug("cleared palettes", "dir", s.dir)
	return nil
}

// load reads the collection. Callers must hold s.mu.
func (s *FileStore) load() ([]Palette, error) {
	path := filepath.Join(s.dir, PalettesFile)
	data, err := os.ReadFile(path) // #nosec G304 - path is inside the configured data directory
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Palette{}, nil
		}
		return nil, fmt.Errorf("failed to read palettes: %w", err)
	}

	var palettes []Palette
	if err := json.Unmarshal(data, &palettes); err != nil {
		s.logger.Error("palette file is corrupt", "path", path, "error", err)
		return nil, fmt.Errorf("failed to parse palettes: %w", err)
	}
	if palettes == nil {
		palettes = []Palette{}
	}
	return palettes, nil
}

// write persists the collection. Callers must hold s.mu.
func (s *FileStore) write(palettes []Palette) error {
	return s.writeJSON(PalettesFile, palettes)
}

// writeJSON replaces name atomically via a temporary file and rename.
func (s *FileStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write %s: %w", name, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", name, closeErr)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ Store = (*FileStore)(nil)
