package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jmylchreest/swatch/internal/compression"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()

	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s, err := NewFileStore(t.TempDir(), WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	return s
}

func TestNewFileStoreRequiresDir(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Error("NewFileStore(\"\") expected error")
	}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	saved, err := s.Save(ctx, []string{"#FF0000", "#00FF00"}, "", "", nil)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if saved.ID == "" {
		t.Error("Save() did not assign an id")
	}
	if saved.Name != DefaultName || saved.Scheme != DefaultScheme {
		t.Errorf("Save() defaults = %q/%q", saved.Name, saved.Scheme)
	}
	if saved.Tags == nil {
		t.Error("Save() left Tags nil")
	}

	got, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !slices.Equal(got.Colors, saved.Colors) || !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("Get() = %+v, want %+v", got, saved)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSaveDoesNotAliasInput(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	colours := []string{"#111111"}
	saved, err := s.Save(ctx, colours, "alias", "random", nil)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	colours[0] = "#222222"

	got, _ := s.Get(ctx, saved.ID)
	if got.Colors[0] != "#111111" {
		t.Errorf("stored colour changed to %s", got.Colors[0])
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	saved, _ := s.Save(ctx, []string{"#000000"}, "Before", "random", []string{"a"})

	later := saved.CreatedAt.Add(time.Hour)
	s.now = func() time.Time { return later }

	name := "After"
	updated, err := s.Update(ctx, saved.ID, Update{Name: &name, Tags: []string{"b"}})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if updated.Name != "After" || !slices.Equal(updated.Tags, []string{"b"}) {
		t.Errorf("Update() = %+v", updated)
	}
	if updated.Scheme != "random" || !slices.Equal(updated.Colors, []string{"#000000"}) {
		t.Errorf("Update() changed untouched fields: %+v", updated)
	}
	if !updated.UpdatedAt.Equal(later) || !updated.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("Update() timestamps = %v / %v", updated.CreatedAt, updated.UpdatedAt)
	}

	if _, err := s.Update(ctx, "missing", Update{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, _ := s.Save(ctx, []string{"#000000"}, "a", "", nil)
	b, _ := s.Save(ctx, []string{"#FFFFFF"}, "b", "", nil)

	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	all, _ := s.List(ctx)
	if len(all) != 1 || all[0].ID != b.ID {
		t.Errorf("List() after delete = %+v", all)
	}

	if err := s.Delete(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(twice) error = %v, want ErrNotFound", err)
	}
}

func TestSearchFilterAndTags(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, _ = s.Save(ctx, []string{"#4A90E2"}, "Ocean Breeze", "calm", []string{"blue", "summer"})
	_, _ = s.Save(ctx, []string{"#FF6B6B"}, "Sunset", "energetic", []string{"warm", "summer"})
	_, _ = s.Save(ctx, []string{"#2C3E50"}, "Corporate", "professional", []string{"Dark"})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name match ignores case", query: "ocean", want: []string{"Ocean Breeze"}},
		{name: "tag match", query: "SUMMER", want: []string{"Ocean Breeze", "Sunset"}},
		{name: "tag substring", query: "ar", want: []string{"Sunset", "Corporate"}},
		{name: "no match", query: "forest", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Search(ctx, tt.query)
			if err != nil {
				t.Fatalf("Search() error: %v", err)
			}
			if names := paletteNames(got); !slices.Equal(names, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, names, tt.want)
			}
		})
	}

	filtered, _ := s.FilterByTags(ctx, []string{"summer", "warm"})
	if names := paletteNames(filtered); !slices.Equal(names, []string{"Sunset"}) {
		t.Errorf("FilterByTags() = %v", names)
	}

	all, _ := s.FilterByTags(ctx, nil)
	if len(all) != 3 {
		t.Errorf("FilterByTags(nil) returned %d palettes, want 3", len(all))
	}

	tags, _ := s.Tags(ctx)
	if want := []string{"Dark", "blue", "summer", "warm"}; !slices.Equal(tags, want) {
		t.Errorf("Tags() = %v, want %v", tags, want)
	}
}

func TestCurrent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Current(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Current() on empty store error = %v, want ErrNotFound", err)
	}

	want := Current{Colors: []string{"#ABCDEF"}, Scheme: "analogous", Base: "#ABCDEF"}
	if err := s.SetCurrent(ctx, want); err != nil {
		t.Fatalf("SetCurrent() error: %v", err)
	}

	got, err := s.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error: %v", err)
	}
	if got.Scheme != want.Scheme || !slices.Equal(got.Colors, want.Colors) || got.Base != want.Base {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, _ = s.Save(ctx, []string{"#000000"}, "x", "", nil)
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() on empty store error: %v", err)
	}

	all, _ := s.List(ctx)
	if len(all) != 0 {
		t.Errorf("List() after Clear() = %d palettes", len(all))
	}
}

func TestCorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(filepath.Join(s.Dir(), PalettesFile), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := s.List(context.Background()); err == nil {
		t.Error("List() expected error for corrupt file")
	}
}

func TestCancelledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Save(ctx, nil, "", "", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Save() with cancelled context error = %v", err)
	}
}

func TestExportImport(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatXZ, FormatGzip} {
		t.Run(string(format), func(t *testing.T) {
			ctx := context.Background()
			src := newTestStore(t)
			orig, _ := src.Save(ctx, []string{"#FF0000", "#00FF00"}, "Export me", "triadic", []string{"x"})

			var buf bytes.Buffer
			if err := src.Export(ctx, &buf, format); err != nil {
				t.Fatalf("Export() error: %v", err)
			}
			if format == FormatJSON && !strings.Contains(buf.String(), "Export me") {
				t.Errorf("JSON export missing palette name:\n%s", buf.String())
			}
			wantCompression := map[Format]compression.Format{
				FormatJSON: compression.None,
				FormatXZ:   compression.XZ,
				FormatGzip: compression.Gzip,
			}[format]
			if got := compression.Detect(buf.Bytes()); got != wantCompression {
				t.Errorf("export stream detected as %s, want %s", got, wantCompression)
			}

			dst := newTestStore(t)
			_, _ = dst.Save(ctx, []string{"#000000"}, "Existing", "", nil)

			n, err := dst.Import(ctx, &buf)
			if err != nil {
				t.Fatalf("Import() error: %v", err)
			}
			if n != 1 {
				t.Errorf("Import() = %d, want 1", n)
			}

			all, _ := dst.List(ctx)
			if names := paletteNames(all); !slices.Equal(names, []string{"Existing", "Export me"}) {
				t.Fatalf("List() after import = %v", names)
			}
			if all[1].ID == orig.ID {
				t.Error("Import() kept the original id")
			}
			if !slices.Equal(all[1].Colors, orig.Colors) || all[1].Scheme != "triadic" {
				t.Errorf("imported palette = %+v", all[1])
			}
		})
	}
}

func TestImportRejectsNonArray(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Import(context.Background(), strings.NewReader(`{"name":"x"}`)); err == nil {
		t.Error("Import() expected error for JSON object")
	}
	if _, err := s.Import(context.Background(), strings.NewReader("not json")); err == nil {
		t.Error("Import() expected error for garbage")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	s := newTestStore(t)
	var buf bytes.Buffer
	if err := s.Export(context.Background(), &buf, Format("yaml")); err == nil {
		t.Error("Export(yaml) expected error")
	}
}

func paletteNames(palettes []Palette) []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}
