package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmylchreest/swatch/internal/compression"
	"github.com/jmylchreest/swatch/internal/security"
)

// Export writes every palette to w as an indented JSON array, optionally compressed.
func (s *FileStore) Export(ctx context.Context, w io.Writer, format Format) error {
	var compress compression.Format
	switch format {
	case FormatJSON, "":
		compress = compression.None
	case FormatXZ:
		compress = compression.XZ
	case FormatGzip:
		compress = compression.Gzip
	default:
		return fmt.Errorf("unsupported export format: %s (valid: json, xz, gzip)", format)
	}

	palettes, err := s.List(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(palettes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode palettes: %w", err)
	}

	cw, err := compression.NewWriter(w, compress)
	if err != nil {
		return err
	}
	if _, err := cw.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("failed to finish export: %w", err)
	}

	s.logger.Debug("exported palettes", "count", len(palettes), "format", string(format))
	return nil
}

// Import appends the palettes from a JSON array in r, plain or compressed.
// Every imported palette receives a fresh id. It returns the number imported.
func (s *FileStore) Import(ctx context.Context, r io.Reader) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	imported, err := decodeImport(r)
	if err != nil {
		s.logger.Warn("palette import rejected", "error", err)
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	palettes, err := s.load()
	if err != nil {
		return 0, err
	}

	now := s.now()
	for _, p := range imported {
		p.ID = s.newID()
		p.Tags = nonNil(p.Tags)
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = now
		}
		palettes = append(palettes, p)
	}

	if err := s.write(palettes); err != nil {
		return 0, err
	}

	s.logger.Debug("imported palettes", "count", len(imported))
	return len(imported), nil
}

// decodeImport reads a JSON array of palettes, decompressing xz, gzip or
// bzip2 input first.
func decodeImport(r io.Reader) ([]Palette, error) {
	src, format, err := compression.NewReader(r, security.MaxImportSize)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s import: %w", format, err)
	}

	var palettes []Palette
	if err := json.Unmarshal(bytes.TrimSpace(data), &palettes); err != nil {
		return nil, fmt.Errorf("invalid import format (expected a JSON array of palettes): %w", err)
	}
	return palettes, nil
}
