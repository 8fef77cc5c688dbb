// Package security provides input limits and path validation for swatch.
package security

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
)

// MaxImportSize caps how much (decompressed) data a palette import may read.
const MaxImportSize = 16 * 1024 * 1024

// ValidateOutputPath checks that path names a file with one of the allowed
// extensions and contains no directory traversal.
func ValidateOutputPath(path string, allowedExts ...string) error {
	if path == "" {
		return fmt.Errorf("empty output path")
	}

	if slices.Contains(strings.Split(filepath.ToSlash(path), "/"), "..") {
		return fmt.Errorf("output path contains directory traversal (..) - not allowed")
	}

	if len(allowedExts) > 0 {
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(allowedExts, ext) {
			return fmt.Errorf("unsupported file extension %q (supported: %s)", ext, strings.Join(allowedExts, ", "))
		}
	}

	return nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Input of exactly the limit ends with io.EOF; anything longer returns an error.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		var extra [1]byte
		if n, err := io.ReadFull(l.R, extra[:]); n == 0 && errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("input size limit exceeded")
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
