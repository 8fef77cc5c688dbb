// Package compression wraps palette exports in compressed streams and detects
// the encoding of incoming data.
package compression

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/swatch/internal/security"
)

// Format is a stream compression.
type Format string

// Supported formats. Bzip2 can only be read.
const (
	None  Format = "none"
	XZ    Format = "xz"
	Gzip  Format = "gzip"
	Bzip2 Format = "bzip2"
)

// Magic numbers at the start of each compressed stream.
var (
	xzMagic    = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	gzipMagic  = []byte{0x1F, 0x8B}
	bzip2Magic = []byte("BZh")
)

// Detect identifies the compression of a stream from its first bytes.
func Detect(header []byte) Format {
	switch {
	case bytes.HasPrefix(header, xzMagic):
		return XZ
	case bytes.HasPrefix(header, gzipMagic):
		return Gzip
	case bytes.HasPrefix(header, bzip2Magic):
		return Bzip2
	default:
		return None
	}
}

// FromExt picks a format from a file name's final extension.
func FromExt(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return XZ
	case ".gz":
		return Gzip
	case ".bz2":
		return Bzip2
	default:
		return None
	}
}

// NewWriter returns a writer that compresses into w. Closing it flushes the
// stream but leaves w open.
func NewWriter(w io.Writer, format Format) (io.WriteCloser, error) {
	switch format {
	case None, "":
		return nopCloser{w}, nil
	case XZ:
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return xzw, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression for writing: %s (valid: none, xz, gzip)", format)
	}
}

// NewReader sniffs r and returns a reader over the decompressed data, capped
// at limit bytes, together with the detected format.
func NewReader(r io.Reader, limit int64) (io.Reader, Format, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(xzMagic))
	format := Detect(head)

	var src io.Reader
	switch format {
	case XZ:
		xzr, err := xz.NewReader(br)
		if err != nil {
			return nil, format, fmt.Errorf("failed to create xz reader: %w", err)
		}
		src = xzr
	case Gzip:
		gzr, err := gzip.NewReader(br)
		if err != nil {
			return nil, format, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		src = gzr
	case Bzip2:
		src = bzip2.NewReader(br)
	default:
		src = br
	}

	return security.NewLimitedReader(src, limit), format, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
