// Package compression wraps byte streams in gzip, zstd or snappy framing,
// chosen from a file suffix.
package compression

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Codec identifies a stream compression format
type Codec int

const (
	None Codec = iota
	Gzip
	Zstd
	Snappy
)

func (c Codec) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Snappy:
		return "snappy"
	default:
		return "none"
	}
}

// Suffix returns the file extension for the codec, or "" for None
func (c Codec) Suffix() string {
	switch c {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case Snappy:
		return ".sz"
	default:
		return ""
	}
}

// FromPath picks the codec from the last extension of path and returns
// the path with that extension removed. Unknown extensions give None.
func FromPath(path string) (Codec, string) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range []Codec{Gzip, Zstd, Snappy} {
		if ext == c.Suffix() {
			return c, path[:len(path)-len(ext)]
		}
	}
	return None, path
}

// NewWriter wraps w so that everything written is compressed with c.
// Close flushes the compressor but does not close w.
func NewWriter(w io.Writer, c Codec) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case Snappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown codec %d", int(c))
	}
}

// NewReader wraps r so that reads return the data decompressed with c.
// Close releases decoder resources but does not close r.
func NewReader(r io.Reader, c Codec) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return zr, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case Snappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unknown codec %d", int(c))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
