// Package imageio writes rendered images to disk in several formats.
package imageio

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-pathtracer/pkg/compression"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownFormat is returned when no encoder matches the requested format
var ErrUnknownFormat = errors.New("unknown image format")

// Format names an output encoding
type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the supported formats
func Formats() []Format {
	return []Format{PPM, PNG, BMP, TIFF}
}

// ParseFormat accepts a format name or file extension, with or without the dot
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "ppm":
		return PPM, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format and compression from a file name such as
// "out.ppm" or "out.ppm.gz"
func FormatFromPath(path string) (Format, compression.Codec, error) {
	codec, inner := compression.FromPath(path)
	format, err := ParseFormat(filepath.Ext(inner))
	if err != nil {
		return "", compression.None, err
	}
	return format, codec, nil
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *renderer.Image, format Format) error {
	switch format {
	case PPM:
		return WritePPM(w, img)
	case PNG:
		return png.Encode(w, img.ToRGBA())
	case BMP:
		return bmp.Encode(w, img.ToRGBA())
	case TIFF:
		return tiff.Encode(w, img.ToRGBA(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Save writes img to path, choosing format and compression from the file name
func Save(path string, img *renderer.Image) error {
	format, codec, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	stream, err := compression.NewWriter(file, codec)
	if err != nil {
		file.Close()
		return err
	}

	if err := Encode(stream, img, format); err != nil {
		stream.Close()
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if err := stream.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush %s stream: %w", codec, err)
	}
	return file.Close()
}
