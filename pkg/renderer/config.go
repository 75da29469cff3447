package renderer

import (
	"errors"
	"fmt"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Parallel workers (0 = runtime.NumCPU())
	TileSize        int   // Tile edge length in pixels
	Seed            int64 // Base seed for the per-tile random generators
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           1200,
		Height:          800,
		SamplesPerPixel: 10,
		MaxDepth:        50,
		NumWorkers:      0,
		TileSize:        32,
		Seed:            42,
	}
}

// Merge returns c with every non-zero field of override applied
func (c Config) Merge(override Config) Config {
	if override.Width != 0 {
		c.Width = override.Width
	}
	if override.Height != 0 {
		c.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		c.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		c.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		c.NumWorkers = override.NumWorkers
	}
	if override.TileSize != 0 {
		c.TileSize = override.TileSize
	}
	if override.Seed != 0 {
		c.Seed = override.Seed
	}
	return c
}

// Validate reports every invalid setting
func (c Config) Validate() error {
	var errs []error
	if c.Width < 1 {
		errs = append(errs, fmt.Errorf("width must be at least 1, got %d", c.Width))
	}
	if c.Height < 1 {
		errs = append(errs, fmt.Errorf("height must be at least 1, got %d", c.Height))
	}
	if c.SamplesPerPixel < 1 {
		errs = append(errs, fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel))
	}
	if c.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("max depth must be at least 1, got %d", c.MaxDepth))
	}
	if c.NumWorkers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.NumWorkers))
	}
	if c.TileSize < 1 {
		errs = append(errs, fmt.Errorf("tile size must be at least 1, got %d", c.TileSize))
	}
	return errors.Join(errs...)
}
