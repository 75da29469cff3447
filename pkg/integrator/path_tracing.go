package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Config controls path termination and self-intersection avoidance
type Config struct {
	MaxDepth int     // Paths are cut off (black) after this many bounces
	TMin     float64 // Lower bound of the hit interval, keeps rays off the surface they left
}

// DefaultConfig returns the standard depth limit and hit offset
func DefaultConfig() Config {
	return Config{
		MaxDepth: 50,
		TMin:     0.001,
	}
}

// Merge returns c with every non-zero field of override applied
func (c Config) Merge(override Config) Config {
	if override.MaxDepth != 0 {
		c.MaxDepth = override.MaxDepth
	}
	if override.TMin != 0 {
		c.TMin = override.TMin
	}
	return c
}

// PathTracer implements unidirectional path tracing with a sky background
type PathTracer struct {
	config     Config
	background Background
}

// NewPathTracer creates a path tracer. A nil background uses DefaultSky.
func NewPathTracer(config Config, background Background) *PathTracer {
	if background == nil {
		background = DefaultSky()
	}
	return &PathTracer{
		config:     DefaultConfig().Merge(config),
		background: background,
	}
}

// Config returns the effective configuration
func (pt *PathTracer) Config() Config {
	return pt.config
}

// RayColor computes the color for a single camera ray
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Hitable, sampler core.Sampler) core.Vec3 {
	return pt.color(ray, world, sampler, 0)
}

// color follows one path. Each hit multiplies in the material attenuation;
// a miss returns the background, an absorbed path or the depth limit returns black.
func (pt *PathTracer) color(ray core.Ray, world geometry.Hitable, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth >= pt.config.MaxDepth {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, pt.config.TMin, math.Inf(1), sampler)
	if !isHit {
		return pt.background.Color(ray)
	}

	if hit.Scatter == nil {
		return core.Vec3{} // Material absorbed the ray
	}

	incoming := pt.color(hit.Scatter.Scattered, world, sampler, depth+1)
	return core.Hadamard(hit.Scatter.Attenuation, incoming)
}
