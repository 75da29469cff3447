package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance carried back along ray
	RayColor(ray core.Ray, world geometry.Hitable, sampler core.Sampler) core.Vec3
}

// Background gives the radiance for rays that leave the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SkyGradient blends linearly from Bottom (looking straight down) to Top (straight up)
type SkyGradient struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// DefaultSky is white at the horizon below and light blue above
func DefaultSky() SkyGradient {
	return SkyGradient{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the gradient value for the ray's unit direction
func (s SkyGradient) Color(ray core.Ray) core.Vec3 {
	unitDirection := core.Unit(ray.Direction)
	t := 0.5 * (unitDirection.Y() + 1.0)
	return core.Lerp(s.Bottom, s.Top, t)
}
