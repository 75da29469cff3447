package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane represents a finite rectangle spanned from Center by the Width and Height
// edge vectors. Normal is used as given and is not flipped toward the ray.
type Plane struct {
	Center   core.Vec3 // Corner the edge vectors start from
	Normal   core.Vec3 // Unit surface normal
	Width    core.Vec3 // First in-plane edge; its length is the extent
	Height   core.Vec3 // Second in-plane edge; its length is the extent
	Material material.Material
}

// NewPlane creates a finite plane, normalizing the supplied normal
func NewPlane(center, normal, width, height core.Vec3, material material.Material) *Plane {
	return &Plane{
		Center:   center,
		Normal:   core.Unit(normal),
		Width:    width,
		Height:   height,
		Material: material,
	}
}

// NewPlaneFromEdges creates a finite plane whose normal is width × height
func NewPlaneFromEdges(center, width, height core.Vec3, material material.Material) *Plane {
	return NewPlane(center, width.Cross(height), width, height, material)
}

// Hit tests if a ray intersects with the rectangle
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never reach the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Center.Sub(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Project onto the edge vectors and keep the hit only inside the rectangle
	width := p.Width.Len()
	height := p.Height.Len()
	if width == 0 || height == 0 {
		return nil, false
	}
	local := hitPoint.Sub(p.Center)
	projWidth := local.Dot(p.Width) / width
	projHeight := local.Dot(p.Height) / height

	if projWidth <= 0 || projWidth >= width || projHeight <= 0 || projHeight >= height {
		return nil, false
	}

	return material.NewHitRecord(ray, t, hitPoint, p.Normal, p.Material, sampler), true
}
