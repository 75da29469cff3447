package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape.
// A negative radius keeps the same surface but flips the normal inward,
// which models the inner wall of a hollow glass shell.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Sub(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.LenSqr()
	if a == 0 {
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.LenSqr() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	// Dividing by the signed radius points the normal inward for hollow spheres
	normal := point.Sub(s.Center).Mul(1.0 / s.Radius)

	return material.NewHitRecord(ray, root, point, normal, s.Material, sampler), true
}
