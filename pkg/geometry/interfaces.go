package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hitable interface for objects that can be hit by rays.
// Hit reports the closest intersection with tMin < t < tMax, with the material's
// scatter response already resolved in the record. Implementations must be safe
// for concurrent calls: they are read-only once the scene is built.
type Hitable interface {
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)
}
