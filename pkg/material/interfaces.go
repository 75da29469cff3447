package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Implementations are immutable and shared across primitives and workers.
type Material interface {
	// Scatter produces the outgoing ray and attenuation for a hit.
	// It returns false when the path is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation core.Vec3 // Color attenuation
	Scattered   core.Ray  // The scattered ray
}

// HitRecord contains information about a ray-object intersection.
// Primitives build it and resolve the material response before returning it.
type HitRecord struct {
	T       float64        // Parameter t along the ray, strictly inside the query interval
	Point   core.Vec3      // Point of intersection
	Normal  core.Vec3      // Unit surface normal, outward convention of the primitive
	Scatter *ScatterResult // Material response; nil when the material absorbed the ray
}

// NewHitRecord builds a hit record and resolves the material's scatter for it
func NewHitRecord(rayIn core.Ray, t float64, point, normal core.Vec3, m Material, sampler core.Sampler) *HitRecord {
	hit := &HitRecord{T: t, Point: point, Normal: normal}
	if m == nil {
		return hit
	}
	if result, ok := m.Scatter(rayIn, *hit, sampler); ok {
		hit.Scatter = &result
	}
	return hit
}
