package material

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: mgl64.Clamp(fuzz, 0, 1)}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(core.Unit(rayIn.Direction), hit.Normal)

	// Perturb the mirror direction for brushed metals
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Mul(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Directions pushed below the surface are absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Attenuation: m.Albedo,
		Scattered:   scattered,
	}, scatters
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Sub(n.Mul(2 * v.Dot(n)))
}
