package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance in [0,1]
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Aim at a random point in the unit sphere tangent to the surface at the hit point
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))
	direction := target.Sub(hit.Point)

	// The random point can cancel the normal almost exactly
	if core.NearZero(direction) {
		direction = hit.Normal
	}

	return ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}
