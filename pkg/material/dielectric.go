package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractionIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Clear glass does not absorb
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	unitDirection := core.Unit(rayIn.Direction)

	// Orient the normal against the ray and pick the index ratio for the side we come from
	var outwardNormal core.Vec3
	var refractionRatio float64
	if unitDirection.Dot(hit.Normal) < 0 {
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractionIndex // entering the medium
	} else {
		outwardNormal = hit.Normal.Mul(-1)
		refractionRatio = d.RefractionIndex // exiting the medium
	}

	cosTheta := math.Min(-unitDirection.Dot(outwardNormal), 1.0)

	var direction core.Vec3
	refracted, canRefract := Refract(unitDirection, outwardNormal, refractionRatio)
	if !canRefract || Schlick(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = Reflect(unitDirection, outwardNormal)
	} else {
		direction = refracted
	}

	return ScatterResult{
		Attenuation: attenuation,
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}

// Refract bends the unit vector uv through a surface with normal n using Snell's law.
// It returns false on total internal reflection.
func Refract(uv, n core.Vec3, etaiOverEtat float64) (core.Vec3, bool) {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	discriminant := 1.0 - etaiOverEtat*etaiOverEtat*(1.0-cosTheta*cosTheta)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(discriminant))
	return rOutPerp.Add(rOutParallel), true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation
func Schlick(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
