package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Each worker owns its sampler; samplers are not safe for concurrent use.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a new generator with the given seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInUnitSphere draws points in the [-1,1]³ cube until one falls strictly
// inside the unit sphere. About 52% of draws are accepted.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := sampler.Get3D().Mul(2).Sub(NewVec3(1, 1, 1))
		if p.LenSqr() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk draws points in the [-1,1]² square (z = 0) until one falls
// strictly inside the unit disk. About 79% of draws are accepted.
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X()-1, 2*s.Y()-1, 0)
		if p.Len() < 1.0 {
			return p
		}
	}
}
