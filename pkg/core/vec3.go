package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the 3-component vector used for points, directions and RGB colors.
// The algebra (Add, Sub, Mul, Dot, Cross, Len, LenSqr, Normalize) comes from mgl64.
type Vec3 = mgl64.Vec3

// Vec2 is a 2-component vector, used for paired random samples
type Vec2 = mgl64.Vec2

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Hadamard returns the component-wise product of two vectors
func Hadamard(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Unit returns a unit vector in the same direction as v.
// A zero-length vector yields the zero vector rather than NaN components.
func Unit(v Vec3) Vec3 {
	length := v.Len()
	if length == 0 {
		return Vec3{}
	}
	return v.Mul(1.0 / length)
}

// Sqrt returns the component-wise square root, clamping negative components to zero
func Sqrt(v Vec3) Vec3 {
	return Vec3{
		math.Sqrt(math.Max(0, v[0])),
		math.Sqrt(math.Max(0, v[1])),
		math.Sqrt(math.Max(0, v[2])),
	}
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func Clamp(v Vec3, minVal, maxVal float64) Vec3 {
	return Vec3{
		mgl64.Clamp(v[0], minVal, maxVal),
		mgl64.Clamp(v[1], minVal, maxVal),
		mgl64.Clamp(v[2], minVal, maxVal),
	}
}

// Lerp linearly interpolates between a (t=0) and b (t=1)
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Mul(1.0 - t).Add(b.Mul(t))
}

// NearZero reports whether every component is within 1e-8 of zero
func NearZero(v Vec3) bool {
	const s = 1e-8
	return math.Abs(v[0]) < s && math.Abs(v[1]) < s && math.Abs(v[2]) < s
}

// IsFinite reports whether no component is NaN or infinite
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
