package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// determinantEpsilon rejects back faces and rays parallel to the triangle.
// It is a geometric tolerance, unrelated to the ray's tMin.
const determinantEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	Vertices [3]core.Vec3      // Counter-clockwise when seen from the front
	Material material.Material // Material of the triangle
	normal   core.Vec3         // Stored normal (geometric or supplied by a mesh)
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	t := &Triangle{
		Vertices: [3]core.Vec3{v0, v1, v2},
		Material: material,
	}
	t.normal = t.geometricNormal()
	return t
}

// NewTriangleWithNormal creates a new triangle carrying a custom normal, e.g. from a mesh file
func NewTriangleWithNormal(v0, v1, v2 core.Vec3, normal core.Vec3, material material.Material) *Triangle {
	return &Triangle{
		Vertices: [3]core.Vec3{v0, v1, v2},
		Material: material,
		normal:   core.Unit(normal),
	}
}

// geometricNormal is the unit normal of the front face, edge1 × edge2
func (t *Triangle) geometricNormal() core.Vec3 {
	edge1 := t.Vertices[1].Sub(t.Vertices[0])
	edge2 := t.Vertices[2].Sub(t.Vertices[0])
	return core.Unit(edge1.Cross(edge2))
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// Only the front face is hit; the reported normal is always the geometric one.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	v0, v1, v2 := t.Vertices[0], t.Vertices[1], t.Vertices[2]
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Back faces and parallel rays are culled
	if a < determinantEpsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam <= tMin || tParam >= tMax {
		return nil, false
	}

	return material.NewHitRecord(ray, tParam, ray.At(tParam), t.geometricNormal(), t.Material, sampler), true
}

// Normal returns the triangle's stored normal vector
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
