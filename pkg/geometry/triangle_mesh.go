package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// TriangleMesh is a collection of triangles sharing a default material.
// Intersection is a linear scan over the triangles.
type TriangleMesh struct {
	triangles []*Triangle
	list      *HitableList
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Normals   []core.Vec3         // Optional custom normals (one per triangle)
	Materials []material.Material // Optional per-triangle materials
	Rotation  *core.Vec3          // Optional rotation (radians around X, Y, Z) applied to vertices
	Center    *core.Vec3          // Optional center point for rotation
	Scale     float64             // Optional uniform scale applied after rotation (0 = none)
	Offset    core.Vec3           // Translation applied last
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices.
// faces holds three vertex indices per triangle; options may be nil.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat material.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}

	numTriangles := len(faces) / 3

	if options != nil {
		if options.Normals != nil && len(options.Normals) != numTriangles {
			return nil, fmt.Errorf("got %d normals for %d triangles", len(options.Normals), numTriangles)
		}
		if options.Materials != nil && len(options.Materials) != numTriangles {
			return nil, fmt.Errorf("got %d materials for %d triangles", len(options.Materials), numTriangles)
		}
	}

	workingVertices := transformVertices(vertices, options)

	triangles := make([]*Triangle, numTriangles)
	hitables := make([]Hitable, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		if i0 >= len(workingVertices) || i1 >= len(workingVertices) || i2 >= len(workingVertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			return nil, fmt.Errorf("triangle %d references vertex out of range [0,%d)", i, len(workingVertices))
		}

		triangleMaterial := mat
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}

		var triangle *Triangle
		if options != nil && options.Normals != nil {
			triangle = NewTriangleWithNormal(workingVertices[i0], workingVertices[i1], workingVertices[i2], options.Normals[i], triangleMaterial)
		} else {
			triangle = NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], triangleMaterial)
		}
		triangles[i] = triangle
		hitables[i] = triangle
	}

	return &TriangleMesh{
		triangles: triangles,
		list:      NewHitableList(hitables...),
	}, nil
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return tm.list.Hit(ray, tMin, tMax, sampler)
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

// GetTriangles returns the individual triangles
func (tm *TriangleMesh) GetTriangles() []*Triangle {
	return tm.triangles
}

// transformVertices applies rotation about the center, then scale, then offset
func transformVertices(vertices []core.Vec3, options *TriangleMeshOptions) []core.Vec3 {
	if options == nil || (options.Rotation == nil && options.Scale == 0 && options.Offset == (core.Vec3{})) {
		return vertices
	}

	rotation := mgl64.Ident3()
	if options.Rotation != nil {
		r := *options.Rotation
		// X first, then Y, then Z
		rotation = mgl64.Rotate3DZ(r.Z()).Mul3(mgl64.Rotate3DY(r.Y())).Mul3(mgl64.Rotate3DX(r.X()))
	}

	var center core.Vec3
	if options.Center != nil {
		center = *options.Center
	}

	scale := options.Scale
	if scale == 0 {
		scale = 1
	}

	out := make([]core.Vec3, len(vertices))
	for i, vertex := range vertices {
		v := rotation.Mul3x1(vertex.Sub(center)).Add(center)
		out[i] = v.Mul(scale).Add(options.Offset)
	}
	return out
}
