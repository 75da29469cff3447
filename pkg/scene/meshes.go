package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Built-in solids are centered on the origin before options apply. Faces wind
// counter-clockwise seen from outside so every front face points outward.

// NewBoxMesh creates an axis-aligned box from its half extents
func NewBoxMesh(halfSize core.Vec3, mat material.Material, options *geometry.TriangleMeshOptions) (*geometry.TriangleMesh, error) {
	x, y, z := halfSize.X(), halfSize.Y(), halfSize.Z()
	vertices := []core.Vec3{
		core.NewVec3(-x, -y, -z), // 0
		core.NewVec3(x, -y, -z),  // 1
		core.NewVec3(x, y, -z),   // 2
		core.NewVec3(-x, y, -z),  // 3
		core.NewVec3(-x, -y, z),  // 4
		core.NewVec3(x, -y, z),   // 5
		core.NewVec3(x, y, z),    // 6
		core.NewVec3(-x, y, z),   // 7
	}

	// Quads split along their first diagonal
	quads := [][4]int{
		{0, 3, 2, 1}, // back
		{4, 5, 6, 7}, // front
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
		{0, 1, 5, 4}, // bottom
		{3, 7, 6, 2}, // top
	}
	faces := make([]int, 0, len(quads)*6)
	for _, q := range quads {
		faces = append(faces, q[0], q[1], q[2], q[0], q[2], q[3])
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, options)
}

// NewPyramidMesh creates a square pyramid with the given base edge and height
func NewPyramidMesh(base, height float64, mat material.Material, options *geometry.TriangleMeshOptions) (*geometry.TriangleMesh, error) {
	b := base / 2
	h := height / 2
	vertices := []core.Vec3{
		core.NewVec3(-b, -h, -b), // 0
		core.NewVec3(b, -h, -b),  // 1
		core.NewVec3(b, -h, b),   // 2
		core.NewVec3(-b, -h, b),  // 3
		core.NewVec3(0, h, 0),    // 4 apex
	}

	faces := []int{
		// Base
		0, 1, 2, 0, 2, 3,
		// Back, right, front, left
		1, 0, 4, 2, 1, 4, 3, 2, 4, 0, 3, 4,
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, options)
}

// NewIcosahedronMesh creates a regular icosahedron with the given circumradius
func NewIcosahedronMesh(radius float64, mat material.Material, options *geometry.TriangleMeshOptions) (*geometry.TriangleMesh, error) {
	t := math.Phi
	raw := []core.Vec3{
		core.NewVec3(-1, t, 0), core.NewVec3(1, t, 0), core.NewVec3(-1, -t, 0), core.NewVec3(1, -t, 0),
		core.NewVec3(0, -1, t), core.NewVec3(0, 1, t), core.NewVec3(0, -1, -t), core.NewVec3(0, 1, -t),
		core.NewVec3(t, 0, -1), core.NewVec3(t, 0, 1), core.NewVec3(-t, 0, -1), core.NewVec3(-t, 0, 1),
	}
	vertices := make([]core.Vec3, len(raw))
	for i, v := range raw {
		vertices[i] = v.Normalize().Mul(radius)
	}

	faces := []int{
		// Around vertex 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// Adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// Around vertex 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// Adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return geometry.NewTriangleMesh(vertices, faces, mat, options)
}
