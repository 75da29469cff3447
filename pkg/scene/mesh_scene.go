package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// meshFitSize is the largest extent a loaded mesh is scaled to
const meshFitSize = 2.0

// NewMeshScene renders the meshes in opts.MeshPath, fitted to a 2 unit box
// resting on the ground. Without a path it shows a box, a pyramid and an
// icosahedron built in code.
func NewMeshScene(opts Options) (*Scene, error) {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewHitableList(NewGroundPlane(core.NewVec3(0, 0, 0), 40, ground))

	if opts.MeshPath == "" {
		if err := addBuiltinMeshes(world); err != nil {
			return nil, err
		}
	} else {
		meshes, err := loaders.Load(opts.MeshPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load mesh scene: %w", err)
		}
		triangles := 0
		for _, mesh := range meshes {
			triangleMesh, err := mesh.TriangleMesh(nil, fitOptions(meshes))
			if err != nil {
				return nil, err
			}
			world.Add(triangleMesh)
			triangles += triangleMesh.GetTriangleCount()
		}
		core.Debugf(opts.Logger, "Loaded %d meshes with %d triangles from %s", len(meshes), triangles, opts.MeshPath)
	}

	return &Scene{
		Name:  "mesh",
		World: world,
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 2.5, 6),
			LookAt:      core.NewVec3(0, 0.9, 0),
			ViewUp:      core.NewVec3(0, 1, 0),
			VFov:        40.0,
			AspectRatio: 1.5,
		},
		Render: renderer.Config{
			Width:           300,
			Height:          200,
			SamplesPerPixel: 32,
			MaxDepth:        20,
		},
	}, nil
}

// fitOptions scales all meshes together so the largest extent is meshFitSize,
// centered over the origin with the lowest point on the ground
func fitOptions(meshes []*loaders.Mesh) *geometry.TriangleMeshOptions {
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, mesh := range meshes {
		for _, v := range mesh.Vertices {
			for axis := 0; axis < 3; axis++ {
				lo[axis] = math.Min(lo[axis], v[axis])
				hi[axis] = math.Max(hi[axis], v[axis])
			}
		}
	}

	extent := hi.Sub(lo)
	largest := math.Max(extent.X(), math.Max(extent.Y(), extent.Z()))
	if math.IsInf(largest, 0) || largest <= 0 {
		return nil
	}

	scale := meshFitSize / largest
	// Bottom center of the bounds lands on the origin
	bottomCenter := core.NewVec3((lo.X()+hi.X())/2, lo.Y(), (lo.Z()+hi.Z())/2)
	return &geometry.TriangleMeshOptions{
		Scale:  scale,
		Offset: bottomCenter.Mul(-scale),
	}
}

func addBuiltinMeshes(world *geometry.HitableList) error {
	boxRotation := core.NewVec3(0, math.Pi/6, 0)
	boxCenter := core.NewVec3(0, 0, 0)
	box, err := NewBoxMesh(core.NewVec3(0.6, 0.6, 0.6), material.NewLambertian(core.NewVec3(0.8, 0.3, 0.2)), &geometry.TriangleMeshOptions{
		Rotation: &boxRotation,
		Center:   &boxCenter,
		Offset:   core.NewVec3(-2, 0.6, 0),
	})
	if err != nil {
		return err
	}

	pyramid, err := NewPyramidMesh(1.2, 1.6, material.NewMetal(core.NewVec3(0.8, 0.7, 0.3), 0.15), &geometry.TriangleMeshOptions{
		Offset: core.NewVec3(0, 0.8, -0.5),
	})
	if err != nil {
		return err
	}

	icosahedron, err := NewIcosahedronMesh(0.7, material.NewDielectric(1.5), &geometry.TriangleMeshOptions{
		Offset: core.NewVec3(2, 0.7, 0),
	})
	if err != nil {
		return err
	}

	world.Add(box, pyramid, icosahedron)
	return nil
}
