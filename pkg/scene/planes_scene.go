package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewPlanesScene creates a box room open toward the camera and the sky, built
// from finite planes, holding three spheres and a triangle.
func NewPlanesScene() *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	mirror := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	glass := material.NewDielectric(1.5)
	orange := material.NewLambertian(core.NewVec3(0.8, 0.4, 0.1))

	const size = 4.0
	corner := core.NewVec3(-size/2, 0, -size)

	// Each normal faces into the room
	floor := geometry.NewPlaneFromEdges(corner, core.NewVec3(0, 0, size), core.NewVec3(size, 0, 0), white)
	back := geometry.NewPlaneFromEdges(corner, core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0), white)
	left := geometry.NewPlaneFromEdges(corner, core.NewVec3(0, size, 0), core.NewVec3(0, 0, size), red)
	right := geometry.NewPlaneFromEdges(corner.Add(core.NewVec3(size, 0, 0)), core.NewVec3(0, 0, size), core.NewVec3(0, size, 0), green)

	world := geometry.NewHitableList(
		floor, back, left, right,
		geometry.NewSphere(core.NewVec3(-1, 0.6, -2.5), 0.6, mirror),
		geometry.NewSphere(core.NewVec3(0.9, 0.5, -1.8), 0.5, glass),
		geometry.NewSphere(core.NewVec3(0.2, 0.35, -3.2), 0.35, orange),
		// Facing the camera
		geometry.NewTriangle(
			core.NewVec3(-0.4, 1.6, -3.5),
			core.NewVec3(0.6, 1.6, -3.5),
			core.NewVec3(0.1, 2.5, -3.5),
			orange,
		),
	)

	return &Scene{
		Name:  "planes",
		World: world,
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 2, 3),
			LookAt:      core.NewVec3(0, 1.2, -2),
			ViewUp:      core.NewVec3(0, 1, 0),
			VFov:        50.0,
			AspectRatio: 1.0,
		},
		Render: renderer.Config{
			Width:           300,
			Height:          300,
			SamplesPerPixel: 64,
			MaxDepth:        50,
		},
	}
}
