package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates the five sphere scene: a blue diffuse sphere, a large
// ground sphere, a fuzzy gold metal sphere and a hollow glass bubble.
func NewDefaultScene() *Scene {
	return &Scene{
		Name:  "default",
		World: fiveSpheres(),
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(-2, 2, 1),
			LookAt:      core.NewVec3(0, 0, -1),
			ViewUp:      core.NewVec3(0, 1, 0),
			VFov:        45.0,
			AspectRatio: 2.0,
		},
		Render: renderer.Config{
			Width:           200,
			Height:          100,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}

// NewDepthOfFieldScene shows the five spheres through a wide lens focused on
// the center sphere.
func NewDepthOfFieldScene() *Scene {
	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)

	return &Scene{
		Name:  "dof",
		World: fiveSpheres(),
		CameraConfig: renderer.CameraConfig{
			LookFrom:      lookFrom,
			LookAt:        lookAt,
			ViewUp:        core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   2.0,
			Aperture:      2.0,
			FocusDistance: lookFrom.Sub(lookAt).Len(),
		},
		Render: renderer.Config{
			Width:           400,
			Height:          200,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}
}

func fiveSpheres() *geometry.HitableList {
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	return geometry.NewHitableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		// Negative radius flips the normal so the pair forms a hollow shell
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
	)
}

// NewEmptyScene has no objects; every ray sees the sky
func NewEmptyScene() *Scene {
	return &Scene{
		Name:  "empty",
		World: geometry.NewHitableList(),
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			ViewUp:      core.NewVec3(0, 1, 0),
			VFov:        90.0,
			AspectRatio: 2.0,
		},
		Render: renderer.Config{
			Width:           200,
			Height:          100,
			SamplesPerPixel: 4,
		},
	}
}
