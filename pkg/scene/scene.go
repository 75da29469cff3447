package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.HitableList // Objects in the scene
	CameraConfig renderer.CameraConfig
	Render       renderer.Config       // Preferred render settings for this scene
	Background   integrator.Background // nil means the default sky
}

// Options are inputs some scenes need to build themselves
type Options struct {
	MeshPath string      // Mesh file for the mesh scene; empty uses built-in solids
	Seed     int64       // Seed for randomly placed objects
	Logger   core.Logger // Receives load progress; nil is silent
}

// NewCamera builds the camera for a render of the given size. The aspect ratio
// follows the image so pixels stay square.
func (s *Scene) NewCamera(config renderer.Config) *renderer.Camera {
	cameraConfig := s.CameraConfig
	if config.Width > 0 && config.Height > 0 {
		cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)
	}
	return renderer.NewCamera(cameraConfig)
}

// NewRaytracer wires the scene into a raytracer. Zero fields of overrides keep
// the scene's own render settings.
func (s *Scene) NewRaytracer(overrides renderer.Config, logger core.Logger) *renderer.Raytracer {
	config := renderer.DefaultConfig().Merge(s.Render).Merge(overrides)
	pathTracer := integrator.NewPathTracer(integrator.Config{MaxDepth: config.MaxDepth}, s.Background)
	return renderer.NewRaytracer(s.World, s.NewCamera(config), config, pathTracer, logger)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, hitable := range s.World.Hitables {
		count += countPrimitives(hitable)
	}
	return count
}

// countPrimitives counts primitives in a single hitable, looking inside meshes and lists
func countPrimitives(hitable geometry.Hitable) int {
	switch obj := hitable.(type) {
	case *geometry.TriangleMesh:
		return obj.GetTriangleCount()
	case *geometry.HitableList:
		count := 0
		for _, h := range obj.Hitables {
			count += countPrimitives(h)
		}
		return count
	default:
		return 1
	}
}

// NewGroundPlane creates a large square floor at the given height, normal pointing up.
// The corner is placed so the square is centered on center.
func NewGroundPlane(center core.Vec3, size float64, mat material.Material) *geometry.Plane {
	corner := core.NewVec3(center.X()-size/2, center.Y(), center.Z()-size/2)
	// Edges along Z then X so that width × height points up
	return geometry.NewPlaneFromEdges(corner, core.NewVec3(0, 0, size), core.NewVec3(size, 0, 0), mat)
}
