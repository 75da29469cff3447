package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by ByName for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

type sceneEntry struct {
	info  SceneInfo
	build func(Options) (*Scene, error)
}

var registry = map[string]sceneEntry{
	"default": {
		info:  SceneInfo{Name: "default", Description: "Five spheres: diffuse, ground, fuzzy gold and a hollow glass bubble"},
		build: func(Options) (*Scene, error) { return NewDefaultScene(), nil },
	},
	"dof": {
		info:  SceneInfo{Name: "dof", Description: "The five spheres through a wide aperture focused on the center sphere"},
		build: func(Options) (*Scene, error) { return NewDepthOfFieldScene(), nil },
	},
	"planes": {
		info:  SceneInfo{Name: "planes", Description: "Open room of finite planes with a glass, a metal and a diffuse sphere"},
		build: func(Options) (*Scene, error) { return NewPlanesScene(), nil },
	},
	"random": {
		info:  SceneInfo{Name: "random", Description: "Field of small random spheres around three large ones"},
		build: func(opts Options) (*Scene, error) { return NewRandomScene(opts.Seed), nil },
	},
	"mesh": {
		info:  SceneInfo{Name: "mesh", Description: "Triangle meshes from a file, or built-in box, pyramid and icosahedron"},
		build: NewMeshScene,
	},
	"empty": {
		info:  SceneInfo{Name: "empty", Description: "No objects, only the sky"},
		build: func(Options) (*Scene, error) { return NewEmptyScene(), nil },
	},
}

// List returns the built-in scenes sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, entry := range registry {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// ByName builds a registered scene
func ByName(name string, opts Options) (*Scene, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return entry.build(opts)
}
