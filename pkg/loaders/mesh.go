package loaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/compression"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrUnsupportedFormat is returned for mesh files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported mesh format")

// Mesh is an indexed triangle list as read from a file
type Mesh struct {
	Name     string
	Vertices []core.Vec3
	Faces    []int       // Three vertex indices per triangle
	Normals  []core.Vec3 // Optional, one per triangle
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Faces) / 3
}

// DefaultMaterial is the flat blue-gray used for meshes without a material
func DefaultMaterial() material.Material {
	return material.NewLambertian(core.NewVec3(0.25, 0.35, 0.6))
}

// TriangleMesh builds the hitable for this mesh. A nil material uses DefaultMaterial;
// options may carry a transform and its normals are replaced by the mesh's own.
func (m *Mesh) TriangleMesh(mat material.Material, options *geometry.TriangleMeshOptions) (*geometry.TriangleMesh, error) {
	if mat == nil {
		mat = DefaultMaterial()
	}
	var opts geometry.TriangleMeshOptions
	if options != nil {
		opts = *options
	}
	opts.Normals = m.Normals

	mesh, err := geometry.NewTriangleMesh(m.Vertices, m.Faces, mat, &opts)
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
	}
	return mesh, nil
}

// Load reads every mesh in a .obj or .ply file. A trailing .gz, .zst or .sz
// extension decompresses the file first.
func Load(filename string) ([]*Mesh, error) {
	codec, inner := compression.FromPath(filename)

	switch ext := strings.ToLower(filepath.Ext(inner)); ext {
	case ".obj", ".ply":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer file.Close()

	reader, err := compression.NewReader(file, codec)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s stream: %w", codec, err)
	}
	defer reader.Close()

	if strings.EqualFold(filepath.Ext(inner), ".obj") {
		return ParseOBJ(reader)
	}

	data, err := ParsePLY(reader)
	if err != nil {
		return nil, err
	}
	return []*Mesh{data.Mesh(strings.TrimSuffix(filepath.Base(inner), filepath.Ext(inner)))}, nil
}
