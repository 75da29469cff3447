package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// objFace is one polygon with resolved position and normal indices (-1 = none)
type objFace struct {
	positions []int
	normals   []int
}

// objGroup collects faces until the next o/g statement
type objGroup struct {
	name  string
	faces []objFace
}

// LoadOBJ reads a Wavefront OBJ file
func LoadOBJ(filename string) ([]*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	return ParseOBJ(file)
}

// ParseOBJ reads v, vn, f, o and g statements; everything else is ignored.
// Polygons are fan-triangulated. Each object or group becomes a Mesh, and a
// group with a face referencing a missing vertex is dropped rather than failing the load.
// Triangles take the normal of their first corner when one is given.
func ParseOBJ(r io.Reader) ([]*Mesh, error) {
	var positions, normals []core.Vec3
	groups := []*objGroup{{name: "default"}}
	current := groups[0]

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNumber, err)
			}
			positions = append(positions, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNumber, err)
			}
			normals = append(normals, n)
		case "o", "g":
			name := strings.Join(fields[1:], " ")
			if len(current.faces) == 0 {
				current.name = name
				continue
			}
			current = &objGroup{name: name}
			groups = append(groups, current)
		case "f":
			face, err := parseFace(fields[1:], len(positions), len(normals))
			if err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNumber, err)
			}
			current.faces = append(current.faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	var meshes []*Mesh
	for _, group := range groups {
		if mesh, ok := buildOBJMesh(group, positions, normals); ok {
			meshes = append(meshes, mesh)
		}
	}
	return meshes, nil
}

// parseFace resolves "i", "i/j", "i//k" and "i/j/k" corners. Negative indices
// count back from the most recent vertex.
func parseFace(corners []string, numPositions, numNormals int) (objFace, error) {
	if len(corners) < 3 {
		return objFace{}, fmt.Errorf("need at least 3 vertices, got %d", len(corners))
	}

	face := objFace{
		positions: make([]int, len(corners)),
		normals:   make([]int, len(corners)),
	}
	for i, corner := range corners {
		parts := strings.Split(corner, "/")

		p, err := resolveIndex(parts[0], numPositions)
		if err != nil {
			return objFace{}, err
		}
		face.positions[i] = p

		face.normals[i] = -1
		if len(parts) >= 3 && parts[2] != "" {
			n, err := resolveIndex(parts[2], numNormals)
			if err != nil {
				return objFace{}, err
			}
			face.normals[i] = n
		}
	}
	return face, nil
}

// resolveIndex turns a 1-based (or negative relative) index into a 0-based one.
// Range checking is left to the mesh builder.
func resolveIndex(raw string, count int) (int, error) {
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", raw)
	}
	switch {
	case idx > 0:
		return idx - 1, nil
	case idx < 0:
		return count + idx, nil
	default:
		return 0, fmt.Errorf("index 0 is not valid")
	}
}

func buildOBJMesh(group *objGroup, positions, normals []core.Vec3) (*Mesh, bool) {
	if len(group.faces) == 0 {
		return nil, false
	}

	// Only the vertices this group uses are copied, in first-use order
	remap := make(map[int]int)
	mesh := &Mesh{Name: group.name}
	hasNormals := true

	for _, face := range group.faces {
		for _, n := range face.normals {
			if n < 0 || n >= len(normals) {
				hasNormals = false
			}
		}
	}

	for _, face := range group.faces {
		for _, p := range face.positions {
			if p < 0 || p >= len(positions) {
				return nil, false
			}
		}
		indices := make([]int, len(face.positions))
		for i, p := range face.positions {
			local, seen := remap[p]
			if !seen {
				local = len(mesh.Vertices)
				remap[p] = local
				mesh.Vertices = append(mesh.Vertices, positions[p])
			}
			indices[i] = local
		}

		// Fan triangulation around the first corner
		for i := 1; i+1 < len(indices); i++ {
			mesh.Faces = append(mesh.Faces, indices[0], indices[i], indices[i+1])
			if hasNormals {
				mesh.Normals = append(mesh.Normals, normals[face.normals[0]])
			}
		}
	}

	return mesh, true
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("need 3 components, got %d", len(fields))
	}
	var v core.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid number %q", fields[i])
		}
		v[i] = f
	}
	return v, nil
}
