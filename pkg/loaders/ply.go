package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PLYHeader represents the parsed header information from a PLY file
type PLYHeader struct {
	Format   string // "binary_little_endian" or "ascii"
	Version  string // Usually "1.0"
	Elements []PLYElement
}

// PLYElement is one element declaration and its properties, in file order
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
	DataType string // For list properties, the type of the data
}

// PLYData contains the geometry loaded from a PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle), polygons fan-triangulated
	Normals  []core.Vec3 // Per-vertex normals (nx, ny, nz) - empty if not present
}

// Mesh converts to a Mesh, giving each triangle the normal of its first vertex
func (d *PLYData) Mesh(name string) *Mesh {
	mesh := &Mesh{Name: name, Vertices: d.Vertices, Faces: d.Faces}
	if len(d.Normals) == len(d.Vertices) && len(d.Normals) > 0 {
		mesh.Normals = make([]core.Vec3, 0, len(d.Faces)/3)
		for i := 0; i+2 < len(d.Faces); i += 3 {
			mesh.Normals = append(mesh.Normals, d.Normals[d.Faces[i]])
		}
	}
	return mesh
}

// LoadPLY loads a PLY file and returns the raw vertex and face data
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	return ParsePLY(file)
}

// ParsePLY reads ascii and binary little-endian PLY data. Elements other
// than vertex and face are read and discarded.
func ParsePLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReaderSize(r, 1024*1024)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "ascii":
		values = &asciiValueReader{reader: reader}
	case "binary_little_endian":
		values = &binaryValueReader{reader: reader, order: binary.LittleEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	data := &PLYData{}
	for _, element := range header.Elements {
		if err := readPLYElement(values, element, data); err != nil {
			return nil, fmt.Errorf("failed to read %s data: %w", element.Name, err)
		}
	}

	for _, idx := range data.Faces {
		if idx < 0 || idx >= len(data.Vertices) {
			return nil, fmt.Errorf("face references vertex %d of %d", idx, len(data.Vertices))
		}
	}
	return data, nil
}

// parsePLYHeader parses the header up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	first := true

	for {
		raw, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("error reading header: %w", err)
		}
		line := strings.TrimSpace(raw)

		if first {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			first = false
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 3 {
				header.Format = parts[1]
				header.Version = parts[2]
			}
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element definition %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			element := &header.Elements[len(header.Elements)-1]
			element.Properties = append(element.Properties, prop)
		}
	}

	if header.Format == "" {
		return nil, fmt.Errorf("missing format line")
	}
	return header, nil
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}

	prop := PLYProperty{}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		prop.IsList = true
		prop.ListType = parts[1]
		prop.DataType = parts[2]
		prop.Name = parts[3]
	} else {
		prop.Type = parts[0]
		prop.Name = parts[1]
	}

	if getTypeSize(prop.Type) == 0 && !prop.IsList {
		return PLYProperty{}, fmt.Errorf("unknown type %q", prop.Type)
	}
	if prop.IsList && (getTypeSize(prop.ListType) == 0 || getTypeSize(prop.DataType) == 0) {
		return PLYProperty{}, fmt.Errorf("unknown list types %q %q", prop.ListType, prop.DataType)
	}
	return prop, nil
}

// readPLYElement reads every instance of element, keeping vertex positions,
// vertex normals and face index lists
func readPLYElement(values plyValueReader, element PLYElement, data *PLYData) error {
	propIndex := make(map[string]int, len(element.Properties))
	for i, prop := range element.Properties {
		propIndex[prop.Name] = i
	}

	_, hasNX := propIndex["nx"]
	_, hasNY := propIndex["ny"]
	_, hasNZ := propIndex["nz"]
	hasNormals := element.Name == "vertex" && hasNX && hasNY && hasNZ

	scalars := make([]float64, len(element.Properties))
	var indices []int

	for i := 0; i < element.Count; i++ {
		indices = indices[:0]
		for j, prop := range element.Properties {
			if !prop.IsList {
				v, err := values.read(prop.Type)
				if err != nil {
					return fmt.Errorf("%s %d property %s: %w", element.Name, i, prop.Name, err)
				}
				scalars[j] = v
				continue
			}

			n, err := values.read(prop.ListType)
			if err != nil {
				return fmt.Errorf("%s %d list count: %w", element.Name, i, err)
			}
			keep := element.Name == "face" && (prop.Name == "vertex_indices" || prop.Name == "vertex_index")
			for k := 0; k < int(n); k++ {
				v, err := values.read(prop.DataType)
				if err != nil {
					return fmt.Errorf("%s %d list item %d: %w", element.Name, i, k, err)
				}
				if keep {
					indices = append(indices, int(v))
				}
			}
		}

		switch element.Name {
		case "vertex":
			data.Vertices = append(data.Vertices, core.NewVec3(
				scalarOrZero(scalars, propIndex, "x"),
				scalarOrZero(scalars, propIndex, "y"),
				scalarOrZero(scalars, propIndex, "z"),
			))
			if hasNormals {
				data.Normals = append(data.Normals, core.NewVec3(
					scalars[propIndex["nx"]], scalars[propIndex["ny"]], scalars[propIndex["nz"]],
				))
			}
		case "face":
			for k := 1; k+1 < len(indices); k++ {
				data.Faces = append(data.Faces, indices[0], indices[k], indices[k+1])
			}
		}
	}
	return nil
}

func scalarOrZero(scalars []float64, index map[string]int, name string) float64 {
	if i, ok := index[name]; ok {
		return scalars[i]
	}
	return 0
}

// getTypeSize returns the size in bytes of a PLY data type, 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}

// plyValueReader yields the next property value of the given type as float64
type plyValueReader interface {
	read(dataType string) (float64, error)
}

type asciiValueReader struct {
	reader *bufio.Reader
}

// read returns the next whitespace separated token; lines carry no meaning
func (a *asciiValueReader) read(dataType string) (float64, error) {
	var token []byte
	for {
		b, err := a.reader.ReadByte()
		if err != nil {
			if err == io.EOF && len(token) > 0 {
				break
			}
			if err == io.EOF {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			if len(token) > 0 {
				break
			}
			continue
		}
		token = append(token, b)
	}
	v, err := strconv.ParseFloat(string(token), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", dataType, token)
	}
	return v, nil
}

type binaryValueReader struct {
	reader *bufio.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (b *binaryValueReader) read(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.reader, buf); err != nil {
		return 0, err
	}

	switch dataType {
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	case "double", "float64":
		return math.Float64frombits(b.order.Uint64(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "char", "int8":
		return float64(int8(buf[0])), nil
	default: // uchar, uint8
		return float64(buf[0]), nil
	}
}
