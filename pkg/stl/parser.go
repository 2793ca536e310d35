// Package stl reads and writes STL files against the mesh model. It is
// a persistence collaborator: import builds vertex/face arrays for
// insertion through Mesh.Edit, export only reads snapshots.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Import reads an STL file into a mesh, automatically detecting ASCII
// or binary format. Triangles sharing a corner position are welded
// onto one vertex so the result carries real adjacency; edges and
// normals are derived after insertion.
func Import(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	header := make([]byte, 6)
	n, err := file.Read(header)
	if err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	var name string
	var triangles [][3]geometry.Vector3
	if n >= 5 && strings.HasPrefix(string(header[:5]), "solid") {
		name, triangles, err = parseASCII(file)
	} else {
		name, triangles, err = parseBinary(file)
	}
	if err != nil {
		return nil, err
	}

	return buildMesh(name, triangles), nil
}

// buildMesh welds triangle corners by exact position and inserts the
// resulting vertex/face arrays in a single edit
func buildMesh(name string, triangles [][3]geometry.Vector3) *mesh.Mesh {
	m := mesh.New(0, name)
	m.Edit(func(d *mesh.Draft) {
		welded := make(map[geometry.Vector3]mesh.VertexID)
		vertex := func(p geometry.Vector3) mesh.VertexID {
			if id, ok := welded[p]; ok {
				return id
			}
			id := d.AddVertex(p)
			welded[p] = id
			return id
		}
		for _, tri := range triangles {
			a := vertex(tri[0])
			b := vertex(tri[1])
			c := vertex(tri[2])
			if a == b || b == c || a == c {
				continue // Degenerate triangle
			}
			d.AddFace(a, b, c)
		}
		d.RebuildEdges()
		d.RecomputeNormals()
	})
	return m
}

// parseASCII parses an ASCII STL stream into raw triangles
func parseASCII(reader io.Reader) (string, [][3]geometry.Vector3, error) {
	scanner := bufio.NewScanner(reader)

	var name string
	var triangles [][3]geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				vertices = append(vertices, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(vertices) == 3 {
				triangles = append(triangles, [3]geometry.Vector3{vertices[0], vertices[1], vertices[2]})
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return name, triangles, nil
}

// parseBinary parses a binary STL stream into raw triangles
func parseBinary(reader io.Reader) (string, [][3]geometry.Vector3, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return "", nil, fmt.Errorf("failed to read header: %w", err)
	}
	name := string(bytes.TrimRight(header, "\x00"))

	var count uint32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return "", nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	triangles := make([][3]geometry.Vector3, 0, count)
	for i := uint32(0); i < count; i++ {
		var normal, v1, v2, v3 [3]float32
		var attribute uint16

		for _, target := range []interface{}{&normal, &v1, &v2, &v3, &attribute} {
			if err := binary.Read(reader, binary.LittleEndian, target); err != nil {
				return "", nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
			}
		}

		triangles = append(triangles, [3]geometry.Vector3{
			geometry.NewVector3(float64(v1[0]), float64(v1[1]), float64(v1[2])),
			geometry.NewVector3(float64(v2[0]), float64(v2[1]), float64(v2[2])),
			geometry.NewVector3(float64(v3[0]), float64(v3[1]), float64(v3[2])),
		})
	}

	return name, triangles, nil
}
