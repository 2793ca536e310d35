package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// triangulate fans every face of the snapshot into triangles with
// positions resolved; ngons become n-2 triangles
func triangulate(snapshot mesh.Snapshot) []geometry.Triangle {
	positions := make(map[mesh.VertexID]geometry.Vector3, len(snapshot.Vertices))
	for _, v := range snapshot.Vertices {
		positions[v.ID] = v.Position
	}

	var triangles []geometry.Triangle
	for _, f := range snapshot.Faces {
		if len(f.Vertices) < 3 {
			continue
		}
		v0 := positions[f.Vertices[0]]
		for i := 1; i+1 < len(f.Vertices); i++ {
			tri := geometry.Triangle{
				V1: v0,
				V2: positions[f.Vertices[i]],
				V3: positions[f.Vertices[i+1]],
			}
			tri.Normal = tri.ComputedNormal()
			triangles = append(triangles, tri)
		}
	}
	return triangles
}

// ExportASCII writes the mesh snapshot as an ASCII STL file
func ExportASCII(snapshot mesh.Snapshot, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := writeASCII(w, snapshot); err != nil {
		return err
	}
	return w.Flush()
}

func writeASCII(w io.Writer, snapshot mesh.Snapshot) error {
	name := snapshot.Name
	if name == "" {
		name = "mesh"
	}
	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, tri := range triangulate(snapshot) {
		_, err := fmt.Fprintf(w,
			"  facet normal %e %e %e\n    outer loop\n      vertex %e %e %e\n      vertex %e %e %e\n      vertex %e %e %e\n    endloop\n  endfacet\n",
			tri.Normal.X, tri.Normal.Y, tri.Normal.Z,
			tri.V1.X, tri.V1.Y, tri.V1.Z,
			tri.V2.X, tri.V2.Y, tri.V2.Z,
			tri.V3.X, tri.V3.Y, tri.V3.Z)
		if err != nil {
			return fmt.Errorf("failed to write facet: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "endsolid %s\n", name); err != nil {
		return fmt.Errorf("failed to write footer: %w", err)
	}
	return nil
}

// ExportBinary writes the mesh snapshot as a binary STL file
func ExportBinary(snapshot mesh.Snapshot, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := writeBinary(w, snapshot); err != nil {
		return err
	}
	return w.Flush()
}

func writeBinary(w io.Writer, snapshot mesh.Snapshot) error {
	triangles := triangulate(snapshot)

	header := make([]byte, 80)
	copy(header, snapshot.Name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for _, tri := range triangles {
		values := []geometry.Vector3{tri.Normal, tri.V1, tri.V2, tri.V3}
		for _, v := range values {
			data := [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
			if err := binary.Write(w, binary.LittleEndian, data); err != nil {
				return fmt.Errorf("failed to write triangle: %w", err)
			}
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write attribute: %w", err)
		}
	}
	return nil
}
