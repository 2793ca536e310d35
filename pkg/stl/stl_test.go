package stl

import (
	"path/filepath"
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/primitive"
)

func TestASCIIRoundTrip(t *testing.T) {
	cube := primitive.Cube("box", 2)
	path := filepath.Join(t.TempDir(), "cube.stl")

	if err := ExportASCII(cube.Snapshot(), path); err != nil {
		t.Fatalf("ExportASCII failed: %v", err)
	}

	m, err := Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	// Quads fan into triangles on export; shared corners weld back into
	// the original 8 vertices.
	if m.VertexCount() != 8 {
		t.Errorf("Import failed: expected 8 welded vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 12 {
		t.Errorf("Import failed: expected 12 triangles, got %d", m.FaceCount())
	}
	if m.Name != "box" {
		t.Errorf("Import failed: expected name box, got %q", m.Name)
	}

	bbox := m.BoundingBox()
	if bbox.Min.Distance(geometry.NewVector3(-1, -1, -1)) > 1e-6 {
		t.Errorf("Import failed: min corner %v", bbox.Min)
	}
	if bbox.Max.Distance(geometry.NewVector3(1, 1, 1)) > 1e-6 {
		t.Errorf("Import failed: max corner %v", bbox.Max)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	cube := primitive.Cube("box", 2)
	path := filepath.Join(t.TempDir(), "cube_bin.stl")

	if err := ExportBinary(cube.Snapshot(), path); err != nil {
		t.Fatalf("ExportBinary failed: %v", err)
	}

	m, err := Import(path)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if m.VertexCount() != 8 || m.FaceCount() != 12 {
		t.Errorf("Import failed: got %d vertices, %d faces", m.VertexCount(), m.FaceCount())
	}
}

func TestImportedMeshHasAdjacency(t *testing.T) {
	cube := primitive.Cube("box", 2)
	path := filepath.Join(t.TempDir(), "cube.stl")
	if err := ExportASCII(cube.Snapshot(), path); err != nil {
		t.Fatal(err)
	}

	m, err := Import(path)
	if err != nil {
		t.Fatal(err)
	}

	// Welding restores real shared edges: every edge of the closed
	// surface joins exactly two triangles.
	if m.EdgeCount() != 18 {
		t.Errorf("Import failed: expected 18 edges, got %d", m.EdgeCount())
	}
	for _, e := range m.Edges() {
		if len(e.Faces) != 2 {
			t.Errorf("Import failed: edge %d joins %d faces", e.ID, len(e.Faces))
		}
	}
}

func TestTriangulateFansQuads(t *testing.T) {
	cube := primitive.Cube("box", 2)
	triangles := triangulate(cube.Snapshot())

	if len(triangles) != 12 {
		t.Errorf("triangulate failed: expected 12 triangles, got %d", len(triangles))
	}
	for i, tri := range triangles {
		if tri.Area() < 1e-10 {
			t.Errorf("triangulate failed: triangle %d is degenerate", i)
		}
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := Import(filepath.Join(t.TempDir(), "nope.stl")); err == nil {
		t.Error("Import failed: expected an error for a missing file")
	}
}
