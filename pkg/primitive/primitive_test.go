package primitive

import (
	"math"
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

func TestCube(t *testing.T) {
	m := Cube("box", 2)

	if m.VertexCount() != 8 {
		t.Errorf("Cube failed: expected 8 vertices, got %d", m.VertexCount())
	}
	if m.EdgeCount() != 12 {
		t.Errorf("Cube failed: expected 12 edges, got %d", m.EdgeCount())
	}
	if m.FaceCount() != 6 {
		t.Errorf("Cube failed: expected 6 faces, got %d", m.FaceCount())
	}
	for _, f := range m.Faces() {
		if !f.IsQuad() {
			t.Errorf("Cube failed: face %d is not a quad", f.ID)
		}
	}

	bbox := m.BoundingBox()
	if bbox.Min.Distance(geometry.NewVector3(-1, -1, -1)) > 1e-10 {
		t.Errorf("Cube failed: min corner %v", bbox.Min)
	}
	if bbox.Max.Distance(geometry.NewVector3(1, 1, 1)) > 1e-10 {
		t.Errorf("Cube failed: max corner %v", bbox.Max)
	}
}

func TestCubeNormalsOutward(t *testing.T) {
	m := Cube("box", 2)

	for _, v := range m.Vertices() {
		if v.Normal.Dot(v.Position) <= 0 {
			t.Errorf("Cube failed: vertex %d normal %v points inward", v.ID, v.Normal)
		}
	}
}

func TestPlane(t *testing.T) {
	m := Plane("ground", 4)

	if m.VertexCount() != 4 || m.FaceCount() != 1 || m.EdgeCount() != 4 {
		t.Errorf("Plane failed: got %d vertices, %d edges, %d faces",
			m.VertexCount(), m.EdgeCount(), m.FaceCount())
	}

	for _, v := range m.Vertices() {
		if v.Normal.Distance(geometry.NewVector3(0, 1, 0)) > 1e-10 {
			t.Errorf("Plane failed: vertex %d normal %v, expected +Y", v.ID, v.Normal)
		}
	}

	f := m.Faces()[0]
	if len(f.LoopUVs) != 4 {
		t.Errorf("Plane failed: expected 4 corner UVs, got %d", len(f.LoopUVs))
	}
}

func TestGrid(t *testing.T) {
	m := Grid("grid", 2, 4)

	if m.VertexCount() != 25 {
		t.Errorf("Grid failed: expected 25 vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 16 {
		t.Errorf("Grid failed: expected 16 faces, got %d", m.FaceCount())
	}

	// UVs span the unit square.
	minU, maxU := math.MaxFloat64, -math.MaxFloat64
	for _, v := range m.Vertices() {
		if v.UV.X < minU {
			minU = v.UV.X
		}
		if v.UV.X > maxU {
			maxU = v.UV.X
		}
	}
	if minU != 0 || maxU != 1 {
		t.Errorf("Grid failed: U range [%v, %v], expected [0, 1]", minU, maxU)
	}
}

func TestGridClampsDivisions(t *testing.T) {
	m := Grid("grid", 2, 0)

	if m.VertexCount() != 4 || m.FaceCount() != 1 {
		t.Errorf("Grid failed: expected a single quad, got %d vertices, %d faces",
			m.VertexCount(), m.FaceCount())
	}
}
