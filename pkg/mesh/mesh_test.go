package mesh

import (
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// buildQuad creates a unit quad in the XY plane with derived edges
func buildQuad() *Mesh {
	m := New(1, "quad")
	m.Edit(func(d *Draft) {
		a := d.AddVertex(geometry.NewVector3(0, 0, 0))
		b := d.AddVertex(geometry.NewVector3(1, 0, 0))
		c := d.AddVertex(geometry.NewVector3(1, 1, 0))
		e := d.AddVertex(geometry.NewVector3(0, 1, 0))
		d.AddFace(a, b, c, e)
		d.RebuildEdges()
		d.RecomputeNormals()
	})
	return m
}

func TestEditCommitsAtomically(t *testing.T) {
	m := New(1, "test")

	m.Edit(func(d *Draft) {
		d.AddVertex(geometry.NewVector3(0, 0, 0))
		d.AddVertex(geometry.NewVector3(1, 0, 0))

		// Readers still see the pre-edit state while the draft is open.
		if m.VertexCount() != 0 {
			t.Errorf("Edit failed: reader saw %d vertices mid-edit", m.VertexCount())
		}
	})

	if m.VertexCount() != 2 {
		t.Errorf("Edit failed: expected 2 vertices after commit, got %d", m.VertexCount())
	}
}

func TestEditNestedIsIgnored(t *testing.T) {
	m := New(1, "test")

	m.Edit(func(d *Draft) {
		d.AddVertex(geometry.NewVector3(0, 0, 0))
		m.Edit(func(d2 *Draft) {
			d2.AddVertex(geometry.NewVector3(9, 9, 9))
		})
	})

	if m.VertexCount() != 1 {
		t.Errorf("Edit failed: nested edit must be ignored, got %d vertices", m.VertexCount())
	}
}

func TestVertexIDsNeverReused(t *testing.T) {
	m := New(1, "test")

	var first VertexID
	m.Edit(func(d *Draft) {
		first = d.AddVertex(geometry.NewVector3(0, 0, 0))
	})
	m.Edit(func(d *Draft) {
		d.RemoveVertices(first)
	})

	var second VertexID
	m.Edit(func(d *Draft) {
		second = d.AddVertex(geometry.NewVector3(1, 1, 1))
	})

	if second == first {
		t.Errorf("AddVertex failed: id %d was reused after removal", first)
	}
	if second <= first {
		t.Errorf("AddVertex failed: ids must grow, got %d after %d", second, first)
	}
}

func TestReadAccessorsReturnCopies(t *testing.T) {
	m := buildQuad()

	v, ok := m.Vertex(1)
	if !ok {
		t.Fatal("Vertex failed: vertex 1 missing")
	}
	v.Position = geometry.NewVector3(99, 99, 99)

	again, _ := m.Vertex(1)
	if again.Position.X == 99 {
		t.Error("Vertex failed: mutation through a returned copy leaked into the mesh")
	}
}

func TestRemoveVerticesCascades(t *testing.T) {
	m := buildQuad()

	m.Edit(func(d *Draft) {
		d.RemoveVertices(1)
		d.RebuildEdges()
	})

	if m.VertexCount() != 3 {
		t.Errorf("RemoveVertices failed: expected 3 vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 0 {
		t.Errorf("RemoveVertices failed: face referencing the vertex must go, got %d faces", m.FaceCount())
	}
	if m.EdgeCount() != 0 {
		t.Errorf("RemoveVertices failed: expected 0 edges after rebuild, got %d", m.EdgeCount())
	}
}

func TestEdgeBetween(t *testing.T) {
	m := buildQuad()

	if _, ok := m.EdgeBetween(1, 2); !ok {
		t.Error("EdgeBetween failed: expected an edge between 1 and 2")
	}
	if _, ok := m.EdgeBetween(2, 1); !ok {
		t.Error("EdgeBetween failed: lookup must be orientation independent")
	}
	if _, ok := m.EdgeBetween(1, 3); ok {
		t.Error("EdgeBetween failed: diagonal (1,3) is not an edge")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	m := buildQuad()
	snapshot := m.Snapshot()

	m.Edit(func(d *Draft) {
		d.SetPosition(1, geometry.NewVector3(50, 0, 0))
	})

	if snapshot.Vertices[0].Position.X == 50 {
		t.Error("Snapshot failed: later edit leaked into an earlier snapshot")
	}
}

func TestSetLoopUVs(t *testing.T) {
	m := buildQuad()

	uvs := []geometry.Vector2{
		geometry.NewVector2(0, 0),
		geometry.NewVector2(1, 0),
		geometry.NewVector2(1, 1),
		geometry.NewVector2(0, 1),
	}
	m.Edit(func(d *Draft) {
		d.SetLoopUVs(1, uvs)
	})

	f, _ := m.Face(1)
	if len(f.LoopUVs) != 4 {
		t.Fatalf("SetLoopUVs failed: expected 4 corner UVs, got %d", len(f.LoopUVs))
	}

	m.Edit(func(d *Draft) {
		d.SetLoopUVs(1, nil)
	})
	f, _ = m.Face(1)
	if f.LoopUVs != nil {
		t.Error("SetLoopUVs failed: nil must clear the corner UVs")
	}
}

func TestMakeEdgeKey(t *testing.T) {
	if MakeEdgeKey(5, 2) != MakeEdgeKey(2, 5) {
		t.Error("MakeEdgeKey failed: keys must be orientation independent")
	}
	key := MakeEdgeKey(7, 3)
	if key.Lo != 3 || key.Hi != 7 {
		t.Errorf("MakeEdgeKey failed: expected sorted pair (3,7), got (%d,%d)", key.Lo, key.Hi)
	}
}
