package scene

import (
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

func TestAddObjectAndMesh(t *testing.T) {
	s := New()
	m := s.AddMesh("cube")
	id := s.AddObject("cube", m.ID)

	o, ok := s.Object(id)
	if !ok {
		t.Fatal("Object failed: object missing")
	}
	if o.MeshID != m.ID {
		t.Errorf("AddObject failed: mesh id %d, expected %d", o.MeshID, m.ID)
	}
	if o.Transform.Scale != geometry.NewVector3(1, 1, 1) {
		t.Errorf("AddObject failed: expected identity scale, got %v", o.Transform.Scale)
	}

	got, ok := s.ObjectMesh(id)
	if !ok || got.ID != m.ID {
		t.Error("ObjectMesh failed")
	}
}

func TestAdoptMeshReassignsID(t *testing.T) {
	s := New()
	s.AddMesh("first")

	external := mesh.New(99, "imported")
	adopted := s.AdoptMesh(external)

	if adopted.ID == 99 {
		t.Error("AdoptMesh failed: external id must be reassigned")
	}
	if _, ok := s.Mesh(adopted.ID); !ok {
		t.Error("AdoptMesh failed: mesh not registered under its new id")
	}
}

func TestObjectIDsNeverReused(t *testing.T) {
	s := New()
	m := s.AddMesh("cube")

	first := s.AddObject("a", m.ID)
	s.RemoveObject(first)
	second := s.AddObject("b", m.ID)

	if second == first {
		t.Errorf("AddObject failed: id %d was reused", first)
	}
}

func TestRemoveObjectKeepsMesh(t *testing.T) {
	s := New()
	m := s.AddMesh("shared")
	id := s.AddObject("a", m.ID)

	s.RemoveObject(id)
	if _, ok := s.Mesh(m.ID); !ok {
		t.Error("RemoveObject failed: mesh must survive its objects")
	}
}

func TestObjectReturnsCopy(t *testing.T) {
	s := New()
	m := s.AddMesh("cube")
	id := s.AddObject("cube", m.ID)

	o, _ := s.Object(id)
	o.Transform.Position = geometry.NewVector3(9, 9, 9)

	again, _ := s.Object(id)
	if again.Transform.Position.X == 9 {
		t.Error("Object failed: mutation through a copy leaked into the scene")
	}
}

func TestSetTransform(t *testing.T) {
	s := New()
	m := s.AddMesh("cube")
	id := s.AddObject("cube", m.ID)

	tr := geometry.IdentityTransform()
	tr.Position = geometry.NewVector3(1, 2, 3)
	s.SetTransform(id, tr)

	o, _ := s.Object(id)
	if o.Transform.Position != tr.Position {
		t.Errorf("SetTransform failed: got %v", o.Transform.Position)
	}

	// Unknown ids are ignored.
	s.SetTransform(9999, tr)
}
