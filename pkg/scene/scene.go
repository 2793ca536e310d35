// Package scene holds the object layer above meshes: named objects
// placing a mesh in the world via a transform. Object-granularity
// edits act here; component edits go through the owned meshes.
package scene

import (
	"sort"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// ObjectID identifies a scene object; ids are never reused
type ObjectID int

// Object places a mesh in the world
type Object struct {
	ID        ObjectID
	Name      string
	MeshID    mesh.MeshID
	Transform geometry.Transform
	Selected  bool
}

// Scene owns all objects and their meshes
type Scene struct {
	objects map[ObjectID]*Object
	meshes  map[mesh.MeshID]*mesh.Mesh

	nextObject ObjectID
	nextMesh   mesh.MeshID
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		objects:    make(map[ObjectID]*Object),
		meshes:     make(map[mesh.MeshID]*mesh.Mesh),
		nextObject: 1,
		nextMesh:   1,
	}
}

// AddMesh creates an empty mesh owned by the scene
func (s *Scene) AddMesh(name string) *mesh.Mesh {
	id := s.nextMesh
	s.nextMesh++
	m := mesh.New(id, name)
	s.meshes[id] = m
	return m
}

// AdoptMesh takes ownership of an externally built mesh (primitive
// builders, importers), reassigning its id into the scene's id space
func (s *Scene) AdoptMesh(m *mesh.Mesh) *mesh.Mesh {
	id := s.nextMesh
	s.nextMesh++
	m.ID = id
	s.meshes[id] = m
	return m
}

// AddObject creates an object referencing a mesh, with an identity
// transform
func (s *Scene) AddObject(name string, meshID mesh.MeshID) ObjectID {
	id := s.nextObject
	s.nextObject++
	s.objects[id] = &Object{
		ID:        id,
		Name:      name,
		MeshID:    meshID,
		Transform: geometry.IdentityTransform(),
	}
	return id
}

// Mesh returns the mesh with the given id
func (s *Scene) Mesh(id mesh.MeshID) (*mesh.Mesh, bool) {
	m, ok := s.meshes[id]
	return m, ok
}

// Object returns a copy of the object with the given id
func (s *Scene) Object(id ObjectID) (Object, bool) {
	o, ok := s.objects[id]
	if !ok {
		return Object{}, false
	}
	return *o, true
}

// ObjectMesh returns the mesh referenced by an object
func (s *Scene) ObjectMesh(id ObjectID) (*mesh.Mesh, bool) {
	o, ok := s.objects[id]
	if !ok {
		return nil, false
	}
	return s.Mesh(o.MeshID)
}

// Objects returns copies of all objects, ordered by id
func (s *Scene) Objects() []Object {
	out := make([]Object, 0, len(s.objects))
	for _, o := range s.objects {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SetTransform replaces an object's transform; unknown ids are ignored
func (s *Scene) SetTransform(id ObjectID, t geometry.Transform) {
	if o, ok := s.objects[id]; ok {
		o.Transform = t
	}
}

// SetSelected sets an object's selected flag; unknown ids are ignored
func (s *Scene) SetSelected(id ObjectID, selected bool) {
	if o, ok := s.objects[id]; ok {
		o.Selected = selected
	}
}

// RemoveObject deletes an object. The mesh stays; meshes may be shared
// between objects.
func (s *Scene) RemoveObject(id ObjectID) {
	delete(s.objects, id)
}
