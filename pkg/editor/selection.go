package editor

import (
	"sort"

	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/scene"
)

// Granularity says whether selection targets whole objects or mesh
// components
type Granularity int

const (
	GranularityObject Granularity = iota
	GranularityEdit
)

// ComponentMode is the component type targeted while editing
type ComponentMode int

const (
	ModeVertex ComponentMode = iota
	ModeEdge
	ModeFace
)

// Selection tracks the active granularity, the component mode while
// editing, and the selected-id sets per type. Exactly one granularity
// is active at a time; calls issued for the wrong granularity are
// silent no-ops.
type Selection struct {
	granularity Granularity
	mode        ComponentMode
	target      mesh.MeshID

	objects  map[scene.ObjectID]bool
	vertices map[mesh.VertexID]bool
	edges    map[mesh.EdgeID]bool
	faces    map[mesh.FaceID]bool
}

// NewSelection creates an empty selection in object granularity
func NewSelection() *Selection {
	return &Selection{
		objects:  make(map[scene.ObjectID]bool),
		vertices: make(map[mesh.VertexID]bool),
		edges:    make(map[mesh.EdgeID]bool),
		faces:    make(map[mesh.FaceID]bool),
	}
}

// Granularity returns the active granularity
func (s *Selection) Granularity() Granularity { return s.granularity }

// Mode returns the component mode; meaningful only in edit granularity
func (s *Selection) Mode() ComponentMode { return s.mode }

// TargetMesh returns the mesh fixed by EnterEdit
func (s *Selection) TargetMesh() mesh.MeshID { return s.target }

// EnterEdit switches to edit granularity on the given mesh, resets the
// mode to vertex and clears the component sets. The object selection
// is kept so it can be restored on exit.
func (s *Selection) EnterEdit(target mesh.MeshID) {
	if s.granularity == GranularityEdit {
		return
	}
	s.granularity = GranularityEdit
	s.target = target
	s.mode = ModeVertex
	s.clearComponents()
}

// ExitEdit returns to object granularity; the previous object
// selection becomes active again
func (s *Selection) ExitEdit() {
	if s.granularity != GranularityEdit {
		return
	}
	s.granularity = GranularityObject
	s.target = 0
	s.clearComponents()
}

func (s *Selection) clearComponents() {
	s.vertices = make(map[mesh.VertexID]bool)
	s.edges = make(map[mesh.EdgeID]bool)
	s.faces = make(map[mesh.FaceID]bool)
}

// SetMode switches the component mode, promoting or demoting the
// current selection across the mesh topology. The conversion is a pure
// function of the previous selection, the previous mode and the mesh's
// derived edge list; no deeper history is kept. Outside edit
// granularity this is a no-op.
func (s *Selection) SetMode(m *mesh.Mesh, next ComponentMode) {
	if s.granularity != GranularityEdit || m == nil || m.ID != s.target {
		return
	}
	if next == s.mode {
		return
	}

	vertices := make(map[mesh.VertexID]bool)
	edges := make(map[mesh.EdgeID]bool)
	faces := make(map[mesh.FaceID]bool)

	edgeByKey := make(map[mesh.EdgeKey]mesh.EdgeID, m.EdgeCount())
	allEdges := m.Edges()
	for _, e := range allEdges {
		edgeByKey[e.Key()] = e.ID
	}

	switch s.mode {
	case ModeVertex:
		switch next {
		case ModeEdge:
			// Both endpoints selected promotes the edge.
			for _, e := range allEdges {
				if s.vertices[e.A] && s.vertices[e.B] {
					edges[e.ID] = true
				}
			}
		case ModeFace:
			// Every corner selected promotes the face.
			for _, f := range m.Faces() {
				all := true
				for _, vid := range f.Vertices {
					if !s.vertices[vid] {
						all = false
						break
					}
				}
				if all && len(f.Vertices) > 0 {
					faces[f.ID] = true
				}
			}
		}
	case ModeEdge:
		switch next {
		case ModeVertex:
			for _, e := range allEdges {
				if s.edges[e.ID] {
					vertices[e.A] = true
					vertices[e.B] = true
				}
			}
		case ModeFace:
			// Every boundary edge selected promotes the face.
			for _, f := range m.Faces() {
				all := len(f.Vertices) > 0
				for _, pair := range f.BoundaryEdges() {
					id, ok := edgeByKey[mesh.MakeEdgeKey(pair[0], pair[1])]
					if !ok || !s.edges[id] {
						all = false
						break
					}
				}
				if all {
					faces[f.ID] = true
				}
			}
		}
	case ModeFace:
		for _, f := range m.Faces() {
			if !s.faces[f.ID] {
				continue
			}
			switch next {
			case ModeVertex:
				for _, vid := range f.Vertices {
					vertices[vid] = true
				}
			case ModeEdge:
				for _, pair := range f.BoundaryEdges() {
					if id, ok := edgeByKey[mesh.MakeEdgeKey(pair[0], pair[1])]; ok {
						edges[id] = true
					}
				}
			}
		}
	}

	s.mode = next
	s.vertices = vertices
	s.edges = edges
	s.faces = faces
}

// SelectObject sets an object's membership; rejected outside object
// granularity
func (s *Selection) SelectObject(id scene.ObjectID, selected bool) {
	if s.granularity != GranularityObject {
		return
	}
	if selected {
		s.objects[id] = true
	} else {
		delete(s.objects, id)
	}
}

// SelectVertex sets a vertex's membership; rejected unless editing in
// vertex mode
func (s *Selection) SelectVertex(id mesh.VertexID, selected bool) {
	if s.granularity != GranularityEdit || s.mode != ModeVertex {
		return
	}
	if selected {
		s.vertices[id] = true
	} else {
		delete(s.vertices, id)
	}
}

// SelectEdge sets an edge's membership; rejected unless editing in
// edge mode
func (s *Selection) SelectEdge(id mesh.EdgeID, selected bool) {
	if s.granularity != GranularityEdit || s.mode != ModeEdge {
		return
	}
	if selected {
		s.edges[id] = true
	} else {
		delete(s.edges, id)
	}
}

// SelectFace sets a face's membership; rejected unless editing in face
// mode
func (s *Selection) SelectFace(id mesh.FaceID, selected bool) {
	if s.granularity != GranularityEdit || s.mode != ModeFace {
		return
	}
	if selected {
		s.faces[id] = true
	} else {
		delete(s.faces, id)
	}
}

// ClearComponents empties the component sets; rejected outside edit
// granularity
func (s *Selection) ClearComponents() {
	if s.granularity != GranularityEdit {
		return
	}
	s.clearComponents()
}

// SyncFlags mirrors the selection sets into the entity selected flags
// so renderer snapshots can highlight without knowing the selection
func (s *Selection) SyncFlags(sc *scene.Scene) {
	for _, o := range sc.Objects() {
		sc.SetSelected(o.ID, s.objects[o.ID])
	}
	if s.granularity != GranularityEdit {
		return
	}
	m, ok := sc.Mesh(s.target)
	if !ok {
		return
	}
	vertices := m.Vertices()
	edges := m.Edges()
	faces := m.Faces()
	m.Edit(func(d *mesh.Draft) {
		for _, v := range vertices {
			if dv, ok := d.Vertex(v.ID); ok {
				dv.Selected = s.vertices[v.ID]
			}
		}
		for _, e := range edges {
			if de, ok := d.Edge(e.ID); ok {
				de.Selected = s.edges[e.ID]
			}
		}
		for _, f := range faces {
			if df, ok := d.Face(f.ID); ok {
				df.Selected = s.faces[f.ID]
			}
		}
	})
}

// SelectedObjects returns the selected object ids, ordered
func (s *Selection) SelectedObjects() []scene.ObjectID {
	out := make([]scene.ObjectID, 0, len(s.objects))
	for id := range s.objects {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SelectedVertices returns the selected vertex ids, ordered
func (s *Selection) SelectedVertices() []mesh.VertexID {
	out := make([]mesh.VertexID, 0, len(s.vertices))
	for id := range s.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SelectedEdges returns the selected edge ids, ordered
func (s *Selection) SelectedEdges() []mesh.EdgeID {
	out := make([]mesh.EdgeID, 0, len(s.edges))
	for id := range s.edges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SelectedFaces returns the selected face ids, ordered
func (s *Selection) SelectedFaces() []mesh.FaceID {
	out := make([]mesh.FaceID, 0, len(s.faces))
	for id := range s.faces {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
