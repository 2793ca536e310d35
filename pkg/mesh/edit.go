package mesh

import "github.com/philipparndt/gomesh/pkg/geometry"

// Draft is the mutable view handed to an Edit mutator. It operates on
// cloned collections; nothing becomes visible to readers until the
// mutator returns and the draft is committed in one swap.
//
// The draft does not validate that face or edge vertex ids exist; that
// is a precondition of the mutator contract.
type Draft struct {
	mesh *Mesh

	vertices map[VertexID]*Vertex
	edges    map[EdgeID]*Edge
	faces    map[FaceID]*Face

	nextVertex VertexID
	nextEdge   EdgeID
	nextFace   FaceID
}

// Edit runs the mutator over a draft of the mesh and commits the result
// atomically when it returns. Edit is not reentrant: a mutator that
// triggers another Edit on the same mesh is silently ignored, so a
// structural change can never observe a half-applied sibling.
func (m *Mesh) Edit(mutate func(*Draft)) {
	if m.editing {
		return
	}
	m.editing = true
	defer func() { m.editing = false }()

	d := &Draft{
		mesh:       m,
		vertices:   make(map[VertexID]*Vertex, len(m.vertices)),
		edges:      make(map[EdgeID]*Edge, len(m.edges)),
		faces:      make(map[FaceID]*Face, len(m.faces)),
		nextVertex: m.nextVertex,
		nextEdge:   m.nextEdge,
		nextFace:   m.nextFace,
	}
	for id, v := range m.vertices {
		d.vertices[id] = v.clone()
	}
	for id, e := range m.edges {
		d.edges[id] = e.clone()
	}
	for id, f := range m.faces {
		d.faces[id] = f.clone()
	}

	mutate(d)

	m.vertices = d.vertices
	m.edges = d.edges
	m.faces = d.faces
	m.nextVertex = d.nextVertex
	m.nextEdge = d.nextEdge
	m.nextFace = d.nextFace
}

// AddVertex creates a vertex at the given position and returns its id
func (d *Draft) AddVertex(position geometry.Vector3) VertexID {
	id := d.nextVertex
	d.nextVertex++
	d.vertices[id] = &Vertex{ID: id, Position: position}
	return id
}

// AddFace creates a face over the given vertex ids (winding order) and
// returns its id
func (d *Draft) AddFace(vertices ...VertexID) FaceID {
	id := d.nextFace
	d.nextFace++
	d.faces[id] = &Face{
		ID:       id,
		Vertices: append([]VertexID(nil), vertices...),
	}
	return id
}

// Vertex returns the draft's vertex for in-place attribute edits
func (d *Draft) Vertex(id VertexID) (*Vertex, bool) {
	v, ok := d.vertices[id]
	return v, ok
}

// Edge returns the draft's edge for in-place attribute edits
func (d *Draft) Edge(id EdgeID) (*Edge, bool) {
	e, ok := d.edges[id]
	return e, ok
}

// Face returns the draft's face for in-place attribute edits
func (d *Draft) Face(id FaceID) (*Face, bool) {
	f, ok := d.faces[id]
	return f, ok
}

// SetPosition moves a vertex; unknown ids are ignored
func (d *Draft) SetPosition(id VertexID, position geometry.Vector3) {
	if v, ok := d.vertices[id]; ok {
		v.Position = position
	}
}

// SetUV sets a vertex UV; unknown ids are ignored
func (d *Draft) SetUV(id VertexID, uv geometry.Vector2) {
	if v, ok := d.vertices[id]; ok {
		v.UV = uv
	}
}

// SetLoopUVs attaches per-corner UVs to a face. The slice must run
// parallel to the face's vertex list; a nil slice clears them.
func (d *Draft) SetLoopUVs(id FaceID, uvs []geometry.Vector2) {
	f, ok := d.faces[id]
	if !ok {
		return
	}
	if uvs == nil {
		f.LoopUVs = nil
		return
	}
	f.LoopUVs = append([]geometry.Vector2(nil), uvs...)
}

// RemoveFace deletes a face. Edges keep referring to it until the next
// RebuildEdges, which is the caller's responsibility after structural
// changes.
func (d *Draft) RemoveFace(id FaceID) {
	delete(d.faces, id)
}

// RemoveVertices deletes vertices along with every face that references
// them, and strips them from the derived edge records
func (d *Draft) RemoveVertices(ids ...VertexID) {
	doomed := make(map[VertexID]bool, len(ids))
	for _, id := range ids {
		if _, ok := d.vertices[id]; ok {
			doomed[id] = true
			delete(d.vertices, id)
		}
	}
	if len(doomed) == 0 {
		return
	}
	for fid, f := range d.faces {
		for _, vid := range f.Vertices {
			if doomed[vid] {
				delete(d.faces, fid)
				break
			}
		}
	}
	for eid, e := range d.edges {
		if doomed[e.A] || doomed[e.B] {
			delete(d.edges, eid)
		}
	}
}
