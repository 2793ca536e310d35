package mesh

import (
	"sort"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Entity ids are allocated from per-mesh counters and are never reused
// or renumbered, so collaborators can hold on to them across edits.
type (
	MeshID     int
	VertexID   int
	EdgeID     int
	FaceID     int
	MaterialID int
)

// NoMaterial marks a face or mesh without an assigned material
const NoMaterial MaterialID = 0

// ShadingMode selects how a renderer should shade the mesh
type ShadingMode int

const (
	ShadingFlat ShadingMode = iota
	ShadingSmooth
)

// Vertex is a mesh-owned point with rendering attributes.
// Everything outside the mesh refers to it by id only.
type Vertex struct {
	ID       VertexID
	Position geometry.Vector3
	Normal   geometry.Vector3
	UV       geometry.Vector2
	UV2      *geometry.Vector2
	Selected bool
}

// Edge is an unordered pair of vertex ids plus the faces that share it.
// Edges are derived from the face list and rebuilt wholesale after any
// structural change; both vertex ids must exist in the owning mesh.
type Edge struct {
	ID       EdgeID
	A, B     VertexID
	Faces    []FaceID
	Selected bool
}

// Key returns the unordered vertex pair identifying the physical edge
func (e *Edge) Key() EdgeKey {
	return MakeEdgeKey(e.A, e.B)
}

// HasVertex reports whether the edge touches the given vertex
func (e *Edge) HasVertex(id VertexID) bool {
	return e.A == id || e.B == id
}

// EdgeKey identifies a physical edge by its sorted vertex pair
type EdgeKey struct {
	Lo, Hi VertexID
}

// MakeEdgeKey builds the canonical key for an unordered vertex pair
func MakeEdgeKey(a, b VertexID) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{Lo: a, Hi: b}
}

// Face is an ordered, winding-significant sequence of at least three
// vertex ids. LoopUVs, when present, run parallel to Vertices and hold
// per-corner UVs so texture seams can differ from the per-vertex UV.
type Face struct {
	ID       FaceID
	Vertices []VertexID
	LoopUVs  []geometry.Vector2
	Material MaterialID
	Selected bool
}

// IsQuad reports whether the face has exactly four corners
func (f *Face) IsQuad() bool {
	return len(f.Vertices) == 4
}

// BoundaryEdges returns the consecutive (wrapping) vertex pairs that
// bound the face, in winding order
func (f *Face) BoundaryEdges() [][2]VertexID {
	n := len(f.Vertices)
	pairs := make([][2]VertexID, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]VertexID{f.Vertices[i], f.Vertices[(i+1)%n]})
	}
	return pairs
}

// clone helpers used by the draft commit path

func (v *Vertex) clone() *Vertex {
	c := *v
	if v.UV2 != nil {
		uv2 := *v.UV2
		c.UV2 = &uv2
	}
	return &c
}

func (e *Edge) clone() *Edge {
	c := *e
	c.Faces = append([]FaceID(nil), e.Faces...)
	return &c
}

func (f *Face) clone() *Face {
	c := *f
	c.Vertices = append([]VertexID(nil), f.Vertices...)
	if f.LoopUVs != nil {
		c.LoopUVs = append([]geometry.Vector2(nil), f.LoopUVs...)
	}
	return &c
}

// Mesh owns its vertex, edge and face collections. All mutation goes
// through Edit; readers only ever see fully committed states.
type Mesh struct {
	ID       MeshID
	Name     string
	Shading  ShadingMode
	Material MaterialID

	vertices map[VertexID]*Vertex
	edges    map[EdgeID]*Edge
	faces    map[FaceID]*Face

	nextVertex VertexID
	nextEdge   EdgeID
	nextFace   FaceID

	editing bool
}

// New creates an empty mesh
func New(id MeshID, name string) *Mesh {
	return &Mesh{
		ID:         id,
		Name:       name,
		vertices:   make(map[VertexID]*Vertex),
		edges:      make(map[EdgeID]*Edge),
		faces:      make(map[FaceID]*Face),
		nextVertex: 1,
		nextEdge:   1,
		nextFace:   1,
	}
}

// Vertex returns a copy of the vertex with the given id
func (m *Mesh) Vertex(id VertexID) (Vertex, bool) {
	v, ok := m.vertices[id]
	if !ok {
		return Vertex{}, false
	}
	return *v.clone(), true
}

// Edge returns a copy of the edge with the given id
func (m *Mesh) Edge(id EdgeID) (Edge, bool) {
	e, ok := m.edges[id]
	if !ok {
		return Edge{}, false
	}
	return *e.clone(), true
}

// Face returns a copy of the face with the given id
func (m *Mesh) Face(id FaceID) (Face, bool) {
	f, ok := m.faces[id]
	if !ok {
		return Face{}, false
	}
	return *f.clone(), true
}

// EdgeBetween returns the edge joining two vertices, if one exists
func (m *Mesh) EdgeBetween(a, b VertexID) (Edge, bool) {
	key := MakeEdgeKey(a, b)
	for _, e := range m.edges {
		if e.Key() == key {
			return *e.clone(), true
		}
	}
	return Edge{}, false
}

// Vertices returns copies of all vertices, ordered by id
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, 0, len(m.vertices))
	for _, v := range m.vertices {
		out = append(out, *v.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edges returns copies of all edges, ordered by id
func (m *Mesh) Edges() []Edge {
	out := make([]Edge, 0, len(m.edges))
	for _, e := range m.edges {
		out = append(out, *e.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Faces returns copies of all faces, ordered by id
func (m *Mesh) Faces() []Face {
	out := make([]Face, 0, len(m.faces))
	for _, f := range m.faces {
		out = append(out, *f.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// EdgeCount returns the number of edges
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// FaceCount returns the number of faces
func (m *Mesh) FaceCount() int { return len(m.faces) }

// Snapshot is a self-contained copy of the mesh collections, handed to
// the renderer and persistence collaborators. The core never pushes
// updates; collaborators poll.
type Snapshot struct {
	MeshID   MeshID
	Name     string
	Shading  ShadingMode
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face
}

// Snapshot returns an immutable copy of the current mesh state
func (m *Mesh) Snapshot() Snapshot {
	return Snapshot{
		MeshID:   m.ID,
		Name:     m.Name,
		Shading:  m.Shading,
		Vertices: m.Vertices(),
		Edges:    m.Edges(),
		Faces:    m.Faces(),
	}
}

// BoundingBox returns the axis-aligned bounds of all vertex positions
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.vertices {
		bbox.Extend(v.Position)
	}
	return bbox
}
