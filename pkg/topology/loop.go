// Package topology derives edge loop and ring structure from a mesh's
// quad adjacency. It only reads meshes; all results are id-based.
package topology

import (
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Span describes one quad face's contribution to an edge loop: the
// pair of opposite ("parallel") boundary edges the loop threads
// through. The vertex pairs are unordered.
type Span struct {
	Face      mesh.FaceID
	ParallelA [2]mesh.VertexID
	ParallelB [2]mesh.VertexID
}

// adjacency maps each physical edge to the faces that share it,
// derived from the mesh's rebuilt edge collection
type adjacency map[mesh.EdgeKey][]mesh.FaceID

func buildAdjacency(m *mesh.Mesh) adjacency {
	adj := make(adjacency, m.EdgeCount())
	for _, e := range m.Edges() {
		adj[e.Key()] = append([]mesh.FaceID(nil), e.Faces...)
	}
	return adj
}

// TraceLoop walks the edge loop through the quads enclosing the edge
// (a, b). From each adjacent quad the entering edge and its opposite
// form a span; the walk continues across the face on the far side of
// the opposite edge and stops at a non-quad face, a boundary, or a
// face it has already visited (closed loop).
//
// Each face is visited at most once, so the walk terminates within
// face-count steps. A missing edge or non-quad start yields nil.
func TraceLoop(m *mesh.Mesh, a, b mesh.VertexID) []Span {
	adj := buildAdjacency(m)
	start := mesh.MakeEdgeKey(a, b)
	startFaces := adj[start]
	if len(startFaces) == 0 {
		return nil
	}

	visited := make(map[mesh.FaceID]bool)

	// Walk forward from the first adjacent face.
	forward := walk(m, adj, startFaces[0], start, visited)

	// Walk the other direction from the second adjacent face, if the
	// edge is interior. Those spans are reversed and flipped so the
	// combined list chains A-to-B through every span.
	var backward []Span
	if len(startFaces) > 1 {
		backward = walk(m, adj, startFaces[1], start, visited)
		for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
			backward[i], backward[j] = backward[j], backward[i]
		}
		for i := range backward {
			backward[i].ParallelA, backward[i].ParallelB = backward[i].ParallelB, backward[i].ParallelA
		}
	}

	return append(backward, forward...)
}

// walk extends the loop in one direction until it runs out of quads
func walk(m *mesh.Mesh, adj adjacency, start mesh.FaceID, entering mesh.EdgeKey, visited map[mesh.FaceID]bool) []Span {
	var spans []Span
	faceID := start
	edge := entering

	for {
		face, ok := m.Face(faceID)
		if !ok || !face.IsQuad() || visited[faceID] {
			return spans
		}
		opposite, ok := oppositeEdge(face, edge)
		if !ok {
			return spans
		}
		visited[faceID] = true
		spans = append(spans, Span{
			Face:      faceID,
			ParallelA: [2]mesh.VertexID{edge.Lo, edge.Hi},
			ParallelB: [2]mesh.VertexID{opposite.Lo, opposite.Hi},
		})

		next, ok := nextFace(adj, opposite, faceID)
		if !ok {
			return spans // Boundary
		}
		faceID = next
		edge = opposite
	}
}

// oppositeEdge returns the edge two positions around the quad's
// 4-cycle from the given edge
func oppositeEdge(face mesh.Face, edge mesh.EdgeKey) (mesh.EdgeKey, bool) {
	v := face.Vertices
	for i := 0; i < 4; i++ {
		if mesh.MakeEdgeKey(v[i], v[(i+1)%4]) == edge {
			return mesh.MakeEdgeKey(v[(i+2)%4], v[(i+3)%4]), true
		}
	}
	return mesh.EdgeKey{}, false
}

// nextFace returns the face on the far side of the edge, if any
func nextFace(adj adjacency, edge mesh.EdgeKey, from mesh.FaceID) (mesh.FaceID, bool) {
	for _, id := range adj[edge] {
		if id != from {
			return id, true
		}
	}
	return 0, false
}

// Orient resolves a span's parallel pairs against the face winding so
// that corresponding endpoints line up: the returned pairs (a0, a1)
// and (b0, b1) satisfy that a0–b0 and a1–b1 are the face's
// perpendicular edges. Loop cut relies on this to keep cut lines from
// twisting across a span.
func Orient(face mesh.Face, s Span) (a [2]mesh.VertexID, b [2]mesh.VertexID, ok bool) {
	if !face.IsQuad() {
		return a, b, false
	}
	v := face.Vertices
	key := mesh.MakeEdgeKey(s.ParallelA[0], s.ParallelA[1])
	for i := 0; i < 4; i++ {
		if mesh.MakeEdgeKey(v[i], v[(i+1)%4]) == key {
			a = [2]mesh.VertexID{v[i], v[(i+1)%4]}
			b = [2]mesh.VertexID{v[(i+3)%4], v[(i+2)%4]}
			return a, b, true
		}
	}
	return a, b, false
}
