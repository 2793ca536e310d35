package topology

import "github.com/philipparndt/gomesh/pkg/mesh"

// LoopEdges returns the physical edges of the loop itself: each span's
// parallel edges, chained and deduplicated. Selecting these is an edge
// loop selection.
func LoopEdges(spans []Span) []mesh.EdgeKey {
	seen := make(map[mesh.EdgeKey]bool)
	var keys []mesh.EdgeKey
	add := func(pair [2]mesh.VertexID) {
		key := mesh.MakeEdgeKey(pair[0], pair[1])
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	for _, s := range spans {
		add(s.ParallelA)
		add(s.ParallelB)
	}
	return keys
}

// RingEdges returns the edges perpendicular to the loop, one pair per
// traversed quad, deduplicated. Selecting these is an edge ring
// selection.
func RingEdges(m *mesh.Mesh, spans []Span) []mesh.EdgeKey {
	seen := make(map[mesh.EdgeKey]bool)
	var keys []mesh.EdgeKey
	for _, s := range spans {
		face, ok := m.Face(s.Face)
		if !ok {
			continue
		}
		a, b, ok := Orient(face, s)
		if !ok {
			continue
		}
		for _, key := range []mesh.EdgeKey{
			mesh.MakeEdgeKey(a[0], b[0]),
			mesh.MakeEdgeKey(a[1], b[1]),
		} {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}
