package mesh

import "sort"

// RebuildEdges derives the edge collection from the face list. It walks
// every face's boundary pairs and merges duplicates into shared records
// whose face lists accumulate all contributing faces.
//
// The rebuild is wholesale rather than incremental: O(total face
// corners) per call, in exchange for never having stale adjacency.
// Edges whose vertex pair survives the rebuild keep their id and
// selected flag. Vertex ids referenced by faces are not validated here.
func (d *Draft) RebuildEdges() {
	type record struct {
		id       EdgeID
		selected bool
		faces    []FaceID
	}
	records := make(map[EdgeKey]*record, len(d.edges))

	// Carry forward identity for pairs that already have an edge.
	for _, e := range d.edges {
		records[e.Key()] = &record{id: e.ID, selected: e.Selected}
	}

	faceIDs := make([]FaceID, 0, len(d.faces))
	for id := range d.faces {
		faceIDs = append(faceIDs, id)
	}
	sort.Slice(faceIDs, func(i, j int) bool { return faceIDs[i] < faceIDs[j] })

	seen := make(map[EdgeKey]bool, len(records))
	for _, fid := range faceIDs {
		for _, pair := range d.faces[fid].BoundaryEdges() {
			key := MakeEdgeKey(pair[0], pair[1])
			rec, ok := records[key]
			if !ok {
				rec = &record{}
				records[key] = rec
			}
			if rec.id == 0 {
				rec.id = d.nextEdge
				d.nextEdge++
			}
			rec.faces = append(rec.faces, fid)
			seen[key] = true
		}
	}

	edges := make(map[EdgeID]*Edge, len(seen))
	for key, rec := range records {
		if !seen[key] {
			continue // No face contributes this pair anymore
		}
		edges[rec.id] = &Edge{
			ID:       rec.id,
			A:        key.Lo,
			B:        key.Hi,
			Faces:    rec.faces,
			Selected: rec.selected,
		}
	}
	d.edges = edges
}
