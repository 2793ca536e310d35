package editor

import (
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/topology"
)

// LoopCutPhase is the operator's interactive phase
type LoopCutPhase int

const (
	// LoopCutChoose follows the pointer, picking the edge whose loop
	// will be cut and previewing the cross lines
	LoopCutChoose LoopCutPhase = iota
	// LoopCutSlide keeps the chosen loop and slides the cut positions
	// along the spanned edges
	LoopCutSlide
)

// LoopCut is the two-phase interactive subdivision operator. It reads
// topology through TraceLoop during Choose and performs its single
// mutation on Commit; Cancel and failed picks never touch the mesh.
type LoopCut struct {
	mesh      *mesh.Mesh
	transform geometry.Transform
	opts      Options

	phase    LoopCutPhase
	segments int
	slide    float64
	spans    []topology.Span
	hitEdge  [2]mesh.VertexID

	active bool
}

// StartLoopCut begins the Choose phase over a mesh placed in the world
// by the given object transform
func StartLoopCut(m *mesh.Mesh, transform geometry.Transform, opts Options) *LoopCut {
	return &LoopCut{
		mesh:      m,
		transform: transform,
		opts:      opts,
		segments:  1,
		slide:     0.5,
		active:    true,
	}
}

// Active reports whether the operator is still in flight
func (lc *LoopCut) Active() bool { return lc.active }

// Phase returns the current interactive phase
func (lc *LoopCut) Phase() LoopCutPhase { return lc.phase }

// Segments returns the current cut count
func (lc *LoopCut) Segments() int { return lc.segments }

// Spans returns the spans resolved by the last hover
func (lc *LoopCut) Spans() []topology.Span { return lc.spans }

// SetSegments sets the number of cuts, clamped to [1, max]
func (lc *LoopCut) SetSegments(n int) {
	max := lc.opts.MaxLoopCutSegments
	if max <= 0 {
		max = 64
	}
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	lc.segments = n
}

// AdjustSegments changes the cut count by a delta, with the same clamp
func (lc *LoopCut) AdjustSegments(delta int) {
	lc.SetSegments(lc.segments + delta)
}

// SetSlide sets the slide offset, clamped to [0, 1]. Only meaningful
// in the Slide phase.
func (lc *LoopCut) SetSlide(t float64) {
	if lc.phase != LoopCutSlide {
		return
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lc.slide = t
}

// Hover raycasts the live face set under the pointer ray (world
// space), picks the boundary edge of the hit face closest to the hit
// point, and recomputes the candidate spans. It reports whether a
// cuttable loop is under the pointer. Only valid during Choose.
func (lc *LoopCut) Hover(ray geometry.Ray) bool {
	if !lc.active || lc.phase != LoopCutChoose {
		return len(lc.spans) > 0
	}
	lc.spans = nil

	positions := make(map[mesh.VertexID]geometry.Vector3, lc.mesh.VertexCount())
	for _, v := range lc.mesh.Vertices() {
		positions[v.ID] = v.Position
	}

	// Intersect in local space; the pick distances below are computed
	// in world space so the object's transform is honored.
	localRay := lc.transform.ApplyInverseRay(ray)
	bestT := math.MaxFloat64
	var hitFace mesh.Face
	hit := false
	for _, f := range lc.mesh.Faces() {
		if len(f.Vertices) < 3 {
			continue
		}
		v0 := positions[f.Vertices[0]]
		for i := 1; i+1 < len(f.Vertices); i++ {
			t, ok := localRay.IntersectTriangle(v0, positions[f.Vertices[i]], positions[f.Vertices[i+1]])
			if ok && t < bestT {
				bestT = t
				hitFace = f
				hit = true
			}
		}
	}
	if !hit {
		return false
	}

	hitPoint := lc.transform.Apply(localRay.At(bestT))
	bestDist := math.MaxFloat64
	var edge [2]mesh.VertexID
	for _, pair := range hitFace.BoundaryEdges() {
		a := lc.transform.Apply(positions[pair[0]])
		b := lc.transform.Apply(positions[pair[1]])
		dist := geometry.DistanceToSegment(hitPoint, a, b)
		if dist < bestDist {
			bestDist = dist
			edge = pair
		}
	}

	lc.hitEdge = edge
	lc.spans = topology.TraceLoop(lc.mesh, edge[0], edge[1])
	return len(lc.spans) > 0
}

// ChooseEdge resolves spans directly from a known edge, bypassing the
// raycast. Used by headless callers and tests; reports whether the
// edge starts a cuttable loop.
func (lc *LoopCut) ChooseEdge(a, b mesh.VertexID) bool {
	if !lc.active || lc.phase != LoopCutChoose {
		return false
	}
	lc.hitEdge = [2]mesh.VertexID{a, b}
	lc.spans = topology.TraceLoop(lc.mesh, a, b)
	return len(lc.spans) > 0
}

// cutT returns the final parameter of cut i in 1..segments: the base
// position i/(segments+1) shifted by the slide offset and clamped away
// from the edge endpoints so no coincident vertices are created
func (lc *LoopCut) cutT(i int) float64 {
	t := float64(i)/float64(lc.segments+1) + lc.slide - 0.5
	if t < 0.001 {
		t = 0.001
	}
	if t > 0.999 {
		t = 0.999
	}
	return t
}

// Preview returns the world-space cross lines the commit would create:
// one segment per span per cut
func (lc *LoopCut) Preview() [][2]geometry.Vector3 {
	if len(lc.spans) == 0 {
		return nil
	}
	positions := make(map[mesh.VertexID]geometry.Vector3, lc.mesh.VertexCount())
	for _, v := range lc.mesh.Vertices() {
		positions[v.ID] = v.Position
	}

	var lines [][2]geometry.Vector3
	for _, span := range lc.spans {
		face, ok := lc.mesh.Face(span.Face)
		if !ok {
			continue
		}
		a, b, ok := topology.Orient(face, span)
		if !ok {
			continue
		}
		for i := 1; i <= lc.segments; i++ {
			t := lc.cutT(i)
			pa := positions[a[0]].Lerp(positions[a[1]], t)
			pb := positions[b[0]].Lerp(positions[b[1]], t)
			lines = append(lines, [2]geometry.Vector3{
				lc.transform.Apply(pa),
				lc.transform.Apply(pb),
			})
		}
	}
	return lines
}

// ConfirmChoose locks the hovered loop and enters the Slide phase. It
// reports false, aborting nothing, when no loop is under the pointer.
func (lc *LoopCut) ConfirmChoose() bool {
	if !lc.active || lc.phase != LoopCutChoose || len(lc.spans) == 0 {
		return false
	}
	lc.phase = LoopCutSlide
	return true
}

// Cancel discards all preview state without mutating the mesh
func (lc *LoopCut) Cancel() {
	lc.active = false
	lc.spans = nil
}

// Commit subdivides every spanned quad at the final cut positions:
// `segments` new vertices per physical parallel edge (shared edges are
// cut once, so adjacent spans reuse the same vertices), each quad
// replaced by segments+1 quads, followed by an edge rebuild and normal
// recompute. With no resolved spans nothing is mutated.
func (lc *LoopCut) Commit() bool {
	if !lc.active || len(lc.spans) == 0 {
		lc.active = false
		return false
	}
	k := lc.segments

	lc.mesh.Edit(func(d *mesh.Draft) {
		type cutRecord struct {
			from mesh.VertexID
			ids  []mesh.VertexID
		}
		cuts := make(map[mesh.EdgeKey]*cutRecord)

		// cutIDs returns the new vertices along the oriented edge
		// (from, to), creating them on first use and reusing (in the
		// caller's orientation) on every later visit of the same
		// physical edge.
		cutIDs := func(from, to mesh.VertexID) []mesh.VertexID {
			key := mesh.MakeEdgeKey(from, to)
			if rec, ok := cuts[key]; ok {
				if rec.from == from {
					return rec.ids
				}
				reversed := make([]mesh.VertexID, k)
				for i, id := range rec.ids {
					reversed[k-1-i] = id
				}
				return reversed
			}

			va, okA := d.Vertex(from)
			vb, okB := d.Vertex(to)
			ids := make([]mesh.VertexID, k)
			for i := 1; i <= k; i++ {
				t := lc.cutT(i)
				if !okA || !okB {
					continue
				}
				id := d.AddVertex(va.Position.Lerp(vb.Position, t))
				nv, _ := d.Vertex(id)
				nv.Normal = va.Normal.Lerp(vb.Normal, t).Normalize()
				nv.UV = va.UV.Lerp(vb.UV, t)
				if va.UV2 != nil && vb.UV2 != nil {
					uv2 := va.UV2.Lerp(*vb.UV2, t)
					nv.UV2 = &uv2
				}
				ids[i-1] = id
			}
			cuts[key] = &cutRecord{from: from, ids: ids}
			return ids
		}

		for _, span := range lc.spans {
			fp, ok := d.Face(span.Face)
			if !ok {
				continue
			}
			face := *fp
			a, b, ok := topology.Orient(face, span)
			if !ok {
				continue
			}
			aIDs := cutIDs(a[0], a[1])
			bIDs := cutIDs(b[0], b[1])

			// Column j runs 0..k+1 from the a0/b0 side to the a1/b1
			// side; columns 1..k are the new cut vertices.
			colA := make([]mesh.VertexID, 0, k+2)
			colB := make([]mesh.VertexID, 0, k+2)
			colA = append(colA, a[0])
			colA = append(colA, aIDs...)
			colA = append(colA, a[1])
			colB = append(colB, b[0])
			colB = append(colB, bIDs...)
			colB = append(colB, b[1])

			colT := func(j int) float64 {
				if j == 0 {
					return 0
				}
				if j == k+1 {
					return 1
				}
				return lc.cutT(j)
			}

			hasUV := face.LoopUVs != nil
			var uvA0, uvA1, uvB0, uvB1 geometry.Vector2
			if hasUV {
				uvA0 = cornerUV(face, a[0])
				uvA1 = cornerUV(face, a[1])
				uvB0 = cornerUV(face, b[0])
				uvB1 = cornerUV(face, b[1])
			}

			for j := 0; j <= k; j++ {
				fid := d.AddFace(colA[j], colA[j+1], colB[j+1], colB[j])
				nf, _ := d.Face(fid)
				nf.Material = face.Material
				if hasUV {
					t0, t1 := colT(j), colT(j+1)
					nf.LoopUVs = []geometry.Vector2{
						uvA0.Lerp(uvA1, t0),
						uvA0.Lerp(uvA1, t1),
						uvB0.Lerp(uvB1, t1),
						uvB0.Lerp(uvB1, t0),
					}
				}
			}
			d.RemoveFace(span.Face)
		}

		d.RebuildEdges()
		d.RecomputeNormals()
	})

	lc.active = false
	return true
}

// cornerUV returns the face's per-corner UV for a vertex id
func cornerUV(f mesh.Face, id mesh.VertexID) geometry.Vector2 {
	for i, vid := range f.Vertices {
		if vid == id && i < len(f.LoopUVs) {
			return f.LoopUVs[i]
		}
	}
	return geometry.Vector2{}
}
