package mesh

import "github.com/philipparndt/gomesh/pkg/geometry"

// FaceNormal computes a face normal from the winding order using
// Newell's method, which stays stable for non-planar ngons. The
// returned vector is unnormalized; its length is twice the face area.
func (d *Draft) FaceNormal(id FaceID) geometry.Vector3 {
	f, ok := d.faces[id]
	if !ok {
		return geometry.Vector3{}
	}
	return newellNormal(d.vertices, f)
}

// RecomputeNormals recalculates every vertex normal as the normalized
// sum of the area-weighted normals of the faces around it. Vertices
// without any face keep their previous normal.
func (d *Draft) RecomputeNormals() {
	sums := make(map[VertexID]geometry.Vector3, len(d.vertices))
	for _, f := range d.faces {
		n := newellNormal(d.vertices, f)
		for _, vid := range f.Vertices {
			sums[vid] = sums[vid].Add(n)
		}
	}
	for vid, sum := range sums {
		if v, ok := d.vertices[vid]; ok {
			v.Normal = sum.Normalize()
		}
	}
}

func newellNormal(vertices map[VertexID]*Vertex, f *Face) geometry.Vector3 {
	var n geometry.Vector3
	count := len(f.Vertices)
	for i := 0; i < count; i++ {
		a, okA := vertices[f.Vertices[i]]
		b, okB := vertices[f.Vertices[(i+1)%count]]
		if !okA || !okB {
			continue
		}
		n.X += (a.Position.Y - b.Position.Y) * (a.Position.Z + b.Position.Z)
		n.Y += (a.Position.Z - b.Position.Z) * (a.Position.X + b.Position.X)
		n.Z += (a.Position.X - b.Position.X) * (a.Position.Y + b.Position.Y)
	}
	return n
}
