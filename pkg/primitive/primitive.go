// Package primitive builds starting meshes: vertex and face arrays
// wired into a fresh mesh with derived edges and normals. It is a
// construction collaborator only; it never touches topology queries or
// the transform engine.
package primitive

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Cube returns an axis-aligned cube of the given edge length centered
// on the origin: 8 vertices, 6 quad faces
func Cube(name string, size float64) *mesh.Mesh {
	h := size / 2
	m := mesh.New(0, name)
	m.Edit(func(d *mesh.Draft) {
		v := [8]mesh.VertexID{
			d.AddVertex(geometry.NewVector3(-h, -h, -h)),
			d.AddVertex(geometry.NewVector3(h, -h, -h)),
			d.AddVertex(geometry.NewVector3(h, h, -h)),
			d.AddVertex(geometry.NewVector3(-h, h, -h)),
			d.AddVertex(geometry.NewVector3(-h, -h, h)),
			d.AddVertex(geometry.NewVector3(h, -h, h)),
			d.AddVertex(geometry.NewVector3(h, h, h)),
			d.AddVertex(geometry.NewVector3(-h, h, h)),
		}
		// Outward winding per face.
		d.AddFace(v[4], v[5], v[6], v[7]) // +z
		d.AddFace(v[1], v[0], v[3], v[2]) // -z
		d.AddFace(v[0], v[4], v[7], v[3]) // -x
		d.AddFace(v[5], v[1], v[2], v[6]) // +x
		d.AddFace(v[7], v[6], v[2], v[3]) // +y
		d.AddFace(v[0], v[1], v[5], v[4]) // -y
		d.RebuildEdges()
		d.RecomputeNormals()
	})
	return m
}

// Plane returns a single quad of the given size in the XZ plane,
// facing +Y, with corner UVs covering the unit square
func Plane(name string, size float64) *mesh.Mesh {
	h := size / 2
	m := mesh.New(0, name)
	m.Edit(func(d *mesh.Draft) {
		a := d.AddVertex(geometry.NewVector3(-h, 0, -h))
		b := d.AddVertex(geometry.NewVector3(-h, 0, h))
		c := d.AddVertex(geometry.NewVector3(h, 0, h))
		e := d.AddVertex(geometry.NewVector3(h, 0, -h))
		d.SetUV(a, geometry.NewVector2(0, 0))
		d.SetUV(b, geometry.NewVector2(0, 1))
		d.SetUV(c, geometry.NewVector2(1, 1))
		d.SetUV(e, geometry.NewVector2(1, 0))
		f := d.AddFace(a, b, c, e)
		d.SetLoopUVs(f, []geometry.Vector2{
			geometry.NewVector2(0, 0),
			geometry.NewVector2(0, 1),
			geometry.NewVector2(1, 1),
			geometry.NewVector2(1, 0),
		})
		d.RebuildEdges()
		d.RecomputeNormals()
	})
	return m
}

// Grid returns a subdivided plane in the XZ plane: divisions×divisions
// quads facing +Y, UVs spread across the unit square
func Grid(name string, size float64, divisions int) *mesh.Mesh {
	if divisions < 1 {
		divisions = 1
	}
	h := size / 2
	step := size / float64(divisions)

	m := mesh.New(0, name)
	m.Edit(func(d *mesh.Draft) {
		ids := make([][]mesh.VertexID, divisions+1)
		for i := 0; i <= divisions; i++ {
			ids[i] = make([]mesh.VertexID, divisions+1)
			for j := 0; j <= divisions; j++ {
				id := d.AddVertex(geometry.NewVector3(-h+float64(i)*step, 0, -h+float64(j)*step))
				d.SetUV(id, geometry.NewVector2(
					float64(i)/float64(divisions),
					float64(j)/float64(divisions),
				))
				ids[i][j] = id
			}
		}
		for i := 0; i < divisions; i++ {
			for j := 0; j < divisions; j++ {
				d.AddFace(ids[i][j], ids[i][j+1], ids[i+1][j+1], ids[i+1][j])
			}
		}
		d.RebuildEdges()
		d.RecomputeNormals()
	})
	return m
}
