package geometry

// Triangle represents a single triangle with a face normal
type Triangle struct {
	Normal Vector3
	V1     Vector3
	V2     Vector3
	V3     Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Length() / 2.0
}

// ComputedNormal returns the normal derived from the winding order,
// ignoring the stored normal
func (t Triangle) ComputedNormal() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalize()
}

// EdgeLengths returns the lengths of the three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the sum of the edge lengths
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	sum := t.V1.Add(t.V2).Add(t.V3)
	return Vector3{X: sum.X / 3.0, Y: sum.Y / 3.0, Z: sum.Z / 3.0}
}
