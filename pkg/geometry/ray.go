package geometry

const rayEpsilon = 1e-9

// Ray represents a ray with an origin and a normalized direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectTriangle tests the ray against a triangle using the
// Möller–Trumbore algorithm. It returns the hit distance along the ray
// and whether the triangle was hit. Back faces are reported too; the
// caller filters if it cares about winding.
func (r Ray) IntersectTriangle(v0, v1, v2 Vector3) (float64, bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if det > -rayEpsilon && det < rayEpsilon {
		return 0, false // Ray parallel to triangle plane
	}

	invDet := 1.0 / det
	s := r.Origin.Sub(v0)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t < rayEpsilon {
		return 0, false
	}
	return t, true
}

// ClosestPointOnSegment returns the point on segment [a, b] closest to p
func ClosestPointOnSegment(p, a, b Vector3) Vector3 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}

// DistanceToSegment returns the distance from p to segment [a, b]
func DistanceToSegment(p, a, b Vector3) float64 {
	return p.Distance(ClosestPointOnSegment(p, a, b))
}
