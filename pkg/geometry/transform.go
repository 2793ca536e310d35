package geometry

import "math"

// Transform represents an object's placement in world space as
// position, Euler rotation (XYZ order, radians) and per-axis scale
type Transform struct {
	Position Vector3
	Rotation Vector3
	Scale    Vector3
}

// IdentityTransform returns a transform that leaves points unchanged
func IdentityTransform() Transform {
	return Transform{Scale: NewVector3(1, 1, 1)}
}

// Apply transforms a local-space point into world space:
// scale, then rotate X, Y, Z, then translate
func (t Transform) Apply(p Vector3) Vector3 {
	p = p.MulVec(t.Scale)
	p = rotateX(p, t.Rotation.X)
	p = rotateY(p, t.Rotation.Y)
	p = rotateZ(p, t.Rotation.Z)
	return p.Add(t.Position)
}

// ApplyInverse transforms a world-space point back into local space
func (t Transform) ApplyInverse(p Vector3) Vector3 {
	p = p.Sub(t.Position)
	p = rotateZ(p, -t.Rotation.Z)
	p = rotateY(p, -t.Rotation.Y)
	p = rotateX(p, -t.Rotation.X)
	sx, sy, sz := t.Scale.X, t.Scale.Y, t.Scale.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	return NewVector3(p.X/sx, p.Y/sy, p.Z/sz)
}

// ApplyInverseRay transforms a world-space ray into local space so
// intersection tests can run against untransformed geometry
func (t Transform) ApplyInverseRay(r Ray) Ray {
	origin := t.ApplyInverse(r.Origin)
	through := t.ApplyInverse(r.At(1))
	return NewRay(origin, through.Sub(origin))
}

func rotateX(p Vector3, angle float64) Vector3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vector3{X: p.X, Y: p.Y*cos - p.Z*sin, Z: p.Y*sin + p.Z*cos}
}

func rotateY(p Vector3, angle float64) Vector3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vector3{X: p.X*cos + p.Z*sin, Y: p.Y, Z: -p.X*sin + p.Z*cos}
}

func rotateZ(p Vector3, angle float64) Vector3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vector3{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos, Z: p.Z}
}
