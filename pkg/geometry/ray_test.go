package geometry

import (
	"math"
	"testing"
)

func TestRayIntersectTriangle(t *testing.T) {
	ray := NewRay(NewVector3(0.25, 0.25, -1), NewVector3(0, 0, 1))
	v0 := NewVector3(0, 0, 0)
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)

	dist, hit := ray.IntersectTriangle(v0, v1, v2)
	if !hit {
		t.Fatal("IntersectTriangle failed: expected a hit")
	}
	if math.Abs(dist-1.0) > 1e-10 {
		t.Errorf("IntersectTriangle distance failed: expected 1, got %v", dist)
	}
}

func TestRayIntersectTriangleMiss(t *testing.T) {
	ray := NewRay(NewVector3(2, 2, -1), NewVector3(0, 0, 1))
	v0 := NewVector3(0, 0, 0)
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)

	if _, hit := ray.IntersectTriangle(v0, v1, v2); hit {
		t.Error("IntersectTriangle failed: expected a miss outside the triangle")
	}
}

func TestRayIntersectTriangleBehind(t *testing.T) {
	ray := NewRay(NewVector3(0.25, 0.25, 1), NewVector3(0, 0, 1))
	v0 := NewVector3(0, 0, 0)
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)

	if _, hit := ray.IntersectTriangle(v0, v1, v2); hit {
		t.Error("IntersectTriangle failed: triangle behind the origin must not hit")
	}
}

func TestRayIntersectTriangleParallel(t *testing.T) {
	ray := NewRay(NewVector3(0, 0, 1), NewVector3(1, 0, 0))
	v0 := NewVector3(0, 0, 0)
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)

	if _, hit := ray.IntersectTriangle(v0, v1, v2); hit {
		t.Error("IntersectTriangle failed: parallel ray must not hit")
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVector3(1, 2, 3), NewVector3(0, 0, 2))
	point := ray.At(5)

	expected := NewVector3(1, 2, 8)
	if point.Distance(expected) > 1e-10 {
		t.Errorf("At failed: expected %v, got %v", expected, point)
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(10, 0, 0)

	mid := ClosestPointOnSegment(NewVector3(5, 3, 0), a, b)
	if mid.Distance(NewVector3(5, 0, 0)) > 1e-10 {
		t.Errorf("ClosestPointOnSegment failed: expected (5,0,0), got %v", mid)
	}

	before := ClosestPointOnSegment(NewVector3(-4, 1, 0), a, b)
	if before.Distance(a) > 1e-10 {
		t.Errorf("ClosestPointOnSegment failed: expected clamp to %v, got %v", a, before)
	}

	after := ClosestPointOnSegment(NewVector3(14, 1, 0), a, b)
	if after.Distance(b) > 1e-10 {
		t.Errorf("ClosestPointOnSegment failed: expected clamp to %v, got %v", b, after)
	}
}

func TestDistanceToSegment(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(10, 0, 0)
	dist := DistanceToSegment(NewVector3(5, 3, 0), a, b)

	if math.Abs(dist-3.0) > 1e-10 {
		t.Errorf("DistanceToSegment failed: expected 3, got %v", dist)
	}
}

func TestDistanceToSegmentDegenerate(t *testing.T) {
	a := NewVector3(1, 1, 1)
	dist := DistanceToSegment(NewVector3(1, 1, 4), a, a)

	if math.Abs(dist-3.0) > 1e-10 {
		t.Errorf("DistanceToSegment failed: expected 3 for point segment, got %v", dist)
	}
}
