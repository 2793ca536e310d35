package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gomesh/pkg/primitive"
)

func TestAnalyzeCube(t *testing.T) {
	cube := primitive.Cube("box", 2)
	result := Analyze(cube.Snapshot())

	if result.VertexCount != 8 || result.EdgeCount != 12 || result.FaceCount != 6 {
		t.Errorf("Analyze failed: counts %d/%d/%d",
			result.VertexCount, result.EdgeCount, result.FaceCount)
	}
	if result.QuadCount != 6 || result.TriangleCount != 0 || result.NgonCount != 0 {
		t.Errorf("Analyze failed: face kinds %d quads, %d tris, %d ngons",
			result.QuadCount, result.TriangleCount, result.NgonCount)
	}
	if result.BoundaryEdges != 0 {
		t.Errorf("Analyze failed: closed cube reported %d boundary edges", result.BoundaryEdges)
	}

	// Every edge of a 2-unit cube has length 2.
	if math.Abs(result.MinEdgeLength-2) > 1e-10 || math.Abs(result.MaxEdgeLength-2) > 1e-10 {
		t.Errorf("Analyze failed: edge lengths min %v max %v",
			result.MinEdgeLength, result.MaxEdgeLength)
	}
	if math.Abs(result.AvgEdgeLength-2) > 1e-10 {
		t.Errorf("Analyze failed: average edge length %v", result.AvgEdgeLength)
	}

	if result.Dimensions.Distance(result.BoundingBox.Size()) > 1e-10 {
		t.Error("Analyze failed: dimensions do not match the bounding box")
	}
}

func TestAnalyzePlaneBoundary(t *testing.T) {
	plane := primitive.Plane("ground", 2)
	result := Analyze(plane.Snapshot())

	// A lone quad is all boundary.
	if result.BoundaryEdges != 4 {
		t.Errorf("Analyze failed: expected 4 boundary edges, got %d", result.BoundaryEdges)
	}
	if result.QuadCount != 1 {
		t.Errorf("Analyze failed: expected 1 quad, got %d", result.QuadCount)
	}
}

func TestFindLongestEdges(t *testing.T) {
	grid := primitive.Grid("grid", 2, 2)
	result := Analyze(grid.Snapshot())

	longest := FindLongestEdges(result, 3)
	if len(longest) != 3 {
		t.Fatalf("FindLongestEdges failed: expected 3 edges, got %d", len(longest))
	}
	for i := 1; i < len(longest); i++ {
		if longest[i].Length > longest[i-1].Length {
			t.Error("FindLongestEdges failed: result not sorted descending")
		}
	}

	shortest := FindShortestEdges(result, 3)
	if shortest[0].Length > longest[0].Length {
		t.Error("FindShortestEdges failed: shortest longer than longest")
	}

	// Requesting more than available returns everything.
	all := FindLongestEdges(result, 1000)
	if len(all) != result.EdgeCount {
		t.Errorf("FindLongestEdges failed: expected %d edges, got %d", result.EdgeCount, len(all))
	}
}

func TestFormatVector(t *testing.T) {
	s := FormatVector(primitive.Cube("box", 2).BoundingBox().Max)
	expected := "(1.000000, 1.000000, 1.000000)"
	if s != expected {
		t.Errorf("FormatVector failed: expected %s, got %s", expected, s)
	}
}
