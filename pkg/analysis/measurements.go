// Package analysis derives read-only statistics from mesh snapshots
// for the CLI and viewer overlays.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// EdgeInfo describes one derived edge with resolved endpoints
type EdgeInfo struct {
	ID        mesh.EdgeID
	Start     geometry.Vector3
	End       geometry.Vector3
	Length    float64
	FaceCount int
}

// MeasurementResult contains the statistics of one mesh
type MeasurementResult struct {
	Name          string
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	VertexCount   int
	EdgeCount     int
	FaceCount     int
	QuadCount     int
	TriangleCount int
	NgonCount     int
	BoundaryEdges int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// Analyze computes statistics over a mesh snapshot
func Analyze(snapshot mesh.Snapshot) *MeasurementResult {
	result := &MeasurementResult{
		Name:        snapshot.Name,
		BoundingBox: geometry.NewBoundingBox(),
		VertexCount: len(snapshot.Vertices),
		EdgeCount:   len(snapshot.Edges),
		FaceCount:   len(snapshot.Faces),
	}

	positions := make(map[mesh.VertexID]geometry.Vector3, len(snapshot.Vertices))
	for _, v := range snapshot.Vertices {
		positions[v.ID] = v.Position
		result.BoundingBox.Extend(v.Position)
	}
	result.Dimensions = result.BoundingBox.Size()

	for _, f := range snapshot.Faces {
		switch len(f.Vertices) {
		case 3:
			result.TriangleCount++
		case 4:
			result.QuadCount++
		default:
			result.NgonCount++
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for _, e := range snapshot.Edges {
		info := EdgeInfo{
			ID:        e.ID,
			Start:     positions[e.A],
			End:       positions[e.B],
			FaceCount: len(e.Faces),
		}
		info.Length = info.Start.Distance(info.End)
		result.AllEdges = append(result.AllEdges, info)

		if len(e.Faces) < 2 {
			result.BoundaryEdges++
		}
		totalLength += info.Length
		if info.Length < minLength {
			minLength = info.Length
		}
		if info.Length > maxLength {
			maxLength = info.Length
		}
	}
	if len(result.AllEdges) > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(len(result.AllEdges))
	}

	return result
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FormatVector formats a 3D vector for CLI output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
