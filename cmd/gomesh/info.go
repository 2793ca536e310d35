package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/philipparndt/gomesh/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	infoEdgeCount int
	infoLongest   bool
	infoShortest  bool
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show topology statistics for a mesh file",
	Long:  "Import an STL file into the polygon model and report vertex/edge/face counts, face kinds, bounds and edge length statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoEdgeCount, "count", "n", 10, "Number of edges to display")
	infoCmd.Flags().BoolVarP(&infoLongest, "longest", "l", false, "List the longest edges")
	infoCmd.Flags().BoolVarP(&infoShortest, "shortest", "s", false, "List the shortest edges")
}

func runInfo(cmd *cobra.Command, args []string) {
	m, err := stl.Import(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing mesh: %v\n", err)
		os.Exit(1)
	}

	result := analysis.Analyze(m.Snapshot())

	fmt.Printf("Mesh: %s\n", result.Name)
	fmt.Println("====================")
	fmt.Printf("Vertices:  %d\n", result.VertexCount)
	fmt.Printf("Edges:     %d (%d boundary)\n", result.EdgeCount, result.BoundaryEdges)
	fmt.Printf("Faces:     %d (%d quads, %d triangles, %d ngons)\n",
		result.FaceCount, result.QuadCount, result.TriangleCount, result.NgonCount)
	fmt.Printf("Bounds:    %s to %s\n",
		analysis.FormatVector(result.BoundingBox.Min),
		analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("Size:      %s\n", analysis.FormatVector(result.Dimensions))
	fmt.Printf("Edge len:  min %.6f  max %.6f  avg %.6f\n\n",
		result.MinEdgeLength, result.MaxEdgeLength, result.AvgEdgeLength)

	var edges []analysis.EdgeInfo
	switch {
	case infoLongest:
		edges = analysis.FindLongestEdges(result, infoEdgeCount)
		fmt.Printf("Top %d longest edges:\n", len(edges))
	case infoShortest:
		edges = analysis.FindShortestEdges(result, infoEdgeCount)
		fmt.Printf("Top %d shortest edges:\n", len(edges))
	}

	for i, edge := range edges {
		fmt.Printf("%-6d %-35s %-35s %.6f\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
}
