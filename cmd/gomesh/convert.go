package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/pkg/stl"
	"github.com/spf13/cobra"
)

var convertBinary bool

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert an STL file between ASCII and binary",
	Long:  "Round-trip an STL file through the polygon model, welding shared vertices, and write it back in the requested format.",
	Args:  cobra.ExactArgs(2),
	Run:   runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVarP(&convertBinary, "binary", "b", false, "Write binary STL instead of ASCII")
}

func runConvert(cmd *cobra.Command, args []string) {
	m, err := stl.Import(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing mesh: %v\n", err)
		os.Exit(1)
	}

	snapshot := m.Snapshot()
	if convertBinary {
		err = stl.ExportBinary(snapshot, args[1])
	} else {
		err = stl.ExportASCII(snapshot, args[1])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", args[1], err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d vertices, %d faces)\n", args[1], m.VertexCount(), m.FaceCount())
}
