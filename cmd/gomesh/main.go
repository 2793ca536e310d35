package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gomesh",
	Short: "A CLI tool for inspecting and editing polygon meshes",
	Long: `gomesh is a command-line companion to the gomesh editing engine.
It imports STL files into the indexed polygon model and can inspect
topology, apply loop cuts, and convert between STL formats.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
