package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "forge",
		Short: "Reactive 3D editor domain model",
		Long: `forge is a reactive domain model for interactive 3D editors.

Entities expose observable properties as signals; derived quantities
(face normal and area, edge length, transform matrix, bounding-box
center and size) recompute automatically whenever the inputs they
depend on change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		demoCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
