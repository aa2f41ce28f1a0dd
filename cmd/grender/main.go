// Command grender renders graph edge-list files to PNG or SVG without
// a terminal UI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "grender",
		Short:        "Render graphs to images",
		Long:         "grender lays out graph edge-list files and exports them as PNG or SVG images.",
		SilenceUsage: true,
	}

	root.AddCommand(renderCmd())
	root.AddCommand(infoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "grender: %v\n", err)
		os.Exit(1)
	}
}
