package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/graphcanvas/pkg/graph"
	"github.com/ha1tch/graphcanvas/pkg/layout"
	"github.com/ha1tch/graphcanvas/pkg/render"
	"github.com/ha1tch/graphcanvas/pkg/view"
)

func renderCmd() *cobra.Command {
	var (
		output     string
		width      int
		height     int
		undirected bool
		static     bool
	)

	cmd := &cobra.Command{
		Use:   "render <file.edges>",
		Short: "Render an edge list to PNG or SVG",
		Long: `Render loads a plain-text edge list, runs the force layout to
completion, fits the graph to the image and writes it out. The output
format is chosen by extension: .png or .svg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadEdgeList(args[0], !undirected)
			if err != nil {
				return err
			}

			if !static {
				lay := layout.NewForceDirected()
				for lay.Step(g) {
				}
			}

			if output == "" {
				base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
				output = base + ".png"
			}

			opts := render.DefaultOptions()
			opts.Width = width
			opts.Height = height

			v := view.New(g)
			vp := view.NewViewport()
			canvas := view.NewRect(0, 0, float64(opts.Width), float64(opts.Height))
			v.Update(vp, view.Input{}, canvas)
			layers := v.Draw(vp)

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			switch strings.ToLower(filepath.Ext(output)) {
			case ".png":
				err = render.WritePNG(layers, f, opts)
			case ".svg":
				err = render.WriteSVG(layers, f, opts)
			default:
				return fmt.Errorf("unsupported output format %q", filepath.Ext(output))
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", output, err)
			}

			fmt.Printf("wrote %s (%dx%d)\n", output, opts.Width, opts.Height)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with .png)")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "image height in pixels")
	cmd.Flags().BoolVar(&undirected, "undirected", false, "treat the edge list as undirected")
	cmd.Flags().BoolVar(&static, "static", false, "skip the force layout and keep spawn positions")

	return cmd
}

func loadEdgeList(path string, directed bool) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := graph.ParseEdgeList(f, directed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
