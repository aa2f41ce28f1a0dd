package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	var undirected bool

	cmd := &cobra.Command{
		Use:   "info <file.edges>",
		Short: "Print statistics about an edge list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadEdgeList(args[0], !undirected)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold).SprintFunc()
			cyan := color.New(color.FgCyan).SprintFunc()

			kind := "directed"
			if !g.Directed() {
				kind = "undirected"
			}

			selfLoops := 0
			maxOrder := 0
			for _, e := range g.Edges() {
				if e.SelfLoop() {
					selfLoops++
				}
				if e.Order > maxOrder {
					maxOrder = e.Order
				}
			}

			fmt.Printf("%s %s\n", bold("file:"), args[0])
			fmt.Printf("%s %s\n", bold("type:"), kind)
			fmt.Printf("%s %s\n", bold("nodes:"), cyan(fmt.Sprint(g.NodeCount())))
			fmt.Printf("%s %s\n", bold("edges:"), cyan(fmt.Sprint(g.EdgeCount())))
			fmt.Printf("%s %s\n", bold("self-loops:"), cyan(fmt.Sprint(selfLoops)))
			if maxOrder > 0 {
				fmt.Printf("%s up to %s parallel edges per pair\n", bold("multi:"), cyan(fmt.Sprint(maxOrder+1)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undirected, "undirected", false, "treat the edge list as undirected")
	return cmd
}
