package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ha1tch/graphcanvas/pkg/graph"
)

// ComputedState is the ephemeral per-frame snapshot derived from the
// graph's authoritative flags: dragged node, selections and the graph
// bounding box. It is a read cache rebuilt at frame start and
// discarded at frame end, never a source of truth.
type ComputedState struct {
	DraggedID     int64 // -1 when no node is dragged
	SelectedNodes []int64
	SelectedEdges []int64

	min, max r2.Vec
	count    int
}

// Compute performs one pass over nodes and edges: accumulates the
// bounding box, refreshes each node's connection count and collects
// the selected/dragged elements. Must run before interaction handling.
func Compute(g *graph.Graph) *ComputedState {
	c := &ComputedState{
		DraggedID: -1,
		min:       r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		max:       r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}

	for _, n := range g.Nodes() {
		n.Connections = 0
		c.count++

		loc := n.Location
		if loc.X < c.min.X {
			c.min.X = loc.X
		}
		if loc.X > c.max.X {
			c.max.X = loc.X
		}
		if loc.Y < c.min.Y {
			c.min.Y = loc.Y
		}
		if loc.Y > c.max.Y {
			c.max.Y = loc.Y
		}

		if n.Selected {
			c.SelectedNodes = append(c.SelectedNodes, n.ID)
		}
		if n.Dragged {
			c.DraggedID = n.ID
		}
	}

	for _, e := range g.Edges() {
		if src := g.Node(e.Source); src != nil {
			src.Connections++
		}
		// A self-loop is one incident edge, not two.
		if dst := g.Node(e.Target); dst != nil && !e.SelfLoop() {
			dst.Connections++
		}
		if e.Selected {
			c.SelectedEdges = append(c.SelectedEdges, e.ID)
		}
	}

	return c
}

// Bounds returns the canvas-space bounding box over node locations.
// For an empty graph it returns the zero rectangle.
func (c *ComputedState) Bounds() Rect {
	if c.count == 0 {
		return Rect{}
	}
	return Rect{Min: c.min, Max: c.max}
}
