package layout

import "github.com/ha1tch/graphcanvas/pkg/graph"

// Layout positions the nodes of a graph.
type Layout interface {
	// Step advances the layout by one tick and reports whether
	// more ticks are needed. A settled layout returns false.
	Step(g *graph.Graph) bool

	// Restart resets the layout so it runs again from the current
	// node positions.
	Restart()
}
