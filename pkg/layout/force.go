package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ha1tch/graphcanvas/pkg/graph"
)

// ForceDirected is a spring-embedder layout: nodes repel each other,
// edges pull their endpoints together, and motion is damped until the
// system settles or the iteration cap is hit.
type ForceDirected struct {
	// Repulsion scales the inverse-square push between every node
	// pair.
	Repulsion float64

	// Attraction scales the spring pull along each edge.
	Attraction float64

	// Damping scales the applied displacement each tick.
	Damping float64

	// MaxIterations caps the number of ticks per run.
	MaxIterations int

	// Threshold is the displacement magnitude below which the
	// layout counts as settled.
	Threshold float64

	iterations int
	done       bool
}

// NewForceDirected returns a solver with the default tuning.
func NewForceDirected() *ForceDirected {
	return &ForceDirected{
		Repulsion:     500,
		Attraction:    0.1,
		Damping:       0.85,
		MaxIterations: 300,
		Threshold:     0.1,
	}
}

// Restart resets the solver so it runs again from the current node
// positions.
func (f *ForceDirected) Restart() {
	f.iterations = 0
	f.done = false
}

// Step advances the simulation one tick. Nodes held by the user keep
// their position. Self loops do not participate in the springs; they
// are detached for the tick and reattached unchanged.
func (f *ForceDirected) Step(g *graph.Graph) bool {
	if f.done {
		return false
	}
	if g.NodeCount() <= 1 || f.iterations >= f.MaxIterations {
		f.done = true
		return false
	}
	f.iterations++

	loops := g.DetachSelfLoops()
	moved := f.tick(g)
	g.Reattach(loops)

	if moved < f.Threshold {
		f.done = true
		return false
	}
	return true
}

// tick applies one round of forces and returns the largest
// displacement applied.
func (f *ForceDirected) tick(g *graph.Graph) float64 {
	nodes := g.Nodes()
	force := make(map[int64]r2.Vec, len(nodes))

	for i, a := range nodes {
		for _, b := range nodes[i+1:] {
			d := r2.Sub(a.Location, b.Location)
			dist := r2.Norm(d)
			if dist < 1e-6 {
				// Coincident nodes get a deterministic nudge.
				d = r2.Vec{X: 1, Y: 0}
				dist = 1
			}
			push := r2.Scale(f.Repulsion/(dist*dist*dist), d)
			force[a.ID] = r2.Add(force[a.ID], push)
			force[b.ID] = r2.Sub(force[b.ID], push)
		}
	}

	for _, e := range g.Edges() {
		src := g.Node(e.Source)
		dst := g.Node(e.Target)
		if src == nil || dst == nil {
			continue
		}
		pull := r2.Scale(f.Attraction, r2.Sub(dst.Location, src.Location))
		force[src.ID] = r2.Add(force[src.ID], pull)
		force[dst.ID] = r2.Sub(force[dst.ID], pull)
	}

	var max float64
	for _, n := range nodes {
		if n.Dragged {
			continue
		}
		d := r2.Scale(f.Damping, force[n.ID])
		if !finite(d) {
			continue
		}
		n.Location = r2.Add(n.Location, d)
		if m := r2.Norm(d); m > max {
			max = m
		}
	}
	return max
}

func finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
