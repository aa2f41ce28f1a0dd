package layout

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ha1tch/graphcanvas/pkg/graph"
)

func pairGraph() (*graph.Graph, *graph.Node, *graph.Node) {
	g := graph.New(false)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	a.Location = r2.Vec{X: 0, Y: 0}
	b.Location = r2.Vec{X: 1, Y: 0}
	g.AddEdge(a.ID, b.ID, nil)
	return g, a, b
}

func TestForcePushesCloseNodesApart(t *testing.T) {
	g, a, b := pairGraph()

	f := NewForceDirected()
	f.Step(g)

	dist := r2.Norm(r2.Sub(b.Location, a.Location))
	if dist <= 1 {
		t.Errorf("distance = %v after one step, want > 1: repulsion dominates up close", dist)
	}
}

func TestForceSettles(t *testing.T) {
	g, a, b := pairGraph()

	f := NewForceDirected()
	steps := 0
	for f.Step(g) {
		steps++
		if steps > f.MaxIterations {
			t.Fatal("Step kept returning true past the iteration cap")
		}
	}

	// Once settled, Step must stay false without mutating positions.
	locA, locB := a.Location, b.Location
	if f.Step(g) {
		t.Error("settled layout must keep returning false")
	}
	if a.Location != locA || b.Location != locB {
		t.Error("settled layout must not move nodes")
	}
}

func TestForceSkipsTrivialGraphs(t *testing.T) {
	empty := graph.New(true)
	f := NewForceDirected()
	if f.Step(empty) {
		t.Error("empty graph must settle immediately")
	}

	single := graph.New(true)
	n := single.AddNode(nil)
	before := n.Location
	f = NewForceDirected()
	if f.Step(single) {
		t.Error("single node must settle immediately")
	}
	if n.Location != before {
		t.Error("single node must not move")
	}
}

func TestForcePreservesSelfLoops(t *testing.T) {
	g := graph.New(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	g.AddEdge(a.ID, b.ID, nil)
	loop, _ := g.AddEdge(a.ID, a.ID, nil)

	f := NewForceDirected()
	for f.Step(g) {
	}

	got := g.Edge(loop.ID)
	if got == nil {
		t.Fatal("self loop lost during simulation")
	}
	if !got.SelfLoop() || got.Order != 0 {
		t.Errorf("self loop corrupted: %+v", got)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("edge count = %d, want 2", g.EdgeCount())
	}
}

func TestForcePinsDraggedNode(t *testing.T) {
	g, a, b := pairGraph()
	a.Dragged = true
	anchor := a.Location

	f := NewForceDirected()
	for i := 0; i < 10 && f.Step(g); i++ {
	}

	if a.Location != anchor {
		t.Errorf("dragged node moved to %+v", a.Location)
	}
	if b.Location == (r2.Vec{X: 1, Y: 0}) {
		t.Error("free node should still move")
	}
}

func TestForceRestart(t *testing.T) {
	g, _, _ := pairGraph()

	f := NewForceDirected()
	for f.Step(g) {
	}
	if f.Step(g) {
		t.Fatal("expected settled layout")
	}

	// Disturb the layout; a restarted solver must pick it up again.
	g.Nodes()[0].Location = r2.Vec{X: 0, Y: 0}
	g.Nodes()[1].Location = r2.Vec{X: 1, Y: 0}
	f.Restart()
	if !f.Step(g) {
		t.Error("restart must allow stepping again")
	}
}

func TestForceCoincidentNodes(t *testing.T) {
	g := graph.New(false)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	a.Location = r2.Vec{X: 5, Y: 5}
	b.Location = r2.Vec{X: 5, Y: 5}

	f := NewForceDirected()
	f.Step(g)

	if a.Location == b.Location {
		t.Error("coincident nodes must separate")
	}
}

func TestStaticNeverMoves(t *testing.T) {
	g, a, b := pairGraph()
	locA, locB := a.Location, b.Location

	var s Static
	if s.Step(g) {
		t.Error("static layout must report settled")
	}
	s.Restart()
	if s.Step(g) {
		t.Error("static layout must stay settled after restart")
	}
	if a.Location != locA || b.Location != locB {
		t.Error("static layout must not move nodes")
	}
}
