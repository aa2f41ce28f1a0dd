package view

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ha1tch/graphcanvas/pkg/graph"
)

func TestLayersDrawOrder(t *testing.T) {
	l := NewLayers()
	l.AddNode(false, Circle{Radius: 1})
	l.AddEdge(false, Line{})
	l.AddNode(true, Circle{Radius: 2})
	l.AddEdge(true, Line{Width: 9})

	base := l.Base()
	if len(base) != 2 {
		t.Fatalf("base shapes = %d, want 2", len(base))
	}
	if _, ok := base[0].(Line); !ok {
		t.Errorf("base[0] = %T, want the edge first", base[0])
	}
	if _, ok := base[1].(Circle); !ok {
		t.Errorf("base[1] = %T, want the node last", base[1])
	}

	top := l.Top()
	if len(top) != 2 {
		t.Fatalf("top shapes = %d, want 2", len(top))
	}
	if _, ok := top[0].(Line); !ok {
		t.Errorf("top[0] = %T, want the edge first", top[0])
	}
}

func TestDrawSplitsLayersBySelection(t *testing.T) {
	g := graph.New(true)
	a := g.AddNode(nil)
	a.Location = r2.Vec{X: 0, Y: 0}
	b := g.AddNode(nil)
	b.Location = r2.Vec{X: 100, Y: 0}
	c := g.AddNode(nil)
	c.Location = r2.Vec{X: 0, Y: 100}
	g.AddEdge(a.ID, b.ID, nil)
	eSel, _ := g.AddEdge(b.ID, c.ID, nil)

	b.Selected = true
	eSel.Selected = true

	v := New(g)
	vp := &Viewport{Zoom: 1, Canvas: testCanvas}
	v.Update(vp, Input{}, testCanvas)
	layers := v.Draw(vp)

	// Top layer holds the selected node and the selected edge's
	// shapes; everything else stays in the base layer.
	if len(layers.topNodes) == 0 || len(layers.topEdges) == 0 {
		t.Error("selected elements missing from the top layer")
	}
	if len(layers.baseNodes) == 0 || len(layers.baseEdges) == 0 {
		t.Error("unselected elements missing from the base layer")
	}
}

func TestDrawPromotesDraggedNodeEdges(t *testing.T) {
	g := graph.New(true)
	a := g.AddNode(nil)
	a.Location = r2.Vec{X: 0, Y: 0}
	b := g.AddNode(nil)
	b.Location = r2.Vec{X: 100, Y: 0}
	g.AddEdge(a.ID, b.ID, nil)

	a.Dragged = true

	v := New(g)
	vp := &Viewport{Zoom: 1, Canvas: testCanvas}
	v.Update(vp, Input{}, testCanvas)
	layers := v.Draw(vp)

	if len(layers.topEdges) == 0 {
		t.Error("edges incident to a dragged node must draw on top")
	}
	if len(layers.topNodes) == 0 {
		t.Error("dragged node must draw on top")
	}
}
