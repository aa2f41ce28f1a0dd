package view

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScreenCanvasRoundTrip(t *testing.T) {
	vp := NewViewport()
	vp.Zoom = 2.5
	vp.Pan = r2.Vec{X: 40, Y: -12}

	p := r2.Vec{X: 17, Y: 33}
	back := vp.CanvasToScreen(vp.ScreenToCanvas(p))
	if !almost(back.X, p.X) || !almost(back.Y, p.Y) {
		t.Errorf("round trip moved point: got (%v, %v), want (%v, %v)", back.X, back.Y, p.X, p.Y)
	}
}

func TestZoomAtKeepsAnchorFixed(t *testing.T) {
	vp := NewViewport()
	vp.Zoom = 1.5
	vp.Pan = r2.Vec{X: 10, Y: 20}

	anchor := r2.Vec{X: 100, Y: 80}
	before := vp.ScreenToCanvas(anchor)

	vp.ZoomAt(0.1, anchor)

	after := vp.ScreenToCanvas(anchor)
	if !almost(before.X, after.X) || !almost(before.Y, after.Y) {
		t.Errorf("anchor drifted: before (%v, %v), after (%v, %v)", before.X, before.Y, after.X, after.Y)
	}
	if !almost(vp.Zoom, 1.5*1.1) {
		t.Errorf("zoom = %v, want %v", vp.Zoom, 1.5*1.1)
	}
}

func TestZoomAtNegativeDelta(t *testing.T) {
	vp := NewViewport()
	vp.ZoomAt(-0.1, r2.Vec{X: 50, Y: 50})
	if !almost(vp.Zoom, 0.9) {
		t.Errorf("zoom = %v, want 0.9", vp.Zoom)
	}
}

func TestFitToScreenCentersBounds(t *testing.T) {
	vp := NewViewport()
	bounds := NewRect(0, 0, 100, 50)
	canvas := NewRect(0, 0, 800, 600)

	vp.FitToScreen(bounds, canvas, 0.3)

	// The bounds centre must land on the canvas centre.
	screen := vp.CanvasToScreen(bounds.Center())
	if !almost(screen.X, 400) || !almost(screen.Y, 300) {
		t.Errorf("bounds centre at (%v, %v), want (400, 300)", screen.X, screen.Y)
	}

	// Padded size must fill the limiting axis.
	wantZoom := math.Min(800/(100*1.3), 600/(50*1.3))
	if !almost(vp.Zoom, wantZoom) {
		t.Errorf("zoom = %v, want %v", vp.Zoom, wantZoom)
	}
}

func TestFitToScreenSingleNode(t *testing.T) {
	vp := NewViewport()
	bounds := Rect{Min: r2.Vec{X: 5, Y: 5}, Max: r2.Vec{X: 5, Y: 5}}
	canvas := NewRect(0, 0, 800, 600)

	vp.FitToScreen(bounds, canvas, 0.3)

	if math.IsInf(vp.Zoom, 0) || math.IsNaN(vp.Zoom) || vp.Zoom <= 0 {
		t.Fatalf("degenerate bounds produced zoom %v", vp.Zoom)
	}
	screen := vp.CanvasToScreen(r2.Vec{X: 5, Y: 5})
	if !almost(screen.X, 400) || !almost(screen.Y, 300) {
		t.Errorf("single node at (%v, %v), want canvas centre", screen.X, screen.Y)
	}
}

func TestFitToScreenIdempotent(t *testing.T) {
	vp := NewViewport()
	bounds := NewRect(-20, -10, 60, 90)
	canvas := NewRect(0, 0, 640, 480)

	vp.FitToScreen(bounds, canvas, 0.3)
	z, p := vp.Zoom, vp.Pan
	vp.FitToScreen(bounds, canvas, 0.3)

	if !almost(vp.Zoom, z) || !almost(vp.Pan.X, p.X) || !almost(vp.Pan.Y, p.Y) {
		t.Errorf("second fit changed transform: zoom %v->%v pan (%v,%v)->(%v,%v)",
			z, vp.Zoom, p.X, p.Y, vp.Pan.X, vp.Pan.Y)
	}
}

func TestFirstFrame(t *testing.T) {
	vp := NewViewport()
	if !vp.FirstFrame() {
		t.Fatal("new viewport must report first frame")
	}
	vp.FitToScreen(NewRect(0, 0, 10, 10), NewRect(0, 0, 100, 100), 0)
	if vp.FirstFrame() {
		t.Error("fit must clear the first-frame flag")
	}

	vp.Reset()
	if !vp.FirstFrame() {
		t.Error("reset must restore the first-frame flag")
	}
	if vp.Zoom != 1 || vp.Pan.X != 0 || vp.Pan.Y != 0 {
		t.Errorf("reset left zoom %v pan (%v, %v)", vp.Zoom, vp.Pan.X, vp.Pan.Y)
	}
}
