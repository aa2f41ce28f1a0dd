package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rect is an axis-aligned rectangle, used both for canvas-space bounds
// and for the screen-space draw area.
type Rect struct {
	Min, Max r2.Vec
}

// NewRect builds a rectangle from two corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: r2.Vec{X: x0, Y: y0}, Max: r2.Vec{X: x1, Y: y1}}
}

// Size returns the rectangle's width and height as a vector.
func (r Rect) Size() r2.Vec { return r2.Sub(r.Max, r.Min) }

// Center returns the rectangle's midpoint.
func (r Rect) Center() r2.Vec { return r2.Scale(0.5, r2.Add(r.Min, r.Max)) }

// Viewport is the zoom+pan transform mapping canvas space to screen
// space. It is session state: created once per hosting surface, passed
// by reference into each frame's update, and persisted between frames.
type Viewport struct {
	Zoom float64 // always > 0
	Pan  r2.Vec  // screen-space offset

	// Canvas is the current frame's screen-space draw area, refreshed
	// by View.Update.
	Canvas Rect

	firstFrame bool
}

// NewViewport returns a viewport with default zoom and pan. The first
// update through it triggers a fit-to-screen.
func NewViewport() *Viewport {
	return &Viewport{Zoom: 1, firstFrame: true}
}

// Reset restores defaults, including the first-frame fit.
func (v *Viewport) Reset() {
	*v = Viewport{Zoom: 1, firstFrame: true}
}

// FirstFrame reports whether no frame has been processed yet.
func (v *Viewport) FirstFrame() bool { return v.firstFrame }

// ScreenToCanvas converts a screen-space point to canvas space.
func (v *Viewport) ScreenToCanvas(p r2.Vec) r2.Vec {
	return r2.Scale(1/v.Zoom, r2.Sub(p, v.Pan))
}

// CanvasToScreen converts a canvas-space point to screen space.
func (v *Viewport) CanvasToScreen(p r2.Vec) r2.Vec {
	return r2.Add(r2.Scale(v.Zoom, p), v.Pan)
}

// ZoomAt applies a relative zoom delta anchored at a screen point: the
// canvas point under the anchor stays at the same screen position.
func (v *Viewport) ZoomAt(delta float64, anchor r2.Vec) {
	graphAnchor := v.ScreenToCanvas(anchor)
	v.Zoom *= 1 + delta
	v.Pan = r2.Sub(anchor, r2.Scale(v.Zoom, graphAnchor))
}

// FitToScreen chooses zoom and pan so bounds is fully visible inside
// canvas with the given padding fraction. Idempotent for unchanged
// inputs.
func (v *Viewport) FitToScreen(bounds Rect, canvas Rect, padding float64) {
	diag := bounds.Size()
	// A graph with zero or one node has no extent; substitute a default
	// diagonal so the zoom stays finite.
	if diag.X == 0 && diag.Y == 0 {
		diag = r2.Vec{X: 1, Y: 100}
	}

	size := r2.Scale(1+padding, diag)
	cs := canvas.Size()
	v.Zoom = math.Min(cs.X/size.X, cs.Y/size.Y)
	v.Pan = r2.Sub(canvas.Center(), r2.Scale(v.Zoom, bounds.Center()))
	v.Canvas = canvas
	v.firstFrame = false
}
