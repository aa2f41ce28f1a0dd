package view

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ha1tch/graphcanvas/pkg/graph"
)

// Shape is one screen-space drawing primitive. Backends switch on the
// concrete type; the set of shapes is closed.
type Shape interface {
	shape()
}

// Circle is a circle outline, or a filled disc when Filled is set.
type Circle struct {
	Center r2.Vec
	Radius float64
	Width  float64
	Filled bool
}

// Line is a straight segment.
type Line struct {
	A, B  r2.Vec
	Width float64
}

// QuadCurve is a quadratic bezier.
type QuadCurve struct {
	Start, Control, End r2.Vec
	Width               float64
}

// CubicCurve is a cubic bezier.
type CubicCurve struct {
	Start, Control1, Control2, End r2.Vec
	Width                          float64
}

// Label is text centered at Pos.
type Label struct {
	Pos  r2.Vec
	Text string
	Size float64
}

func (Circle) shape()     {}
func (Line) shape()       {}
func (QuadCurve) shape()  {}
func (CubicCurve) shape() {}
func (Label) shape()      {}

// NodeShape turns a node into screen-space shapes.
type NodeShape interface {
	// Shapes returns the primitives for n. selected distinguishes
	// the highlighted variant; backends pick colors per layer.
	Shapes(n *graph.Node, vp *Viewport, style SettingsStyle) []Shape

	// Contains reports whether the screen position hits the node.
	Contains(n *graph.Node, vp *Viewport, style SettingsStyle, screen r2.Vec) bool
}

// EdgeShape turns an edge into screen-space shapes. siblings is the
// number of edges sharing the same unordered endpoint pair, used to
// decide between a straight line and a fanned-out curve.
type EdgeShape interface {
	Shapes(e *graph.Edge, src, dst *graph.Node, siblings int, directed bool, vp *Viewport, style SettingsStyle) []Shape
}
