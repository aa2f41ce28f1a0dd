package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ha1tch/graphcanvas/pkg/graph"
)

// DefaultNodeShape draws a node as a filled disc with its label
// underneath.
type DefaultNodeShape struct{}

func (DefaultNodeShape) Shapes(n *graph.Node, vp *Viewport, style SettingsStyle) []Shape {
	center := vp.CanvasToScreen(n.Location)
	radius := n.ScreenRadius(vp.Zoom, style.EdgeRadiusWeight)

	shapes := []Shape{Circle{
		Center: center,
		Radius: radius,
		Filled: true,
	}}
	if n.Label != "" && (style.LabelsAlways || n.Selected || n.Dragged) {
		shapes = append(shapes, Label{
			Pos:  r2.Vec{X: center.X, Y: center.Y - radius*2},
			Text: n.Label,
			Size: radius,
		})
	}
	return shapes
}

// Contains uses the drawn disc, boundary inclusive.
func (DefaultNodeShape) Contains(n *graph.Node, vp *Viewport, style SettingsStyle, screen r2.Vec) bool {
	center := vp.CanvasToScreen(n.Location)
	radius := n.ScreenRadius(vp.Zoom, style.EdgeRadiusWeight)
	return r2.Norm(r2.Sub(screen, center)) <= radius
}

// DefaultEdgeShape draws an edge as a straight line, fanning parallel
// edges out into quadratic curves by their order and rendering self
// loops as cubic curves above the node. Directed graphs get an
// arrowhead at the target.
type DefaultEdgeShape struct{}

func (DefaultEdgeShape) Shapes(e *graph.Edge, src, dst *graph.Node, siblings int, directed bool, vp *Viewport, style SettingsStyle) []Shape {
	width := e.Style.Width * vp.Zoom

	if e.SelfLoop() {
		return selfLoopShapes(e, src, vp, style, width)
	}

	srcCenter := vp.CanvasToScreen(src.Location)
	dstCenter := vp.CanvasToScreen(dst.Location)
	srcRadius := src.ScreenRadius(vp.Zoom, style.EdgeRadiusWeight)
	dstRadius := dst.ScreenRadius(vp.Zoom, style.EdgeRadiusWeight)

	dist := r2.Norm(r2.Sub(dstCenter, srcCenter))
	if dist == 0 || !finite(srcCenter) || !finite(dstCenter) {
		return nil
	}
	dir := r2.Scale(1/dist, r2.Sub(dstCenter, srcCenter))

	start := r2.Add(srcCenter, r2.Scale(srcRadius, dir))
	tip := r2.Sub(dstCenter, r2.Scale(dstRadius, dir))

	if siblings <= 1 && e.Order == 0 {
		return straightShapes(e, start, tip, dir, directed, width)
	}
	return curvedShapes(e, start, tip, dir, directed, width)
}

func straightShapes(e *graph.Edge, start, tip, dir r2.Vec, directed bool, width float64) []Shape {
	if !directed {
		return []Shape{Line{A: start, B: tip, Width: width}}
	}
	end := r2.Sub(tip, r2.Scale(e.Style.TipSize, dir))
	shapes := []Shape{Line{A: start, B: end, Width: width}}
	return append(shapes, arrowhead(tip, dir, e.Style, width)...)
}

func curvedShapes(e *graph.Edge, start, tip, dir r2.Vec, directed bool, width float64) []Shape {
	mid := r2.Scale(0.5, r2.Add(start, tip))
	perp := r2.Vec{X: -dir.Y, Y: dir.X}
	control := r2.Add(mid, r2.Scale(e.Style.CurveSize*float64(e.Order+1), perp))

	end := tip
	if directed {
		// Pull the curve back along the tangent so the arrowhead
		// sits on the node boundary.
		tangent := r2.Sub(tip, control)
		tlen := r2.Norm(tangent)
		if tlen == 0 {
			return nil
		}
		tdir := r2.Scale(1/tlen, tangent)
		end = r2.Sub(tip, r2.Scale(e.Style.TipSize, tdir))
		shapes := []Shape{QuadCurve{Start: start, Control: control, End: end, Width: width}}
		return append(shapes, arrowhead(tip, tdir, e.Style, width)...)
	}
	return []Shape{QuadCurve{Start: start, Control: control, End: end, Width: width}}
}

func selfLoopShapes(e *graph.Edge, n *graph.Node, vp *Viewport, style SettingsStyle, width float64) []Shape {
	center := vp.CanvasToScreen(n.Location)
	if !finite(center) {
		return nil
	}
	radius := n.ScreenRadius(vp.Zoom, style.EdgeRadiusWeight)

	// Stacked loops grow outwards with their order.
	size := radius * 4 * (1 + 0.3*float64(e.Order))
	anchor := r2.Vec{X: center.X, Y: center.Y - radius}
	return []Shape{CubicCurve{
		Start:    anchor,
		Control1: r2.Vec{X: center.X + size, Y: center.Y - size},
		Control2: r2.Vec{X: center.X - size, Y: center.Y - size},
		End:      anchor,
		Width:    width,
	}}
}

// arrowhead returns the two strokes of an arrow whose point is at tip
// and whose shaft direction is dir.
func arrowhead(tip, dir r2.Vec, style graph.EdgeStyle, width float64) []Shape {
	back := r2.Scale(-style.TipSize, dir)
	left := rotate(back, style.TipAngle)
	right := rotate(back, -style.TipAngle)
	return []Shape{
		Line{A: tip, B: r2.Add(tip, left), Width: width},
		Line{A: tip, B: r2.Add(tip, right), Width: width},
	}
}

func rotate(v r2.Vec, angle float64) r2.Vec {
	sin, cos := math.Sincos(angle)
	return r2.Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
