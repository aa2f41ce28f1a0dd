package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ha1tch/graphcanvas/pkg/view"
)

const doubleClickWindow = 400 * time.Millisecond

// gestures folds raw tcell mouse events into per-frame semantic input.
// Press-then-move becomes a drag; press-then-release without motion
// becomes a click, or a double click when it lands within the window.
type gestures struct {
	pointer r2.Vec

	primaryDown bool
	moved       bool
	downPos     r2.Vec

	lastClick time.Time

	pending view.Input
}

// Mouse consumes one tcell mouse event.
func (g *gestures) Mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := r2.Vec{X: float64(x), Y: float64(y)}
	g.pointer = pos

	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		g.pending.ZoomDelta++
	}
	if buttons&tcell.WheelDown != 0 {
		g.pending.ZoomDelta--
	}

	primary := buttons&tcell.Button1 != 0

	switch {
	case primary && !g.primaryDown:
		g.primaryDown = true
		g.moved = false
		g.downPos = pos

	case primary && g.primaryDown:
		delta := r2.Sub(pos, g.downPos)
		if !g.moved && (delta.X != 0 || delta.Y != 0) {
			g.moved = true
			g.pending.DragStarted = true
		}
		if g.moved {
			g.pending.Dragging = true
			g.pending.DragDelta = r2.Add(g.pending.DragDelta, r2.Sub(pos, g.downPos))
			g.downPos = pos
		}

	case !primary && g.primaryDown:
		g.primaryDown = false
		if g.moved {
			g.pending.DragReleased = true
		} else {
			now := time.Now()
			g.pending.Clicked = true
			if now.Sub(g.lastClick) < doubleClickWindow {
				g.pending.DoubleClicked = true
				g.lastClick = time.Time{} // no triple click
			} else {
				g.lastClick = now
			}
		}
	}
}

// Take returns the accumulated input and resets for the next frame.
func (g *gestures) Take() view.Input {
	in := g.pending
	in.Pointer = g.pointer
	in.Dragging = in.Dragging || (g.primaryDown && g.moved)
	g.pending = view.Input{}
	return in
}
