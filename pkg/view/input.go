package view

import "gonum.org/v1/gonum/spatial/r2"

// Input is one frame's worth of pointer state, already reduced to
// semantic gestures by the host. The view never talks to a windowing
// system; it reads this struct.
//
// A frame may combine flags: the frame that starts a drag can carry
// DragStarted, Dragging and the first DragDelta together, and a
// double click carries both Clicked and DoubleClicked.
type Input struct {
	// Pointer is the cursor position in screen space.
	Pointer r2.Vec

	// ZoomDelta is the scroll direction this frame: positive to
	// zoom in, negative to zoom out, zero for none. Only the sign
	// is used; the step size comes from SettingsNavigation.
	ZoomDelta float64

	// DragStarted is set on the first frame of a press-and-move
	// gesture.
	DragStarted bool

	// Dragging is set on every frame the gesture is in progress,
	// including the DragStarted frame.
	Dragging bool

	// DragDelta is the screen-space pointer motion this frame
	// while Dragging.
	DragDelta r2.Vec

	// DragReleased is set on the frame the gesture ends.
	DragReleased bool

	// Clicked is set on a press-and-release without motion.
	Clicked bool

	// DoubleClicked is set when a second click lands within the
	// host's double-click window. The same frame also sets Clicked.
	DoubleClicked bool
}
