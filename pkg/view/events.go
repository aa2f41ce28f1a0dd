package view

import "gonum.org/v1/gonum/spatial/r2"

// Event is a notification of a state change produced during Update.
// Events report changes the view has already applied; consumers react
// to them, they do not confirm them. The set of event types is closed.
type Event interface {
	event()
}

// Pan reports a viewport pan. Delta is the screen-space offset applied
// this frame and NewPan the resulting absolute pan.
type Pan struct {
	Delta  r2.Vec
	NewPan r2.Vec
}

// Zoom reports a zoom change. Delta is the difference between the new
// and the previous zoom factor.
type Zoom struct {
	Delta float64
}

// NodeMove reports a node dragged by Delta in canvas space.
type NodeMove struct {
	ID    int64
	Delta r2.Vec
}

// NodeDragStart reports the start of a node drag.
type NodeDragStart struct {
	ID int64
}

// NodeDragEnd reports the end of a node drag.
type NodeDragEnd struct {
	ID int64
}

// NodeSelect reports a node becoming selected.
type NodeSelect struct {
	ID int64
}

// NodeDeselect reports a node losing selection.
type NodeDeselect struct {
	ID int64
}

// NodeClick reports a click on a node.
type NodeClick struct {
	ID int64
}

// NodeDoubleClick reports a double click on a node. It is always
// preceded by a NodeClick for the same press.
type NodeDoubleClick struct {
	ID int64
}

func (Pan) event()             {}
func (Zoom) event()            {}
func (NodeMove) event()        {}
func (NodeDragStart) event()   {}
func (NodeDragEnd) event()     {}
func (NodeSelect) event()      {}
func (NodeDeselect) event()    {}
func (NodeClick) event()       {}
func (NodeDoubleClick) event() {}
