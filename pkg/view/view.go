package view

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/ha1tch/graphcanvas/pkg/graph"
)

// View drives one graph canvas: it consumes per-frame Input, mutates
// the graph's interaction flags and the viewport, and emits Events.
// Construct with New and the With* options, then call Update once per
// frame followed by Draw.
type View struct {
	g *graph.Graph

	interaction SettingsInteraction
	navigation  SettingsNavigation
	style       SettingsStyle

	nodeShape NodeShape
	edgeShape EdgeShape

	events chan<- Event

	// panning is true while a drag that started on empty canvas is
	// in progress.
	panning bool
}

// New returns a View over g with default settings and shapes.
func New(g *graph.Graph) *View {
	return &View{
		g:           g,
		interaction: DefaultInteraction(),
		navigation:  DefaultNavigation(),
		style:       DefaultStyle(),
		nodeShape:   DefaultNodeShape{},
		edgeShape:   DefaultEdgeShape{},
	}
}

// WithInteraction replaces the interaction settings.
func (v *View) WithInteraction(s SettingsInteraction) *View {
	v.interaction = s
	return v
}

// WithNavigation replaces the navigation settings.
func (v *View) WithNavigation(s SettingsNavigation) *View {
	v.navigation = s
	return v
}

// WithStyle replaces the style settings.
func (v *View) WithStyle(s SettingsStyle) *View {
	v.style = s
	return v
}

// WithNodeShape replaces the node shape generator.
func (v *View) WithNodeShape(s NodeShape) *View {
	v.nodeShape = s
	return v
}

// WithEdgeShape replaces the edge shape generator.
func (v *View) WithEdgeShape(s EdgeShape) *View {
	v.edgeShape = s
	return v
}

// WithEvents sets the channel Update publishes events to. Sends never
// block: if the channel is full the event is dropped. A nil channel
// discards all events.
func (v *View) WithEvents(ch chan<- Event) *View {
	v.events = ch
	return v
}

// Graph returns the underlying graph.
func (v *View) Graph() *graph.Graph { return v.g }

// Update runs one frame: recomputes derived state, applies fit or
// zoom, then the drag/pan state machine, then click handling. canvas
// is the screen-space rectangle the view occupies this frame.
func (v *View) Update(vp *Viewport, in Input, canvas Rect) *ComputedState {
	state := Compute(v.g)

	if vp.FirstFrame() {
		v.fit(vp, state, canvas)
		return state
	}

	if v.navigation.FitToScreenEnabled {
		// Continuous fit owns the transform: manual zoom and drags
		// are suppressed, but releases and clicks still apply.
		v.fit(vp, state, canvas)
		v.finishDrag(in, state)
		v.handleClick(vp, in, state)
		return state
	}
	vp.Canvas = canvas

	if v.navigation.ZoomAndPanEnabled && in.ZoomDelta != 0 {
		step := v.navigation.ZoomSpeed
		if in.ZoomDelta < 0 {
			step = -step
		}
		before := vp.Zoom
		vp.ZoomAt(step, in.Pointer)
		v.emit(Zoom{Delta: vp.Zoom - before})
	}

	v.handleDrag(vp, in, state)
	v.handleClick(vp, in, state)

	return state
}

// fit recomputes zoom and pan so the graph bounds fill the canvas,
// emitting the resulting diffs.
func (v *View) fit(vp *Viewport, state *ComputedState, canvas Rect) {
	prevZoom, prevPan := vp.Zoom, vp.Pan
	vp.FitToScreen(state.Bounds(), canvas, v.navigation.ScreenPadding)
	if vp.Zoom != prevZoom {
		v.emit(Zoom{Delta: vp.Zoom - prevZoom})
	}
	if vp.Pan != prevPan {
		v.emit(Pan{Delta: r2.Sub(vp.Pan, prevPan), NewPan: vp.Pan})
	}
}

func (v *View) handleDrag(vp *Viewport, in Input, state *ComputedState) {
	if in.DragStarted {
		var hit *graph.Node
		if v.interaction.DraggingEnabled {
			hit = v.nodeAt(vp, in.Pointer)
		}
		switch {
		case hit != nil:
			hit.Dragged = true
			state.DraggedID = hit.ID
			v.emit(NodeDragStart{ID: hit.ID})
		case v.navigation.ZoomAndPanEnabled:
			v.panning = true
		}
	}

	if in.Dragging && (in.DragDelta.X != 0 || in.DragDelta.Y != 0) {
		switch {
		case state.DraggedID >= 0:
			n := v.g.Node(state.DraggedID)
			if n != nil {
				delta := r2.Scale(1/vp.Zoom, in.DragDelta)
				n.Location = r2.Add(n.Location, delta)
				v.emit(NodeMove{ID: n.ID, Delta: delta})
			}
		case v.panning:
			vp.Pan = r2.Add(vp.Pan, in.DragDelta)
			v.emit(Pan{Delta: in.DragDelta, NewPan: vp.Pan})
		}
	}

	v.finishDrag(in, state)
}

// finishDrag ends an in-progress drag on release. Runs even on frames
// where new drags are suppressed, so no node stays stuck dragged.
func (v *View) finishDrag(in Input, state *ComputedState) {
	if !in.DragReleased {
		return
	}
	if state.DraggedID >= 0 {
		if n := v.g.Node(state.DraggedID); n != nil {
			n.Dragged = false
		}
		v.emit(NodeDragEnd{ID: state.DraggedID})
		state.DraggedID = -1
	}
	v.panning = false
}

func (v *View) handleClick(vp *Viewport, in Input, state *ComputedState) {
	clickable := v.interaction.ClickingEnabled ||
		v.interaction.SelectionEnabled ||
		v.interaction.MultiSelectEnabled
	if !clickable || !in.Clicked {
		return
	}

	selection := v.interaction.SelectionEnabled || v.interaction.MultiSelectEnabled

	hit := v.nodeAt(vp, in.Pointer)
	if hit == nil {
		if selection {
			v.deselectAll(state)
		}
		return
	}

	if in.DoubleClicked {
		// A double click is reported as a click followed by the
		// double click, with no selection change.
		v.emit(NodeClick{ID: hit.ID})
		v.emit(NodeDoubleClick{ID: hit.ID})
		return
	}

	// The click always reports first; selection toggles after it.
	v.emit(NodeClick{ID: hit.ID})
	if !selection {
		return
	}

	if hit.Selected {
		hit.Selected = false
		v.emit(NodeDeselect{ID: hit.ID})
		return
	}

	if !v.interaction.MultiSelectEnabled {
		v.deselectAll(state)
	}
	hit.Selected = true
	v.emit(NodeSelect{ID: hit.ID})
}

func (v *View) deselectAll(state *ComputedState) {
	for _, id := range state.SelectedNodes {
		if n := v.g.Node(id); n != nil && n.Selected {
			n.Selected = false
			v.emit(NodeDeselect{ID: id})
		}
	}
	state.SelectedNodes = state.SelectedNodes[:0]
	for _, id := range state.SelectedEdges {
		if e := v.g.Edge(id); e != nil {
			e.Selected = false
		}
	}
	state.SelectedEdges = state.SelectedEdges[:0]
}

// nodeAt returns the node under the screen position, or nil. Later
// nodes win so overlaps resolve to the most recently added node.
func (v *View) nodeAt(vp *Viewport, screen r2.Vec) *graph.Node {
	var found *graph.Node
	for _, n := range v.g.Nodes() {
		if v.nodeShape.Contains(n, vp, v.style, screen) {
			found = n
		}
	}
	return found
}

func (v *View) emit(e Event) {
	if v.events == nil {
		return
	}
	select {
	case v.events <- e:
	default:
	}
}
