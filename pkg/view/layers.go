package view

// Layers collects the frame's shapes into a two-layer compositor:
// base for ordinary elements and top for highlighted ones. Within a
// layer edges draw before nodes, so the final order is base edges,
// base nodes, top edges, top nodes.
type Layers struct {
	baseEdges []Shape
	baseNodes []Shape
	topEdges  []Shape
	topNodes  []Shape
}

// NewLayers returns an empty compositor.
func NewLayers() *Layers { return &Layers{} }

// AddEdge appends edge shapes to the base or top layer.
func (l *Layers) AddEdge(top bool, shapes ...Shape) {
	if top {
		l.topEdges = append(l.topEdges, shapes...)
	} else {
		l.baseEdges = append(l.baseEdges, shapes...)
	}
}

// AddNode appends node shapes to the base or top layer.
func (l *Layers) AddNode(top bool, shapes ...Shape) {
	if top {
		l.topNodes = append(l.topNodes, shapes...)
	} else {
		l.baseNodes = append(l.baseNodes, shapes...)
	}
}

// Base returns the base layer shapes in draw order: edges then nodes.
func (l *Layers) Base() []Shape {
	out := make([]Shape, 0, len(l.baseEdges)+len(l.baseNodes))
	out = append(out, l.baseEdges...)
	return append(out, l.baseNodes...)
}

// Top returns the top layer shapes in draw order: edges then nodes.
func (l *Layers) Top() []Shape {
	out := make([]Shape, 0, len(l.topEdges)+len(l.topNodes))
	out = append(out, l.topEdges...)
	return append(out, l.topNodes...)
}
