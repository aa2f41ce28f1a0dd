package graph

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for store operations.
var (
	ErrNodeNotFound = errors.New("graph: node not found")
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// NodeStyle holds the visual parameters of a node.
type NodeStyle struct {
	Radius float64 // base radius in canvas units, before connection weighting
}

// DefaultNodeStyle returns the standard node style.
func DefaultNodeStyle() NodeStyle {
	return NodeStyle{Radius: 5}
}

// EdgeStyle holds the visual parameters of an edge.
type EdgeStyle struct {
	Width     float64 // stroke width
	CurveSize float64 // perpendicular control-point offset per parallel-edge rank
	TipSize   float64 // arrowhead segment length
	TipAngle  float64 // arrowhead half-angle in radians
}

// DefaultEdgeStyle returns the standard edge style.
func DefaultEdgeStyle() EdgeStyle {
	return EdgeStyle{
		Width:     2,
		CurveSize: 20,
		TipSize:   15,
		TipAngle:  math.Pi / 6,
	}
}

// Node is a graph vertex with display state.
type Node struct {
	ID       int64
	Payload  any
	Location r2.Vec // canvas space
	Label    string
	Style    NodeStyle

	Selected bool
	Dragged  bool

	// Connections is the number of incident edges. It is derived state,
	// recomputed every frame by the computed-state builder.
	Connections int
}

// ScreenRadius returns the node's on-screen radius for the given zoom,
// inflated by the number of connections.
func (n *Node) ScreenRadius(zoom, perConnWeight float64) float64 {
	return (n.Style.Radius + float64(n.Connections)*perConnWeight) * zoom
}

// Edge is a graph edge with display state.
type Edge struct {
	ID      int64
	Source  int64
	Target  int64
	Payload any
	Style   EdgeStyle

	// Order is this edge's rank among parallel edges sharing the same
	// unordered endpoint pair. It is assigned once when the edge is
	// created and never recomputed from iteration order.
	Order int

	Selected bool
}

// SelfLoop reports whether both endpoints are the same node.
func (e *Edge) SelfLoop() bool {
	return e.Source == e.Target
}

type pairKey struct {
	a, b int64 // a <= b
}

func pair(u, v int64) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{u, v}
}

// Graph is the authoritative store of nodes and edges.
type Graph struct {
	directed bool

	nodes     map[int64]*Node
	nodeOrder []int64
	edges     map[int64]*Edge
	edgeOrder []int64

	// buckets tracks edge IDs per unordered endpoint pair, in creation
	// order. Bucket length at insert time yields the new edge's Order.
	buckets map[pairKey][]int64

	nextNodeID int64
	nextEdgeID int64
}

// New creates an empty graph.
func New(directed bool) *Graph {
	return &Graph{
		directed: directed,
		nodes:    make(map[int64]*Node),
		edges:    make(map[int64]*Edge),
		buckets:  make(map[pairKey][]int64),
	}
}

// Directed reports whether edges are interpreted as ordered pairs.
func (g *Graph) Directed() bool { return g.directed }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddNode adds a node built with the default transform: random spawn
// location and a label equal to the stringified index.
func (g *Graph) AddNode(payload any) *Node {
	return g.AddNodeCustom(payload, DefaultNodeTransform)
}

// AddNodeCustom adds a node built with a caller-supplied transform.
func (g *Graph) AddNodeCustom(payload any, tf NodeTransform) *Node {
	id := g.nextNodeID
	g.nextNodeID++

	n := tf(id, payload)
	n.ID = id
	g.nodes[id] = n
	g.nodeOrder = append(g.nodeOrder, id)
	return n
}

// AddEdge adds an edge built with the default transform. The edge's
// order index is the current count of edges sharing the same unordered
// endpoint pair.
func (g *Graph) AddEdge(source, target int64, payload any) (*Edge, error) {
	return g.AddEdgeCustom(source, target, payload, DefaultEdgeTransform)
}

// AddEdgeCustom adds an edge built with a caller-supplied transform.
func (g *Graph) AddEdgeCustom(source, target int64, payload any, tf EdgeTransform) (*Edge, error) {
	if g.nodes[source] == nil || g.nodes[target] == nil {
		return nil, ErrNodeNotFound
	}

	id := g.nextEdgeID
	g.nextEdgeID++

	key := pair(source, target)
	e := tf(id, payload, len(g.buckets[key]))
	e.ID = id
	e.Source = source
	e.Target = target

	g.edges[id] = e
	g.edgeOrder = append(g.edgeOrder, id)
	g.buckets[key] = append(g.buckets[key], id)
	return e, nil
}

// Node returns the node with the given ID, or nil if it does not exist.
func (g *Graph) Node(id int64) *Node { return g.nodes[id] }

// Edge returns the edge with the given ID, or nil if it does not exist.
func (g *Graph) Edge(id int64) *Edge { return g.edges[id] }

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

// Siblings returns the number of edges sharing e's unordered endpoint
// pair, including e itself.
func (g *Graph) Siblings(e *Edge) int {
	return len(g.buckets[pair(e.Source, e.Target)])
}

// RemoveEdge deletes an edge and re-ranks the remaining edges in its
// endpoint-pair bucket so order indices stay dense, preserving their
// relative order.
func (g *Graph) RemoveEdge(id int64) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	g.detachEdge(e)
	key := pair(e.Source, e.Target)
	for i, sid := range g.buckets[key] {
		g.edges[sid].Order = i
	}
	return nil
}

// RemoveNode deletes a node and all edges incident to it.
func (g *Graph) RemoveNode(id int64) error {
	if g.nodes[id] == nil {
		return ErrNodeNotFound
	}
	var incident []int64
	for _, eid := range g.edgeOrder {
		if e := g.edges[eid]; e.Source == id || e.Target == id {
			incident = append(incident, eid)
		}
	}
	for _, eid := range incident {
		_ = g.RemoveEdge(eid)
	}
	delete(g.nodes, id)
	g.nodeOrder = removeID(g.nodeOrder, id)
	return nil
}

// DetachSelfLoops removes every self-loop edge from the store and
// returns them, unchanged. Used to hide self-loops from the force
// solver; restore them afterwards with Reattach.
func (g *Graph) DetachSelfLoops() []*Edge {
	var loops []*Edge
	for _, id := range g.edgeOrder {
		if e := g.edges[id]; e != nil && e.SelfLoop() {
			loops = append(loops, e)
		}
	}
	for _, e := range loops {
		g.detachEdge(e)
	}
	return loops
}

// Reattach restores edges previously removed by DetachSelfLoops. IDs,
// endpoints and order indices are kept exactly as they were.
func (g *Graph) Reattach(edges []*Edge) {
	for _, e := range edges {
		g.edges[e.ID] = e
		g.edgeOrder = append(g.edgeOrder, e.ID)
		key := pair(e.Source, e.Target)
		g.buckets[key] = append(g.buckets[key], e.ID)
	}
}

// detachEdge removes e from the maps and bucket without re-ranking.
func (g *Graph) detachEdge(e *Edge) {
	delete(g.edges, e.ID)
	g.edgeOrder = removeID(g.edgeOrder, e.ID)
	key := pair(e.Source, e.Target)
	g.buckets[key] = removeID(g.buckets[key], e.ID)
	if len(g.buckets[key]) == 0 {
		delete(g.buckets, key)
	}
}

func removeID(ids []int64, id int64) []int64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
