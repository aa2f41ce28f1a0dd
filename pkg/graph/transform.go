package graph

import (
	"math/rand"
	"sort"
	"strconv"

	ggraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/spatial/r2"
)

// SpawnSize is the side of the square in which default node locations
// are spawned.
const SpawnSize = 250.0

// NodeTransform builds a Node from a payload. The returned node's ID
// field is overwritten by the store.
type NodeTransform func(id int64, payload any) *Node

// EdgeTransform builds an Edge from a payload and its order index among
// parallel siblings. ID and endpoints are overwritten by the store.
type EdgeTransform func(id int64, payload any, order int) *Edge

// DefaultNodeTransform keeps the payload and spawns the node at a
// uniform-random location inside the spawn square, labelled with its
// index.
func DefaultNodeTransform(id int64, payload any) *Node {
	return &Node{
		Payload:  payload,
		Location: r2.Vec{X: rand.Float64() * SpawnSize, Y: rand.Float64() * SpawnSize},
		Label:    strconv.FormatInt(id, 10),
		Style:    DefaultNodeStyle(),
	}
}

// DefaultEdgeTransform keeps the payload and applies the default style.
func DefaultEdgeTransform(id int64, payload any, order int) *Edge {
	return &Edge{
		Payload: payload,
		Style:   DefaultEdgeStyle(),
		Order:   order,
	}
}

// FromMultigraph converts an existing gonum multigraph into a
// renderable Graph using the default node and edge transforms. The
// source graph's nodes become node payloads and its lines become edge
// payloads; directedness is taken from the source type.
func FromMultigraph(src ggraph.Multigraph) *Graph {
	return FromMultigraphCustom(src, DefaultNodeTransform, DefaultEdgeTransform)
}

// FromMultigraphCustom is FromMultigraph with caller-supplied
// transforms, e.g. for deterministic initial placement or custom
// labels.
func FromMultigraphCustom(src ggraph.Multigraph, nt NodeTransform, et EdgeTransform) *Graph {
	_, directed := src.(ggraph.DirectedMultigraph)
	g := New(directed)

	var ids []int64
	for it := src.Nodes(); it.Next(); {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	mapping := make(map[int64]int64, len(ids))
	for _, id := range ids {
		n := g.AddNodeCustom(src.Node(id), nt)
		mapping[id] = n.ID
	}

	type lineRec struct {
		id   int64
		u, v int64
		line ggraph.Line
	}
	var lines []lineRec
	for _, u := range ids {
		for it := src.From(u); it.Next(); {
			v := it.Node().ID()
			if !directed && v < u {
				continue // visit each unordered pair once
			}
			for ls := src.Lines(u, v); ls.Next(); {
				l := ls.Line()
				lines = append(lines, lineRec{id: l.ID(), u: u, v: v, line: l})
			}
		}
	}
	// Line IDs reflect creation order in the source graph; sorting by
	// them keeps order indices stable across conversions.
	sort.Slice(lines, func(i, j int) bool { return lines[i].id < lines[j].id })

	for _, lr := range lines {
		_, _ = g.AddEdgeCustom(mapping[lr.u], mapping[lr.v], lr.line, et)
	}
	return g
}
