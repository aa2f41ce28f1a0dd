package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/multi"
)

func TestFromMultigraphDirected(t *testing.T) {
	src := multi.NewDirectedGraph()
	a := src.NewNode()
	src.AddNode(a)
	b := src.NewNode()
	src.AddNode(b)
	c := src.NewNode()
	src.AddNode(c)

	src.SetLine(src.NewLine(a, b))
	src.SetLine(src.NewLine(a, b))
	src.SetLine(src.NewLine(b, c))

	g := FromMultigraph(src)

	assert.True(t, g.Directed())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	var ab []*Edge
	for _, e := range g.Edges() {
		if g.Node(e.Source).Payload.(interface{ ID() int64 }).ID() == a.ID() &&
			g.Node(e.Target).Payload.(interface{ ID() int64 }).ID() == b.ID() {
			ab = append(ab, e)
		}
	}
	require.Len(t, ab, 2)
	assert.Equal(t, 0, ab[0].Order)
	assert.Equal(t, 1, ab[1].Order)
	assert.Equal(t, 2, g.Siblings(ab[0]))
}

func TestFromMultigraphUndirected(t *testing.T) {
	src := multi.NewUndirectedGraph()
	a := src.NewNode()
	src.AddNode(a)
	b := src.NewNode()
	src.AddNode(b)

	src.SetLine(src.NewLine(a, b))
	src.SetLine(src.NewLine(b, a))

	g := FromMultigraph(src)

	assert.False(t, g.Directed())
	assert.Equal(t, 2, g.NodeCount())
	// Each unordered pair is visited once, so both lines import
	// exactly once.
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.Siblings(g.Edges()[0]))
}

func TestFromMultigraphCustomTransforms(t *testing.T) {
	src := multi.NewDirectedGraph()
	a := src.NewNode()
	src.AddNode(a)
	b := src.NewNode()
	src.AddNode(b)
	src.SetLine(src.NewLine(a, b))

	g := FromMultigraphCustom(src,
		func(id int64, payload any) *Node {
			return &Node{Label: "n", Style: DefaultNodeStyle()}
		},
		func(id int64, payload any, order int) *Edge {
			s := DefaultEdgeStyle()
			s.Width = 7
			return &Edge{Style: s, Order: order}
		},
	)

	require.Equal(t, 2, g.NodeCount())
	assert.Equal(t, "n", g.Nodes()[0].Label)
	assert.Equal(t, 7.0, g.Edges()[0].Style.Width)
}
