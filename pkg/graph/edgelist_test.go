package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEdgeList(t *testing.T) {
	input := `
# a small machine
a b
a b  # parallel
b c
c c
lonely
`
	g, err := ParseEdgeList(strings.NewReader(input), true)
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	labels := make(map[string]bool)
	for _, n := range g.Nodes() {
		labels[n.Label] = true
	}
	assert.True(t, labels["a"] && labels["b"] && labels["c"] && labels["lonely"])

	var parallel, loops int
	for _, e := range g.Edges() {
		if e.SelfLoop() {
			loops++
		}
		if e.Order > 0 {
			parallel++
		}
	}
	assert.Equal(t, 1, loops)
	assert.Equal(t, 1, parallel)
}

func TestParseEdgeListBadLine(t *testing.T) {
	_, err := ParseEdgeList(strings.NewReader("a b c\n"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseEdgeListEmpty(t *testing.T) {
	g, err := ParseEdgeList(strings.NewReader(""), false)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.False(t, g.Directed())
}
