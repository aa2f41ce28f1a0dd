package graph

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// ParseEdgeList reads a plain-text edge list: one "source target" pair
// of names per line, a lone name for an isolated node, "#" starts a
// comment. Repeated pairs become parallel edges and "a a" a self loop.
// Nodes are labelled with their names and spawned at random locations
// inside the spawn square.
func ParseEdgeList(r io.Reader, directed bool) (*Graph, error) {
	g := New(directed)
	ids := make(map[string]int64)

	intern := func(name string) int64 {
		if id, ok := ids[name]; ok {
			return id
		}
		n := g.AddNodeCustom(name, func(id int64, payload any) *Node {
			return &Node{
				Payload:  payload,
				Location: r2.Vec{X: rand.Float64() * SpawnSize, Y: rand.Float64() * SpawnSize},
				Label:    name,
				Style:    DefaultNodeStyle(),
			}
		})
		ids[name] = n.ID
		return n.ID
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 0:
		case 1:
			intern(fields[0])
		case 2:
			src := intern(fields[0])
			dst := intern(fields[1])
			if _, err := g.AddEdge(src, dst, nil); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("line %d: expected 1 or 2 names, got %d", lineNo, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
