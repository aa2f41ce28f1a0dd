package layout

import "github.com/ha1tch/graphcanvas/pkg/graph"

// Static leaves node positions untouched. Use it when positions come
// from the caller or from a file.
type Static struct{}

func (Static) Step(*graph.Graph) bool { return false }

func (Static) Restart() {}
