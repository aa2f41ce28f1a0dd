// Package graph holds the renderable multigraph: nodes with canvas-space
// locations and display flags, edges with stable parallel-edge order
// indices, and helpers for building the graph from an existing gonum
// multigraph.
//
// The graph is the single source of truth for selection and drag state.
// It is not safe for concurrent mutation; the expected model is one
// update-then-draw pass per frame with exclusive access for its duration.
package graph
