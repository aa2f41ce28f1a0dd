// Package view implements the interactive graph canvas: the zoom/pan
// viewport, the per-frame computed state, the pointer interaction
// state machine, the edge/node geometry engine and the layer
// compositor.
//
// The package is host-agnostic. A host translates its pointer and
// gesture events into an Input, calls View.Update once per frame, then
// View.Draw to obtain ordered screen-space shapes it can paint with
// whatever primitives it has. One update-then-draw pass runs per
// redraw tick with no internal parallelism.
package view
