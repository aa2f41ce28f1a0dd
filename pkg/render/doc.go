// Package render rasterises a frame's shape layers to PNG or SVG.
// Both backends draw the base layer first and the top layer over it,
// so highlighted elements stay visible.
package render
