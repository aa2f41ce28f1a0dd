package render

import "image/color"

// Options configures an export.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions returns sensible defaults for exports.
func DefaultOptions() Options {
	return Options{
		Width:  800,
		Height: 600,
	}
}

// Colors used in rendering
var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorBase      = color.RGBA{51, 51, 51, 255}    // #333
	colorHighlight = color.RGBA{230, 81, 0, 255}    // #e65100
	colorLabel     = color.RGBA{102, 102, 102, 255} // #666
)

const (
	svgBase      = "#333"
	svgHighlight = "#e65100"
	svgLabel     = "#666"
)
