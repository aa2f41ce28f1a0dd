package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/ha1tch/graphcanvas/pkg/view"
)

// WriteSVG renders the layers to SVG.
func WriteSVG(layers *view.Layers, w io.Writer, opts Options) error {
	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:white")

	for _, s := range layers.Base() {
		svgShape(canvas, s, svgBase)
	}
	for _, s := range layers.Top() {
		svgShape(canvas, s, svgHighlight)
	}

	canvas.End()
	return nil
}

func svgShape(canvas *svg.SVG, s view.Shape, color string) {
	switch sh := s.(type) {
	case view.Circle:
		if sh.Filled {
			canvas.Circle(int(sh.Center.X), int(sh.Center.Y), int(sh.Radius),
				fmt.Sprintf("fill:%s", color))
		} else {
			canvas.Circle(int(sh.Center.X), int(sh.Center.Y), int(sh.Radius),
				strokeStyle(color, sh.Width))
		}
	case view.Line:
		canvas.Line(int(sh.A.X), int(sh.A.Y), int(sh.B.X), int(sh.B.Y),
			strokeStyle(color, sh.Width))
	case view.QuadCurve:
		canvas.Qbez(int(sh.Start.X), int(sh.Start.Y),
			int(sh.Control.X), int(sh.Control.Y),
			int(sh.End.X), int(sh.End.Y),
			strokeStyle(color, sh.Width))
	case view.CubicCurve:
		canvas.Bezier(int(sh.Start.X), int(sh.Start.Y),
			int(sh.Control1.X), int(sh.Control1.Y),
			int(sh.Control2.X), int(sh.Control2.Y),
			int(sh.End.X), int(sh.End.Y),
			strokeStyle(color, sh.Width))
	case view.Label:
		canvas.Text(int(sh.Pos.X), int(sh.Pos.Y), sh.Text,
			fmt.Sprintf("fill:%s;font-size:%dpx;text-anchor:middle;font-family:sans-serif", svgLabel, int(sh.Size)+8))
	}
}

func strokeStyle(color string, width float64) string {
	if width <= 0 {
		width = 1
	}
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.1f", color, width)
}
