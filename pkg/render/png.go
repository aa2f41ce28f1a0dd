// Native PNG rendering for graph frames.
// Mirrors the SVG renderer output using Go's image packages.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/graphcanvas/pkg/view"
)

// rasterContext holds rendering parameters including scale
type rasterContext struct {
	img   *image.RGBA
	scale float64 // multiplier applied to every coordinate and width
	face  font.Face
}

func newRasterContext(img *image.RGBA, scale int) *rasterContext {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err) // should never happen with embedded font
	}

	// Base size 14pt, scaled by render scale; no hinting, the
	// downsample smooths instead.
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(14 * scale),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		panic(err)
	}

	return &rasterContext{
		img:   img,
		scale: float64(scale),
		face:  face,
	}
}

// WritePNG renders the layers to PNG.
// Uses 4x supersampling for smoother output.
func WritePNG(layers *view.Layers, w io.Writer, opts Options) error {
	scale := 4
	largeImg := image.NewRGBA(image.Rect(0, 0, opts.Width*scale, opts.Height*scale))
	ctx := newRasterContext(largeImg, scale)

	for y := 0; y < opts.Height*scale; y++ {
		for x := 0; x < opts.Width*scale; x++ {
			largeImg.Set(x, y, colorWhite)
		}
	}

	for _, s := range layers.Base() {
		drawShape(ctx, s, colorBase)
	}
	for _, s := range layers.Top() {
		drawShape(ctx, s, colorHighlight)
	}

	finalImg := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(finalImg, finalImg.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)

	return png.Encode(w, finalImg)
}

func drawShape(ctx *rasterContext, s view.Shape, c color.Color) {
	k := ctx.scale
	switch sh := s.(type) {
	case view.Circle:
		drawCircle(ctx, sh.Center.X*k, sh.Center.Y*k, sh.Radius*k, sh.Filled, widthOf(sh.Width, k), c)
	case view.Line:
		drawLine(ctx, sh.A.X*k, sh.A.Y*k, sh.B.X*k, sh.B.Y*k, widthOf(sh.Width, k), c)
	case view.QuadCurve:
		drawQuadBezier(ctx, sh.Start.X*k, sh.Start.Y*k, sh.Control.X*k, sh.Control.Y*k,
			sh.End.X*k, sh.End.Y*k, widthOf(sh.Width, k), c)
	case view.CubicCurve:
		drawCubicBezier(ctx, sh.Start.X*k, sh.Start.Y*k, sh.Control1.X*k, sh.Control1.Y*k,
			sh.Control2.X*k, sh.Control2.Y*k, sh.End.X*k, sh.End.Y*k, widthOf(sh.Width, k), c)
	case view.Label:
		drawTextCentered(ctx, int(sh.Pos.X*k), int(sh.Pos.Y*k), sh.Text, colorLabel)
	}
}

func widthOf(w, scale float64) float64 {
	if w <= 0 {
		w = 1
	}
	return w * scale
}

// drawCircle draws a circle outline, or a filled disc.
func drawCircle(ctx *rasterContext, cx, cy, r float64, filled bool, thickness float64, c color.Color) {
	img := ctx.img

	if filled {
		for dy := -r; dy <= r; dy++ {
			yNorm := dy / r
			if yNorm*yNorm <= 1 {
				xExtent := r * math.Sqrt(1-yNorm*yNorm)
				for dx := -xExtent; dx <= xExtent; dx++ {
					img.Set(int(cx+dx), int(cy+dy), c)
				}
			}
		}
		return
	}

	for angle := 0.0; angle < 2*math.Pi; angle += 0.005 {
		nx := math.Cos(angle)
		ny := math.Sin(angle)
		x := cx + r*nx
		y := cy + r*ny
		for t := -thickness / 2; t <= thickness/2; t += 0.5 {
			img.Set(int(x+nx*t), int(y+ny*t), c)
		}
	}
}

// drawLine draws a line between two points with the given thickness.
func drawLine(ctx *rasterContext, x1, y1, x2, y2, thickness float64, c color.Color) {
	img := ctx.img

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	halfThick := thickness / 2

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := x1 + dx*t
		py := y1 + dy*t

		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(px+perpX*offset), int(py+perpY*offset), c)
		}
	}
}

// drawQuadBezier draws a quadratic Bezier curve.
func drawQuadBezier(ctx *rasterContext, x1, y1, cx, cy, x2, y2, thickness float64, c color.Color) {
	steps := 100.0
	var prevX, prevY float64

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		x := (1-t)*(1-t)*x1 + 2*(1-t)*t*cx + t*t*x2
		y := (1-t)*(1-t)*y1 + 2*(1-t)*t*cy + t*t*y2

		if i > 0 {
			drawLine(ctx, prevX, prevY, x, y, thickness, c)
		}
		prevX, prevY = x, y
	}
}

// drawCubicBezier draws a cubic Bezier curve.
func drawCubicBezier(ctx *rasterContext, x1, y1, c1x, c1y, c2x, c2y, x2, y2, thickness float64, c color.Color) {
	steps := 100.0
	var prevX, prevY float64

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		u := 1 - t
		x := u*u*u*x1 + 3*u*u*t*c1x + 3*u*t*t*c2x + t*t*t*x2
		y := u*u*u*y1 + 3*u*u*t*c1y + 3*u*t*t*c2y + t*t*t*y2

		if i > 0 {
			drawLine(ctx, prevX, prevY, x, y, thickness, c)
		}
		prevX, prevY = x, y
	}
}

// drawTextCentered draws text centered at the given position using Go Regular font.
func drawTextCentered(ctx *rasterContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()

	metrics := ctx.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	baselineY := y + int(float64(ascent)*0.15)

	point := fixed.Point26_6{
		X: fixed.I(x - width/2),
		Y: fixed.I(baselineY),
	}

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot:  point,
	}
	d.DrawString(text)
}
