package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/graphcanvas/pkg/view"
)

var (
	styleBase      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHighlight = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleLabel     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// drawLayers plots the frame's shapes onto the terminal cell grid.
// Base layer first, top layer over it.
func drawLayers(screen tcell.Screen, layers *view.Layers) {
	for _, s := range layers.Base() {
		plotShape(screen, s, styleBase)
	}
	for _, s := range layers.Top() {
		plotShape(screen, s, styleHighlight)
	}
}

func plotShape(screen tcell.Screen, s view.Shape, style tcell.Style) {
	switch sh := s.(type) {
	case view.Circle:
		plotCircle(screen, sh, style)
	case view.Line:
		plotSampled(screen, style, '.', func(t float64) (float64, float64) {
			return sh.A.X + (sh.B.X-sh.A.X)*t, sh.A.Y + (sh.B.Y-sh.A.Y)*t
		})
	case view.QuadCurve:
		plotSampled(screen, style, '.', func(t float64) (float64, float64) {
			u := 1 - t
			x := u*u*sh.Start.X + 2*u*t*sh.Control.X + t*t*sh.End.X
			y := u*u*sh.Start.Y + 2*u*t*sh.Control.Y + t*t*sh.End.Y
			return x, y
		})
	case view.CubicCurve:
		plotSampled(screen, style, '.', func(t float64) (float64, float64) {
			u := 1 - t
			x := u*u*u*sh.Start.X + 3*u*u*t*sh.Control1.X + 3*u*t*t*sh.Control2.X + t*t*t*sh.End.X
			y := u*u*u*sh.Start.Y + 3*u*u*t*sh.Control1.Y + 3*u*t*t*sh.Control2.Y + t*t*t*sh.End.Y
			return x, y
		})
	case view.Label:
		plotText(screen, int(sh.Pos.X)-len(sh.Text)/2, int(sh.Pos.Y), sh.Text, styleLabel)
	}
}

// plotSampled walks a parametric curve and sets a cell at each sample.
func plotSampled(screen tcell.Screen, style tcell.Style, r rune, at func(t float64) (float64, float64)) {
	const steps = 120
	for i := 0; i <= steps; i++ {
		x, y := at(float64(i) / steps)
		if math.IsNaN(x) || math.IsNaN(y) {
			return
		}
		screen.SetContent(int(x), int(y), r, nil, style)
	}
}

func plotCircle(screen tcell.Screen, c view.Circle, style tcell.Style) {
	// Small nodes collapse to a single marker cell.
	if c.Radius < 1 {
		screen.SetContent(int(c.Center.X), int(c.Center.Y), 'o', nil, style)
		return
	}
	for angle := 0.0; angle < 2*math.Pi; angle += 0.1 {
		x := c.Center.X + c.Radius*math.Cos(angle)
		y := c.Center.Y + c.Radius*math.Sin(angle)
		screen.SetContent(int(x), int(y), 'o', nil, style)
	}
	screen.SetContent(int(c.Center.X), int(c.Center.Y), 'O', nil, style)
}

func plotText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawStatus draws the one-line status bar at the bottom of the
// screen.
func drawStatus(screen tcell.Screen, zoom float64, nodes, edges int, running bool, message string) {
	w, h := screen.Size()
	y := h - 1
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	sim := "settled"
	if running {
		sim = "running"
	}
	line := fmt.Sprintf(" %d nodes  %d edges  zoom %.2f  layout %s", nodes, edges, zoom, sim)
	if message != "" {
		line += "  |  " + message
	}
	line += "  |  q quit  f fit  r relayout  s snapshot"
	plotText(screen, 0, y, line, styleStatus)
}
