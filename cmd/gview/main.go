// Command gview is an interactive terminal viewer for graphs.
//
// Usage:
//
//	gview [-undirected] [file.edges]
//
// With no file a small demo graph is shown. Drag nodes to move them,
// drag empty space to pan, scroll to zoom at the cursor.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/graphcanvas/pkg/graph"
	"github.com/ha1tch/graphcanvas/pkg/layout"
	"github.com/ha1tch/graphcanvas/pkg/render"
	"github.com/ha1tch/graphcanvas/pkg/view"
)

func main() {
	undirected := flag.Bool("undirected", false, "treat the edge list as undirected")
	flag.Parse()

	cfg := LoadConfig()

	g, err := loadGraph(flag.Arg(0), !*undirected)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gview: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gview: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "gview: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	app := newApp(screen, g, cfg)
	app.run()

	if err := SaveConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "gview: save config: %v\n", err)
	}
}

func loadGraph(path string, directed bool) (*graph.Graph, error) {
	if path == "" {
		return demoGraph(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := graph.ParseEdgeList(f, directed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// demoGraph builds a small graph that exercises parallel edges and a
// self loop.
func demoGraph() *graph.Graph {
	g := graph.New(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	d := g.AddNode(nil)
	g.AddEdge(a.ID, b.ID, nil)
	g.AddEdge(a.ID, b.ID, nil)
	g.AddEdge(b.ID, c.ID, nil)
	g.AddEdge(c.ID, d.ID, nil)
	g.AddEdge(d.ID, a.ID, nil)
	g.AddEdge(c.ID, c.ID, nil)
	return g
}

// app holds all viewer state
type app struct {
	screen tcell.Screen
	g      *graph.Graph
	v      *view.View
	vp     *view.Viewport
	lay    layout.Layout
	cfg    Config

	gestures gestures
	events   chan view.Event

	running bool // layout still stepping
	fit     bool
	message string
}

func newApp(screen tcell.Screen, g *graph.Graph, cfg Config) *app {
	events := make(chan view.Event, 64)

	nav := view.DefaultNavigation()
	nav.ZoomAndPanEnabled = true
	nav.ZoomSpeed = cfg.ZoomSpeed
	nav.ScreenPadding = cfg.ScreenPadding

	v := view.New(g).
		WithInteraction(view.SettingsInteraction{
			ClickingEnabled:  true,
			DraggingEnabled:  true,
			SelectionEnabled: true,
		}).
		WithNavigation(nav).
		WithEvents(events)

	var lay layout.Layout = layout.Static{}
	if cfg.Layout == "force" {
		lay = layout.NewForceDirected()
	}

	return &app{
		screen:  screen,
		g:       g,
		v:       v,
		vp:      view.NewViewport(),
		lay:     lay,
		cfg:     cfg,
		events:  events,
		running: true,
	}
}

func (a *app) run() {
	// Periodic refresh events keep the simulation animating between
	// input events. The goroutine must stop before run returns so it
	// never posts to a finalized screen.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(33 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				a.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	for {
		a.frame()
		a.screen.Show()

		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			a.gestures.Mouse(ev)
		case *tcell.EventInterrupt:
			// Redraw only.
		}
	}
}

// frame runs one update/draw cycle.
func (a *app) frame() {
	a.screen.Clear()

	w, h := a.screen.Size()
	canvas := view.NewRect(0, 0, float64(w), float64(h-1))

	a.running = a.lay.Step(a.g)

	in := a.gestures.Take()
	a.v.Update(a.vp, in, canvas)
	a.drainEvents()

	drawLayers(a.screen, a.v.Draw(a.vp))
	drawStatus(a.screen, a.vp.Zoom, a.g.NodeCount(), a.g.EdgeCount(), a.running, a.message)
}

func (a *app) drainEvents() {
	for {
		select {
		case ev := <-a.events:
			switch ev := ev.(type) {
			case view.NodeDragStart:
				if a.cfg.RestartOnDrag {
					a.lay.Restart()
				}
			case view.NodeClick:
				a.message = fmt.Sprintf("clicked node %d", ev.ID)
			case view.NodeDoubleClick:
				a.message = fmt.Sprintf("double-clicked node %d", ev.ID)
			}
		default:
			return
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return true
	case 'f':
		a.fit = !a.fit
		nav := view.DefaultNavigation()
		nav.ZoomAndPanEnabled = true
		nav.ZoomSpeed = a.cfg.ZoomSpeed
		nav.ScreenPadding = a.cfg.ScreenPadding
		nav.FitToScreenEnabled = a.fit
		a.v.WithNavigation(nav)
	case 'r':
		a.lay.Restart()
	case 's':
		a.snapshot()
	}
	return false
}

// snapshot writes the current frame to a PNG next to the working
// directory.
func (a *app) snapshot() {
	name := fmt.Sprintf("gview-%d.png", rand.Intn(100000))
	f, err := os.Create(name)
	if err != nil {
		a.message = err.Error()
		return
	}
	defer f.Close()

	// Re-render the frame against the export canvas so the image is
	// not cell-grid sized.
	opts := render.DefaultOptions()
	vp := view.NewViewport()
	canvas := view.NewRect(0, 0, float64(opts.Width), float64(opts.Height))
	a.v.Update(vp, view.Input{}, canvas)
	if err := render.WritePNG(a.v.Draw(vp), f, opts); err != nil {
		a.message = err.Error()
		return
	}
	a.message = "saved " + name
}
