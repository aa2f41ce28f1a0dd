package view

// Draw generates this frame's shapes. Edges draw first so nodes cover
// their endpoints; selected and dragged elements go to the top layer.
// Call after Update so highlight flags are current.
func (v *View) Draw(vp *Viewport) *Layers {
	layers := NewLayers()

	for _, e := range v.g.Edges() {
		src := v.g.Node(e.Source)
		dst := v.g.Node(e.Target)
		if src == nil || dst == nil {
			continue
		}
		shapes := v.edgeShape.Shapes(e, src, dst, v.g.Siblings(e), v.g.Directed(), vp, v.style)
		if len(shapes) == 0 {
			continue
		}
		top := e.Selected || src.Dragged || dst.Dragged
		layers.AddEdge(top, shapes...)
	}

	for _, n := range v.g.Nodes() {
		shapes := v.nodeShape.Shapes(n, vp, v.style)
		if len(shapes) == 0 {
			continue
		}
		layers.AddNode(n.Selected || n.Dragged, shapes...)
	}

	return layers
}
