package view

// SettingsInteraction controls which pointer interactions the view
// responds to. Everything is off by default; hosts opt in.
type SettingsInteraction struct {
	// ClickingEnabled makes the view emit NodeClick and
	// NodeDoubleClick events. Selection and multiselection imply
	// click detection even when this is false.
	ClickingEnabled bool

	// DraggingEnabled lets pointer drags over a node move it.
	DraggingEnabled bool

	// SelectionEnabled makes clicks toggle node selection. At most
	// one node is selected at a time unless MultiSelectEnabled.
	SelectionEnabled bool

	// MultiSelectEnabled allows several nodes to be selected at
	// once. Implies SelectionEnabled.
	MultiSelectEnabled bool
}

// SettingsNavigation controls viewport navigation.
type SettingsNavigation struct {
	// FitToScreenEnabled recomputes zoom and pan every frame so
	// the whole graph stays visible. While set, manual zoom and
	// pan are ignored.
	FitToScreenEnabled bool

	// ZoomAndPanEnabled lets the pointer zoom (anchored at the
	// cursor) and pan the viewport. Mutually exclusive with fit in
	// practice: fit wins while enabled.
	ZoomAndPanEnabled bool

	// ZoomSpeed is the per-step relative zoom factor.
	ZoomSpeed float64

	// ScreenPadding is the fractional margin added around the
	// graph bounds when fitting.
	ScreenPadding float64
}

// SettingsStyle controls style knobs that apply across the graph.
type SettingsStyle struct {
	// EdgeRadiusWeight is how much each incident edge inflates a
	// node's drawn radius.
	EdgeRadiusWeight float64

	// LabelsAlways draws node labels even when not selected.
	LabelsAlways bool
}

// DefaultInteraction returns interaction settings with everything
// disabled.
func DefaultInteraction() SettingsInteraction {
	return SettingsInteraction{}
}

// DefaultNavigation returns navigation defaults: no fit, no
// zoom/pan, zoom speed 0.1, padding 0.3.
func DefaultNavigation() SettingsNavigation {
	return SettingsNavigation{
		ZoomSpeed:     0.1,
		ScreenPadding: 0.3,
	}
}

// DefaultStyle returns style defaults with an edge radius weight
// of 1.
func DefaultStyle() SettingsStyle {
	return SettingsStyle{EdgeRadiusWeight: 1}
}
