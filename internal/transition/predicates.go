package transition

import "github.com/llehouerou/viewport/internal/layout"

// Predicates are the boolean transition facts computed once per transition
// by comparing the from and to states pairwise.
type Predicates struct {
	EnteringFullScreen bool
	ExitingFullScreen  bool
	EnteringMusicMode  bool
	ExitingMusicMode   bool

	TogglingLegacyStyle bool

	TopBarPlacementChanged    bool
	BottomBarPlacementChanged bool

	OpeningLeadingSidebar  bool
	ClosingLeadingSidebar  bool
	OpeningTrailingSidebar bool
	ClosingTrailingSidebar bool

	OSCPositionChanged bool
}

// IsFullScreenTransition returns true when the window crosses the full
// screen boundary in either direction.
func (p Predicates) IsFullScreenTransition() bool {
	return p.EnteringFullScreen || p.ExitingFullScreen
}

// anySidebarChange returns true when any sidebar opens or closes.
func (p Predicates) anySidebarChange() bool {
	return p.OpeningLeadingSidebar || p.ClosingLeadingSidebar ||
		p.OpeningTrailingSidebar || p.ClosingTrailingSidebar
}

// anyPlacementChange returns true when a bar moves between inside and
// outside placement.
func (p Predicates) anyPlacementChange() bool {
	return p.TopBarPlacementChanged || p.BottomBarPlacementChanged
}

// ComputePredicates compares two states pairwise.
func ComputePredicates(from, to layout.State) Predicates {
	fs, ts := from.Spec, to.Spec
	p := Predicates{
		EnteringFullScreen: fs.Mode != layout.FullScreen && ts.Mode == layout.FullScreen,
		ExitingFullScreen:  fs.Mode == layout.FullScreen && ts.Mode != layout.FullScreen,
		EnteringMusicMode:  fs.Mode != layout.MusicMode && ts.Mode == layout.MusicMode,
		ExitingMusicMode:   fs.Mode == layout.MusicMode && ts.Mode != layout.MusicMode,

		TogglingLegacyStyle: fs.LegacyStyle != ts.LegacyStyle,

		TopBarPlacementChanged:    fs.TopBarPlacement != ts.TopBarPlacement,
		BottomBarPlacementChanged: fs.BottomBarPlacement != ts.BottomBarPlacement,

		OSCPositionChanged: fs.EnableOSC != ts.EnableOSC ||
			(ts.EnableOSC && fs.OSCPosition != ts.OSCPosition),
	}
	p.OpeningLeadingSidebar, p.ClosingLeadingSidebar =
		sidebarChange(fs.LeadingSidebar, ts.LeadingSidebar)
	p.OpeningTrailingSidebar, p.ClosingTrailingSidebar =
		sidebarChange(fs.TrailingSidebar, ts.TrailingSidebar)
	return p
}

// sidebarChange classifies a sidebar's movement. Switching a visible
// sidebar to a different tab group or placement is a full close followed by
// a reopen, not a resize, so both flags are set.
func sidebarChange(from, to layout.Sidebar) (opening, closing bool) {
	switch {
	case !from.Visible && to.Visible:
		return true, false
	case from.Visible && !to.Visible:
		return false, true
	case from.Visible && to.Visible &&
		(from.Tab != to.Tab || from.Placement != to.Placement):
		return true, true
	default:
		return false, false
	}
}
