package layout

import (
	"math"

	"github.com/llehouerou/viewport/internal/geometry"
)

// Chrome metrics in screen units.
const (
	// TitleBarHeight is the standard native title bar height.
	TitleBarHeight = 28
	// ReducedTitleBarHeight is used when the on-screen controller shares
	// the top bar and shrinks the title area.
	ReducedTitleBarHeight = 22
	// OSCBarHeight is the height of a top or bottom on-screen controller.
	OSCBarHeight = 44
	// MusicModeControlBarHeight is the fixed control bar in music mode.
	MusicModeControlBarHeight = 72
	// SidebarTabHeightDefault is the sidebar tab strip height.
	SidebarTabHeightDefault = 48
	// MusicModeSidebarTabHeight is the compact tab strip in music mode.
	MusicModeSidebarTabHeight = 36
	// SidebarTabHeightMin and SidebarTabHeightMax bound the tab strip when
	// it is stretched to align with an inside top bar.
	SidebarTabHeightMin = 40
	SidebarTabHeightMax = 120
)

// Visibility describes how a chrome widget is shown.
type Visibility int

const (
	// Hidden widgets do not exist in the current layout.
	Hidden Visibility = iota
	// AlwaysShown widgets stay visible and never fade.
	AlwaysShown
	// FadesWithTopBar widgets auto-hide together with the top bar.
	FadesWithTopBar
	// FadesWithOtherBars widgets auto-hide with the non-top chrome.
	FadesWithOtherBars
)

// IsShown returns true unless the widget is hidden.
func (v Visibility) IsShown() bool { return v != Hidden }

// Fades returns true if the widget participates in auto-hide.
func (v Visibility) Fades() bool {
	return v == FadesWithTopBar || v == FadesWithOtherBars
}

// String returns the visibility name.
func (v Visibility) String() string {
	switch v {
	case AlwaysShown:
		return "shown"
	case FadesWithTopBar:
		return "fades-with-top-bar"
	case FadesWithOtherBars:
		return "fades-with-other-bars"
	default:
		return "hidden"
	}
}

// DeriveOpts carries the external facts DeriveState needs beyond the spec.
type DeriveOpts struct {
	// OnTop is true when the window floats above all others.
	OnTop bool
	// CameraHousingHeight is the screen's camera notch height, 0 if none.
	CameraHousingHeight float64
	// DisallowCameraHousing suppresses the housing offset even when the
	// screen has one (user preference to letterbox under the notch).
	DisallowCameraHousing bool
}

// State is the concrete projection of a Spec: per-widget visibility and the
// numeric bar metrics. Every field is a pure function of the spec and opts;
// states are rebuilt on every spec change, never patched.
type State struct {
	Spec Spec

	TitleBar         Visibility
	TrafficLights    Visibility
	TitleIconAndText Visibility
	Accessories      Visibility
	OSC              Visibility

	TitleBarHeight   float64
	OSCHeight        float64
	TopBarHeight     float64
	BottomBarHeight  float64
	SidebarTabHeight float64
	SidebarDownshift float64

	CameraHousingOffset float64
}

// DeriveState projects a spec into a State. It is total: every spec/opts
// combination yields a usable state.
func DeriveState(spec Spec, opts DeriveOpts) State {
	st := State{Spec: spec}

	switch spec.Mode {
	case FullScreen:
		deriveFullScreen(&st, spec, opts)
	case MusicMode:
		deriveMusicMode(&st, spec)
	default:
		deriveWindowed(&st, spec, opts)
	}

	st.TopBarHeight = st.TitleBarHeight
	if spec.EnableOSC && spec.OSCPosition == OSCTop && st.OSC.IsShown() {
		st.TopBarHeight += st.OSCHeight
	}

	st.SidebarTabHeight = deriveSidebarTabHeight(spec, st)
	if st.TitleBar.IsShown() && spec.TopBarPlacement == InsideViewport && spec.Mode != MusicMode {
		// Inside top bar overlaps the viewport: sidebars shift down so
		// their tab strips are not covered by the title area.
		st.SidebarDownshift = st.TitleBarHeight
	}
	return st
}

func deriveFullScreen(st *State, spec Spec, opts DeriveOpts) {
	// The system keeps title widgets reachable in full screen.
	st.TitleBar = AlwaysShown
	st.TrafficLights = AlwaysShown
	st.TitleIconAndText = AlwaysShown
	st.Accessories = AlwaysShown
	st.TitleBarHeight = TitleBarHeight

	st.OSC = oscVisibility(spec)
	st.OSCHeight = oscHeight(spec)

	if spec.LegacyStyle && !opts.DisallowCameraHousing {
		st.CameraHousingOffset = math.Max(opts.CameraHousingHeight, 0)
	}
}

func deriveMusicMode(st *State, _ Spec) {
	// Music mode draws its own chrome: no native title bar, fixed control
	// bar below the video, no on-screen controller.
	st.TitleBar = Hidden
	st.TrafficLights = FadesWithTopBar
	st.TitleIconAndText = Hidden
	st.Accessories = Hidden
	st.OSC = Hidden
	st.BottomBarHeight = MusicModeControlBarHeight
}

func deriveWindowed(st *State, spec Spec, opts DeriveOpts) {
	if spec.LegacyStyle {
		// Legacy chrome draws its own decoration; the native title bar and
		// everything attached to it disappears entirely.
		st.TitleBar = Hidden
		st.TrafficLights = Hidden
		st.TitleIconAndText = Hidden
		st.Accessories = Hidden
	} else {
		vis := FadesWithTopBar
		if spec.TopBarPlacement == OutsideViewport || opts.OnTop {
			// An outside bar cannot auto-hide without reflowing the whole
			// window; pinned windows keep their controls reachable.
			vis = AlwaysShown
		}
		st.TitleBar = vis
		st.TrafficLights = vis
		st.TitleIconAndText = vis
		st.Accessories = vis
		st.TitleBarHeight = TitleBarHeight
		if spec.EnableOSC && spec.OSCPosition == OSCTop {
			st.TitleBarHeight = ReducedTitleBarHeight
		}
	}

	st.OSC = oscVisibility(spec)
	st.OSCHeight = oscHeight(spec)
	if spec.EnableOSC && spec.OSCPosition == OSCBottom {
		st.BottomBarHeight = st.OSCHeight
	}
}

func oscVisibility(spec Spec) Visibility {
	if !spec.EnableOSC {
		return Hidden
	}
	switch spec.OSCPosition {
	case OSCFloating:
		// The floating controller always overlays the video and fades.
		return FadesWithOtherBars
	case OSCTop:
		if spec.TopBarPlacement == OutsideViewport {
			return AlwaysShown
		}
		return FadesWithTopBar
	case OSCBottom:
		if spec.BottomBarPlacement == OutsideViewport {
			return AlwaysShown
		}
		return FadesWithOtherBars
	default:
		return Hidden
	}
}

func oscHeight(spec Spec) float64 {
	if !spec.EnableOSC {
		return 0
	}
	if spec.OSCPosition == OSCFloating {
		// Floating OSC is an overlay; it contributes no bar height.
		return 0
	}
	return OSCBarHeight
}

func deriveSidebarTabHeight(spec Spec, st State) float64 {
	if spec.Mode == MusicMode {
		return MusicModeSidebarTabHeight
	}
	if spec.TopBarPlacement == InsideViewport && st.TopBarHeight > 0 {
		// Align the tab strip with the inside top bar so tabs neither
		// overlap the title area nor leave dead space under it.
		return math.Min(math.Max(st.TopBarHeight, SidebarTabHeightMin), SidebarTabHeightMax)
	}
	return SidebarTabHeightDefault
}

// OuterBars returns the chrome sizes placed outside the viewport.
func (st State) OuterBars() geometry.Bars {
	var b geometry.Bars
	if st.Spec.TopBarPlacement == OutsideViewport {
		b.Top = st.TopBarHeight
	}
	if st.Spec.BottomBarPlacement == OutsideViewport {
		b.Bottom = st.BottomBarHeight
	}
	if st.Spec.LeadingSidebar.Placement == OutsideViewport {
		b.Leading = st.Spec.LeadingSidebar.EffectiveWidth()
	}
	if st.Spec.TrailingSidebar.Placement == OutsideViewport {
		b.Trailing = st.Spec.TrailingSidebar.EffectiveWidth()
	}
	return b
}

// InnerBars returns the chrome sizes overlaid inside the viewport.
func (st State) InnerBars() geometry.Bars {
	var b geometry.Bars
	if st.Spec.TopBarPlacement == InsideViewport {
		b.Top = st.TopBarHeight
	}
	if st.Spec.BottomBarPlacement == InsideViewport {
		b.Bottom = st.BottomBarHeight
	}
	if st.Spec.LeadingSidebar.Placement == InsideViewport {
		b.Leading = st.Spec.LeadingSidebar.EffectiveWidth()
	}
	if st.Spec.TrailingSidebar.Placement == InsideViewport {
		b.Trailing = st.Spec.TrailingSidebar.EffectiveWidth()
	}
	return b
}
