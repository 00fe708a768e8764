// Package layout declares window layout intent (Spec) and its derived,
// concrete projection (State): which chrome is visible, how it fades and
// how tall or wide each bar is.
package layout

// Mode is the window presentation mode.
type Mode int

const (
	Windowed Mode = iota
	FullScreen
	MusicMode
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case FullScreen:
		return "fullscreen"
	case MusicMode:
		return "musicmode"
	default:
		return "unknown"
	}
}

// Placement says whether a chrome bar overlays the viewport or sits outside
// it, pushing the viewport inward.
type Placement int

const (
	InsideViewport Placement = iota
	OutsideViewport
)

// String returns the placement name.
func (p Placement) String() string {
	if p == OutsideViewport {
		return "outside"
	}
	return "inside"
}

// OSCPosition places the on-screen controller.
type OSCPosition int

const (
	OSCFloating OSCPosition = iota
	OSCTop
	OSCBottom
)

// String returns the position name.
func (p OSCPosition) String() string {
	switch p {
	case OSCTop:
		return "top"
	case OSCBottom:
		return "bottom"
	default:
		return "floating"
	}
}

// SidebarTab identifies which tab group a sidebar shows.
type SidebarTab int

const (
	TabNone SidebarTab = iota
	TabSettings
	TabPlaylist
	TabChapters
)

// DefaultSidebarWidth is the width used when a sidebar does not set one.
const DefaultSidebarWidth = 280

// Sidebar describes one side panel: where it lives, whether it is shown,
// which tab group it displays and how wide it is.
type Sidebar struct {
	Placement Placement
	Visible   bool
	Tab       SidebarTab
	Width     float64
}

// EffectiveWidth returns the sidebar's width when visible, 0 otherwise.
func (s Sidebar) EffectiveWidth() float64 {
	if !s.Visible {
		return 0
	}
	if s.Width <= 0 {
		return DefaultSidebarWidth
	}
	return s.Width
}

// Spec is the immutable declaration of layout intent. It carries no derived
// sizes; State is computed from it by DeriveState.
type Spec struct {
	Mode        Mode
	LegacyStyle bool

	TopBarPlacement    Placement
	BottomBarPlacement Placement

	EnableOSC   bool
	OSCPosition OSCPosition

	LeadingSidebar  Sidebar
	TrailingSidebar Sidebar
}

// NewSpec returns the spec with mode-mandated overrides applied. Music mode
// forces both sidebars hidden, the top bar inside, the bottom bar outside
// and the on-screen controller off; callers never have to remember these.
func NewSpec(s Spec) Spec {
	if s.Mode == MusicMode {
		s.LeadingSidebar.Visible = false
		s.TrailingSidebar.Visible = false
		s.TopBarPlacement = InsideViewport
		s.BottomBarPlacement = OutsideViewport
		s.EnableOSC = false
	}
	return s
}

// SpecChanges is the partial-update set accepted by Clone.
type SpecChanges struct {
	Mode               *Mode
	LegacyStyle        *bool
	TopBarPlacement    *Placement
	BottomBarPlacement *Placement
	EnableOSC          *bool
	OSCPosition        *OSCPosition
	LeadingSidebar     *Sidebar
	TrailingSidebar    *Sidebar
}

// Clone returns a copy of s with the given changes applied, re-running the
// mode overrides so an invalid combination cannot be produced.
func (s Spec) Clone(c SpecChanges) Spec {
	out := s
	if c.Mode != nil {
		out.Mode = *c.Mode
	}
	if c.LegacyStyle != nil {
		out.LegacyStyle = *c.LegacyStyle
	}
	if c.TopBarPlacement != nil {
		out.TopBarPlacement = *c.TopBarPlacement
	}
	if c.BottomBarPlacement != nil {
		out.BottomBarPlacement = *c.BottomBarPlacement
	}
	if c.EnableOSC != nil {
		out.EnableOSC = *c.EnableOSC
	}
	if c.OSCPosition != nil {
		out.OSCPosition = *c.OSCPosition
	}
	if c.LeadingSidebar != nil {
		out.LeadingSidebar = *c.LeadingSidebar
	}
	if c.TrailingSidebar != nil {
		out.TrailingSidebar = *c.TrailingSidebar
	}
	return NewSpec(out)
}
