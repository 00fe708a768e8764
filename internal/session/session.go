// Package session orchestrates the layout engine: it owns the current
// layout state and geometry, plans transitions for every externally
// triggered change, and guards asynchronous frame application with a
// monotonic ticket so a superseded transition can never fight a newer one
// over the window frame.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/llehouerou/viewport/internal/geo"
	"github.com/llehouerou/viewport/internal/geometry"
	"github.com/llehouerou/viewport/internal/layout"
	"github.com/llehouerou/viewport/internal/prefs"
	"github.com/llehouerou/viewport/internal/screen"
	"github.com/llehouerou/viewport/internal/state"
	"github.com/llehouerou/viewport/internal/transition"
)

// Session owns the live layout state. All methods are called from the one
// goroutine that drives the window; exclusivity comes from that sequencing
// plus the ticket guard, not from locks.
type Session struct {
	prefs   *prefs.Prefs
	planner *transition.Planner
	runner  transition.Runner
	store   state.Interface
	screens screen.Provider
	log     *log.Logger

	current  layout.State
	geometry geometry.Geometry

	// Remembered geometries for modes the window is not currently in,
	// used as restore targets when leaving full screen or switching
	// between windowed and music mode.
	windowedGeometry *geometry.Geometry
	musicGeometry    *geometry.Geometry

	ticket uint64

	resizing       bool
	resizeByHeight bool

	renderPaused bool

	// OnFrame receives the target window frame and video size for every
	// applied geometry step. Nil is allowed (headless).
	OnFrame func(frame geo.Rect, video geo.Size)

	// OnRenderPause receives render pause/resume requests around legacy
	// style swaps. Nil is allowed.
	OnRenderPause func(paused bool)
}

// New builds a session from its collaborators. The initial state is the
// preferences' windowed spec over a default-sized geometry; Restore or the
// first video reconfig replaces it.
func New(p *prefs.Prefs, store state.Interface, screens screen.Provider, runner transition.Runner) *Session {
	spec := p.Spec(layout.Windowed)
	st := layout.DeriveState(spec, layout.DeriveOpts{})
	g := geometry.New(
		geo.NewRect(0, 0, 960, 540+st.OuterBars().TotalSize().H),
		0, st.OuterBars(), st.InnerBars(), 16.0/9,
	)
	return &Session{
		prefs:    p,
		planner:  transition.NewPlanner(),
		runner:   runner,
		store:    store,
		screens:  screens,
		log:      log.Default(),
		current:  st,
		geometry: g,
	}
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(l *log.Logger) { s.log = l }

// State returns the current layout state.
func (s *Session) State() layout.State { return s.current }

// Geometry returns the current geometry.
func (s *Session) Geometry() geometry.Geometry { return s.geometry }

// RenderPaused reports whether a transition currently holds the video
// renderer paused.
func (s *Session) RenderPaused() bool { return s.renderPaused }

// IssueTicket advances and returns the geometry ticket. Any update stamped
// with an older ticket is stale and must be discarded.
func (s *Session) IssueTicket() uint64 {
	s.ticket++
	return s.ticket
}

// CurrentTicket returns the latest issued ticket.
func (s *Session) CurrentTicket() uint64 { return s.ticket }

// Apply plans and runs a transition to the given spec. The transition is
// stamped with a fresh ticket; if a newer ticket is issued while the
// runner is still working through the ops, the remaining ops are skipped.
func (s *Session) Apply(spec layout.Spec) transition.Transition {
	t := s.plan(spec)
	if t.IsNoOp() {
		return t
	}
	s.rememberModeGeometry()

	t.Ticket = s.IssueTicket()
	s.runner.Run(&t, func(op transition.Op) bool {
		return s.applyOp(&t, op)
	})
	return t
}

func (s *Session) plan(spec layout.Spec) transition.Transition {
	opts := transition.BuildOpts{Derive: s.deriveOpts()}
	if win, ok := s.screens.CurrentWindow(); ok {
		if spec.Mode == layout.FullScreen {
			opts.ScreenFrame = win.Screen.Frame
		} else {
			opts.ScreenFrame = win.Screen.VisibleFrame
		}
		opts.CameraHousingHeight = win.Screen.CameraHousingHeight
	}
	switch {
	case s.current.Spec.Mode == layout.FullScreen && spec.Mode == layout.Windowed:
		opts.RestoreGeometry = s.windowedGeometry
	case s.current.Spec.Mode == layout.MusicMode && spec.Mode == layout.Windowed:
		opts.RestoreGeometry = s.windowedGeometry
	case spec.Mode == layout.MusicMode:
		opts.RestoreGeometry = s.musicGeometry
	}
	return s.planner.Build(s.current, s.geometry, spec, opts)
}

func (s *Session) deriveOpts() layout.DeriveOpts {
	opts := layout.DeriveOpts{
		DisallowCameraHousing: s.prefs.CameraHousingDisallowed(),
	}
	if win, ok := s.screens.CurrentWindow(); ok {
		opts.CameraHousingHeight = win.Screen.CameraHousingHeight
	}
	return opts
}

// applyOp executes one operation against the session. It returns false
// when the transition's ticket went stale, which stops the runner.
func (s *Session) applyOp(t *transition.Transition, op transition.Op) bool {
	if t.Ticket != s.ticket {
		s.log.Warn("discarding stale transition op",
			"op", op.Kind.String(), "ticket", t.Ticket, "latest", s.ticket)
		return false
	}

	switch op.Kind {
	case transition.OpPauseVideoRender:
		s.renderPaused = true
		if s.OnRenderPause != nil {
			s.OnRenderPause(true)
		}
	case transition.OpResumeVideoRender:
		s.renderPaused = false
		if s.OnRenderPause != nil {
			s.OnRenderPause(false)
		}
	case transition.OpCloseOldPanels, transition.OpOpenNewPanels, transition.OpSetFullScreenFrame:
		if op.Geometry != nil {
			s.setGeometry(*op.Geometry)
		}
	case transition.OpUpdateHiddenViews:
		s.current = t.ToState
	case transition.OpPostTransitionWork:
		s.current = t.ToState
		s.setGeometry(t.ToGeometry)
		s.persist()
	}
	return true
}

func (s *Session) setGeometry(g geometry.Geometry) {
	s.geometry = g
	if s.OnFrame != nil {
		s.OnFrame(g.WindowFrame, g.VideoSize)
	}
}

// rememberModeGeometry snapshots the current geometry under its mode so a
// later transition back to that mode can restore it.
func (s *Session) rememberModeGeometry() {
	g := s.geometry
	switch s.current.Spec.Mode {
	case layout.Windowed:
		s.windowedGeometry = &g
	case layout.MusicMode:
		s.musicGeometry = &g
	}
}

func (s *Session) persist() {
	mode := s.current.Spec.Mode
	if mode == layout.FullScreen {
		// Full screen is not a persisted mode; the windowed geometry it
		// will restore to is already remembered.
		return
	}
	err := s.store.SaveLayout(mode, state.SavedLayout{
		Spec:     s.current.Spec,
		Geometry: s.geometry,
	})
	if err != nil {
		s.log.Warn("failed to save window layout", "mode", mode.String(), "err", err)
	}
}
