package session

import (
	"github.com/llehouerou/viewport/internal/geometry"
	"github.com/llehouerou/viewport/internal/layout"
	"github.com/llehouerou/viewport/internal/prefs"
	"github.com/llehouerou/viewport/internal/transition"
)

// Restore brings the session back to the persisted layout for the given
// mode. Missing or incomplete saved state falls back to the live window
// frame; a saved spec that no longer matches the current preferences is
// corrected with a synthetic transition rather than trusted. Restore never
// fails the caller: every error path degrades to a known-good geometry.
func (s *Session) Restore(mode layout.Mode) transition.Transition {
	saved, err := s.store.GetLayout(mode)
	if err != nil {
		s.log.Warn("failed to read saved window layout, using live frame",
			"mode", mode.String(), "err", err)
		saved = nil
	}

	prefSpec := s.prefs.Spec(mode)

	if saved == nil || !saved.Geometry.IsValid() {
		if saved != nil {
			s.log.Warn("saved window layout is incomplete, deriving from live frame",
				"mode", mode.String())
		}
		s.adoptLiveFrame(prefSpec)
		return s.Apply(prefSpec)
	}

	// The persisted spec keeps runtime choices (sidebar visibility, tab)
	// but every preference-driven field must match the live preferences;
	// drift is corrected by transitioning to the preferred spec.
	target := reconcile(saved.Spec, prefSpec)
	if target != saved.Spec {
		s.log.Warn("saved window layout drifted from preferences, correcting",
			"mode", mode.String())
	}

	s.current = layout.DeriveState(saved.Spec, s.deriveOpts())
	s.setGeometry(saved.Geometry)
	return s.Apply(target)
}

// adoptLiveFrame rebuilds the session geometry from the live window frame,
// the known-good construction path for untrusted restore data.
func (s *Session) adoptLiveFrame(spec layout.Spec) {
	st := layout.DeriveState(spec, s.deriveOpts())
	aspect := s.geometry.VideoAspect

	win, attached := s.screens.CurrentWindow()
	if !attached {
		s.current = st
		return
	}
	g := geometry.New(win.Frame, 0, st.OuterBars(), st.InnerBars(), aspect)
	frame := g.WindowFrame.Constrained(win.Screen.VisibleFrame)
	s.current = st
	s.setGeometry(g.Clone(geometry.Changes{WindowFrame: &frame}))
}

// reconcile overlays preference-driven fields onto a saved spec, keeping
// only its runtime state (sidebar visibility and tab selection).
func reconcile(saved, pref layout.Spec) layout.Spec {
	lead := pref.LeadingSidebar
	lead.Visible = saved.LeadingSidebar.Visible
	lead.Tab = saved.LeadingSidebar.Tab
	trail := pref.TrailingSidebar
	trail.Visible = saved.TrailingSidebar.Visible
	trail.Tab = saved.TrailingSidebar.Tab
	return pref.Clone(layout.SpecChanges{
		LeadingSidebar:  &lead,
		TrailingSidebar: &trail,
	})
}

// PrefsChanged swaps in new preferences and corrects the live layout with
// a transition when the preferred spec drifted from the current one.
func (s *Session) PrefsChanged(p *prefs.Prefs) transition.Transition {
	s.prefs = p
	target := reconcile(s.current.Spec, s.prefs.Spec(s.current.Spec.Mode))
	return s.Apply(target)
}
