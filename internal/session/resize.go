package session

import (
	"math"

	"github.com/llehouerou/viewport/internal/geo"
	"github.com/llehouerou/viewport/internal/geometry"
	"github.com/llehouerou/viewport/internal/player"
	"github.com/llehouerou/viewport/internal/prefs"
)

// LiveResize handles one callback of an interactive edge/corner drag. It
// derives and applies a new geometry synchronously - no transition, no
// animation - because the windowing system calls this at display rate.
//
// Direction choice: corner drags jitter between the width and height axis
// from frame to frame, so the dominant axis is decided once when the drag
// starts and latched until EndLiveResize. Re-evaluating per frame makes
// the window flip-flop between two slightly different fitted sizes.
func (s *Session) LiveResize(requested geo.Size) geometry.Geometry {
	if !s.resizing {
		s.resizing = true
		dw := math.Abs(requested.W - s.geometry.WindowFrame.Size.W)
		dh := math.Abs(requested.H - s.geometry.WindowFrame.Size.H)
		s.resizeByHeight = dh > dw
		// A drag supersedes any transition still in flight.
		s.IssueTicket()
	}

	outer := s.geometry.Outer.TotalSize()
	viewport := geo.Size{
		W: requested.W - outer.W,
		H: requested.H - outer.H - s.geometry.TopMarginHeight,
	}
	if s.resizeByHeight {
		viewport.W = viewport.H * s.geometry.VideoAspect
	} else {
		viewport.H = viewport.W / s.geometry.VideoAspect
	}

	opts := geometry.ScaleOpts{LockViewportToVideo: s.prefs.LockToVideo()}
	if win, ok := s.screens.CurrentWindow(); ok {
		opts.Within = &win.Screen.VisibleFrame
	}
	g := s.geometry.ScaleViewport(viewport, opts)
	s.setGeometry(g)
	return g
}

// EndLiveResize clears the latched drag direction and persists the final
// geometry.
func (s *Session) EndLiveResize() {
	s.resizing = false
	s.persist()
}

// VideoChanged reacts to the playback engine announcing new display
// parameters: the geometry adopts the new aspect ratio and, depending on
// the resize-on-open preference, the window is resized. An external
// geometry directive takes precedence over the sizing strategy.
func (s *Session) VideoChanged(info player.Info) geometry.Geometry {
	if !info.HasVideo() {
		return s.geometry
	}
	s.IssueTicket()

	g := s.geometry.Clone(geometry.Changes{VideoAspect: &info.Aspect})

	win, attached := s.screens.CurrentWindow()
	if !attached {
		s.setGeometry(g)
		return g
	}
	visible := win.Screen.VisibleFrame
	opts := geometry.ScaleOpts{
		Within:              &visible,
		LockViewportToVideo: s.prefs.LockToVideo(),
	}

	if dir, ok := geometry.ParseDirective(info.GeometryDirective); ok {
		g = g.ApplyDirective(dir, info.DisplaySize, visible)
		s.setGeometry(g)
		return g
	}

	switch s.prefs.ResizeOnOpen {
	case prefs.ResizeNever:
		g = g.ScaleViewport(g.VideoContainerSize(), opts)
	case prefs.ResizeExact:
		g = g.ScaleVideo(info.DisplaySize, opts)
	default: // fit
		target := geo.Size{
			W: visible.Size.W * s.prefs.ResizeRatio,
			H: visible.Size.H * s.prefs.ResizeRatio,
		}
		g = g.ScaleVideo(geometry.FitVideoToContainer(info.Aspect, target), opts)
	}
	s.setGeometry(g)
	return g
}
