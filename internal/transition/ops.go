// Package transition plans phased layout transitions: given a current
// layout state and geometry and a desired spec, it derives the target state
// and geometry, an optional middle geometry way-point, and the ordered
// operation list an execution queue runs. The planner is pure; nothing here
// touches a clock or a window.
package transition

import (
	"time"

	"github.com/llehouerou/viewport/internal/geometry"
	"github.com/llehouerou/viewport/internal/layout"
)

// Easing selects a timing curve for an operation.
type Easing int

const (
	EasingLinear Easing = iota
	EasingEaseIn
	EasingEaseOut
	EasingEaseInEaseOut
)

// String returns the easing name.
func (e Easing) String() string {
	switch e {
	case EasingEaseIn:
		return "ease-in"
	case EasingEaseOut:
		return "ease-out"
	case EasingEaseInEaseOut:
		return "ease-in-out"
	default:
		return "linear"
	}
}

// OpKind names what an operation mutates. Operations are data; the executor
// maps kinds onto real window/view work.
type OpKind int

const (
	// OpFadeOutOldViews fades out widgets that leave the layout.
	OpFadeOutOldViews OpKind = iota
	// OpPauseVideoRender suspends live video updates around a style swap,
	// which would otherwise flash a black frame.
	OpPauseVideoRender
	// OpCloseOldPanels animates the frame toward the middle geometry,
	// shrinking departing panels to nothing.
	OpCloseOldPanels
	// OpUpdateHiddenViews restyles hidden widgets and swaps structural
	// constraints. Always zero-duration and synchronous.
	OpUpdateHiddenViews
	// OpSetFullScreenFrame drives the frame straight to the screen frame
	// when entering or exiting full screen; no middle way-point.
	OpSetFullScreenFrame
	// OpOpenNewPanels animates the frame to the final geometry, growing
	// the new layout's panels in.
	OpOpenNewPanels
	// OpResumeVideoRender re-enables live video updates.
	OpResumeVideoRender
	// OpFadeInNewViews fades in widgets that join the layout.
	OpFadeInNewViews
	// OpPostTransitionWork runs final fixups after everything settled.
	OpPostTransitionWork
)

// String returns the op kind name.
func (k OpKind) String() string {
	switch k {
	case OpFadeOutOldViews:
		return "fade-out-old-views"
	case OpPauseVideoRender:
		return "pause-video-render"
	case OpCloseOldPanels:
		return "close-old-panels"
	case OpUpdateHiddenViews:
		return "update-hidden-views"
	case OpSetFullScreenFrame:
		return "set-fullscreen-frame"
	case OpOpenNewPanels:
		return "open-new-panels"
	case OpResumeVideoRender:
		return "resume-video-render"
	case OpFadeInNewViews:
		return "fade-in-new-views"
	case OpPostTransitionWork:
		return "post-transition-work"
	default:
		return "unknown"
	}
}

// Op is one step of a transition. Zero-duration ops are structural and run
// synchronously before the next timed op starts. Geometry, when non-nil, is
// the frame target the op animates toward.
type Op struct {
	Kind     OpKind
	Duration time.Duration
	Easing   Easing
	Geometry *geometry.Geometry
}

// Transition is the complete unit of work handed to the execution queue.
// It is discarded once run.
type Transition struct {
	FromState layout.State
	ToState   layout.State

	FromGeometry   geometry.Geometry
	MiddleGeometry *geometry.Geometry
	ToGeometry     geometry.Geometry

	Predicates Predicates
	Ops        []Op

	// Ticket is stamped by the session before the transition runs; a
	// stale ticket means a newer transition superseded this one.
	Ticket uint64
}

// IsNoOp returns true when the transition changes nothing and its op list
// is empty.
func (t *Transition) IsNoOp() bool { return len(t.Ops) == 0 }

// Durations configures the timed phases.
type Durations struct {
	Fade       time.Duration
	Resize     time.Duration
	FullScreen time.Duration
}

// DefaultDurations returns the standard phase timings.
func DefaultDurations() Durations {
	return Durations{
		Fade:       180 * time.Millisecond,
		Resize:     250 * time.Millisecond,
		FullScreen: 300 * time.Millisecond,
	}
}
