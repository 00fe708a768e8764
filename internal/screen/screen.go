// Package screen describes the display environment the engine positions
// windows on. Values are snapshots read from the windowing system; the
// engine never calls back into it.
package screen

import "github.com/llehouerou/viewport/internal/geo"

// Screen is one display's metrics.
type Screen struct {
	// Frame is the screen's full frame, including any camera housing.
	Frame geo.Rect
	// VisibleFrame excludes system chrome (menu bar, dock).
	VisibleFrame geo.Rect
	// CameraHousingHeight is the camera notch height, 0 when absent.
	CameraHousingHeight float64
}

// Window is a snapshot of the host window: its frame and the screen it is
// currently on.
type Window struct {
	Frame  geo.Rect
	Screen Screen
}

// Provider reads the current window snapshot. The boolean is false when no
// window is attached yet (startup, teardown); callers branch on it instead
// of dereferencing a missing window.
type Provider interface {
	CurrentWindow() (Window, bool)
}

// Static is a Provider over fixed values, for tests and headless runs.
type Static struct {
	Window   Window
	Attached bool
}

// CurrentWindow returns the fixed snapshot.
func (s Static) CurrentWindow() (Window, bool) {
	return s.Window, s.Attached
}

var _ Provider = Static{}
