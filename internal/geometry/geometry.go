// Package geometry implements the window geometry calculus: deriving video
// size, viewport size and window frame from bar sizes and an aspect ratio.
// Geometry values are immutable; every change goes through Clone, which
// re-derives the video size from the resulting viewport.
package geometry

import (
	"math"

	"github.com/llehouerou/viewport/internal/geo"
)

const (
	// MinViewportWidth and MinViewportHeight are the global viewport floor.
	// No resize request may shrink the viewport below these.
	MinViewportWidth  = 285
	MinViewportHeight = 120

	// InterSidebarGap is the minimum horizontal space kept between two
	// inside sidebars so they never touch.
	InterSidebarGap = 20

	// fitSnapTolerance absorbs floating-point division error when a fitted
	// video size lands within one unit of the container edge.
	fitSnapTolerance = 1
)

// Bars holds the four chrome bar sizes around or over the viewport:
// heights for top/bottom, widths for leading/trailing.
type Bars struct {
	Top      float64
	Bottom   float64
	Leading  float64
	Trailing float64
}

// TotalSize returns the summed horizontal and vertical extent of the bars.
func (b Bars) TotalSize() geo.Size {
	return geo.Size{W: b.Leading + b.Trailing, H: b.Top + b.Bottom}
}

// sanitized clamps negative bar sizes to zero.
func (b Bars) sanitized() Bars {
	return Bars{
		Top:      math.Max(b.Top, 0),
		Bottom:   math.Max(b.Bottom, 0),
		Leading:  math.Max(b.Leading, 0),
		Trailing: math.Max(b.Trailing, 0),
	}
}

// Geometry is the immutable description of a window's layout: the frame,
// the chrome bars inside and outside the viewport, the camera-housing top
// margin and the displayed video's aspect ratio and size.
type Geometry struct {
	WindowFrame geo.Rect

	// TopMarginHeight is the camera-housing / letterbox offset reserved at
	// the very top of the window, above the top bar.
	TopMarginHeight float64

	// Outer bars sit outside the viewport and add to the window size.
	Outer Bars
	// Inner bars overlay the viewport and do not add to the window size.
	Inner Bars

	// VideoAspect is the displayed video's width/height ratio. Always > 0.
	VideoAspect float64

	// VideoSize is the video's on-screen size. Derived from the viewport
	// and aspect unless explicitly overridden (lock-viewport mode).
	VideoSize geo.Size
}

// New builds a Geometry from an explicit window frame and bar sizes,
// deriving the video size to fit the resulting viewport.
func New(frame geo.Rect, topMargin float64, outer, inner Bars, aspect float64) Geometry {
	g := Geometry{
		WindowFrame:     frame,
		TopMarginHeight: math.Max(topMargin, 0),
		Outer:           outer.sanitized(),
		Inner:           inner.sanitized(),
		VideoAspect:     sanitizeAspect(aspect),
	}
	g.VideoSize = FitVideoToContainer(g.VideoAspect, g.VideoContainerSize())
	return g
}

// FromVideoContainer builds a Geometry whose viewport is the given rect;
// the window frame is the container expanded by the outer bars and margin.
func FromVideoContainer(container geo.Rect, topMargin float64, outer, inner Bars, aspect float64) Geometry {
	outer = outer.sanitized()
	frame := geo.Rect{
		Origin: geo.Point{
			X: container.MinX() - outer.Leading,
			Y: container.MinY() - outer.Bottom,
		},
		Size: geo.Size{
			W: container.Size.W + outer.Leading + outer.Trailing,
			H: container.Size.H + outer.Top + outer.Bottom + math.Max(topMargin, 0),
		},
	}
	return New(frame, topMargin, outer, inner, aspect)
}

// ForFullScreen builds the geometry used when the window occupies a whole
// screen. Legacy full screen covers the screen's raw frame and reserves the
// camera housing as a top margin; native full screen covers the frame the
// system hands over, with no margin.
func ForFullScreen(screenFrame geo.Rect, cameraHousing float64, legacy bool, outer, inner Bars, aspect float64) Geometry {
	margin := 0.0
	if legacy {
		margin = math.Max(cameraHousing, 0)
	}
	return New(screenFrame, margin, outer, inner, aspect)
}

// Changes is the partial-update set accepted by Clone. Nil fields keep the
// receiver's value. VideoSize is re-derived from the resulting viewport
// unless explicitly overridden.
type Changes struct {
	WindowFrame     *geo.Rect
	TopMarginHeight *float64
	OuterTop        *float64
	OuterBottom     *float64
	OuterLeading    *float64
	OuterTrailing   *float64
	InnerTop        *float64
	InnerBottom     *float64
	InnerLeading    *float64
	InnerTrailing   *float64
	VideoAspect     *float64
	VideoSize       *geo.Size
}

// Ptr is a convenience for building Changes literals.
func Ptr[T any](v T) *T { return &v }

// Clone returns a copy of g with the given changes applied and the video
// size re-derived. Cloning with empty Changes yields an identical value.
func (g Geometry) Clone(c Changes) Geometry {
	out := g
	if c.WindowFrame != nil {
		out.WindowFrame = *c.WindowFrame
	}
	if c.TopMarginHeight != nil {
		out.TopMarginHeight = math.Max(*c.TopMarginHeight, 0)
	}
	if c.OuterTop != nil {
		out.Outer.Top = *c.OuterTop
	}
	if c.OuterBottom != nil {
		out.Outer.Bottom = *c.OuterBottom
	}
	if c.OuterLeading != nil {
		out.Outer.Leading = *c.OuterLeading
	}
	if c.OuterTrailing != nil {
		out.Outer.Trailing = *c.OuterTrailing
	}
	if c.InnerTop != nil {
		out.Inner.Top = *c.InnerTop
	}
	if c.InnerBottom != nil {
		out.Inner.Bottom = *c.InnerBottom
	}
	if c.InnerLeading != nil {
		out.Inner.Leading = *c.InnerLeading
	}
	if c.InnerTrailing != nil {
		out.Inner.Trailing = *c.InnerTrailing
	}
	if c.VideoAspect != nil {
		out.VideoAspect = sanitizeAspect(*c.VideoAspect)
	}
	out.Outer = out.Outer.sanitized()
	out.Inner = out.Inner.sanitized()
	if c.VideoSize != nil {
		out.VideoSize = *c.VideoSize
	} else {
		out.VideoSize = FitVideoToContainer(out.VideoAspect, out.VideoContainerSize())
	}
	return out
}

// VideoContainerSize returns the viewport: the window size minus the outer
// bars, minus the camera-housing margin on the height axis.
func (g Geometry) VideoContainerSize() geo.Size {
	total := g.Outer.TotalSize()
	return geo.Size{
		W: math.Max(g.WindowFrame.Size.W-total.W, 0),
		H: math.Max(g.WindowFrame.Size.H-total.H-g.TopMarginHeight, 0),
	}
}

// VideoContainerFrame returns the viewport rect in screen coordinates.
func (g Geometry) VideoContainerFrame() geo.Rect {
	return geo.Rect{
		Origin: geo.Point{
			X: g.WindowFrame.MinX() + g.Outer.Leading,
			Y: g.WindowFrame.MinY() + g.Outer.Bottom,
		},
		Size: g.VideoContainerSize(),
	}
}

// VideoFrame returns the video rect centered inside the viewport.
func (g Geometry) VideoFrame() geo.Rect {
	container := g.VideoContainerFrame()
	return geo.Rect{Size: g.VideoSize}.CenteredIn(container)
}

// MinViewportSize returns the smallest viewport allowed by the global
// floor and by the inside sidebars, which must keep a gap between them.
func (g Geometry) MinViewportSize() geo.Size {
	w := MinViewportWidth
	if sidebars := g.Inner.Leading + g.Inner.Trailing; sidebars > 0 {
		w = int(math.Max(float64(w), sidebars+InterSidebarGap))
	}
	return geo.Size{W: float64(w), H: MinViewportHeight}
}

// MinWindowSize returns the smallest window frame size that still honors
// the minimum viewport plus the outer bars and margin.
func (g Geometry) MinWindowSize() geo.Size {
	minVP := g.MinViewportSize()
	total := g.Outer.TotalSize()
	return geo.Size{
		W: minVP.W + total.W,
		H: minVP.H + total.H + g.TopMarginHeight,
	}
}

// IsValid reports whether the window frame can actually hold the bars and
// margin. Geometries restored from stale persisted state can fail this;
// callers rebuild from a known-good construction path instead of using them.
func (g Geometry) IsValid() bool {
	if g.VideoAspect <= 0 {
		return false
	}
	total := g.Outer.TotalSize()
	return g.WindowFrame.Size.W >= total.W &&
		g.WindowFrame.Size.H >= total.H+g.TopMarginHeight
}

// FitVideoToContainer returns the largest size with the given aspect ratio
// that fits the container. A result within one unit of the container edge
// snaps to the container to absorb floating-point division error. A zero
// container yields a zero size.
func FitVideoToContainer(aspect float64, container geo.Size) geo.Size {
	if container.IsZero() || aspect <= 0 {
		return geo.Size{}
	}
	var fitted geo.Size
	if aspect < container.Aspect() {
		// Width-limited: the container is wider than the video.
		fitted = geo.Size{W: container.H * aspect, H: container.H}
	} else {
		fitted = geo.Size{W: container.W, H: container.W / aspect}
	}
	if math.Abs(fitted.W-container.W) <= fitSnapTolerance {
		fitted.W = container.W
	}
	if math.Abs(fitted.H-container.H) <= fitSnapTolerance {
		fitted.H = container.H
	}
	return fitted
}

func sanitizeAspect(aspect float64) float64 {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return 1
	}
	return aspect
}
