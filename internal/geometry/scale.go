package geometry

import (
	"math"

	"github.com/llehouerou/viewport/internal/geo"
)

// ScaleOpts controls viewport and video scaling.
type ScaleOpts struct {
	// Within, when non-nil, bounds the resulting window frame: the viewport
	// is clamped so the frame fits, and the frame is translated fully
	// inside the rect afterwards.
	Within *geo.Rect

	// LockViewportToVideo forces the viewport equal to the fitted video
	// size, leaving no empty space around the video.
	LockViewportToVideo bool

	// Recenter re-centers the frame in Within instead of preserving the
	// previous window center.
	Recenter bool
}

// ScaleViewport returns a geometry whose viewport is the requested size,
// clamped to the minimum viewport and to the optional bounding rect. The
// viewport is rounded to whole units to prevent drift across repeated
// scaling, and the window origin moves so the previous center is kept.
func (g Geometry) ScaleViewport(desired geo.Size, opts ScaleOpts) Geometry {
	viewport := desired.Max(g.MinViewportSize())

	total := g.Outer.TotalSize()
	if opts.Within != nil {
		bound := geo.Size{
			W: opts.Within.Size.W - total.W,
			H: opts.Within.Size.H - total.H - g.TopMarginHeight,
		}
		// A degenerate bound (bars larger than the rect) wins over the
		// minimum: the frame must fit the screen no matter what.
		viewport = viewport.Min(bound.Max(geo.Size{}))
	}

	video := FitVideoToContainer(g.VideoAspect, viewport)
	if opts.LockViewportToVideo {
		viewport = video
	}
	viewport = viewport.Rounded()

	newSize := geo.Size{
		W: viewport.W + total.W,
		H: viewport.H + total.H + g.TopMarginHeight,
	}
	frame := geo.Rect{
		Origin: geo.Point{
			X: g.WindowFrame.Origin.X - (newSize.W-g.WindowFrame.Size.W)/2,
			Y: g.WindowFrame.Origin.Y - (newSize.H-g.WindowFrame.Size.H)/2,
		},
		Size: newSize,
	}
	if opts.Within != nil {
		if opts.Recenter {
			frame = frame.CenteredIn(*opts.Within)
		}
		frame = frame.Constrained(*opts.Within)
	}

	out := g.Clone(Changes{WindowFrame: &frame})
	if opts.LockViewportToVideo {
		out.VideoSize = out.VideoContainerSize()
	}
	return out
}

// ScaleVideo returns a geometry whose video is the requested size. When the
// viewport is locked to the video the viewport simply becomes the video
// size; otherwise the current viewport is scaled by the same ratio so any
// empty space around the video is preserved proportionally.
func (g Geometry) ScaleVideo(desiredVideo geo.Size, opts ScaleOpts) Geometry {
	video := FitVideoToContainer(g.VideoAspect, desiredVideo)
	if video.IsZero() {
		return g
	}

	var viewport geo.Size
	if opts.LockViewportToVideo || g.VideoSize.IsZero() {
		viewport = video
	} else {
		ratio := video.W / g.VideoSize.W
		viewport = g.VideoContainerSize().Scaled(ratio)
	}
	return g.ScaleViewport(viewport, opts)
}

// BarResize is the partial-update set accepted by WithResizedBars. Nil
// fields keep the current size.
type BarResize struct {
	OuterTop      *float64
	OuterBottom   *float64
	OuterLeading  *float64
	OuterTrailing *float64
	InnerTop      *float64
	InnerBottom   *float64
	InnerLeading  *float64
	InnerTrailing *float64
}

// WithResizedBars adjusts bar sizes while keeping the viewport intact: each
// outer bar change grows or shrinks the window by the delta on its axis,
// and for the leading and bottom edges shifts the origin by the same delta
// so the opposite edge stays fixed. Inner bars overlay the viewport and
// never move the frame.
func (g Geometry) WithResizedBars(r BarResize) Geometry {
	frame := g.WindowFrame
	outer := g.Outer

	if r.OuterTop != nil {
		delta := math.Max(*r.OuterTop, 0) - outer.Top
		outer.Top += delta
		frame.Size.H += delta
	}
	if r.OuterBottom != nil {
		delta := math.Max(*r.OuterBottom, 0) - outer.Bottom
		outer.Bottom += delta
		frame.Size.H += delta
		frame.Origin.Y -= delta
	}
	if r.OuterLeading != nil {
		delta := math.Max(*r.OuterLeading, 0) - outer.Leading
		outer.Leading += delta
		frame.Size.W += delta
		frame.Origin.X -= delta
	}
	if r.OuterTrailing != nil {
		delta := math.Max(*r.OuterTrailing, 0) - outer.Trailing
		outer.Trailing += delta
		frame.Size.W += delta
	}

	return g.Clone(Changes{
		WindowFrame:   &frame,
		OuterTop:      &outer.Top,
		OuterBottom:   &outer.Bottom,
		OuterLeading:  &outer.Leading,
		OuterTrailing: &outer.Trailing,
		InnerTop:      r.InnerTop,
		InnerBottom:   r.InnerBottom,
		InnerLeading:  r.InnerLeading,
		InnerTrailing: r.InnerTrailing,
	})
}
