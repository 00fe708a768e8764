// Package geo provides scalar geometry value types for window layout math.
// Coordinates follow the windowing convention of a bottom-left origin: the
// Y axis grows upward, so a window's bottom edge is at MinY.
package geo

import "math"

// Point is a position in screen units.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair in screen units.
type Size struct {
	W float64
	H float64
}

// Aspect returns the width/height ratio, or 0 for a degenerate height.
func (s Size) Aspect() float64 {
	if s.H == 0 {
		return 0
	}
	return s.W / s.H
}

// IsZero returns true if either dimension is zero or negative.
func (s Size) IsZero() bool {
	return s.W <= 0 || s.H <= 0
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{W: s.W + o.W, H: s.H + o.H}
}

// Sub returns the component-wise difference, floored at zero.
func (s Size) Sub(o Size) Size {
	return Size{W: math.Max(s.W-o.W, 0), H: math.Max(s.H-o.H, 0)}
}

// Scaled returns the size multiplied by factor.
func (s Size) Scaled(factor float64) Size {
	return Size{W: s.W * factor, H: s.H * factor}
}

// Rounded returns the size with both dimensions rounded to whole units.
func (s Size) Rounded() Size {
	return Size{W: math.Round(s.W), H: math.Round(s.H)}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(o Size) Size {
	return Size{W: math.Max(s.W, o.W), H: math.Max(s.H, o.H)}
}

// Min returns the component-wise minimum of two sizes.
func (s Size) Min(o Size) Size {
	return Size{W: math.Min(s.W, o.W), H: math.Min(s.H, o.H)}
}

// Fits returns true if s fits inside o on both axes.
func (s Size) Fits(o Size) bool {
	return s.W <= o.W && s.H <= o.H
}

// Rect is an axis-aligned rectangle with a bottom-left origin.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect builds a rectangle from origin and size components.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the bottom edge.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.W }

// MaxY returns the top edge.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.H }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.W/2 }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.Origin.Y + r.Size.H/2 }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Contains returns true if other lies fully inside r.
func (r Rect) Contains(other Rect) bool {
	return other.MinX() >= r.MinX() && other.MaxX() <= r.MaxX() &&
		other.MinY() >= r.MinY() && other.MaxY() <= r.MaxY()
}

// CenteredIn returns r repositioned so its center matches outer's center.
func (r Rect) CenteredIn(outer Rect) Rect {
	return Rect{
		Origin: Point{
			X: outer.MidX() - r.Size.W/2,
			Y: outer.MidY() - r.Size.H/2,
		},
		Size: r.Size,
	}
}

// Constrained returns r translated, and if necessary shrunk, so it lies
// fully inside bound. Translation happens before any size clamping so a
// rect that fits is never resized.
func (r Rect) Constrained(bound Rect) Rect {
	out := r
	if out.Size.W > bound.Size.W {
		out.Size.W = bound.Size.W
	}
	if out.Size.H > bound.Size.H {
		out.Size.H = bound.Size.H
	}
	if out.MinX() < bound.MinX() {
		out.Origin.X = bound.MinX()
	} else if out.MaxX() > bound.MaxX() {
		out.Origin.X = bound.MaxX() - out.Size.W
	}
	if out.MinY() < bound.MinY() {
		out.Origin.Y = bound.MinY()
	} else if out.MaxY() > bound.MaxY() {
		out.Origin.Y = bound.MaxY() - out.Size.H
	}
	return out
}
