package geometry

import (
	"math"
	"regexp"

	"github.com/llehouerou/viewport/internal/geo"
)

// Directive is a parsed external geometry request, as accepted by playback
// engines: an optional size (width or height, absolute units or percent of
// the screen) and optional signed offsets. A positive-signed offset is
// measured from the near screen edge (left/bottom); a negative-signed one
// from the far edge, with the window's own size subtracted so the value
// positions the window's far edge.
type Directive struct {
	Width  Dimension
	Height Dimension
	X      Offset
	Y      Offset
}

// Dimension is an optional size component of a Directive.
type Dimension struct {
	Valid   bool
	Percent bool
	Value   float64
}

// Offset is an optional signed position component of a Directive.
type Offset struct {
	Valid   bool
	Percent bool
	FromFar bool // measured from the far (right/top) edge
	Value   float64
}

// HasSize returns true if the directive carries a width or height.
func (d Directive) HasSize() bool {
	return d.Width.Valid || d.Height.Valid
}

// HasPosition returns true if the directive carries an x or y offset.
func (d Directive) HasPosition() bool {
	return d.X.Valid || d.Y.Valid
}

// directiveRe matches [W[xH]][(+|-)x(+|-)y], each number optionally
// percent-suffixed, mirroring the playback engine's geometry option format.
var directiveRe = regexp.MustCompile(
	`^(?:(\d+%?))?(?:x(\d+%?))?(?:([+-]\d+%?)([+-]\d+%?))?$`)

var numRe = regexp.MustCompile(`^([+-]?)(\d+)(%?)$`)

// ParseDirective parses a geometry directive string. An empty or malformed
// string yields ok == false; callers fall back to normal sizing.
func ParseDirective(s string) (Directive, bool) {
	if s == "" {
		return Directive{}, false
	}
	m := directiveRe.FindStringSubmatch(s)
	if m == nil {
		return Directive{}, false
	}
	var d Directive
	d.Width = parseDimension(m[1])
	d.Height = parseDimension(m[2])
	d.X = parseOffset(m[3])
	d.Y = parseOffset(m[4])
	if !d.HasSize() && !d.HasPosition() {
		return Directive{}, false
	}
	return d, true
}

func parseDimension(s string) Dimension {
	if s == "" {
		return Dimension{}
	}
	m := numRe.FindStringSubmatch(s)
	if m == nil {
		return Dimension{}
	}
	return Dimension{Valid: true, Percent: m[3] == "%", Value: atofDigits(m[2])}
}

func parseOffset(s string) Offset {
	if s == "" {
		return Offset{}
	}
	m := numRe.FindStringSubmatch(s)
	if m == nil {
		return Offset{}
	}
	return Offset{
		Valid:   true,
		Percent: m[3] == "%",
		FromFar: m[1] == "-",
		Value:   atofDigits(m[2]),
	}
}

func atofDigits(s string) float64 {
	var v float64
	for _, c := range s {
		v = v*10 + float64(c-'0')
	}
	return v
}

// ApplyDirective returns a geometry positioned and sized per the directive
// against the given screen frame. Width and height are mutually exclusive:
// whichever is present re-derives the other through the aspect ratio (width
// wins if both appear). A directive with a size but no position centers the
// window on the screen. The screen's own offset is added last, after all
// edge-relative math, so percentages are relative to the screen size alone.
func (g Geometry) ApplyDirective(d Directive, desiredVideo geo.Size, screen geo.Rect) Geometry {
	video := FitVideoToContainer(g.VideoAspect, desiredVideo)
	if video.IsZero() {
		video = g.VideoSize
	}

	switch {
	case d.Width.Valid:
		w := d.Width.Value
		if d.Width.Percent {
			w = math.Floor(screen.Size.W * d.Width.Value / 100)
		}
		video = geo.Size{W: w, H: w / g.VideoAspect}
	case d.Height.Valid:
		h := d.Height.Value
		if d.Height.Percent {
			h = math.Floor(screen.Size.H * d.Height.Value / 100)
		}
		video = geo.Size{W: h * g.VideoAspect, H: h}
	}

	within := screen
	scaled := g.ScaleViewport(video, ScaleOpts{Within: &within})

	frame := scaled.WindowFrame
	// Positions are computed in screen-local space; the screen origin is
	// added at the very end.
	frame.Origin = geo.Point{
		X: screen.MidX() - frame.Size.W/2 - screen.MinX(),
		Y: screen.MidY() - frame.Size.H/2 - screen.MinY(),
	}
	if d.X.Valid {
		frame.Origin.X = resolveOffset(d.X, screen.Size.W, frame.Size.W)
	}
	if d.Y.Valid {
		frame.Origin.Y = resolveOffset(d.Y, screen.Size.H, frame.Size.H)
	}
	frame.Origin.X += screen.MinX()
	frame.Origin.Y += screen.MinY()
	frame = frame.Constrained(screen)

	return scaled.Clone(Changes{WindowFrame: &frame})
}

func resolveOffset(o Offset, screenExtent, windowExtent float64) float64 {
	v := o.Value
	if o.Percent {
		v = screenExtent * o.Value / 100
	}
	if o.FromFar {
		return screenExtent - v - windowExtent
	}
	return v
}
