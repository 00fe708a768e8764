package transition

import (
	"math"

	"github.com/llehouerou/viewport/internal/geo"
	"github.com/llehouerou/viewport/internal/geometry"
	"github.com/llehouerou/viewport/internal/layout"
)

// Planner builds transitions. It holds only configuration; Build is pure.
type Planner struct {
	Durations Durations
}

// NewPlanner returns a planner with the default durations.
func NewPlanner() *Planner {
	return &Planner{Durations: DefaultDurations()}
}

// BuildOpts carries the external facts Build needs.
type BuildOpts struct {
	// Derive is forwarded to layout.DeriveState for the target state.
	Derive layout.DeriveOpts

	// ScreenFrame is the target screen's frame: the full frame for full
	// screen targets, the visible frame for windowed constraint. A zero
	// rect means no screen constraint is applied.
	ScreenFrame geo.Rect

	// CameraHousingHeight is the screen's camera notch height.
	CameraHousingHeight float64

	// RestoreGeometry, when set, is the remembered geometry to return to
	// when leaving full screen or music mode.
	RestoreGeometry *geometry.Geometry
}

// Build derives the target state and geometry for the desired spec and
// produces the ordered, phased operation list. A spec and geometry that
// change nothing produce an empty op list.
func (p *Planner) Build(from layout.State, fromGeo geometry.Geometry, toSpec layout.Spec, opts BuildOpts) Transition {
	// A geometry whose bars exceed its window cannot be trusted; rebuild
	// it from the known-good container path instead of propagating it.
	if !fromGeo.IsValid() {
		fromGeo = geometry.FromVideoContainer(
			geo.Rect{Origin: fromGeo.WindowFrame.Origin, Size: fromGeo.VideoContainerSize().Max(fromGeo.MinViewportSize())},
			0, from.OuterBars(), from.InnerBars(), fromGeo.VideoAspect)
	}

	toState := layout.DeriveState(toSpec, opts.Derive)
	preds := ComputePredicates(from, toState)
	toGeo := p.targetGeometry(fromGeo, toState, preds, opts)

	t := Transition{
		FromState:    from,
		ToState:      toState,
		FromGeometry: fromGeo,
		ToGeometry:   toGeo,
		Predicates:   preds,
	}

	if from.Spec == toSpec && fromGeo == toGeo {
		return t
	}

	if !preds.IsFullScreenTransition() {
		if mid := middleGeometry(fromGeo, toGeo, preds); mid != fromGeo {
			t.MiddleGeometry = &mid
		}
	}
	t.Ops = p.assembleOps(&t)
	return t
}

// targetGeometry derives the final geometry for the target state.
func (p *Planner) targetGeometry(fromGeo geometry.Geometry, to layout.State, preds Predicates, opts BuildOpts) geometry.Geometry {
	if to.Spec.Mode == layout.FullScreen {
		return geometry.ForFullScreen(
			opts.ScreenFrame, opts.CameraHousingHeight, to.Spec.LegacyStyle,
			to.OuterBars(), to.InnerBars(), fromGeo.VideoAspect)
	}

	base := fromGeo
	if opts.RestoreGeometry != nil &&
		(preds.ExitingFullScreen || preds.ExitingMusicMode || preds.EnteringMusicMode) {
		base = *opts.RestoreGeometry
	}

	outer, inner := to.OuterBars(), to.InnerBars()
	out := base.WithResizedBars(geometry.BarResize{
		OuterTop:      &outer.Top,
		OuterBottom:   &outer.Bottom,
		OuterLeading:  &outer.Leading,
		OuterTrailing: &outer.Trailing,
		InnerTop:      &inner.Top,
		InnerBottom:   &inner.Bottom,
		InnerLeading:  &inner.Leading,
		InnerTrailing: &inner.Trailing,
	})
	out = out.Clone(geometry.Changes{TopMarginHeight: geometry.Ptr(to.CameraHousingOffset)})

	if opts.ScreenFrame.Size.W > 0 && opts.ScreenFrame.Size.H > 0 {
		frame := out.WindowFrame.Constrained(opts.ScreenFrame)
		out = out.Clone(geometry.Changes{WindowFrame: &frame})
	}
	return out
}

// middleGeometry synthesizes the animation way-point: each bar dimension,
// outer and inner alike, independently takes the smaller of the two layouts' sizes, so
// a panel never overshoots and bounces. A bar whose placement is changing,
// or a sidebar that is closing, is forced through zero instead.
func middleGeometry(fromGeo, toGeo geometry.Geometry, preds Predicates) geometry.Geometry {
	top := math.Min(fromGeo.Outer.Top, toGeo.Outer.Top)
	if preds.TopBarPlacementChanged {
		top = 0
	}
	bottom := math.Min(fromGeo.Outer.Bottom, toGeo.Outer.Bottom)
	if preds.BottomBarPlacementChanged {
		bottom = 0
	}
	leading := math.Min(fromGeo.Outer.Leading, toGeo.Outer.Leading)
	if preds.ClosingLeadingSidebar {
		leading = 0
	}
	trailing := math.Min(fromGeo.Outer.Trailing, toGeo.Outer.Trailing)
	if preds.ClosingTrailingSidebar {
		trailing = 0
	}
	innerTop := math.Min(fromGeo.Inner.Top, toGeo.Inner.Top)
	if preds.TopBarPlacementChanged {
		innerTop = 0
	}
	innerBottom := math.Min(fromGeo.Inner.Bottom, toGeo.Inner.Bottom)
	if preds.BottomBarPlacementChanged {
		innerBottom = 0
	}
	innerLeading := math.Min(fromGeo.Inner.Leading, toGeo.Inner.Leading)
	if preds.ClosingLeadingSidebar {
		innerLeading = 0
	}
	innerTrailing := math.Min(fromGeo.Inner.Trailing, toGeo.Inner.Trailing)
	if preds.ClosingTrailingSidebar {
		innerTrailing = 0
	}
	return fromGeo.WithResizedBars(geometry.BarResize{
		OuterTop:      &top,
		OuterBottom:   &bottom,
		OuterLeading:  &leading,
		OuterTrailing: &trailing,
		InnerTop:      &innerTop,
		InnerBottom:   &innerBottom,
		InnerLeading:  &innerLeading,
		InnerTrailing: &innerTrailing,
	})
}

func (p *Planner) assembleOps(t *Transition) []Op {
	d := p.Durations
	from, to := t.FromState, t.ToState
	preds := t.Predicates

	fades := from.TitleBar != to.TitleBar ||
		from.TrafficLights != to.TrafficLights ||
		from.TitleIconAndText != to.TitleIconAndText ||
		from.Accessories != to.Accessories ||
		from.OSC != to.OSC ||
		preds.OSCPositionChanged ||
		preds.TogglingLegacyStyle ||
		preds.IsFullScreenTransition() ||
		preds.EnteringMusicMode || preds.ExitingMusicMode

	restyles := fades || preds.anySidebarChange() || preds.anyPlacementChange() ||
		from.Spec != to.Spec

	var ops []Op
	if fades {
		ops = append(ops, Op{Kind: OpFadeOutOldViews, Duration: d.Fade})
	}
	if preds.TogglingLegacyStyle {
		// The style-mask swap flashes a black frame if the renderer keeps
		// pushing frames while the decoration is rebuilt.
		ops = append(ops, Op{Kind: OpPauseVideoRender})
	}

	if preds.IsFullScreenTransition() {
		// Full screen enforces a single fixed frame; a close/open bounce
		// through a middle geometry would be redundant.
		if restyles {
			ops = append(ops, Op{Kind: OpUpdateHiddenViews})
		}
		ops = append(ops, Op{
			Kind:     OpSetFullScreenFrame,
			Duration: d.FullScreen,
			Easing:   EasingEaseInEaseOut,
			Geometry: &t.ToGeometry,
		})
	} else {
		if t.MiddleGeometry != nil {
			ops = append(ops, Op{
				Kind:     OpCloseOldPanels,
				Duration: d.Resize,
				Easing:   EasingEaseInEaseOut,
				Geometry: t.MiddleGeometry,
			})
		}
		if restyles {
			ops = append(ops, Op{Kind: OpUpdateHiddenViews})
		}
		opensFrom := t.FromGeometry
		if t.MiddleGeometry != nil {
			opensFrom = *t.MiddleGeometry
		}
		if t.ToGeometry != opensFrom {
			ops = append(ops, Op{
				Kind:     OpOpenNewPanels,
				Duration: d.Resize,
				Easing:   EasingEaseInEaseOut,
				Geometry: &t.ToGeometry,
			})
		}
	}

	if preds.TogglingLegacyStyle {
		ops = append(ops, Op{Kind: OpResumeVideoRender})
	}
	if fades {
		ops = append(ops, Op{Kind: OpFadeInNewViews, Duration: d.Fade})
	}
	if len(ops) > 0 {
		ops = append(ops, Op{Kind: OpPostTransitionWork})
	}
	return ops
}
