package transition

import (
	"testing"

	"github.com/llehouerou/viewport/internal/geo"
	"github.com/llehouerou/viewport/internal/geometry"
	"github.com/llehouerou/viewport/internal/layout"
)

func windowedState(changes layout.SpecChanges) layout.State {
	base := layout.NewSpec(layout.Spec{
		Mode:               layout.Windowed,
		TopBarPlacement:    layout.InsideViewport,
		BottomBarPlacement: layout.InsideViewport,
		EnableOSC:          true,
		OSCPosition:        layout.OSCBottom,
	})
	return layout.DeriveState(base.Clone(changes), layout.DeriveOpts{})
}

func geometryFor(st layout.State) geometry.Geometry {
	return geometry.FromVideoContainer(
		geo.NewRect(100, 100, 1280, 720), 0,
		st.OuterBars(), st.InnerBars(), 16.0/9)
}

func opKinds(ops []Op) []OpKind {
	kinds := make([]OpKind, len(ops))
	for i, op := range ops {
		kinds[i] = op.Kind
	}
	return kinds
}

func kindsEqual(got, want []OpKind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestPlanner_Build_NoOp(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{})
	fromGeo := geometryFor(from)

	tr := p.Build(from, fromGeo, from.Spec, BuildOpts{})
	if !tr.IsNoOp() {
		t.Errorf("identical spec and geometry produced ops: %v", opKinds(tr.Ops))
	}
	if tr.MiddleGeometry != nil {
		t.Error("no-op transition has a middle geometry")
	}
}

func TestPlanner_Build_EnterFullScreen(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{})
	fromGeo := geometryFor(from)
	scrn := geo.NewRect(0, 0, 1920, 1080)

	toSpec := from.Spec.Clone(layout.SpecChanges{
		Mode:        Ptr(layout.FullScreen),
		LegacyStyle: Ptr(true),
	})
	tr := p.Build(from, fromGeo, toSpec, BuildOpts{
		ScreenFrame:         scrn,
		CameraHousingHeight: 32,
		Derive:              layout.DeriveOpts{CameraHousingHeight: 32},
	})

	if !tr.Predicates.EnteringFullScreen {
		t.Fatal("EnteringFullScreen predicate not set")
	}
	if tr.MiddleGeometry != nil {
		t.Error("full screen transition has a middle geometry")
	}
	if tr.ToGeometry.WindowFrame != scrn {
		t.Errorf("ToGeometry frame = %v, want the screen frame", tr.ToGeometry.WindowFrame)
	}
	if tr.ToGeometry.TopMarginHeight != 32 {
		t.Errorf("TopMarginHeight = %v, want the housing height 32", tr.ToGeometry.TopMarginHeight)
	}

	kinds := opKinds(tr.Ops)
	var sawFrame, sawClose, sawOpen bool
	for _, k := range kinds {
		switch k {
		case OpSetFullScreenFrame:
			sawFrame = true
		case OpCloseOldPanels:
			sawClose = true
		case OpOpenNewPanels:
			sawOpen = true
		}
	}
	if !sawFrame {
		t.Errorf("ops %v missing set-fullscreen-frame", kinds)
	}
	if sawClose || sawOpen {
		t.Errorf("ops %v contain panel phases in a full screen transition", kinds)
	}
}

func TestPlanner_Build_ExitFullScreenRestores(t *testing.T) {
	p := NewPlanner()
	fsSpec := layout.NewSpec(layout.Spec{Mode: layout.FullScreen})
	from := layout.DeriveState(fsSpec, layout.DeriveOpts{})
	fromGeo := geometry.ForFullScreen(
		geo.NewRect(0, 0, 1920, 1080), 0, false,
		from.OuterBars(), from.InnerBars(), 16.0/9)

	remembered := geometryFor(windowedState(layout.SpecChanges{}))
	toSpec := fsSpec.Clone(layout.SpecChanges{Mode: Ptr(layout.Windowed)})
	tr := p.Build(from, fromGeo, toSpec, BuildOpts{
		ScreenFrame:     geo.NewRect(0, 0, 1920, 1080),
		RestoreGeometry: &remembered,
	})

	if !tr.Predicates.ExitingFullScreen {
		t.Fatal("ExitingFullScreen predicate not set")
	}
	if tr.ToGeometry.WindowFrame != remembered.WindowFrame {
		t.Errorf("ToGeometry frame = %v, want remembered %v",
			tr.ToGeometry.WindowFrame, remembered.WindowFrame)
	}
}

func TestPlanner_Build_MiddleGeometryForcedThroughZero(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{
		TopBarPlacement: Ptr(layout.InsideViewport),
		LeadingSidebar: Ptr(layout.Sidebar{
			Placement: layout.OutsideViewport,
			Visible:   true,
			Tab:       layout.TabPlaylist,
		}),
	})
	fromGeo := geometryFor(from)

	// Close the leading sidebar and move the top bar outside in one step.
	toSpec := from.Spec.Clone(layout.SpecChanges{
		TopBarPlacement: Ptr(layout.OutsideViewport),
		LeadingSidebar: Ptr(layout.Sidebar{
			Placement: layout.OutsideViewport,
			Visible:   false,
			Tab:       layout.TabPlaylist,
		}),
	})
	tr := p.Build(from, fromGeo, toSpec, BuildOpts{})

	if !tr.Predicates.ClosingLeadingSidebar {
		t.Fatal("ClosingLeadingSidebar predicate not set")
	}
	if !tr.Predicates.TopBarPlacementChanged {
		t.Fatal("TopBarPlacementChanged predicate not set")
	}
	if tr.MiddleGeometry == nil {
		t.Fatal("no middle geometry")
	}
	if tr.MiddleGeometry.Outer.Leading != 0 {
		t.Errorf("middle leading = %v, want 0 for a closing sidebar",
			tr.MiddleGeometry.Outer.Leading)
	}
	if tr.MiddleGeometry.Outer.Top != 0 {
		t.Errorf("middle top = %v, want 0 for a placement change",
			tr.MiddleGeometry.Outer.Top)
	}
	if tr.MiddleGeometry.Inner.Top != 0 {
		t.Errorf("middle inner top = %v, want 0 for a placement change",
			tr.MiddleGeometry.Inner.Top)
	}
}

func TestPlanner_Build_MiddleClosesInsideSidebar(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{
		LeadingSidebar: Ptr(layout.Sidebar{
			Placement: layout.InsideViewport,
			Visible:   true,
			Tab:       layout.TabSettings,
			Width:     280,
		}),
	})
	fromGeo := geometryFor(from)

	toSpec := from.Spec.Clone(layout.SpecChanges{
		LeadingSidebar: Ptr(layout.Sidebar{
			Placement: layout.InsideViewport,
			Visible:   false,
			Tab:       layout.TabSettings,
			Width:     280,
		}),
	})
	tr := p.Build(from, fromGeo, toSpec, BuildOpts{})

	if !tr.Predicates.ClosingLeadingSidebar {
		t.Fatal("ClosingLeadingSidebar predicate not set")
	}
	if tr.MiddleGeometry == nil {
		t.Fatal("no middle geometry")
	}
	if tr.MiddleGeometry.Inner.Leading != 0 {
		t.Errorf("middle inner leading = %v, want 0 for a closing sidebar",
			tr.MiddleGeometry.Inner.Leading)
	}
}

func TestPlanner_Build_EnterMusicModeRestores(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{})
	fromGeo := geometryFor(from)

	toSpec := from.Spec.Clone(layout.SpecChanges{Mode: Ptr(layout.MusicMode)})
	toState := layout.DeriveState(toSpec, layout.DeriveOpts{})
	remembered := geometry.FromVideoContainer(
		geo.NewRect(500, 500, 400, 300), 0,
		toState.OuterBars(), toState.InnerBars(), 16.0/9)

	tr := p.Build(from, fromGeo, toSpec, BuildOpts{RestoreGeometry: &remembered})

	if !tr.Predicates.EnteringMusicMode {
		t.Fatal("EnteringMusicMode predicate not set")
	}
	if tr.ToGeometry.WindowFrame != remembered.WindowFrame {
		t.Errorf("ToGeometry frame = %v, want remembered %v",
			tr.ToGeometry.WindowFrame, remembered.WindowFrame)
	}
}

func TestPlanner_Build_MiddleTakesSmallerBar(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{
		TrailingSidebar: Ptr(layout.Sidebar{
			Placement: layout.OutsideViewport,
			Visible:   true,
			Tab:       layout.TabPlaylist,
			Width:     320,
		}),
	})
	fromGeo := geometryFor(from)

	// Same sidebar, same tab, narrower. Not a close, so the middle keeps
	// the smaller of the two widths.
	toSpec := from.Spec.Clone(layout.SpecChanges{
		TrailingSidebar: Ptr(layout.Sidebar{
			Placement: layout.OutsideViewport,
			Visible:   true,
			Tab:       layout.TabPlaylist,
			Width:     240,
		}),
	})
	tr := p.Build(from, fromGeo, toSpec, BuildOpts{})

	if tr.Predicates.ClosingTrailingSidebar || tr.Predicates.OpeningTrailingSidebar {
		t.Fatal("pure width change classified as open/close")
	}
	if tr.MiddleGeometry == nil {
		t.Fatal("no middle geometry")
	}
	if tr.MiddleGeometry.Outer.Trailing != 240 {
		t.Errorf("middle trailing = %v, want the smaller width 240",
			tr.MiddleGeometry.Outer.Trailing)
	}
}

func TestPlanner_Build_LegacyToggleBracketsRender(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{})
	fromGeo := geometryFor(from)

	toSpec := from.Spec.Clone(layout.SpecChanges{LegacyStyle: Ptr(true)})
	tr := p.Build(from, fromGeo, toSpec, BuildOpts{})

	kinds := opKinds(tr.Ops)
	pause, resume := -1, -1
	for i, k := range kinds {
		switch k {
		case OpPauseVideoRender:
			pause = i
		case OpResumeVideoRender:
			resume = i
		}
	}
	if pause < 0 || resume < 0 {
		t.Fatalf("ops %v missing pause/resume bracket", kinds)
	}
	if pause >= resume {
		t.Errorf("pause at %d not before resume at %d", pause, resume)
	}
	for i := pause + 1; i < resume; i++ {
		if kinds[i] == OpUpdateHiddenViews {
			return
		}
	}
	t.Errorf("ops %v do not restyle inside the pause/resume bracket", kinds)
}

func TestPlanner_Build_PhaseOrder(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{
		EnableOSC: Ptr(false),
		LeadingSidebar: Ptr(layout.Sidebar{
			Placement: layout.OutsideViewport,
			Visible:   true,
			Tab:       layout.TabPlaylist,
		}),
	})
	fromGeo := geometryFor(from)

	// Close the sidebar and flip the OSC on: fades plus both panel phases.
	toSpec := from.Spec.Clone(layout.SpecChanges{
		EnableOSC: Ptr(true),
		LeadingSidebar: Ptr(layout.Sidebar{
			Placement: layout.OutsideViewport,
			Visible:   false,
			Tab:       layout.TabPlaylist,
		}),
	})
	tr := p.Build(from, fromGeo, toSpec, BuildOpts{})

	want := []OpKind{
		OpFadeOutOldViews,
		OpCloseOldPanels,
		OpUpdateHiddenViews,
		OpOpenNewPanels,
		OpFadeInNewViews,
		OpPostTransitionWork,
	}
	if got := opKinds(tr.Ops); !kindsEqual(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
}

func TestPlanner_Build_ConstrainsToScreen(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{})
	fromGeo := geometryFor(from)
	scrn := geo.NewRect(0, 0, 1000, 700)

	// Same spec, but the frame hangs off the given screen: the plan moves
	// the window back on screen without any fade or restyle phase.
	tr := p.Build(from, fromGeo, from.Spec, BuildOpts{ScreenFrame: scrn})

	if tr.IsNoOp() {
		t.Fatal("off-screen frame planned as a no-op")
	}
	if !scrn.Contains(tr.ToGeometry.WindowFrame) {
		t.Errorf("ToGeometry frame %v escapes screen %v",
			tr.ToGeometry.WindowFrame, scrn)
	}
	for _, k := range opKinds(tr.Ops) {
		switch k {
		case OpFadeOutOldViews, OpFadeInNewViews, OpUpdateHiddenViews:
			t.Errorf("geometry-only transition contains %v", k)
		}
	}
}

func TestPlanner_Build_RebuildsInvalidFromGeometry(t *testing.T) {
	p := NewPlanner()
	from := windowedState(layout.SpecChanges{})

	bad := geometryFor(from)
	bad.WindowFrame.Size = geo.Size{W: 10, H: 10}
	if bad.IsValid() {
		t.Fatal("test geometry unexpectedly valid")
	}

	tr := p.Build(from, bad, from.Spec, BuildOpts{})
	if !tr.FromGeometry.IsValid() {
		t.Errorf("planner kept an invalid from geometry: %+v", tr.FromGeometry)
	}
}

func TestImmediate_StopsWhenStale(t *testing.T) {
	tr := &Transition{Ops: []Op{
		{Kind: OpFadeOutOldViews},
		{Kind: OpUpdateHiddenViews},
		{Kind: OpFadeInNewViews},
	}}
	var applied []OpKind
	Immediate{}.Run(tr, func(op Op) bool {
		applied = append(applied, op.Kind)
		return len(applied) < 2
	})
	if len(applied) != 2 {
		t.Errorf("runner applied %v after apply reported stale", applied)
	}
}

// Ptr builds pointer literals for SpecChanges.
func Ptr[T any](v T) *T { return &v }
