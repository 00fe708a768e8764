package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/viewport/internal/geo"
	"github.com/llehouerou/viewport/internal/geometry"
	"github.com/llehouerou/viewport/internal/layout"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenAt(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func sampleLayout() SavedLayout {
	spec := layout.NewSpec(layout.Spec{
		Mode:               layout.Windowed,
		LegacyStyle:        true,
		TopBarPlacement:    layout.OutsideViewport,
		BottomBarPlacement: layout.InsideViewport,
		EnableOSC:          true,
		OSCPosition:        layout.OSCBottom,
		LeadingSidebar: layout.Sidebar{
			Placement: layout.OutsideViewport,
			Visible:   true,
			Tab:       layout.TabPlaylist,
			Width:     280,
		},
		TrailingSidebar: layout.Sidebar{
			Placement: layout.InsideViewport,
			Tab:       layout.TabSettings,
			Width:     320,
		},
	})
	g := geometry.New(
		geo.NewRect(120.5, 80.25, 1280, 800), 32,
		geometry.Bars{Top: 28, Leading: 280},
		geometry.Bars{Bottom: 44, Trailing: 320},
		16.0/9,
	)
	return SavedLayout{Spec: spec, Geometry: g}
}

func TestManager_GetLayout_FirstRun(t *testing.T) {
	m := openTestManager(t)

	saved, err := m.GetLayout(layout.Windowed)
	require.NoError(t, err)
	assert.Nil(t, saved, "first run must yield no saved layout, not an error")
}

func TestManager_SaveLayout_RoundTrip(t *testing.T) {
	m := openTestManager(t)
	in := sampleLayout()

	require.NoError(t, m.SaveLayout(layout.Windowed, in))

	out, err := m.GetLayout(layout.Windowed)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, in.Spec, out.Spec)
	assert.Equal(t, in.Geometry.WindowFrame, out.Geometry.WindowFrame)
	assert.Equal(t, in.Geometry.TopMarginHeight, out.Geometry.TopMarginHeight)
	assert.Equal(t, in.Geometry.Outer, out.Geometry.Outer)
	assert.Equal(t, in.Geometry.Inner, out.Geometry.Inner)
	assert.InDelta(t, in.Geometry.VideoAspect, out.Geometry.VideoAspect, 1e-9)
	assert.InDelta(t, in.Geometry.VideoSize.W, out.Geometry.VideoSize.W, 0.01)
	assert.InDelta(t, in.Geometry.VideoSize.H, out.Geometry.VideoSize.H, 0.01)
	assert.True(t, out.Geometry.IsValid())
}

func TestManager_SaveLayout_ReplacesPreviousRow(t *testing.T) {
	m := openTestManager(t)
	in := sampleLayout()
	require.NoError(t, m.SaveLayout(layout.Windowed, in))

	frame := geo.NewRect(0, 0, 960, 600)
	in.Geometry = in.Geometry.Clone(geometry.Changes{WindowFrame: &frame})
	require.NoError(t, m.SaveLayout(layout.Windowed, in))

	out, err := m.GetLayout(layout.Windowed)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, frame, out.Geometry.WindowFrame)
}

func TestManager_SaveLayout_ModesAreIndependent(t *testing.T) {
	m := openTestManager(t)
	windowed := sampleLayout()
	require.NoError(t, m.SaveLayout(layout.Windowed, windowed))

	music := sampleLayout()
	music.Spec = layout.NewSpec(layout.Spec{Mode: layout.MusicMode})
	music.Geometry = geometry.New(
		geo.NewRect(40, 40, 400, 400), 0,
		geometry.Bars{Bottom: layout.MusicModeControlBarHeight},
		geometry.Bars{}, 1,
	)
	require.NoError(t, m.SaveLayout(layout.MusicMode, music))

	outW, err := m.GetLayout(layout.Windowed)
	require.NoError(t, err)
	require.NotNil(t, outW)
	assert.Equal(t, windowed.Spec, outW.Spec)

	outM, err := m.GetLayout(layout.MusicMode)
	require.NoError(t, err)
	require.NotNil(t, outM)
	assert.Equal(t, music.Spec, outM.Spec)
	assert.Equal(t, music.Geometry.WindowFrame, outM.Geometry.WindowFrame)
}
