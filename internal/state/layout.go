package state

import (
	"database/sql"
	"errors"

	"github.com/llehouerou/viewport/internal/geo"
	"github.com/llehouerou/viewport/internal/geometry"
	"github.com/llehouerou/viewport/internal/layout"
)

// SavedLayout is the persisted shape: a spec and the geometry that went
// with it, saved per window mode.
type SavedLayout struct {
	Spec     layout.Spec
	Geometry geometry.Geometry
}

// GetLayout returns the saved layout for a mode, or nil on first run.
func (m *Manager) GetLayout(mode layout.Mode) (*SavedLayout, error) {
	row := m.db.QueryRow(`
		SELECT legacy_style, top_bar_placement, bottom_bar_placement,
		       enable_osc, osc_position,
		       leading_sidebar_placement, leading_sidebar_visible,
		       leading_sidebar_tab, leading_sidebar_width,
		       trailing_sidebar_placement, trailing_sidebar_visible,
		       trailing_sidebar_tab, trailing_sidebar_width,
		       frame_x, frame_y, frame_w, frame_h, top_margin,
		       outer_top, outer_bottom, outer_leading, outer_trailing,
		       inner_top, inner_bottom, inner_leading, inner_trailing,
		       video_aspect, video_w, video_h
		FROM layout_state WHERE mode = ?
	`, int(mode))

	var (
		legacy, oscEnabled                 bool
		topPl, bottomPl, oscPos            int
		leadPl, trailPl, leadTab, trailTab int
		leadVis, trailVis                  bool
		leadW, trailW                      float64
		fx, fy, fw, fh, margin             float64
		ot, ob, ol, otr                    float64
		it, ib, il, itr                    float64
		aspect, vw, vh                     float64
	)
	err := row.Scan(&legacy, &topPl, &bottomPl, &oscEnabled, &oscPos,
		&leadPl, &leadVis, &leadTab, &leadW,
		&trailPl, &trailVis, &trailTab, &trailW,
		&fx, &fy, &fw, &fh, &margin,
		&ot, &ob, &ol, &otr, &it, &ib, &il, &itr,
		&aspect, &vw, &vh)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	spec := layout.NewSpec(layout.Spec{
		Mode:               mode,
		LegacyStyle:        legacy,
		TopBarPlacement:    layout.Placement(topPl),
		BottomBarPlacement: layout.Placement(bottomPl),
		EnableOSC:          oscEnabled,
		OSCPosition:        layout.OSCPosition(oscPos),
		LeadingSidebar: layout.Sidebar{
			Placement: layout.Placement(leadPl),
			Visible:   leadVis,
			Tab:       layout.SidebarTab(leadTab),
			Width:     leadW,
		},
		TrailingSidebar: layout.Sidebar{
			Placement: layout.Placement(trailPl),
			Visible:   trailVis,
			Tab:       layout.SidebarTab(trailTab),
			Width:     trailW,
		},
	})

	g := geometry.New(
		geo.NewRect(fx, fy, fw, fh),
		margin,
		geometry.Bars{Top: ot, Bottom: ob, Leading: ol, Trailing: otr},
		geometry.Bars{Top: it, Bottom: ib, Leading: il, Trailing: itr},
		aspect,
	)
	if vw > 0 && vh > 0 {
		g = g.Clone(geometry.Changes{VideoSize: &geo.Size{W: vw, H: vh}})
	}

	return &SavedLayout{Spec: spec, Geometry: g}, nil
}

// SaveLayout persists the layout for a mode, replacing any previous row.
func (m *Manager) SaveLayout(mode layout.Mode, saved SavedLayout) error {
	s, g := saved.Spec, saved.Geometry
	_, err := m.db.Exec(`
		INSERT INTO layout_state (
			mode, legacy_style, top_bar_placement, bottom_bar_placement,
			enable_osc, osc_position,
			leading_sidebar_placement, leading_sidebar_visible,
			leading_sidebar_tab, leading_sidebar_width,
			trailing_sidebar_placement, trailing_sidebar_visible,
			trailing_sidebar_tab, trailing_sidebar_width,
			frame_x, frame_y, frame_w, frame_h, top_margin,
			outer_top, outer_bottom, outer_leading, outer_trailing,
			inner_top, inner_bottom, inner_leading, inner_trailing,
			video_aspect, video_w, video_h
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(mode) DO UPDATE SET
			legacy_style = excluded.legacy_style,
			top_bar_placement = excluded.top_bar_placement,
			bottom_bar_placement = excluded.bottom_bar_placement,
			enable_osc = excluded.enable_osc,
			osc_position = excluded.osc_position,
			leading_sidebar_placement = excluded.leading_sidebar_placement,
			leading_sidebar_visible = excluded.leading_sidebar_visible,
			leading_sidebar_tab = excluded.leading_sidebar_tab,
			leading_sidebar_width = excluded.leading_sidebar_width,
			trailing_sidebar_placement = excluded.trailing_sidebar_placement,
			trailing_sidebar_visible = excluded.trailing_sidebar_visible,
			trailing_sidebar_tab = excluded.trailing_sidebar_tab,
			trailing_sidebar_width = excluded.trailing_sidebar_width,
			frame_x = excluded.frame_x,
			frame_y = excluded.frame_y,
			frame_w = excluded.frame_w,
			frame_h = excluded.frame_h,
			top_margin = excluded.top_margin,
			outer_top = excluded.outer_top,
			outer_bottom = excluded.outer_bottom,
			outer_leading = excluded.outer_leading,
			outer_trailing = excluded.outer_trailing,
			inner_top = excluded.inner_top,
			inner_bottom = excluded.inner_bottom,
			inner_leading = excluded.inner_leading,
			inner_trailing = excluded.inner_trailing,
			video_aspect = excluded.video_aspect,
			video_w = excluded.video_w,
			video_h = excluded.video_h
	`, int(mode), s.LegacyStyle, int(s.TopBarPlacement), int(s.BottomBarPlacement),
		s.EnableOSC, int(s.OSCPosition),
		int(s.LeadingSidebar.Placement), s.LeadingSidebar.Visible,
		int(s.LeadingSidebar.Tab), s.LeadingSidebar.Width,
		int(s.TrailingSidebar.Placement), s.TrailingSidebar.Visible,
		int(s.TrailingSidebar.Tab), s.TrailingSidebar.Width,
		g.WindowFrame.Origin.X, g.WindowFrame.Origin.Y,
		g.WindowFrame.Size.W, g.WindowFrame.Size.H, g.TopMarginHeight,
		g.Outer.Top, g.Outer.Bottom, g.Outer.Leading, g.Outer.Trailing,
		g.Inner.Top, g.Inner.Bottom, g.Inner.Leading, g.Inner.Trailing,
		g.VideoAspect, g.VideoSize.W, g.VideoSize.H)
	return err
}
