// Package prefs loads user preferences from layered TOML files. The engine
// reads these as plain enums and booleans; it does not own the storage.
package prefs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/viewport/internal/layout"
)

// Resize-on-open strategies.
const (
	ResizeNever = "never" // keep the current window size
	ResizeFit   = "fit"   // size the video to a fraction of the screen
	ResizeExact = "exact" // size the video to its natural display size
)

const appName = "viewport"

// Prefs holds the layout preferences.
type Prefs struct {
	TopBarPlacement    string `koanf:"top_bar_placement"`    // "inside" or "outside"
	BottomBarPlacement string `koanf:"bottom_bar_placement"` // "inside" or "outside"

	EnableOSC   bool   `koanf:"enable_osc"`
	OSCPosition string `koanf:"osc_position"` // "floating", "top" or "bottom"

	LegacyStyle bool `koanf:"legacy_style"`

	LockViewportToVideo  bool  `koanf:"lock_viewport_to_video"`
	AllowEmptySpace      *bool `koanf:"allow_empty_space_around_video"`
	AllowInCameraHousing *bool `koanf:"allow_in_camera_housing"`

	ResizeOnOpen string  `koanf:"resize_on_open"` // "never", "fit" or "exact"
	ResizeRatio  float64 `koanf:"resize_ratio"`   // screen fraction for "fit"

	LeadingSidebarPlacement  string  `koanf:"leading_sidebar_placement"`
	TrailingSidebarPlacement string  `koanf:"trailing_sidebar_placement"`
	SidebarWidth             float64 `koanf:"sidebar_width"`
}

// Load reads preferences from the config paths in priority order (last
// wins) and fills defaults for anything unset.
func Load() (*Prefs, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	p := &Prefs{}
	if err := k.Unmarshal("", p); err != nil {
		return nil, err
	}
	p.fillDefaults()
	return p, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		"config.toml",
	}
}

func (p *Prefs) fillDefaults() {
	if p.TopBarPlacement == "" {
		p.TopBarPlacement = "inside"
	}
	if p.BottomBarPlacement == "" {
		p.BottomBarPlacement = "inside"
	}
	if p.OSCPosition == "" {
		p.OSCPosition = "floating"
	}
	if p.AllowEmptySpace == nil {
		t := true
		p.AllowEmptySpace = &t
	}
	if p.AllowInCameraHousing == nil {
		t := true
		p.AllowInCameraHousing = &t
	}
	if p.ResizeOnOpen == "" {
		p.ResizeOnOpen = ResizeFit
	}
	if p.ResizeRatio <= 0 || p.ResizeRatio > 1 {
		p.ResizeRatio = 0.5
	}
	if p.LeadingSidebarPlacement == "" {
		p.LeadingSidebarPlacement = "inside"
	}
	if p.TrailingSidebarPlacement == "" {
		p.TrailingSidebarPlacement = "inside"
	}
	if p.SidebarWidth <= 0 {
		p.SidebarWidth = layout.DefaultSidebarWidth
	}
}

// Spec builds the layout spec these preferences describe for a mode.
// Sidebars start hidden; visibility is runtime state, not a preference.
func (p *Prefs) Spec(mode layout.Mode) layout.Spec {
	return layout.NewSpec(layout.Spec{
		Mode:               mode,
		LegacyStyle:        p.LegacyStyle,
		TopBarPlacement:    parsePlacement(p.TopBarPlacement),
		BottomBarPlacement: parsePlacement(p.BottomBarPlacement),
		EnableOSC:          p.EnableOSC,
		OSCPosition:        parseOSCPosition(p.OSCPosition),
		LeadingSidebar: layout.Sidebar{
			Placement: parsePlacement(p.LeadingSidebarPlacement),
			Width:     p.SidebarWidth,
		},
		TrailingSidebar: layout.Sidebar{
			Placement: parsePlacement(p.TrailingSidebarPlacement),
			Width:     p.SidebarWidth,
		},
	})
}

// LockToVideo returns true when the viewport must equal the video size.
// Disallowing empty space around the video implies the lock.
func (p *Prefs) LockToVideo() bool {
	return p.LockViewportToVideo || (p.AllowEmptySpace != nil && !*p.AllowEmptySpace)
}

// CameraHousingDisallowed returns true when the video must not extend into
// the camera housing area.
func (p *Prefs) CameraHousingDisallowed() bool {
	return p.AllowInCameraHousing != nil && !*p.AllowInCameraHousing
}

func parsePlacement(s string) layout.Placement {
	if strings.EqualFold(s, "outside") {
		return layout.OutsideViewport
	}
	return layout.InsideViewport
}

func parseOSCPosition(s string) layout.OSCPosition {
	switch strings.ToLower(s) {
	case "top":
		return layout.OSCTop
	case "bottom":
		return layout.OSCBottom
	default:
		return layout.OSCFloating
	}
}

// watchPaths returns the config layers that exist on disk. A layer that
// appears after Watch was called is not picked up until the next start.
func watchPaths() []string {
	var paths []string
	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}

// Watch re-loads preferences whenever any existing config layer changes
// and hands the merged result to onChange. With no config file present
// there is nothing to watch and Watch returns nil. Errors during re-load
// are ignored; the previous preferences stay in effect.
func Watch(onChange func(*Prefs)) error {
	for _, path := range watchPaths() {
		f := file.Provider(path)
		err := f.Watch(func(_ interface{}, err error) {
			if err != nil {
				return
			}
			if p, err := Load(); err == nil {
				onChange(p)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}
