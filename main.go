// Command viewport is a headless harness for the layout engine: it loads
// preferences and persisted state, plans the transition a requested layout
// change would produce, and prints the resulting phased operation list.
// Useful for inspecting what a host window would be asked to do.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/viewport/internal/errmsg"
	"github.com/llehouerou/viewport/internal/geo"
	"github.com/llehouerou/viewport/internal/layout"
	"github.com/llehouerou/viewport/internal/player"
	"github.com/llehouerou/viewport/internal/prefs"
	"github.com/llehouerou/viewport/internal/screen"
	"github.com/llehouerou/viewport/internal/session"
	"github.com/llehouerou/viewport/internal/state"
	"github.com/llehouerou/viewport/internal/stderr"
	"github.com/llehouerou/viewport/internal/transition"
)

func main() {
	var (
		mode      = flag.String("mode", "windowed", "target mode: windowed, fullscreen or musicmode")
		aspect    = flag.Float64("aspect", 16.0/9, "video aspect ratio")
		directive = flag.String("geometry", "", "external geometry directive, e.g. 50%+100+100")
		screenW   = flag.Float64("screen-width", 1920, "screen width")
		screenH   = flag.Float64("screen-height", 1080, "screen height")
		housing   = flag.Float64("camera-housing", 0, "camera housing height")
		useMPV    = flag.Bool("mpv", false, "attach a libmpv instance for video parameters")
	)
	flag.Parse()

	p, err := prefs.Load()
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpPrefsLoad, err))
	}

	store, err := state.Open()
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpLayoutRestore, err))
	}
	defer store.Close()

	scr := screen.Screen{
		Frame:               geo.NewRect(0, 0, *screenW, *screenH),
		VisibleFrame:        geo.NewRect(0, 25, *screenW, *screenH-25),
		CameraHousingHeight: *housing,
	}
	screens := screen.Static{
		Window: screen.Window{
			Frame:  geo.NewRect(200, 200, 960, 540),
			Screen: scr,
		},
		Attached: true,
	}

	s := session.New(p, store, screens, transition.Immediate{})
	s.OnFrame = func(frame geo.Rect, video geo.Size) {
		fmt.Printf("  frame %.0fx%.0f at (%.0f, %.0f), video %.1fx%.1f\n",
			frame.Size.W, frame.Size.H, frame.Origin.X, frame.Origin.Y,
			video.W, video.H)
	}

	s.Restore(layout.Windowed)

	if err := prefs.Watch(func(p *prefs.Prefs) { s.PrefsChanged(p) }); err != nil {
		log.Warn(errmsg.Format(errmsg.OpPrefsWatch, err))
	}

	if *useMPV {
		// libmpv logs straight to fd 2; captured lines go through the
		// logger instead of interleaving with the op listing.
		if err := stderr.Capture(func(line string) {
			log.Debug("engine", "msg", line)
		}); err != nil {
			log.Warn("stderr capture unavailable", "err", err)
		}
		defer stderr.Restore()

		src, err := player.NewMPV()
		if err != nil {
			log.Fatal(errmsg.Format(errmsg.OpPlayerAttach, err))
		}
		defer src.Close()
		if info, ierr := src.Info(); ierr == nil && info.HasVideo() {
			s.VideoChanged(info)
		}
	}

	if *directive != "" {
		s.VideoChanged(playerInfo(*aspect, *directive))
	}

	target, err := parseMode(*mode)
	if err != nil {
		log.Fatal(err.Error())
	}
	t := s.Apply(p.Spec(target))

	if t.IsNoOp() {
		fmt.Println("no transition needed")
		return
	}
	fmt.Printf("transition to %s (%d ops):\n", target, len(t.Ops))
	for _, op := range t.Ops {
		fmt.Printf("  %-22s %8s  %s\n", op.Kind, op.Duration, op.Easing)
	}
}

func playerInfo(aspect float64, directive string) player.Info {
	return player.Info{
		Aspect:            aspect,
		DisplaySize:       geo.Size{W: 1920, H: 1920 / aspect},
		GeometryDirective: directive,
	}
}

func parseMode(s string) (layout.Mode, error) {
	switch s {
	case "windowed":
		return layout.Windowed, nil
	case "fullscreen":
		return layout.FullScreen, nil
	case "musicmode":
		return layout.MusicMode, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func init() {
	log.SetOutput(os.Stderr)
}
