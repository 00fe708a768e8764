package player

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/gen2brain/go-mpv"

	"github.com/llehouerou/viewport/internal/geo"
)

// MPV reads video display parameters from a libmpv instance.
type MPV struct {
	m  *mpv.Mpv
	mu sync.Mutex

	info       Info
	onReconfig func(Info)
}

// NewMPV creates and initializes an mpv-backed source. The geometry option,
// if configured, is captured once at startup; display parameters are kept
// current through property observation.
func NewMPV() (*MPV, error) {
	m := mpv.New()

	// The engine owns no rendering here; video output stays disabled until
	// a host window embeds it.
	if err := m.SetOptionString("vo", "libmpv"); err != nil {
		return nil, fmt.Errorf("mpv option: %w", err)
	}
	if err := m.SetOptionString("idle", "yes"); err != nil {
		return nil, fmt.Errorf("mpv option: %w", err)
	}

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &MPV{m: m}

	p.info.GeometryDirective = m.GetPropertyString("geometry")

	m.ObserveProperty(0, "video-params/aspect", mpv.FormatDouble)
	m.ObserveProperty(0, "dwidth", mpv.FormatInt64)
	m.ObserveProperty(0, "dheight", mpv.FormatInt64)

	go p.eventLoop()

	return p, nil
}

// Info returns the current video parameters.
func (p *MPV) Info() (Info, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info, nil
}

// OnReconfig registers the reconfig callback.
func (p *MPV) OnReconfig(fn func(Info)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onReconfig = fn
}

// LoadFile starts playback of a path or URL.
func (p *MPV) LoadFile(target string) error {
	return p.m.Command([]string{"loadfile", target})
}

// Close shuts the engine down.
func (p *MPV) Close() error {
	p.m.TerminateDestroy()
	return nil
}

func (p *MPV) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			prop := ev.Property()
			p.mu.Lock()
			switch prop.Name {
			case "video-params/aspect":
				if v, ok := prop.Data.(float64); ok && v > 0 {
					p.info.Aspect = v
				}
			case "dwidth":
				if v, ok := prop.Data.(int64); ok {
					p.info.DisplaySize.W = float64(v)
				}
			case "dheight":
				if v, ok := prop.Data.(int64); ok {
					p.info.DisplaySize.H = float64(v)
				}
			}
			info := p.info
			fn := p.onReconfig
			p.mu.Unlock()

			if fn != nil && info.HasVideo() {
				fn(info)
			}

		case mpv.EventShutdown:
			return
		}
	}
}

var _ Source = (*MPV)(nil)

// Mock is an in-memory Source for tests and headless runs.
type Mock struct {
	mu         sync.Mutex
	info       Info
	onReconfig func(Info)
}

// NewMock returns a mock source reporting the given parameters.
func NewMock(aspect float64, display geo.Size, directive string) *Mock {
	return &Mock{info: Info{
		Aspect:            aspect,
		DisplaySize:       display,
		GeometryDirective: directive,
	}}
}

// Info returns the configured parameters.
func (m *Mock) Info() (Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info, nil
}

// OnReconfig registers the reconfig callback.
func (m *Mock) OnReconfig(fn func(Info)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReconfig = fn
}

// Reconfig simulates the engine announcing new video parameters.
func (m *Mock) Reconfig(info Info) {
	m.mu.Lock()
	m.info = info
	fn := m.onReconfig
	m.mu.Unlock()
	if fn != nil {
		fn(info)
	}
}

// Close is a no-op.
func (m *Mock) Close() error { return nil }

var _ Source = (*Mock)(nil)
