// Package player feeds the layout engine its video-side inputs: the
// natural aspect ratio, the base display size and the external geometry
// directive configured on the playback engine.
package player

import "github.com/llehouerou/viewport/internal/geo"

// Info is one snapshot of the playing video's display parameters.
type Info struct {
	// Aspect is the video's display aspect ratio. 0 until known.
	Aspect float64
	// DisplaySize is the video's natural display size in pixels.
	DisplaySize geo.Size
	// GeometryDirective is the raw geometry option string configured on
	// the playback engine, empty when unset.
	GeometryDirective string
}

// HasVideo returns true once real video parameters arrived.
func (i Info) HasVideo() bool {
	return i.Aspect > 0 && !i.DisplaySize.IsZero()
}

// Source provides video display parameters.
type Source interface {
	// Info returns the current video parameters.
	Info() (Info, error)
	// OnReconfig registers a callback invoked whenever the video's
	// display parameters change (new file, track switch, crop).
	OnReconfig(func(Info))
	// Close releases the underlying engine.
	Close() error
}
