package geometry

import "github.com/llehouerou/viewport/internal/geo"

// CropVideo applies a crop rectangle defined against an unscaled video size.
// The rect is rescaled to the current display scale, the window frame
// shrinks by the removed margins, and the aspect ratio becomes the crop
// rect's own. The video keeps its on-screen position: the part of the frame
// that survives the crop does not move.
func (g Geometry) CropVideo(unscaled geo.Size, crop geo.Rect) Geometry {
	if unscaled.IsZero() || crop.Size.IsZero() || g.VideoSize.IsZero() {
		return g
	}
	scale := g.VideoSize.W / unscaled.W
	scaledCrop := geo.Rect{
		Origin: geo.Point{X: crop.MinX() * scale, Y: crop.MinY() * scale},
		Size:   crop.Size.Scaled(scale),
	}

	// Margins removed on each side of the video, in display units.
	leading := scaledCrop.MinX()
	bottom := scaledCrop.MinY()
	trailing := g.VideoSize.W - scaledCrop.MaxX()
	top := g.VideoSize.H - scaledCrop.MaxY()

	frame := geo.Rect{
		Origin: geo.Point{
			X: g.WindowFrame.MinX() + leading,
			Y: g.WindowFrame.MinY() + bottom,
		},
		Size: geo.Size{
			W: g.WindowFrame.Size.W - leading - trailing,
			H: g.WindowFrame.Size.H - top - bottom,
		},
	}
	aspect := scaledCrop.Size.Aspect()
	return g.Clone(Changes{WindowFrame: &frame, VideoAspect: &aspect})
}

// UncropVideo reverses CropVideo: given the unscaled full video size and
// the crop rect previously applied against it, the window frame grows back
// by the restored margins and the aspect ratio returns to the full video's.
func (g Geometry) UncropVideo(unscaled geo.Size, crop geo.Rect) Geometry {
	if unscaled.IsZero() || crop.Size.IsZero() || g.VideoSize.IsZero() {
		return g
	}
	// The current video shows the cropped region, so the display scale is
	// relative to the crop rect, not the full video.
	scale := g.VideoSize.W / crop.Size.W

	leading := crop.MinX() * scale
	bottom := crop.MinY() * scale
	trailing := (unscaled.W - crop.MaxX()) * scale
	top := (unscaled.H - crop.MaxY()) * scale

	frame := geo.Rect{
		Origin: geo.Point{
			X: g.WindowFrame.MinX() - leading,
			Y: g.WindowFrame.MinY() - bottom,
		},
		Size: geo.Size{
			W: g.WindowFrame.Size.W + leading + trailing,
			H: g.WindowFrame.Size.H + top + bottom,
		},
	}
	aspect := unscaled.Aspect()
	return g.Clone(Changes{WindowFrame: &frame, VideoAspect: &aspect})
}
