package face

import (
	"fmt"
	"image"

	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/clock"
	"github.com/rook-computer/watchface/internal/imaging"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/render/layout"
	"github.com/rook-computer/watchface/internal/state"
)

const (
	assetDark   = "dark"
	assetLight  = "light"
	assetHour   = "hour"
	assetMinute = "minute"
)

// Face owns the artwork of one watch face at the current canvas size.
// Like state.Store it belongs to the render loop.
type Face struct {
	style Style
	cache *imaging.ScaledCache

	dialW, dialH int

	width, height int
	layout        layout.DialLayout
	hasLayout     bool
}

// New prepares a face from decoded artwork. The light dial is derived from
// the dark one here, once.
func New(set assets.Set, style Style) (*Face, error) {
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("face: %w", err)
	}
	light := imaging.RecolorDial(set.Background, style.Accent, style.Tolerance)
	b := set.Background.Bounds()
	return &Face{
		style: style,
		cache: imaging.NewScaledCache(map[string]image.Image{
			assetDark:   set.Background,
			assetLight:  light,
			assetHour:   set.HourHand,
			assetMinute: set.MinuteHand,
		}),
		dialW: b.Dx(),
		dialH: b.Dy(),
	}, nil
}

// Resize rescales the artwork to fit a w x h canvas and recomputes the
// layout. Invalid sizes are ignored and report false; the previous layout,
// if any, stays in place until a valid size arrives.
func (f *Face) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if f.hasLayout && w == f.width && h == f.height {
		return true
	}

	scale := imaging.FitScale(w, h, f.dialW, f.dialH)
	if err := f.cache.Rescale(scale); err != nil {
		return false
	}
	lay, ok := layout.ComputeDialLayout(layout.DialParams{
		CanvasWidth:      w,
		CanvasHeight:     h,
		DialDiameter:     float64(f.cache.Get(assetDark).Bounds().Dx()),
		HourHandHeight:   float64(f.cache.Get(assetHour).Bounds().Dy()),
		MinuteHandHeight: float64(f.cache.Get(assetMinute).Bounds().Dy()),
		PivotOffsetDp:    f.style.PivotOffsetDp,
		EdgeInsetDp:      f.style.EdgeInsetDp,
		Density:          f.style.density(),
		Scale:            scale,
	})
	if !ok {
		return false
	}
	f.width, f.height = w, h
	f.layout, f.hasLayout = lay, true
	return true
}

// Layout returns the current geometry and whether one exists yet.
func (f *Face) Layout() (layout.DialLayout, bool) {
	return f.layout, f.hasLayout
}

// Assets returns the images of the current scale generation.
func (f *Face) Assets() FrameAssets {
	return FrameAssets{
		Dark:   f.cache.Get(assetDark),
		Light:  f.cache.Get(assetLight),
		Hour:   f.cache.Get(assetHour),
		Minute: f.cache.Get(assetMinute),
	}
}

func (f *Face) Style() Style { return f.style }

// Draw renders one frame and reports whether anything was drawn. Nothing is
// drawn before the first valid Resize.
func (f *Face) Draw(s render.Surface, scheme state.Scheme, angles clock.Angles) bool {
	if !f.hasLayout {
		return false
	}
	RenderFrame(s, f.layout, scheme, angles, f.Assets(), f.style)
	return true
}

// Release drops the scaled artwork. A later Resize rebuilds it.
func (f *Face) Release() {
	f.cache.Release()
	f.hasLayout = false
	f.width, f.height = 0, 0
}
