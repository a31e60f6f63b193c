package face

import (
	"image"

	"github.com/rook-computer/watchface/internal/clock"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/render/layout"
	"github.com/rook-computer/watchface/internal/state"
)

// FrameAssets are the images of one scale generation.
type FrameAssets struct {
	Dark   image.Image
	Light  image.Image
	Hour   image.Image
	Minute image.Image
}

// Background selects the dial variant for scheme.
func (a FrameAssets) Background(scheme state.Scheme) image.Image {
	if scheme == state.LIGHT {
		return a.Light
	}
	return a.Dark
}

// RenderFrame draws one frame: the dial, the hour hand, the minute hand and
// the seconds arc, in that order. It only writes to s.
func RenderFrame(s render.Surface, lay layout.DialLayout, scheme state.Scheme, angles clock.Angles, a FrameAssets, style Style) {
	if bg := a.Background(scheme); bg != nil {
		b := bg.Bounds()
		s.Blit(bg, lay.CenterX-float64(b.Dx())/2, lay.CenterY-float64(b.Dy())/2)
	}

	drawHand(s, lay, a.Hour, angles.Hour, lay.HourPivotOffset)
	drawHand(s, lay, a.Minute, angles.Minute, lay.MinutePivotOffset)

	sweep := angles.SecondSweep - style.ArcGapDeg
	if sweep <= 0 {
		return
	}
	s.DrawArc(lay.ArcBox, clock.ArcStart+style.ArcGapDeg, sweep, render.Stroke{
		Color:    style.StrokeColor(scheme),
		Width:    style.StrokeWidth(),
		RoundCap: true,
	})
}

// drawHand blits a hand pointing at 12 o'clock, rotated about the dial center.
// The pivot offset is measured from the top of the hand image.
func drawHand(s render.Surface, lay layout.DialLayout, hand image.Image, deg, pivotOffset float64) {
	if hand == nil {
		return
	}
	s.Save()
	s.Rotate(deg, lay.CenterX, lay.CenterY)
	s.Blit(hand, lay.CenterX-float64(hand.Bounds().Dx())/2, lay.CenterY-pivotOffset)
	s.Restore()
}
