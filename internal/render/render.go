package render

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/rook-computer/watchface/internal/render/layout"
	"github.com/rook-computer/watchface/internal/state"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	SetScreen(screen Screen)
	Size() (width int, height int)
	// RunLoop calls onTick once per interval, redraws with the store's
	// snapshot, and returns when ctx is done.
	RunLoop(ctx context.Context, store *state.Store, interval time.Duration, onTick func(now time.Time))
	RedrawWithState(snap state.State)
}

type Screen interface {
	Start(ctx context.Context) error
	Stop() error
	Draw(s Surface, snap state.State)
}

// Stub implementations
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error { return nil }
func (n *NoopRenderer) Stop() error                     { return nil }
func (n *NoopRenderer) SetScreen(screen Screen)         {}
func (n *NoopRenderer) Size() (int, int)                { return 0, 0 }
func (n *NoopRenderer) RunLoop(ctx context.Context, store *state.Store, interval time.Duration, onTick func(time.Time)) {
}
func (n *NoopRenderer) RedrawWithState(snap state.State) {}

// Surface is the drawing target screens render into. Rotations apply to
// blits until the matching Restore; arcs and text ignore the transform.
type Surface interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	Clear(c color.Color)

	// Blit draws img with its top-left corner at (x, y).
	Blit(img image.Image, x, y float64)

	Save()
	Restore()

	// Rotate turns subsequent blits clockwise by deg around (px, py).
	Rotate(deg, px, py float64)

	// DrawArc strokes the part of the ellipse inscribed in box that starts at
	// startDeg (0 = 3 o'clock) and runs clockwise for sweepDeg.
	DrawArc(box layout.RectF, startDeg, sweepDeg float64, stroke Stroke)

	// DrawText draws text with its baseline starting at (x, y).
	DrawText(text string, x, y float64, c color.Color)
}

type Stroke struct {
	Color    color.Color
	Width    float64
	RoundCap bool
}
