package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/watchface/internal/render/layout"
	"github.com/rook-computer/watchface/internal/state"
)

// FBRenderer renders to the Linux framebuffer through a square Canvas
// centered in the device mode. Panels that are not square keep the area
// outside the viewport filled with Background.
type FBRenderer struct {
	fbDev    *fb.Device
	canvas   *Canvas
	viewport image.Rectangle
	running atomic.Bool
	current Screen
	Logger  interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
	// Device is the framebuffer path; empty means DefaultDevice.
	Device string
	Debug  bool
}

func NewFBRenderer() *FBRenderer { return &FBRenderer{} }

func (r *FBRenderer) Start(ctx context.Context) error {
	path := r.Device
	if path == "" {
		path = DefaultDevice
	}
	dev, err := fb.Open(path)
	if err != nil {
		return err
	}
	r.fbDev = dev
	bounds := dev.Bounds()
	if bounds.Empty() {
		dev.Close()
		r.fbDev = nil
		return errors.New("framebuffer reports an empty mode")
	}
	r.viewport = layout.FitSquare(bounds)
	if r.Logger != nil {
		r.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d, viewport=%v", path, bounds.Dx(), bounds.Dy(), r.viewport)
	}

	fill(dev, bounds, Background)
	r.canvas = NewCanvas(r.viewport.Dx(), r.viewport.Dy())
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	if !r.running.CompareAndSwap(true, false) {
		return nil
	}
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

// SetScreen sets the current logical screen to be drawn.
func (r *FBRenderer) SetScreen(screen Screen) { r.current = screen }

// Size returns the viewport size, or zero before Start.
func (r *FBRenderer) Size() (int, int) {
	if r.canvas == nil {
		return 0, 0
	}
	return r.canvas.Size()
}

// RedrawWithState draws the current screen and copies the canvas to the device.
func (r *FBRenderer) RedrawWithState(snap state.State) {
	if !r.running.Load() || r.current == nil || r.fbDev == nil {
		return
	}
	r.canvas.Clear(Background)
	r.current.Draw(r.canvas, snap)
	blitTo(r.fbDev, r.viewport, r.canvas.Image())
	if r.Debug && r.Logger != nil {
		r.Logger.Infof("fb", "redraw done, scheme=%s", snap.Scheme)
	}
}

// RunLoop ticks at interval until the context is done. Ticks and redraws
// share this goroutine, so screens never race the state they read.
func (r *FBRenderer) RunLoop(ctx context.Context, store *state.Store, interval time.Duration, onTick func(now time.Time)) {
	runLoop(ctx, interval, func(now time.Time) {
		if onTick != nil {
			onTick(now)
		}
		r.RedrawWithState(store.Snapshot())
	})
}

func runLoop(ctx context.Context, interval time.Duration, step func(now time.Time)) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			step(now)
		}
	}
}

type pixelSetter interface {
	Set(x, y int, c color.Color)
}

func fill(dst pixelSetter, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

// blitTo copies canvas into the viewport of dst, opaque. Pixels outside
// either rectangle are skipped.
func blitTo(dst pixelSetter, viewport image.Rectangle, canvas *image.RGBA) {
	cb := canvas.Bounds()
	for y := 0; y < viewport.Dy() && y < cb.Dy(); y++ {
		for x := 0; x < viewport.Dx() && x < cb.Dx(); x++ {
			pixel := canvas.RGBAAt(cb.Min.X+x, cb.Min.Y+y)
			dst.Set(viewport.Min.X+x, viewport.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
