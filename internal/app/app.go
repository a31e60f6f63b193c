package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rook-computer/watchface/internal/app/screens"
	"github.com/rook-computer/watchface/internal/buttons"
	"github.com/rook-computer/watchface/internal/clock"
	"github.com/rook-computer/watchface/internal/face"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/state"
	"github.com/rook-computer/watchface/internal/system"
)

type App struct {
	Store   *state.Store
	Render  render.Renderer
	Face    *face.Face
	Buttons buttons.Buttons
	Logger  Logger
	Debug   bool

	// Interval is the tick period; zero means one second.
	Interval time.Duration
	// StatePath persists the scheme across restarts; empty disables it.
	StatePath string
	// Console switches the active VT to graphics mode while running.
	Console bool
	// Now is the wall clock; nil means time.Now.
	Now func() time.Time

	screen *screens.WatchFaceScreen

	exitOnce     atomic.Bool
	exitCh       chan error
	teardownOnce sync.Once
}

func New(store *state.Store, renderer render.Renderer, watchFace *face.Face, buttonDriver buttons.Buttons) *App {
	return &App{Store: store, Render: renderer, Face: watchFace, Buttons: buttonDriver, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running.
// Any screen or input driver can call this to terminate through the same codepath.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

// OnInit restores the persisted scheme, starts the renderer, lays out the
// face for the display and draws the first frame.
func (app *App) OnInit(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.StatePath != "" {
		if err := app.Store.LoadFile(app.StatePath); err != nil {
			app.Logger.Errorf("state", "restore from %s failed, starting dark: %v", app.StatePath, err)
		} else {
			app.Logger.Infof("state", "scheme %s", app.Store.Scheme())
		}
	}

	if app.Render == nil {
		app.Render = render.NewFBRenderer()
	}
	if fb, ok := app.Render.(*render.FBRenderer); ok {
		fb.Logger = app.Logger
		fb.Debug = app.Debug
	}
	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}

	app.OnResize(app.Render.Size())

	app.screen = screens.NewWatchFaceScreen(app.Face, app.now, app.Debug)
	app.Render.SetScreen(app.screen)
	if err := app.screen.Start(ctx); err != nil {
		return err
	}
	app.Render.RedrawWithState(app.Store.Snapshot())
	return nil
}

// OnResize lays the face out for a new canvas size. Invalid sizes are
// deferred until a valid one arrives.
func (app *App) OnResize(width, height int) bool {
	if !app.Face.Resize(width, height) {
		app.Logger.Errorf("face", "no layout for %dx%d, waiting for a valid size", width, height)
		return false
	}
	lay, _ := app.Face.Layout()
	app.Logger.Infof("face", "layout %dx%d scale=%.3f", width, height, lay.Scale)
	return true
}

// Tick advances the scheme from a clock reading. The caller redraws afterwards.
func (app *App) Tick(now time.Time) bool {
	flipped := app.Store.Tick(clock.SampleFromTime(now))
	if flipped && app.Debug {
		app.Logger.Infof("state", "scheme flipped to %s", app.Store.Scheme())
	}
	return flipped
}

// SaveState returns the persisted form of the scheme.
func (app *App) SaveState() []byte { return app.Store.SaveState() }

// RestoreState applies bytes from SaveState.
func (app *App) RestoreState(data []byte) error { return app.Store.RestoreState(data) }

// OnTeardown releases everything OnInit acquired. It is safe to call more
// than once and after a failed OnInit.
func (app *App) OnTeardown() {
	app.teardownOnce.Do(func() {
		if app.screen != nil {
			_ = app.screen.Stop()
		}
		if app.Face != nil {
			app.Face.Release()
		}
		if app.StatePath != "" {
			if err := app.Store.SaveFile(app.StatePath); err != nil {
				app.Logger.Errorf("state", "save to %s failed: %v", app.StatePath, err)
			}
		}
		if app.Render != nil {
			if err := app.Render.Stop(); err != nil {
				app.Logger.Errorf("app", "renderer stop error: %v", err)
			}
		}
	})
}

// Start runs the face until ctx is done or Exit is called. Ticks and
// redraws happen on the renderer's loop goroutine only.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}

	defer app.OnTeardown()
	if err := app.OnInit(ctx); err != nil {
		return err
	}

	// Switch console to KD_GRAPHICS to suppress hardware cursor
	if app.Console {
		_ = system.SetGraphicsModeWithLog(app.Logger)
		_ = system.HideCursorWithLog(app.Logger)
		defer func() { _ = system.ShowCursorWithLog(app.Logger); _ = system.RestoreTextModeWithLog(app.Logger) }()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup

	if app.Buttons != nil {
		if err := app.Buttons.Start(loopCtx); err != nil {
			app.Logger.Errorf("input", "buttons start error: %v", err)
		} else {
			defer func() { _ = app.Buttons.Stop() }()
			wg.Add(1)
			go func() {
				defer wg.Done()
				app.watchButtons(loopCtx)
			}()
		}
	}

	interval := app.Interval
	if interval <= 0 {
		interval = time.Second
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Render.RunLoop(loopCtx, app.Store, interval, func(now time.Time) { app.Tick(now) })
	}()

	// Wait for completion (requested by input or a screen), then exit.
	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	cancel()
	wg.Wait()
	return err
}

func (app *App) watchButtons(ctx context.Context) {
	events := app.Buttons.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			app.Logger.Infof("input", "button event %s", ev)
			if ev == buttons.Exit || ev == buttons.Shutdown {
				app.Exit(nil)
			}
		}
	}
}
