package screens

import (
	"context"
	"fmt"
	"time"

	"github.com/rook-computer/watchface/internal/clock"
	"github.com/rook-computer/watchface/internal/face"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/state"
)

// WatchFaceScreen draws the face with a fresh clock reading on every frame.
type WatchFaceScreen struct {
	face  *face.Face
	now   func() time.Time
	debug bool
}

func NewWatchFaceScreen(f *face.Face, now func() time.Time, debug bool) *WatchFaceScreen {
	if now == nil {
		now = time.Now
	}
	return &WatchFaceScreen{face: f, now: now, debug: debug}
}

func (s *WatchFaceScreen) Start(ctx context.Context) error { return nil }
func (s *WatchFaceScreen) Stop() error                     { return nil }

func (s *WatchFaceScreen) Draw(surface render.Surface, st state.State) {
	t := s.now()
	sample := clock.SampleFromTime(t)
	if !s.face.Draw(surface, st.Scheme, clock.ComputeAngles(sample)) {
		return
	}
	if s.debug {
		_, h := surface.Size()
		surface.DrawText(DebugLabel(t, st), 8, float64(h)-8, render.Foreground)
	}
}

// DebugLabel is the digital readout shown in debug mode.
func DebugLabel(t time.Time, st state.State) string {
	return fmt.Sprintf("%s %s #%d", t.Format("15:04:05"), st.Scheme, st.Flips)
}
