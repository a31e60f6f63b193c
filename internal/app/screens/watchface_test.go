package screens

import (
	"image"
	"testing"
	"time"

	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/face"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/state"
)

func testFace(t *testing.T) *face.Face {
	t.Helper()
	f, err := face.New(assets.Set{
		Background: image.NewNRGBA(image.Rect(0, 0, 100, 100)),
		HourHand:   image.NewNRGBA(image.Rect(0, 0, 4, 30)),
		MinuteHand: image.NewNRGBA(image.Rect(0, 0, 3, 45)),
	}, face.DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func fixedClock(h, m, s int) func() time.Time {
	return func() time.Time { return time.Date(2024, 5, 1, h, m, s, 0, time.Local) }
}

func TestWatchFaceScreenWaitsForLayout(t *testing.T) {
	screen := NewWatchFaceScreen(testFace(t), fixedClock(10, 10, 10), true)
	rec := render.NewRecorder(100, 100)
	screen.Draw(rec, state.State{})
	if len(rec.Ops) != 0 {
		t.Errorf("drew %v before the face had a layout", rec.Kinds())
	}
}

func TestWatchFaceScreenDrawsSampledTime(t *testing.T) {
	f := testFace(t)
	f.Resize(100, 100)
	screen := NewWatchFaceScreen(f, fixedClock(15, 15, 30), false)

	rec := render.NewRecorder(100, 100)
	screen.Draw(rec, state.State{Scheme: state.DARK})

	rot := rec.Find(render.OpRotate)
	if len(rot) != 2 || rot[0].Degrees != 97.5 || rot[1].Degrees != 93 {
		t.Fatalf("rotations = %+v, want hour 97.5 and minute 93", rot)
	}
	if arcs := rec.Find(render.OpArc); len(arcs) != 1 || arcs[0].Sweep != 180 {
		t.Errorf("arcs = %+v, want one sweeping 180", arcs)
	}
	if n := len(rec.Find(render.OpText)); n != 0 {
		t.Errorf("debug label drawn without debug mode")
	}
}

func TestWatchFaceScreenDebugLabel(t *testing.T) {
	f := testFace(t)
	f.Resize(100, 100)
	screen := NewWatchFaceScreen(f, fixedClock(9, 5, 7), true)

	rec := render.NewRecorder(100, 100)
	screen.Draw(rec, state.State{Scheme: state.LIGHT, Flips: 4})

	texts := rec.Find(render.OpText)
	if len(texts) != 1 {
		t.Fatalf("want one label, got %d", len(texts))
	}
	if texts[0].Text != "09:05:07 light #4" {
		t.Errorf("label = %q", texts[0].Text)
	}
	if kinds := rec.Kinds(); kinds[len(kinds)-1] != render.OpText {
		t.Errorf("label should be drawn last, ops = %v", kinds)
	}
}
