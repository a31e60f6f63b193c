package imaging

import (
	"errors"
	"image"
	"testing"
)

func TestScaleIdentity(t *testing.T) {
	src := solidImage(t, 30, 20, black)
	out := Scale(src, 1.0)
	if out != image.Image(src) {
		t.Error("scale 1.0 should return the source unchanged")
	}
}

func TestScaleRounding(t *testing.T) {
	var tests = []struct {
		w, h   int
		factor float64
		wantW  int
		wantH  int
	}{
		{100, 100, 0.5, 50, 50},
		{101, 99, 0.5, 51, 50}, // 50.5 rounds up, 49.5 rounds up
		{360, 360, 400.0 / 360.0, 400, 400},
		{3, 3, 0.1, 1, 1},
	}
	for _, tt := range tests {
		src := solidImage(t, tt.w, tt.h, black)
		out := Scale(src, tt.factor)
		b := out.Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("Scale(%dx%d, %v) = %dx%d, want %dx%d", tt.w, tt.h, tt.factor, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
	}
}

func TestScaleSmoothsPixels(t *testing.T) {
	src := solidImage(t, 8, 8, blue)
	out := Scale(src, 0.5).(*image.NRGBA)
	if got := out.NRGBAAt(2, 2); got != blue {
		t.Errorf("uniform image should stay uniform after scaling, got %v", got)
	}
}

func TestScaleNil(t *testing.T) {
	if Scale(nil, 2) != nil {
		t.Error("expected nil for nil source")
	}
	if Scale(solidImage(t, 2, 2, black), 0) != nil {
		t.Error("expected nil for zero factor")
	}
}

func TestFitScale(t *testing.T) {
	if got := FitScale(400, 400, 360, 400); got != 1.0 {
		t.Errorf("FitScale(400,400,360,400) = %v, want 1.0", got)
	}
	if got := FitScale(200, 400, 400, 400); got != 0.5 {
		t.Errorf("FitScale(200,400,400,400) = %v, want 0.5", got)
	}
	if got := FitScale(0, 400, 400, 400); got != 0 {
		t.Errorf("FitScale with zero canvas = %v, want 0", got)
	}
}

func newTestCache(t *testing.T) *ScaledCache {
	t.Helper()
	return NewScaledCache(map[string]image.Image{
		"dial": solidImage(t, 100, 100, black),
		"hand": solidImage(t, 10, 60, blue),
	})
}

func TestScaledCacheRescale(t *testing.T) {
	cache := newTestCache(t)
	if cache.Get("dial") != nil {
		t.Fatal("nothing should be scaled before the first Rescale")
	}

	if err := cache.Rescale(0.5); err != nil {
		t.Fatalf("rescale: %v", err)
	}
	if b := cache.Get("dial").Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("dial scaled to %v, want 50x50", b)
	}
	if b := cache.Get("hand").Bounds(); b.Dx() != 5 || b.Dy() != 30 {
		t.Errorf("hand scaled to %v, want 5x30", b)
	}
	if cache.Scale() != 0.5 {
		t.Errorf("Scale() = %v, want 0.5", cache.Scale())
	}
	if cache.Get("missing") != nil {
		t.Error("unknown name should return nil")
	}
}

func TestScaledCacheSameFactorIsNoop(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.Rescale(0.5); err != nil {
		t.Fatal(err)
	}
	first := cache.Get("dial")
	if err := cache.Rescale(0.5); err != nil {
		t.Fatal(err)
	}
	if cache.Get("dial") != first {
		t.Error("repeated rescale to the same factor should keep the generation")
	}
}

func TestScaledCacheReleasesPreviousGeneration(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.Rescale(0.5); err != nil {
		t.Fatal(err)
	}
	old := cache.Get("dial").(*image.NRGBA)

	if err := cache.Rescale(0.25); err != nil {
		t.Fatal(err)
	}
	if old.Pix != nil {
		t.Error("previous generation should be released")
	}
	if b := cache.Get("dial").Bounds(); b.Dx() != 25 {
		t.Errorf("new generation width %d, want 25", b.Dx())
	}
}

func TestScaledCacheIdentityKeepsSource(t *testing.T) {
	cache := newTestCache(t)
	src := cache.Source("dial").(*image.NRGBA)
	if err := cache.Rescale(1.0); err != nil {
		t.Fatal(err)
	}
	if err := cache.Rescale(2.0); err != nil {
		t.Fatal(err)
	}
	if src.Pix == nil {
		t.Error("releasing an identity generation must not free the source")
	}
}

func TestScaledCacheInvalidFactor(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.Rescale(0.5); err != nil {
		t.Fatal(err)
	}
	for _, factor := range []float64{0, -1} {
		if err := cache.Rescale(factor); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Rescale(%v) err = %v, want ErrInvalidScale", factor, err)
		}
	}
	if cache.Scale() != 0.5 || cache.Get("dial") == nil {
		t.Error("invalid rescale must leave the cache unchanged")
	}
}

func TestScaledCacheRelease(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.Rescale(0.5); err != nil {
		t.Fatal(err)
	}
	cache.Release()
	if cache.Get("dial") != nil || cache.Get("hand") != nil {
		t.Error("Release should drop every scaled image")
	}
	if cache.Scale() != 0 {
		t.Errorf("Scale() after release = %v, want 0", cache.Scale())
	}
	if err := cache.Rescale(0.5); err != nil {
		t.Fatal(err)
	}
	if cache.Get("dial") == nil {
		t.Error("cache should rebuild after release")
	}
}
