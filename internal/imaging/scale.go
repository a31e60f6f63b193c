package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ErrInvalidScale is returned for scale factors that are not strictly positive.
var ErrInvalidScale = errors.New("scale factor must be > 0")

// FitScale is the uniform factor that fits an asset of assetW x assetH into
// the canvas without distortion.
func FitScale(canvasW, canvasH, assetW, assetH int) float64 {
	if canvasW <= 0 || canvasH <= 0 || assetW <= 0 || assetH <= 0 {
		return 0
	}
	return math.Min(float64(canvasW)/float64(assetW), float64(canvasH)/float64(assetH))
}

// ScaledSize applies factor to a w x h size. Each dimension is rounded to
// the nearest pixel (halves away from zero) and never drops below 1.
func ScaledSize(w, h int, factor float64) (int, int) {
	sw := int(math.Round(float64(w) * factor))
	sh := int(math.Round(float64(h) * factor))
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	return sw, sh
}

// Scale resamples src by factor with a bilinear filter. A factor of exactly
// 1 returns src itself.
func Scale(src image.Image, factor float64) image.Image {
	if src == nil || factor <= 0 {
		return nil
	}
	if factor == 1 {
		return src
	}
	bounds := src.Bounds()
	w, h := ScaledSize(bounds.Dx(), bounds.Dy(), factor)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}

type cacheSlot struct {
	source image.Image
	scaled image.Image
}

// ScaledCache keeps one scaled generation of each source image. Rescaling
// releases the previous generation before building the next one.
type ScaledCache struct {
	slots map[string]*cacheSlot
	order []string
	scale float64
}

// NewScaledCache creates a cache over the given sources. Nothing is scaled
// until the first Rescale.
func NewScaledCache(sources map[string]image.Image) *ScaledCache {
	cache := &ScaledCache{slots: make(map[string]*cacheSlot, len(sources))}
	for name, src := range sources {
		cache.slots[name] = &cacheSlot{source: src}
		cache.order = append(cache.order, name)
	}
	return cache
}

// Scale returns the factor of the live generation, or 0 before the first Rescale.
func (c *ScaledCache) Scale() float64 { return c.scale }

// Get returns the scaled image for name, or nil when unknown or not yet scaled.
func (c *ScaledCache) Get(name string) image.Image {
	slot, ok := c.slots[name]
	if !ok {
		return nil
	}
	return slot.scaled
}

// Source returns the unscaled image registered under name.
func (c *ScaledCache) Source(name string) image.Image {
	slot, ok := c.slots[name]
	if !ok {
		return nil
	}
	return slot.source
}

// Rescale regenerates every slot at factor. Repeating the current factor is a no-op.
func (c *ScaledCache) Rescale(factor float64) error {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, factor)
	}
	if factor == c.scale {
		return nil
	}
	for _, name := range c.order {
		slot := c.slots[name]
		c.releaseSlot(slot)
		slot.scaled = Scale(slot.source, factor)
	}
	c.scale = factor
	return nil
}

// Release drops every scaled generation. Sources are untouched.
func (c *ScaledCache) Release() {
	for _, name := range c.order {
		c.releaseSlot(c.slots[name])
	}
	c.scale = 0
}

func (c *ScaledCache) releaseSlot(slot *cacheSlot) {
	if slot.scaled == nil {
		return
	}
	// Only buffers the cache allocated are freed; a factor of 1 aliases the source.
	if slot.scaled != slot.source {
		if img, ok := slot.scaled.(*image.NRGBA); ok {
			img.Pix = nil
			img.Rect = image.Rectangle{}
		}
	}
	slot.scaled = nil
}
