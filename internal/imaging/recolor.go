package imaging

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Recolor returns a copy of img in which every near-black pixel inside the
// circle (center, radius) is replaced by target. A pixel is near-black when
// its red, green and blue channels are each below tolerance. Alpha is kept,
// pixels outside the circle are left as they are and img is never modified.
func Recolor(img image.Image, center image.Point, radius float64, target color.Color, tolerance uint8) *image.NRGBA {
	if img == nil {
		return nil
	}
	out := ToNRGBA(img)
	bounds := out.Bounds()
	if bounds.Empty() {
		return out
	}

	tc := color.NRGBAModel.Convert(target).(color.NRGBA)
	radiusSq := radius * radius
	cx := float64(center.X)
	cy := float64(center.Y)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		dy := float64(y) - cy
		row := out.Pix[out.PixOffset(bounds.Min.X, y):]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := float64(x) - cx
			if dx*dx+dy*dy > radiusSq {
				continue
			}
			i := (x - bounds.Min.X) * 4
			if row[i] < tolerance && row[i+1] < tolerance && row[i+2] < tolerance {
				row[i] = tc.R
				row[i+1] = tc.G
				row[i+2] = tc.B
			}
		}
	}
	return out
}

// RecolorDial recolors the dial artwork assuming it is square: the mask
// circle sits at the image center with radius width/2 even when the height
// differs. Non-square artwork keeps that assumption rather than guessing
// another geometry.
func RecolorDial(img image.Image, target color.Color, tolerance uint8) *image.NRGBA {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	center := image.Pt(bounds.Min.X+bounds.Dx()/2, bounds.Min.Y+bounds.Dy()/2)
	return Recolor(img, center, float64(bounds.Dx())/2, target, tolerance)
}

// ToNRGBA returns a non-premultiplied copy of img that shares no pixels with it.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	if src, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			copy(out.Pix[out.PixOffset(bounds.Min.X, y):out.PixOffset(bounds.Max.X, y)],
				src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Max.X, y)])
		}
		return out
	}
	xdraw.Draw(out, bounds, img, bounds.Min, xdraw.Src)
	return out
}
