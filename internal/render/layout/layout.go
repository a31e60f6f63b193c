package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenterRect returns a (widthPx x heightPx) rectangle centered in rect.
// The size is clamped to rect.
func CenterRect(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	if widthPx > rect.Dx() {
		widthPx = rect.Dx()
	}
	if heightPx > rect.Dy() {
		heightPx = rect.Dy()
	}
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// FitSquare returns the largest square that fits into rect, centered.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	return CenterRect(rect, size, size)
}

// RectF is a rectangle in canvas pixels with fractional coordinates.
type RectF struct {
	MinX, MinY, MaxX, MaxY float64
}

// SquareAround returns the square of the given half side centered on (cx, cy).
func SquareAround(cx, cy, halfSide float64) RectF {
	if halfSide < 0 {
		halfSide = 0
	}
	return RectF{MinX: cx - halfSide, MinY: cy - halfSide, MaxX: cx + halfSide, MaxY: cy + halfSide}
}

func (r RectF) Dx() float64 { return r.MaxX - r.MinX }
func (r RectF) Dy() float64 { return r.MaxY - r.MinY }

func (r RectF) Center() (float64, float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// Inset shrinks r by d on all sides, collapsing to its center rather than inverting.
func (r RectF) Inset(d float64) RectF {
	cx, cy := r.Center()
	halfW := r.Dx()/2 - d
	halfH := r.Dy()/2 - d
	if halfW < 0 {
		halfW = 0
	}
	if halfH < 0 {
		halfH = 0
	}
	return RectF{MinX: cx - halfW, MinY: cy - halfH, MaxX: cx + halfW, MaxY: cy + halfH}
}

// Empty reports whether r has no area.
func (r RectF) Empty() bool { return r.Dx() <= 0 || r.Dy() <= 0 }
