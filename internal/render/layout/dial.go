package layout

// DialParams are the inputs of a dial layout. Sizes marked "at scale" are
// already multiplied by Scale; dp values are density-independent and are
// converted with Density.
type DialParams struct {
	CanvasWidth  int
	CanvasHeight int

	DialDiameter     float64 // at scale
	HourHandHeight   float64 // at scale
	MinuteHandHeight float64 // at scale

	PivotOffsetDp float64 // hand bottom edge to rotation point, at base scale
	EdgeInsetDp   float64 // gap between the dial edge and the seconds arc
	Density       float64 // pixels per dp
	Scale         float64
}

// DialLayout is the cached geometry of one canvas size.
type DialLayout struct {
	CenterX, CenterY  float64
	ArcBox            RectF
	HourPivotOffset   float64
	MinutePivotOffset float64
	Scale             float64
}

// DpToPx converts density-independent units to pixels.
func DpToPx(dp, density float64) float64 {
	return dp * density
}

// ComputeDialLayout derives the dial geometry for p. It reports false when
// the canvas or scale cannot produce a layout yet; callers should wait for
// the next size notification instead of drawing.
func ComputeDialLayout(p DialParams) (DialLayout, bool) {
	if p.CanvasWidth <= 0 || p.CanvasHeight <= 0 || p.Scale <= 0 {
		return DialLayout{}, false
	}
	density := p.Density
	if density <= 0 {
		density = 1
	}

	cx := float64(p.CanvasWidth) / 2
	cy := float64(p.CanvasHeight) / 2

	// The pivot shrinks with the artwork so the rotation point stays on the same spot of the hand.
	pivot := DpToPx(p.PivotOffsetDp, density) * p.Scale

	return DialLayout{
		CenterX:           cx,
		CenterY:           cy,
		ArcBox:            SquareAround(cx, cy, p.DialDiameter/2).Inset(DpToPx(p.EdgeInsetDp, density)),
		HourPivotOffset:   p.HourHandHeight - pivot,
		MinutePivotOffset: p.MinuteHandHeight - pivot,
		Scale:             p.Scale,
	}, true
}
