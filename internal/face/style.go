package face

import (
	"image/color"

	"github.com/rook-computer/watchface/internal/state"
)

// Style is the fixed palette and the density-independent dimensions of the face.
type Style struct {
	// Accent fills the light dial and strokes the arc on the dark scheme.
	Accent color.Color
	// Ink strokes the arc on the light scheme.
	Ink color.Color
	// Tolerance is the per-channel bound below which dial pixels count as black.
	Tolerance uint8

	StrokeWidthDp float64
	EdgeInsetDp   float64
	PivotOffsetDp float64
	Density       float64

	// ArcGapDeg trims the arc start and shortens its sweep by the same amount.
	ArcGapDeg float64
}

func DefaultStyle() Style {
	return Style{
		Accent:        color.RGBA{R: 0x29, G: 0x79, B: 0xFF, A: 0xFF},
		Ink:           color.RGBA{A: 0xFF},
		Tolerance:     10,
		StrokeWidthDp: 16,
		EdgeInsetDp:   48,
		PivotOffsetDp: 7,
		Density:       1,
	}
}

// StrokeColor is the arc color for scheme.
func (s Style) StrokeColor(scheme state.Scheme) color.Color {
	if scheme == state.LIGHT {
		return s.Ink
	}
	return s.Accent
}

func (s Style) density() float64 {
	if s.Density <= 0 {
		return 1
	}
	return s.Density
}

// StrokeWidth is the arc width in pixels.
func (s Style) StrokeWidth() float64 {
	return s.StrokeWidthDp * s.density()
}
