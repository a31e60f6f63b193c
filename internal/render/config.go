package render

import "image/color"

// Global render configuration.
var (
	// Background fills the canvas before each frame; the dial covers it where it is opaque.
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}

	// Foreground is used for debug text.
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// DefaultDevice is the framebuffer opened when none is configured.
	DefaultDevice = "/dev/fb0"

	// Off-device canvas size.
	CanvasWidth  = 400
	CanvasHeight = 400

	// TextSize is the debug label size in points.
	TextSize = 14.0
)
