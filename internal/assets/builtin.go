package assets

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	"github.com/rook-computer/watchface/internal/imaging"
)

// Built-in artwork dimensions in pixels at density 1.
const (
	DialSize     = 400
	hourWidth    = 18
	hourHeight   = 112
	minuteWidth  = 12
	minuteHeight = 168
)

const (
	dialFill  = "#000000"
	tickColor = "#9E9E9E"
	handFill  = "#FAFAFA"
)

// DialSVG draws the dark dial: a near-black disc with twelve hour ticks.
func DialSVG() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(DialSize, DialSize, 0, 0, DialSize, DialSize)
	c := DialSize / 2
	canvas.Circle(c, c, c, "fill:"+dialFill)
	for i := 0; i < 12; i++ {
		a := float64(i) * math.Pi / 6
		outer, inner := float64(c)-14, float64(c)-34
		if i%3 == 0 {
			inner = float64(c) - 50
		}
		canvas.Line(
			c+int(math.Round(math.Sin(a)*inner)), c-int(math.Round(math.Cos(a)*inner)),
			c+int(math.Round(math.Sin(a)*outer)), c-int(math.Round(math.Cos(a)*outer)),
			fmt.Sprintf("stroke:%s;stroke-width:6;stroke-linecap:round", tickColor),
		)
	}
	canvas.End()
	return buf.Bytes()
}

// HandSVG draws a rounded hand of w x h pointing up.
func HandSVG(w, h int) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(w, h, 0, 0, w, h)
	canvas.Roundrect(0, 0, w, h, w/2, w/2, "fill:"+handFill)
	canvas.End()
	return buf.Bytes()
}

// Default rasterizes the built-in artwork.
func Default() (Set, error) {
	var set Set
	var err error
	if set.Background, err = imaging.RasterizeSVG(bytes.NewReader(DialSVG()), 0, 0); err != nil {
		return Set{}, fmt.Errorf("rasterizing dial: %w", err)
	}
	if set.HourHand, err = imaging.RasterizeSVG(bytes.NewReader(HandSVG(hourWidth, hourHeight)), 0, 0); err != nil {
		return Set{}, fmt.Errorf("rasterizing hour hand: %w", err)
	}
	if set.MinuteHand, err = imaging.RasterizeSVG(bytes.NewReader(HandSVG(minuteWidth, minuteHeight)), 0, 0); err != nil {
		return Set{}, fmt.Errorf("rasterizing minute hand: %w", err)
	}
	return set, set.Validate()
}

// WriteSVG exports the built-in artwork into dir and returns the names to
// load it back with.
func WriteSVG(dir string) (Names, error) {
	names := Names{Background: "background.svg", HourHand: "hour_hand.svg", MinuteHand: "minute_hand.svg"}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return Names{}, fmt.Errorf("creating asset dir: %w", err)
	}
	files := map[string][]byte{
		names.Background: DialSVG(),
		names.HourHand:   HandSVG(hourWidth, hourHeight),
		names.MinuteHand: HandSVG(minuteWidth, minuteHeight),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil { //nolint:gosec // artwork is not secret
			return Names{}, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return names, nil
}
