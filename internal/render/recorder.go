package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/watchface/internal/render/layout"
)

type OpKind int

const (
	OpClear OpKind = iota
	OpBlit
	OpSave
	OpRestore
	OpRotate
	OpArc
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpBlit:
		return "blit"
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpRotate:
		return "rotate"
	case OpArc:
		return "arc"
	case OpText:
		return "text"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one recorded draw call. Only the fields of its Kind are set.
type Op struct {
	Kind OpKind

	Image image.Image // blit
	X, Y  float64     // blit, text; rotate pivot

	Degrees float64 // rotate

	Box    layout.RectF // arc
	Start  float64      // arc
	Sweep  float64      // arc
	Stroke Stroke       // arc

	Text  string      // text
	Color color.Color // clear, text
}

// Recorder is a Surface that keeps the draw calls instead of rasterizing them.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Clear(c color.Color) { r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c}) }

func (r *Recorder) Blit(img image.Image, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpBlit, Image: img, X: x, Y: y})
}

func (r *Recorder) Save()    { r.Ops = append(r.Ops, Op{Kind: OpSave}) }
func (r *Recorder) Restore() { r.Ops = append(r.Ops, Op{Kind: OpRestore}) }

func (r *Recorder) Rotate(deg, px, py float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRotate, Degrees: deg, X: px, Y: py})
}

func (r *Recorder) DrawArc(box layout.RectF, startDeg, sweepDeg float64, stroke Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpArc, Box: box, Start: startDeg, Sweep: sweepDeg, Stroke: stroke})
}

func (r *Recorder) DrawText(text string, x, y float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, X: x, Y: y, Color: c})
}

// Kinds lists the kinds of the recorded ops in order.
func (r *Recorder) Kinds() []OpKind {
	out := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.Kind
	}
	return out
}

// Find returns the recorded ops of the given kind.
func (r *Recorder) Find(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops the recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
