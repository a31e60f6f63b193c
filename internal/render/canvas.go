package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/rook-computer/watchface/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/f64"
)

var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// Canvas is an in-memory Surface. Blits are resampled bilinearly through
// the current transform; arcs are stroked with draw2d.
type Canvas struct {
	img      *image.RGBA
	gc       *draw2dimg.GraphicContext
	tr       f64.Aff3
	stack    []f64.Aff3
	textSize float64
}

func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{img: img, gc: draw2dimg.NewGraphicContext(img), tr: identity, textSize: TextSize}
}

// Image returns the backing pixels. They change with every draw call.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) Blit(img image.Image, x, y float64) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	origin := img.Bounds().Min
	s2d := mul(c.tr, translate(x-float64(origin.X), y-float64(origin.Y)))
	xdraw.BiLinear.Transform(c.img, s2d, img, img.Bounds(), xdraw.Over, nil)
}

func (c *Canvas) Save() { c.stack = append(c.stack, c.tr) }

// Restore pops the last Save. An unbalanced Restore resets to identity.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.tr = identity
		return
	}
	c.tr = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Rotate(deg, px, py float64) {
	c.tr = mul(c.tr, mul(translate(px, py), mul(rotate(radians(deg)), translate(-px, -py))))
}

func (c *Canvas) DrawArc(box layout.RectF, startDeg, sweepDeg float64, stroke Stroke) {
	if sweepDeg == 0 || stroke.Width <= 0 || box.Empty() {
		return
	}
	cx, cy := box.Center()

	c.gc.Save()
	c.gc.SetStrokeColor(stroke.Color)
	c.gc.SetLineWidth(stroke.Width)
	if stroke.RoundCap {
		c.gc.SetLineCap(draw2d.RoundCap)
	} else {
		c.gc.SetLineCap(draw2d.ButtCap)
	}
	c.gc.BeginPath()
	c.gc.ArcTo(cx, cy, box.Dx()/2, box.Dy()/2, radians(startDeg), radians(sweepDeg))
	c.gc.Stroke()
	c.gc.Restore()
}

func (c *Canvas) DrawText(text string, x, y float64, col color.Color) {
	if text == "" {
		return
	}
	f, err := loadFont()
	if err != nil {
		return
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(c.textSize)
	ctx.SetClip(c.img.Bounds())
	ctx.SetDst(c.img)
	ctx.SetSrc(image.NewUniform(col))
	_, _ = ctx.DrawString(text, freetype.Pt(int(math.Round(x)), int(math.Round(y))))
}

// EncodePNG writes the current canvas contents as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func translate(tx, ty float64) f64.Aff3 { return f64.Aff3{1, 0, tx, 0, 1, ty} }

// rotate turns clockwise on a y-down canvas.
func rotate(rad float64) f64.Aff3 {
	s, co := math.Sin(rad), math.Cos(rad)
	return f64.Aff3{co, -s, 0, s, co, 0}
}

// mul returns a*b, applying b first.
func mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}
