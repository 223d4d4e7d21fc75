package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ivlev/scenegen/internal/system"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r3"
)

// Options controls the top-down preview raster. The view looks down the
// y axis: world x runs left to right and world z runs bottom to top.
type Options struct {
	Size       int     // Width and height of the square image in pixels
	Min, Max   float64 // World extent shown on both x and z
	LineWidth  float32 // Stroke width in pixels
	Background color.Color
}

// DefaultOptions frames the 64×64 world the engine ships with
func DefaultOptions() Options {
	return Options{
		Size:       512,
		Min:        0,
		Max:        64,
		LineWidth:  1.5,
		Background: color.White,
	}
}

// Fit widens the extent so that lo..hi on x and z fits with a 10% margin
func (o Options) Fit(lo, hi r3.Vec) Options {
	minV := math.Min(lo.X, lo.Z)
	maxV := math.Max(hi.X, hi.Z)
	if maxV <= minV {
		maxV = minV + 1
	}
	margin := (maxV - minV) * 0.1
	o.Min = minV - margin
	o.Max = maxV + margin
	return o
}

// Palette, close to matplotlib's tab colors
var (
	colorBlue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colorOrange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	colorGreen  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	colorRed    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	colorGray   = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	colorBlack  = color.RGBA{A: 0xff}
)

// canvas wraps a pooled RGBA image with world-to-pixel projection
type canvas struct {
	img  *image.RGBA
	opts Options
}

func newCanvas(opts Options) *canvas {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	if opts.Max <= opts.Min {
		opts.Min, opts.Max = DefaultOptions().Min, DefaultOptions().Max
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}
	if opts.Background == nil {
		opts.Background = color.White
	}

	img := system.GetImage(opts.Size, opts.Size)
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	return &canvas{img: img, opts: opts}
}

// project maps world x/z to pixel coordinates
func (c *canvas) project(v r3.Vec) (float32, float32) {
	scale := float64(c.opts.Size) / (c.opts.Max - c.opts.Min)
	x := (v.X - c.opts.Min) * scale
	y := float64(c.opts.Size) - (v.Z-c.opts.Min)*scale
	return float32(x), float32(y)
}

func (c *canvas) fill(col color.Color, build func(r *vector.Rasterizer)) {
	r := vector.NewRasterizer(c.opts.Size, c.opts.Size)
	r.DrawOp = draw.Over
	build(r)
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// segment strokes a straight line between two pixel positions as a thin quad
func segment(r *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
}

// polyline strokes consecutive world points
func (c *canvas) polyline(points []r3.Vec, col color.Color) {
	if len(points) < 2 {
		return
	}
	c.fill(col, func(r *vector.Rasterizer) {
		px, py := c.project(points[0])
		for _, p := range points[1:] {
			x, y := c.project(p)
			segment(r, px, py, x, y, c.opts.LineWidth)
			px, py = x, y
		}
	})
}

// ring strokes a horizontal circle around center
func (c *canvas) ring(center r3.Vec, radius float64, col color.Color) {
	const steps = 128
	points := make([]r3.Vec, steps+1)
	for i := range points {
		a := 2 * math.Pi * float64(i) / steps
		points[i] = r3.Vec{X: center.X + radius*math.Cos(a), Z: center.Z + radius*math.Sin(a)}
	}
	c.polyline(points, col)
}

// dot fills a small square marker centered on a world point
func (c *canvas) dot(p r3.Vec, size float32, col color.Color) {
	x, y := c.project(p)
	h := size / 2
	c.fill(col, func(r *vector.Rasterizer) {
		r.MoveTo(x-h, y-h)
		r.LineTo(x+h, y-h)
		r.LineTo(x+h, y+h)
		r.LineTo(x-h, y+h)
		r.ClosePath()
	})
}

// label draws text just right of a world point
func (c *canvas) label(p r3.Vec, text string, col color.Color) {
	x, y := c.project(p)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x)+4, int(y)-4),
	}
	d.DrawString(text)
}
