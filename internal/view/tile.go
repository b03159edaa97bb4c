package view

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Palette holds the colours of the canvas.
type Palette struct {
	Background color.RGBA
	Dot        color.RGBA
	Cell       color.RGBA
}

// DefaultPalette is a dark background with light dots and pink cells.
var DefaultPalette = Palette{
	Background: color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff},
	Dot:        color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	Cell:       color.RGBA{R: 0xff, G: 0xcd, B: 0xfa, A: 0xff},
}

// Tile is one unit×unit square of the background pattern: a filled square
// with a dot in its centre. Renderers repeat it across the grid.
type Tile struct {
	Image  *image.RGBA
	Unit   float64
	Radius float64
}

// NewTile rasterises a background tile. It must be rebuilt whenever unit or
// radius changes.
func NewTile(unit float64, bg, dot color.Color, radius float64) *Tile {
	size := max(int(math.Round(unit)), 1)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	if radius > 0 {
		r := vector.NewRasterizer(size, size)
		r.DrawOp = draw.Over
		mid := float32(size) * 0.5
		circle(r, mid, mid, float32(radius))
		r.Draw(img, img.Bounds(), image.NewUniform(dot), image.Point{})
	}
	return &Tile{Image: img, Unit: unit, Radius: radius}
}

// Size returns the tile edge length in pixels.
func (t *Tile) Size() int { return t.Image.Bounds().Dx() }

func circle(r *vector.Rasterizer, cx, cy, rad float32) {
	k := rad * kappa
	r.MoveTo(cx+rad, cy)
	r.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	r.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	r.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	r.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	r.ClosePath()
}
