//go:build ebiten

package render

import (
	"image/color"

	"lifecanvas/internal/session"
	"lifecanvas/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter draws session frames: the background fill, one dot tile per
// visible cell and the live cells on top.
type Painter struct {
	w, h  int
	cells *ebiten.Image
	buf   []byte

	tileSrc *view.Tile
	tile    *ebiten.Image
}

// NewPainter returns an empty painter. Images are allocated on first draw.
func NewPainter() *Painter { return &Painter{} }

// Draw paints f onto dst.
func (p *Painter) Draw(dst *ebiten.Image, f session.Frame) {
	dst.Fill(f.Background)
	if f.Cols <= 0 || f.Rows <= 0 {
		return
	}
	b := dst.Bounds()
	visible := VisibleCells(f, float64(b.Dx()), float64(b.Dy()))
	if visible.Empty() {
		return
	}
	p.drawTiles(dst, f, visible.Min.X, visible.Min.Y, visible.Max.X, visible.Max.Y)
	p.drawCells(dst, f)
}

func (p *Painter) drawTiles(dst *ebiten.Image, f session.Frame, x0, y0, x1, y1 int) {
	if f.Tile == nil {
		return
	}
	if f.Tile != p.tileSrc {
		if p.tile != nil {
			p.tile.Dispose()
		}
		p.tile = ebiten.NewImageFromImage(f.Tile.Image)
		p.tileSrc = f.Tile
	}
	stretch := f.Unit / float64(f.Tile.Size())
	op := &ebiten.DrawImageOptions{}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			op.GeoM.Reset()
			op.GeoM.Scale(stretch, stretch)
			op.GeoM.Translate(f.TranslateX+float64(x)*f.Unit, f.TranslateY+float64(y)*f.Unit)
			dst.DrawImage(p.tile, op)
		}
	}
}

func (p *Painter) drawCells(dst *ebiten.Image, f session.Frame) {
	if len(f.Cells) != f.Cols*f.Rows {
		return
	}
	if p.cells == nil || p.w != f.Cols || p.h != f.Rows {
		if p.cells != nil {
			p.cells.Dispose()
		}
		p.w, p.h = f.Cols, f.Rows
		p.cells = ebiten.NewImage(p.w, p.h)
		p.buf = make([]byte, 4*p.w*p.h)
	}
	fillBinaryRGBA(p.buf, f.Cells, f.Cell, color.Transparent)
	p.cells.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(f.Unit, f.Unit)
	op.GeoM.Translate(f.TranslateX, f.TranslateY)
	dst.DrawImage(p.cells, op)
}
