// Package render turns session frames into pixels.
package render

import (
	"image"
	"image/color"
	"math"

	"lifecanvas/internal/session"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// VisibleCells returns the range of cells of f that overlap a width×height
// surface. The rectangle is in cell coordinates and may be empty.
func VisibleCells(f session.Frame, width, height float64) image.Rectangle {
	if f.Unit <= 0 {
		return image.Rectangle{}
	}
	x0 := max(0, int(math.Floor(-f.TranslateX/f.Unit)))
	y0 := max(0, int(math.Floor(-f.TranslateY/f.Unit)))
	x1 := min(f.Cols, int(math.Ceil((width-f.TranslateX)/f.Unit)))
	y1 := min(f.Rows, int(math.Ceil((height-f.TranslateY)/f.Unit)))
	if x1 <= x0 || y1 <= y0 {
		return image.Rectangle{}
	}
	return image.Rect(x0, y0, x1, y1)
}
