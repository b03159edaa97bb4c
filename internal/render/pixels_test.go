package render

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"lifecanvas/internal/session"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.RGBA{R: 0xff, G: 0xcd, B: 0xfa, A: 0xff}, color.Transparent)
	want := []byte{
		0, 0, 0, 0,
		0xff, 0xcd, 0xfa, 0xff,
		0xff, 0xcd, 0xfa, 0xff,
		0, 0, 0, 0,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf=%v, expected %v", buf, want)
	}
}

func TestVisibleCells(t *testing.T) {
	base := session.Frame{Unit: 36, Cols: 10, Rows: 10}
	cases := []struct {
		name   string
		tx, ty float64
		w, h   float64
		want   image.Rectangle
	}{
		{"centred", 220, 120, 800, 600, image.Rect(0, 0, 10, 10)},
		{"clipped left and top", -40, -80, 800, 600, image.Rect(1, 2, 10, 10)},
		{"clipped right", 0, 0, 100, 600, image.Rect(0, 0, 3, 10)},
		{"off screen", 900, 0, 800, 600, image.Rectangle{}},
		{"above", 0, -400, 800, 600, image.Rectangle{}},
	}
	for _, tc := range cases {
		f := base
		f.TranslateX, f.TranslateY = tc.tx, tc.ty
		if got := VisibleCells(f, tc.w, tc.h); got != tc.want {
			t.Fatalf("%s: got %v, expected %v", tc.name, got, tc.want)
		}
	}
	if got := VisibleCells(session.Frame{}, 800, 600); !got.Empty() {
		t.Fatalf("zero unit produced %v", got)
	}
}
