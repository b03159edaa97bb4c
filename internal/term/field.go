// Package term is a terminal frontend for a session. Each character cell is
// treated as a CharWidth×CharHeight pixel block sampled at its centre.
package term

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"lifecanvas/internal/core"
	"lifecanvas/internal/session"
	"lifecanvas/pkg/life"
)

const (
	// CharWidth and CharHeight are the pixel size of one terminal character.
	// Characters are about twice as tall as they are wide.
	CharWidth  = 1.0
	CharHeight = 2.0
	// DefaultUnit is the cell size at scale 1, two characters across.
	DefaultUnit = 2.0
)

// Field renders the grid as text.
type Field struct {
	au    aurora.Aurora
	live  string
	dot   string
	empty string
}

// NewField returns a field renderer, coloured when color is true.
func NewField(color bool) *Field {
	au := aurora.NewAurora(color)
	return &Field{
		au:    au,
		live:  au.Magenta("█").String(),
		dot:   au.Gray(12, "·").String(),
		empty: " ",
	}
}

// PixelAt returns the surface pixel sampled for a character position.
func PixelAt(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CharWidth, (float64(row) + 0.5) * CharHeight
}

// Render draws a width×height character area.
func (f *Field) Render(s *session.Session, width, height int) string {
	g := s.Grid()
	var b strings.Builder
	for row := 0; row < height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < width; col++ {
			x, y, ok := s.CellAt(PixelAt(col, row))
			if !ok {
				b.WriteString(f.empty)
				continue
			}
			if v, _ := g.Get(life.LayerWorking, x, y); v != 0 {
				b.WriteString(f.live)
			} else {
				b.WriteString(f.dot)
			}
		}
	}
	return b.String()
}

// Status renders the session parameters one per line.
func (f *Field) Status(snap core.ParameterSnapshot) string {
	var b strings.Builder
	for _, group := range snap.Groups {
		fmt.Fprintln(&b, f.au.Bold(group.Name))
		for _, p := range group.Params {
			fmt.Fprintf(&b, " %s: %s\n", f.au.Green(p.Label), p.Value)
		}
	}
	return b.String()
}
