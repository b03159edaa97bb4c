// Package patterns holds a registry of named seed patterns.
package patterns

import (
	"sort"

	"lifecanvas/pkg/life"
)

// Pattern is a named set of alive cells relative to its top-left corner.
type Pattern struct {
	Name        string
	Description string
	Cells       []life.Point
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (int, int) {
	w, h := 0, 0
	for _, c := range p.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

// FromRows builds a pattern from text rows where 'O' or '#' marks an alive
// cell and any other rune a dead one.
func FromRows(name, description string, rows ...string) Pattern {
	p := Pattern{Name: name, Description: description}
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == 'O' || r == '#' {
				p.Cells = append(p.Cells, life.Point{X: x, Y: y})
			}
		}
	}
	return p
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name. Empty names are ignored.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(FromRows("block", "2x2 still life", "OO", "OO"))
	Register(FromRows("blinker", "period 2 oscillator", "OOO"))
	Register(FromRows("glider", "smallest spaceship, moves diagonally",
		".O.",
		"..O",
		"OOO",
	))
	Register(FromRows("lwss", "lightweight spaceship",
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	))
	Register(FromRows("r-pentomino", "methuselah, stabilises after 1103 generations",
		".OO",
		"OO.",
		".O.",
	))
	Register(FromRows("acorn", "methuselah, stabilises after 5206 generations",
		".O.....",
		"...O...",
		"OO..OOO",
	))
	Register(FromRows("gosper-gun", "Gosper glider gun, emits a glider every 30 generations",
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	))
}
