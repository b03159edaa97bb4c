package life

import (
	"fmt"
	"math"
	"math/rand/v2"

	"lifecanvas/pkg/core"
)

// Layer selects one of the grid's two cell buffers.
type Layer int

const (
	// LayerRoot is the committed pattern that Reset restores.
	LayerRoot Layer = iota
	// LayerWorking is the live buffer that generations advance and render from.
	LayerWorking
)

func (l Layer) String() string {
	switch l {
	case LayerRoot:
		return "root"
	case LayerWorking:
		return "working"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Grid implements Conway's Game of Life on a torus with a committed root
// pattern and a live working copy.
type Grid struct {
	torus

	unscaled float64

	root    []uint8
	working []uint8
	scratch []uint8

	generation int
}

// NewGrid allocates a cols×rows grid whose cells are unit pixels wide at
// scale 1. The dimensions are fixed for the lifetime of the grid.
func NewGrid(cols, rows int, unit float64) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateGrid, cols, rows)
	}
	if !(unit > 0) || math.IsInf(unit, 0) {
		return nil, fmt.Errorf("%w: cell size %v", ErrDegenerateGrid, unit)
	}
	total := cols * rows
	return &Grid{
		torus:    torus{cols: cols, rows: rows},
		unscaled: unit,
		root:     make([]uint8, total),
		working:  make([]uint8, total),
		scratch:  make([]uint8, total),
	}, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Unscaled returns the cell pixel size at scale 1.
func (g *Grid) Unscaled() float64 { return g.unscaled }

// Unit returns the on-screen pixel size of one cell at the given scale.
func (g *Grid) Unit(scale float64) float64 { return g.unscaled * scale }

// Size returns the grid's pixel dimensions at the given scale.
func (g *Grid) Size(scale float64) (float64, float64) {
	unit := g.Unit(scale)
	return unit * float64(g.cols), unit * float64(g.rows)
}

// Mid returns the centre of the grid in world pixels at the given scale.
func (g *Grid) Mid(scale float64) (float64, float64) {
	w, h := g.Size(scale)
	return w * 0.5, h * 0.5
}

// Root exposes the committed buffer. Callers must treat it as read-only.
func (g *Grid) Root() []uint8 { return g.root }

// Working exposes the live buffer. Callers must treat it as read-only; the
// slice is recycled by later calls to Advance.
func (g *Grid) Working() []uint8 { return g.working }

// Generation reports how many generations were advanced since the last
// reset, clear or fill. Painting and stamping leave it unchanged.
func (g *Grid) Generation() int { return g.generation }

func (g *Grid) layer(l Layer) []uint8 {
	if l == LayerRoot {
		return g.root
	}
	return g.working
}

// NeighborCount counts the alive cells among the eight toroidal neighbours of
// index in buf.
func (g *Grid) NeighborCount(buf []uint8, index int) uint8 {
	x, y := g.Coords(index)
	return g.neighbors(buf, x, y)
}

// Advance computes the next generation of the working buffer. Every cell is
// evaluated against the same snapshot; the root is untouched.
func (g *Grid) Advance() {
	cur, nxt := g.working, g.scratch
	cols := g.cols
	for y := 0; y < g.rows; y++ {
		row := y * cols
		for x := 0; x < cols; x++ {
			idx := row + x
			n := g.neighbors(cur, x, y)
			if (cur[idx] == 1 && n == 2) || n == 3 {
				nxt[idx] = 1
				continue
			}
			nxt[idx] = 0
		}
	}
	g.working, g.scratch = nxt, cur
	g.generation++
}

// Set writes v into a single layer. Any non-zero value is stored as 1.
func (g *Grid) Set(l Layer, x, y int, v uint8) error {
	if !g.Contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.cols, g.rows)
	}
	g.layer(l)[g.Index(x, y)] = normalize(v)
	return nil
}

// Get reads a single cell from a layer.
func (g *Grid) Get(l Layer, x, y int) (uint8, error) {
	if !g.Contains(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.cols, g.rows)
	}
	return g.layer(l)[g.Index(x, y)], nil
}

// Paint writes v into both the root and working buffers so the edit is
// visible immediately and survives ResetToRoot.
func (g *Grid) Paint(x, y int, v uint8) error {
	if !g.Contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.cols, g.rows)
	}
	idx := g.Index(x, y)
	v = normalize(v)
	g.root[idx] = v
	g.working[idx] = v
	return nil
}

// Stamp paints the given cells alive, offset by (ox, oy) and wrapped onto the
// torus.
func (g *Grid) Stamp(cells []Point, ox, oy int) {
	for _, p := range cells {
		x, y := g.Wrap(p.X+ox, p.Y+oy)
		idx := g.Index(x, y)
		g.root[idx] = 1
		g.working[idx] = 1
	}
}

// Fill replaces both buffers with random cells alive at the given density.
func (g *Grid) Fill(r *rand.Rand, density float64) {
	core.FillDensity(r, g.root, density)
	copy(g.working, g.root)
	g.generation = 0
}

// Clear zeroes both buffers.
func (g *Grid) Clear() {
	clear(g.root)
	clear(g.working)
	g.generation = 0
}

// ResetToRoot discards advanced generations by copying root into working.
func (g *Grid) ResetToRoot() {
	copy(g.working, g.root)
	g.generation = 0
}

// Population counts the alive cells in the working buffer.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.working {
		n += int(c)
	}
	return n
}

// Alive calls fn for every alive cell in the working buffer in index order.
func (g *Grid) Alive(fn func(x, y int)) {
	for i, c := range g.working {
		if c == 0 {
			continue
		}
		x, y := g.Coords(i)
		fn(x, y)
	}
}

func normalize(v uint8) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}
