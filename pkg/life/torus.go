package life

// torus describes a cols×rows index space whose edges wrap on both axes.
type torus struct {
	cols, rows int
}

// Index returns the linear slice index for coordinates (x, y).
func (t torus) Index(x, y int) int { return y*t.cols + x }

// Coords returns the coordinates stored at the linear index i.
func (t torus) Coords(i int) (int, int) { return i % t.cols, i / t.cols }

// Contains reports whether (x, y) lies inside the grid without wrapping.
func (t torus) Contains(x, y int) bool {
	return x >= 0 && x < t.cols && y >= 0 && y < t.rows
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (t torus) Wrap(x, y int) (int, int) {
	x = (x%t.cols + t.cols) % t.cols
	y = (y%t.rows + t.rows) % t.rows
	return x, y
}

// neighbors sums the eight wrapped neighbours of (x, y) in buf. Axes one or
// two cells wide alias neighbours onto the same cell, which is counted each
// time it appears.
func (t torus) neighbors(buf []uint8, x, y int) uint8 {
	xl, xr := x-1, x+1
	if xl < 0 {
		xl += t.cols
	}
	if xr >= t.cols {
		xr -= t.cols
	}
	up, down := y-1, y+1
	if up < 0 {
		up += t.rows
	}
	if down >= t.rows {
		down -= t.rows
	}
	up *= t.cols
	down *= t.cols
	row := y * t.cols

	return buf[up+xl] + buf[up+x] + buf[up+xr] +
		buf[row+xl] + buf[row+xr] +
		buf[down+xl] + buf[down+x] + buf[down+xr]
}
