// Package view maps between screen pixels and grid cells under pan and zoom
// and produces the tiled background pattern.
package view

import "math"

const (
	// ScaleStep is the zoom increment. Scales are always multiples of it.
	ScaleStep = 0.25
	// MinScale and MaxScale bound the zoom factor inclusively.
	MinScale = ScaleStep
	MaxScale = ScaleStep * 6
	// PanSensitivity converts dragged pixels into pan units.
	PanSensitivity = 50.0
	// DotRadius is the background dot radius at scale 1.
	DotRadius = 2.0
)

// Direction selects the way AdjustScale moves the zoom factor.
type Direction int

const (
	// ZoomOut shrinks the grid on screen.
	ZoomOut Direction = iota
	// ZoomIn enlarges the grid on screen.
	ZoomIn
)

func (d Direction) String() string {
	if d == ZoomIn {
		return "in"
	}
	return "out"
}

// Viewport holds the camera state: pixel size of the drawing surface, the
// accumulated pan offset and the zoom factor.
type Viewport struct {
	width, height float64
	panX, panY    float64
	scale         float64
}

// NewViewport returns a viewport of the given pixel size at scale 1.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{width: width, height: height, scale: 1}
}

// Resize updates the surface dimensions without touching pan or scale.
func (v *Viewport) Resize(width, height float64) {
	v.width = width
	v.height = height
}

// Size returns the surface dimensions in pixels.
func (v *Viewport) Size() (float64, float64) { return v.width, v.height }

// Mid returns the centre of the surface in pixels.
func (v *Viewport) Mid() (float64, float64) { return v.width * 0.5, v.height * 0.5 }

// Pan returns the accumulated pan offset.
func (v *Viewport) Pan() (float64, float64) { return v.panX, v.panY }

// Scale returns the zoom factor.
func (v *Viewport) Scale() float64 { return v.scale }

// Position is the pan offset as shown to the user.
func (v *Viewport) Position() (int, int) {
	return int(math.Round(-v.panX)), int(math.Round(-v.panY))
}

// DotRadius returns the background dot radius at the current scale.
func (v *Viewport) DotRadius() float64 { return DotRadius * v.scale }

// SetScale snaps s to the nearest ScaleStep multiple within bounds and
// reports whether the scale changed.
func (v *Viewport) SetScale(s float64) bool {
	s = math.Round(s/ScaleStep) * ScaleStep
	s = min(max(s, MinScale), MaxScale)
	if s == v.scale {
		return false
	}
	v.scale = s
	return true
}

// AdjustScale moves the zoom factor one step. At the bounds it is a no-op and
// reports false.
func (v *Viewport) AdjustScale(dir Direction) bool {
	if dir == ZoomIn {
		return v.SetScale(v.scale + ScaleStep)
	}
	return v.SetScale(v.scale - ScaleStep)
}

// AdjustPan accumulates a screen-space drag. Dividing by the scale keeps the
// perceived pan speed constant across zoom levels.
func (v *Viewport) AdjustPan(dx, dy float64) {
	v.panX += math.Floor(dx / PanSensitivity / v.scale)
	v.panY += math.Floor(dy / PanSensitivity / v.scale)
}

// Translation returns the offset applied to world pixels before drawing so the
// grid is centred on the surface and shifted by the pan.
func (v *Viewport) Translation(worldMidX, worldMidY float64) (float64, float64) {
	mx, my := v.Mid()
	return mx - worldMidX + v.panX*v.scale, my - worldMidY + v.panY*v.scale
}

// ScreenToWorld inverts Translation.
func (v *Viewport) ScreenToWorld(sx, sy, worldMidX, worldMidY float64) (float64, float64) {
	tx, ty := v.Translation(worldMidX, worldMidY)
	return sx - tx, sy - ty
}

// ScreenToCell returns the cell under the screen pixel (sx, sy). The result
// may lie outside the grid; callers bounds-check before writing.
func (v *Viewport) ScreenToCell(sx, sy, unit, worldMidX, worldMidY float64) (int, int) {
	wx, wy := v.ScreenToWorld(sx, sy, worldMidX, worldMidY)
	return int(math.Floor(wx / unit)), int(math.Floor(wy / unit))
}

// CellToScreen returns the screen position of the top-left corner of a cell.
func (v *Viewport) CellToScreen(cx, cy int, unit, worldMidX, worldMidY float64) (float64, float64) {
	tx, ty := v.Translation(worldMidX, worldMidY)
	return float64(cx)*unit + tx, float64(cy)*unit + ty
}
