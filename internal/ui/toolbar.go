//go:build ebiten

package ui

import (
	"image/color"

	"lifecanvas/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionSource is the toolbar's view of a session.
type ActionSource interface {
	Actions() []session.Action
	Active(session.Action) bool
	Do(session.Action) bool
}

// Toolbar draws the mode-dependent action buttons along the top edge.
type Toolbar struct {
	source ActionSource
	pixel  *ebiten.Image
	layout toolbarLayout
}

// NewToolbar constructs a toolbar for source.
func NewToolbar(source ActionSource) *Toolbar {
	t := &Toolbar{source: source}
	t.pixel = ebiten.NewImage(1, 1)
	t.pixel.Fill(color.White)
	return t
}

// Update runs the action under a click and reports whether the cursor is
// over a button.
func (t *Toolbar) Update() bool {
	if t == nil {
		return false
	}
	t.layout.update(t.source.Actions())
	a, ok := t.layout.hit(ebiten.CursorPosition())
	if !ok {
		return false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		t.source.Do(a)
	}
	return true
}

// Draw renders the buttons, highlighting the selected tool.
func (t *Toolbar) Draw(screen *ebiten.Image) {
	if t == nil {
		return
	}
	t.layout.update(t.source.Actions())
	for i, a := range t.layout.actions {
		bg := buttonColor
		if t.source.Active(a) {
			bg = activeColor
		}
		drawButton(screen, t.pixel, t.layout.rects[i], a.String(), bg, labelColor)
	}
}
