//go:build !ebiten

package ui

// Toolbar is a no-op placeholder used when the ebiten build tag is absent.
type Toolbar struct{}

// NewToolbar constructs a stub toolbar.
func NewToolbar(any) *Toolbar { return &Toolbar{} }

// Update is a no-op in headless builds.
func (t *Toolbar) Update() bool { return false }

// Draw is a no-op placeholder.
func (t *Toolbar) Draw(any) {}
