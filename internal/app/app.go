//go:build ebiten

package app

import (
	"lifecanvas/internal/core"
	"lifecanvas/internal/log"
	"lifecanvas/internal/render"
	"lifecanvas/internal/session"
	"lifecanvas/internal/ui"
	"lifecanvas/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in pixels.
const HUDWidth = 220

// Game adapts a session to the ebiten.Game interface. Update pumps the frame
// queue, so the clock's tick and render callbacks run on ebiten's update
// goroutine alongside input handling.
type Game struct {
	session *session.Session
	queue   *core.FrameQueue
	painter *render.Painter
	hud     *ui.HUD
	toolbar *ui.Toolbar
	log     *log.Logger

	width, height int

	pressed      bool
	lastX, lastY int
}

// New constructs a Game for the provided session. The session's clock must
// have been created with queue as its scheduler.
func New(s *session.Session, queue *core.FrameQueue, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Discard()
	}
	g := &Game{
		session: s,
		queue:   queue,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(s, "Life", HUDWidth),
		toolbar: ui.NewToolbar(s),
		log:     logger.With("APP"),
	}
	s.Start()
	return g
}

// Update handles per-frame input and drives the session clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Stop()
		return ebiten.Termination
	}
	g.handleKeys()

	// The panels consume pointer input over them, except to finish a stroke
	// that started on the canvas.
	overHUD := g.hud.Update(g.width)
	overToolbar := g.toolbar.Update()
	g.handlePointer(overHUD || overToolbar)

	g.queue.Pump()
	return nil
}

func (g *Game) handleKeys() {
	s := g.session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.Do(session.ActionRun)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if s.Mode() == session.ModeRun {
			s.Do(session.ActionReset)
		} else {
			s.Do(session.ActionRun)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.Do(session.ActionReset)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.Do(session.ActionClear)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		s.Do(session.ActionPencil)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		s.Do(session.ActionEraser)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		s.Do(session.ActionPan)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		s.Zoom(view.ZoomIn)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		s.Zoom(view.ZoomOut)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		s.AdjustFPS(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		s.AdjustFPS(-1)
	}
}

func (g *Game) handlePointer(overPanel bool) {
	s := g.session
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if !overPanel {
		if _, dy := ebiten.Wheel(); dy > 0 {
			s.Zoom(view.ZoomIn)
		} else if dy < 0 {
			s.Zoom(view.ZoomOut)
		}
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !overPanel:
		g.pressed = true
		g.lastX, g.lastY = mx, my
		s.BeginStroke(x, y)
		s.MoveStroke(x, y)
	case g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pressed = false
		s.EndStroke(x, y)
	case g.pressed && (mx != g.lastX || my != g.lastY):
		g.lastX, g.lastY = mx, my
		s.MoveStroke(x, y)
	}
}

// Draw renders the most recent session frame and the panels.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.session.Frame())
	g.toolbar.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size so the grid stays centred in the area left
// of the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(max(outsideWidth-g.hud.Width(), 1)), float64(outsideHeight))
		g.log.Debugf("layout %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
