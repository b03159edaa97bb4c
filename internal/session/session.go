// Package session wires user input to the grid engine, the viewport and the
// simulation clock, and produces one renderable Frame per displayed frame.
//
// A Session is not safe for concurrent use. Hosts drive it from a single
// goroutine: input handlers, frame pumping and drawing all share that thread.
package session

import (
	"errors"
	"fmt"
	"image/color"

	"lifecanvas/internal/core"
	"lifecanvas/internal/log"
	"lifecanvas/internal/patterns"
	"lifecanvas/internal/view"
	pcore "lifecanvas/pkg/core"
	"lifecanvas/pkg/life"
)

// ErrUnknownPattern is returned by Stamp for unregistered pattern names.
var ErrUnknownPattern = errors.New("unknown pattern")

// Mode is the session's run state.
type Mode int

const (
	// ModeEdit is paused: the working buffer only changes through edits.
	ModeEdit Mode = iota
	// ModeRun advances a generation on every clock tick.
	ModeRun
)

func (m Mode) String() string {
	if m == ModeRun {
		return "running"
	}
	return "editing"
}

// Tool decides what a pointer stroke does.
type Tool int

const (
	// ToolPencil paints cells alive.
	ToolPencil Tool = iota
	// ToolEraser paints cells dead.
	ToolEraser
	// ToolPan drags the view.
	ToolPan
)

func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	default:
		return "pan"
	}
}

// Config describes a new session.
type Config struct {
	Cols, Rows int
	// Unit is the cell size in pixels at scale 1.
	Unit float64
	// FPS is the initial tick rate. Zero picks a rate from the grid area.
	FPS           int
	Width, Height float64
	Palette       view.Palette
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Background color.RGBA
	Cell       color.RGBA
	Tile       *view.Tile

	// TranslateX and TranslateY offset world pixels onto the screen.
	TranslateX, TranslateY float64
	Unit                   float64
	Cols, Rows             int
	// Cells is the working buffer in row-major order. It is only valid until
	// the next tick.
	Cells []uint8

	PositionX, PositionY int
	Scale                float64
	FPS                  int
	Mode                 Mode
	Tool                 Tool
	Generation           int
	Population           int
}

type stroke struct {
	active           bool
	originX, originY float64
}

// Session owns one grid, its viewport and its clock.
type Session struct {
	grid    *life.Grid
	view    *view.Viewport
	clock   *core.Clock
	palette view.Palette
	tile    *view.Tile

	mode   Mode
	tool   Tool
	stroke stroke

	frame   Frame
	onFrame func(Frame)

	log *log.Logger
}

// New builds a session in edit mode with the pencil selected. The clock is
// created but not started.
func New(cfg Config, sched core.FrameScheduler, logger *log.Logger) (*Session, error) {
	grid, err := life.NewGrid(cfg.Cols, cfg.Rows, cfg.Unit)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if logger == nil {
		logger = log.Discard()
	}
	fps := cfg.FPS
	if fps == 0 {
		fps = core.InitialFPS(cfg.Cols, cfg.Rows)
	}
	palette := cfg.Palette
	if palette == (view.Palette{}) {
		palette = view.DefaultPalette
	}

	s := &Session{
		grid:    grid,
		view:    view.NewViewport(cfg.Width, cfg.Height),
		clock:   core.NewClock(sched, fps),
		palette: palette,
		log:     logger.With("SESSION"),
	}
	s.clock.Init(s.tick, s.render)
	s.rebuildTile()
	s.log.Infof("grid %dx%d unit=%v fps=%d", cfg.Cols, cfg.Rows, cfg.Unit, s.clock.FPS())
	return s, nil
}

// Grid exposes the grid engine.
func (s *Session) Grid() *life.Grid { return s.grid }

// Viewport exposes the camera.
func (s *Session) Viewport() *view.Viewport { return s.view }

// Clock exposes the simulation clock.
func (s *Session) Clock() *core.Clock { return s.clock }

// Mode returns the run state.
func (s *Session) Mode() Mode { return s.mode }

// Tool returns the selected tool.
func (s *Session) Tool() Tool { return s.tool }

// OnFrame registers fn to receive every rendered frame.
func (s *Session) OnFrame(fn func(Frame)) { s.onFrame = fn }

// Start begins driving frames.
func (s *Session) Start() { s.clock.Start() }

// Stop cancels the clock.
func (s *Session) Stop() { s.clock.Cancel() }

// Frame returns the most recently rendered frame.
func (s *Session) Frame() Frame { return s.frame }

func (s *Session) tick() {
	if s.mode != ModeRun {
		return
	}
	s.grid.Advance()
}

func (s *Session) render() {
	s.frame = s.Snapshot()
	if s.onFrame != nil {
		s.onFrame(s.frame)
	}
}

// Snapshot builds a Frame from the current state.
func (s *Session) Snapshot() Frame {
	scale := s.view.Scale()
	tx, ty := s.view.Translation(s.grid.Mid(scale))
	px, py := s.view.Position()
	return Frame{
		Background: s.palette.Background,
		Cell:       s.palette.Cell,
		Tile:       s.tile,
		TranslateX: tx,
		TranslateY: ty,
		Unit:       s.grid.Unit(scale),
		Cols:       s.grid.Cols(),
		Rows:       s.grid.Rows(),
		Cells:      s.grid.Working(),
		PositionX:  px,
		PositionY:  py,
		Scale:      scale,
		FPS:        s.clock.FPS(),
		Mode:       s.mode,
		Tool:       s.tool,
		Generation: s.grid.Generation(),
		Population: s.grid.Population(),
	}
}

func (s *Session) rebuildTile() {
	unit := s.grid.Unit(s.view.Scale())
	s.tile = view.NewTile(unit, s.palette.Background, s.palette.Dot, s.view.DotRadius())
}

// CellAt maps a screen pixel to a grid cell and reports whether it lies
// inside the grid.
func (s *Session) CellAt(sx, sy float64) (int, int, bool) {
	scale := s.view.Scale()
	mx, my := s.grid.Mid(scale)
	x, y := s.view.ScreenToCell(sx, sy, s.grid.Unit(scale), mx, my)
	return x, y, s.grid.Contains(x, y)
}

// Paint writes value into the cell under the screen pixel, in both the root
// and working buffers. Pixels outside the grid are ignored and report false.
func (s *Session) Paint(value uint8, sx, sy float64) bool {
	x, y, _ := s.CellAt(sx, sy)
	if err := s.grid.Paint(x, y, value); err != nil {
		if errors.Is(err, life.ErrOutOfBounds) {
			s.log.Debugf("paint ignored: %v", err)
			return false
		}
		s.log.Warnf("paint failed: %v", err)
		return false
	}
	return true
}

// SelectTool switches the active tool and abandons any stroke in progress.
func (s *Session) SelectTool(t Tool) {
	s.tool = t
	s.stroke = stroke{}
}

// BeginStroke records a pointer press at a screen pixel.
func (s *Session) BeginStroke(sx, sy float64) {
	s.stroke = stroke{active: true, originX: sx, originY: sy}
}

// MoveStroke applies the active tool at the pointer position. Panning
// accumulates the distance from the press point on every move, so holding
// the pointer away from it keeps scrolling.
func (s *Session) MoveStroke(sx, sy float64) {
	if !s.stroke.active {
		return
	}
	switch s.tool {
	case ToolPencil:
		s.Paint(1, sx, sy)
	case ToolEraser:
		s.Paint(0, sx, sy)
	case ToolPan:
		s.view.AdjustPan(s.stroke.originX-sx, s.stroke.originY-sy)
	}
}

// EndStroke finishes a stroke at the pointer release position.
func (s *Session) EndStroke(sx, sy float64) {
	if !s.stroke.active {
		return
	}
	switch s.tool {
	case ToolPencil:
		s.Paint(1, sx, sy)
	case ToolEraser:
		s.Paint(0, sx, sy)
	}
	s.stroke = stroke{}
}

// PanBy applies a screen-space pan delta.
func (s *Session) PanBy(dx, dy float64) { s.view.AdjustPan(dx, dy) }

// Zoom moves the scale one step and rebuilds the background tile when it
// changes.
func (s *Session) Zoom(dir view.Direction) bool {
	if !s.view.AdjustScale(dir) {
		return false
	}
	s.rebuildTile()
	s.log.Debugf("zoom %v scale=%v", dir, s.view.Scale())
	return true
}

// SetScale snaps and applies an absolute scale.
func (s *Session) SetScale(scale float64) bool {
	if !s.view.SetScale(scale) {
		return false
	}
	s.rebuildTile()
	return true
}

// AdjustFPS nudges the tick rate and returns the clamped result.
func (s *Session) AdjustFPS(delta int) int { return s.SetFPS(s.clock.FPS() + delta) }

// SetFPS sets the tick rate, clamped to [0, core.MaxFPS].
func (s *Session) SetFPS(fps int) int {
	got := s.clock.SetFPS(fps)
	s.log.Debugf("fps=%d", got)
	return got
}

// StartRun resumes generation stepping and switches to the pan tool.
func (s *Session) StartRun() {
	s.mode = ModeRun
	s.SelectTool(ToolPan)
	s.log.Infof("run from %d alive cells", s.grid.Population())
}

// Reset pauses, restores the working buffer from the root and selects the
// pencil.
func (s *Session) Reset() {
	s.mode = ModeEdit
	s.SelectTool(ToolPencil)
	gen := s.grid.Generation()
	s.grid.ResetToRoot()
	s.log.Infof("reset after %d generations", gen)
}

// Clear kills every cell in both buffers.
func (s *Session) Clear() {
	s.grid.Clear()
	s.log.Infof("cleared")
}

// Resize updates the surface size after a host resize.
func (s *Session) Resize(width, height float64) { s.view.Resize(width, height) }

// Seed fills the grid with random cells.
func (s *Session) Seed(seed int64, density float64) {
	s.grid.Fill(pcore.NewRand(seed), density)
	s.log.Infof("seeded %d cells (seed=%d density=%v)", s.grid.Population(), seed, density)
}

// Stamp paints a registered pattern centred on the grid.
func (s *Session) Stamp(name string) error {
	p, ok := patterns.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	w, h := p.Bounds()
	s.grid.Stamp(p.Cells, (s.grid.Cols()-w)/2, (s.grid.Rows()-h)/2)
	s.log.Infof("stamped %s", name)
	return nil
}
