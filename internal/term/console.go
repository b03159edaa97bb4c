package term

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"

	"lifecanvas/internal/core"
	"lifecanvas/internal/log"
	"lifecanvas/internal/session"
	"lifecanvas/internal/view"
)

const (
	fieldView  = "field"
	statusView = "status"
	helpView   = "help"

	statusWidth = 28
	// panChars is how far one arrow key press scrolls, in characters.
	panChars = 4
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
	view    string
}

// Console runs a session inside a gocui terminal UI.
type Console struct {
	session *session.Session
	queue   *core.FrameQueue
	field   *Field
	g       *gocui.Gui
	keys    []keyBinding
	log     *log.Logger

	// Density and Seed are used by the random fill key.
	Density float64
	seed    int64

	width, height int
}

// NewConsole prepares the terminal UI. The session's clock must use queue as
// its scheduler.
func NewConsole(s *session.Session, queue *core.FrameQueue, color bool, seed int64, logger *log.Logger) (*Console, error) {
	if logger == nil {
		logger = log.Discard()
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	c := &Console{
		session: s,
		queue:   queue,
		field:   NewField(color),
		g:       g,
		log:     logger.With("TERM"),
		Density: 0.3,
		seed:    seed,
	}
	g.Mouse = true
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{gocui.KeyEnter, "Enter", "Run", c.action(session.ActionRun), ""},
		{'r', "R", "Reset", c.action(session.ActionReset), ""},
		{'c', "C", "Clear", c.action(session.ActionClear), ""},
		{'1', "1", "Pencil", c.action(session.ActionPencil), ""},
		{'2', "2", "Eraser", c.action(session.ActionEraser), ""},
		{'3', "3", "Pan", c.action(session.ActionPan), ""},
		{'+', "+", "Zoom in", c.zoom(view.ZoomIn), ""},
		{'-', "-", "Zoom out", c.zoom(view.ZoomOut), ""},
		{'.', ".", "Faster", c.speed(1), ""},
		{',', ",", "Slower", c.speed(-1), ""},
		{'w', "W", "Random fill", c.cmdSeed, ""},
		{gocui.KeyArrowLeft, "←", "Pan", c.pan(-panChars, 0), ""},
		{gocui.KeyArrowRight, "→", "Pan", c.pan(panChars, 0), ""},
		{gocui.KeyArrowUp, "↑", "Pan", c.pan(0, -panChars), ""},
		{gocui.KeyArrowDown, "↓", "Pan", c.pan(0, panChars), ""},
		{gocui.MouseLeft, "MOUSE", "Draw", c.cmdMouseClick, fieldView},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.view, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("term: bind %s: %w", kb.name, err)
		}
	}
	s.OnFrame(func(session.Frame) { c.refresh() })
	return c, nil
}

// Run blocks until the user quits. Frames are pumped from a ticker through
// gocui's update queue so every session call happens on the UI goroutine.
func (c *Console) Run(interval time.Duration) error {
	defer c.g.Close()
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.g.Update(func(*gocui.Gui) error {
					c.queue.Pump()
					return nil
				})
			}
		}
	}()

	c.g.Update(func(*gocui.Gui) error {
		c.session.Start()
		return nil
	})
	if err := c.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	c.session.Stop()
	return nil
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView(statusView, 0, 0, statusWidth, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(fieldView, statusWidth+1, 0, maxX-1, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Life"
	}
	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		fmt.Fprint(v, c.help())
	}
	c.resize()
	c.refresh()
	return nil
}

// resize keeps the session surface matched to the field view.
func (c *Console) resize() {
	v, err := c.g.View(fieldView)
	if err != nil {
		return
	}
	w, h := v.Size()
	if w == c.width && h == c.height {
		return
	}
	c.width, c.height = w, h
	c.session.Resize(float64(w)*CharWidth, float64(h)*CharHeight)
	c.log.Debugf("field %dx%d", w, h)
}

func (c *Console) refresh() {
	if v, err := c.g.View(fieldView); err == nil {
		v.Clear()
		fmt.Fprint(v, c.field.Render(c.session, c.width, c.height))
	}
	if v, err := c.g.View(statusView); err == nil {
		v.Clear()
		fmt.Fprint(v, c.field.Status(c.session.Parameters()))
		fmt.Fprintf(v, " %s: %s\n", c.field.au.Green("Tool"), c.session.Tool())
	}
}

func (c *Console) help() string {
	var b bytes.Buffer
	for i, k := range c.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.field.au.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (c *Console) cmdQuit(_ *gocui.View) error { return gocui.ErrQuit }

func (c *Console) action(a session.Action) func(*gocui.View) error {
	return func(*gocui.View) error {
		if !c.session.Do(a) {
			c.log.Debugf("%s unavailable while %s", a, c.session.Mode())
		}
		c.refresh()
		return nil
	}
}

func (c *Console) zoom(dir view.Direction) func(*gocui.View) error {
	return func(*gocui.View) error {
		c.session.Zoom(dir)
		c.refresh()
		return nil
	}
}

func (c *Console) speed(delta int) func(*gocui.View) error {
	return func(*gocui.View) error {
		c.session.AdjustFPS(delta)
		c.refresh()
		return nil
	}
}

// pan moves the view dx, dy characters at scale 1.
func (c *Console) pan(dx, dy int) func(*gocui.View) error {
	return func(*gocui.View) error {
		scale := c.session.Viewport().Scale()
		c.session.PanBy(-float64(dx)*CharWidth*view.PanSensitivity*scale, -float64(dy)*CharHeight*view.PanSensitivity*scale)
		c.refresh()
		return nil
	}
}

func (c *Console) cmdSeed(_ *gocui.View) error {
	if c.session.Mode() == session.ModeRun {
		return nil
	}
	c.seed++
	c.session.Seed(c.seed, c.Density)
	c.refresh()
	return nil
}

func (c *Console) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	px, py := PixelAt(cx, cy)
	c.session.BeginStroke(px, py)
	c.session.EndStroke(px, py)
	c.refresh()
	return nil
}
