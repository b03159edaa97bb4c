package app

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/integrii/flaggy"

	"lifecanvas/internal/core"
	"lifecanvas/internal/log"
	"lifecanvas/internal/patterns"
	"lifecanvas/internal/session"
	"lifecanvas/internal/view"
	"lifecanvas/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cols, Rows int
	Unit       float64
	// FPS is the initial tick rate; zero derives it from the grid area.
	FPS           int
	Width, Height int

	Pattern string
	Seed    int64
	Density float64

	LogLevel string
	NoColor  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Cols:     64,
		Rows:     48,
		Unit:     36,
		Width:    1280,
		Height:   720,
		Seed:     42,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Cols, "c", "cols", "number of grid columns")
	p.Int(&c.Rows, "r", "rows", "number of grid rows")
	p.Float64(&c.Unit, "u", "unit", "cell size in pixels at 100% scale")
	p.Int(&c.FPS, "f", "fps", "initial generations per second (0 picks from grid size)")
	p.Int(&c.Width, "", "width", "window width in pixels")
	p.Int(&c.Height, "", "height", "window height in pixels")
	p.String(&c.Pattern, "p", "pattern", "pattern to stamp at the centre of the grid")
	p.Int64(&c.Seed, "s", "seed", "seed for random fill")
	p.Float64(&c.Density, "d", "density", "random fill density in [0,1], 0 leaves the grid empty")
	p.String(&c.LogLevel, "l", "log-level", "debug, info, warn, error or off")
	p.Bool(&c.NoColor, "", "no-color", "disable coloured log output")
}

// Validate reports configuration that cannot start a session. Out of range
// tick rates are not errors; the clock clamps them.
func (c *Config) Validate() error {
	var errs []error
	if c.Cols < 1 || c.Rows < 1 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", life.ErrDegenerateGrid, c.Cols, c.Rows))
	}
	if !(c.Unit > 0) || math.IsInf(c.Unit, 0) {
		errs = append(errs, fmt.Errorf("unit must be positive and finite, got %v", c.Unit))
	}
	if c.Width < 1 || c.Height < 1 {
		errs = append(errs, fmt.Errorf("window must be at least 1x1, got %dx%d", c.Width, c.Height))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density must be in [0,1], got %v", c.Density))
	}
	if c.Pattern != "" {
		if _, ok := patterns.Lookup(c.Pattern); !ok {
			errs = append(errs, fmt.Errorf("%w: %q (known: %v)", session.ErrUnknownPattern, c.Pattern, patterns.Names()))
		}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SessionConfig converts the flags into a session configuration.
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		Cols:    c.Cols,
		Rows:    c.Rows,
		Unit:    c.Unit,
		FPS:     min(max(c.FPS, 0), core.MaxFPS),
		Width:   float64(c.Width),
		Height:  float64(c.Height),
		Palette: view.DefaultPalette,
	}
}

// Logger builds the application logger writing to w.
func (c *Config) Logger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.LevelInfo
	}
	return log.New(w, level, !c.NoColor)
}

// ApplySeed applies the configured initial pattern to a session.
func (c *Config) ApplySeed(s *session.Session) error {
	if c.Density > 0 {
		s.Seed(c.Seed, c.Density)
	}
	if c.Pattern != "" {
		return s.Stamp(c.Pattern)
	}
	return nil
}

// NewSession validates the configuration and builds a seeded session.
func (c *Config) NewSession(sched core.FrameScheduler, logger *log.Logger) (*session.Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := session.New(c.SessionConfig(), sched, logger)
	if err != nil {
		return nil, err
	}
	if err := c.ApplySeed(s); err != nil {
		return nil, err
	}
	return s, nil
}
