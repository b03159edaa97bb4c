package core

import (
	"math"
	"time"
)

const (
	// MaxFPS is the highest simulation tick rate a Clock accepts.
	MaxFPS = 60
	// DefaultFPS is the initial tick rate for small grids.
	DefaultFPS = 10
	// MinInitialFPS bounds InitialFPS for very large grids.
	MinInitialFPS = 1
)

// State is the run state of a Clock.
type State int

const (
	// Stopped clocks do not request frames.
	Stopped State = iota
	// Running clocks render every frame and tick at the configured rate.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Clock drives a per-frame render callback and a throttled tick callback from
// a single host frame primitive.
type Clock struct {
	sched FrameScheduler

	fps      int
	interval time.Duration
	last     time.Duration
	delta    time.Duration

	state   State
	pending FrameID

	onTick  func()
	onFrame func()
}

// NewClock constructs a stopped Clock targeting fps ticks per second.
func NewClock(sched FrameScheduler, fps int) *Clock {
	c := &Clock{sched: sched, last: sched.Now()}
	c.SetFPS(fps)
	return c
}

// Init registers the tick and frame callbacks. It does not start the clock.
func (c *Clock) Init(onTick, onFrame func()) {
	c.onTick = onTick
	c.onFrame = onFrame
}

// Start begins requesting frames. Starting a running clock is a no-op.
func (c *Clock) Start() {
	if c.state == Running {
		return
	}
	c.state = Running
	c.pending = c.sched.RequestFrame(c.frame)
}

// Cancel stops the clock before its next frame and drops any accumulated
// time so a later Start does not tick on stale elapsed time.
func (c *Clock) Cancel() {
	if c.state == Running {
		c.sched.CancelFrame(c.pending)
	}
	c.state = Stopped
	c.pending = 0
	c.delta = 0
	c.last = c.sched.Now()
}

// State reports whether the clock is running.
func (c *Clock) State() State { return c.state }

// FPS returns the configured tick rate.
func (c *Clock) FPS() int { return c.fps }

// Interval returns the time between ticks. Zero means the clock never ticks.
func (c *Clock) Interval() time.Duration { return c.interval }

// SetFPS changes the tick rate, clamped to [0, MaxFPS], and returns the value
// stored. A rate of zero keeps frames coming but never ticks.
func (c *Clock) SetFPS(fps int) int {
	c.fps = min(max(fps, 0), MaxFPS)
	c.interval = 0
	if c.fps > 0 {
		c.interval = time.Second / time.Duration(c.fps)
	}
	return c.fps
}

func (c *Clock) frame(now time.Duration) {
	c.pending = 0
	c.delta = now - c.last

	if c.onFrame != nil {
		c.onFrame()
	}

	if c.interval > 0 && c.delta > c.interval {
		c.last = now - c.delta%c.interval
		if c.onTick != nil {
			c.onTick()
		}
	}

	// A callback may have restarted the clock, which already queued a frame.
	if c.state == Running && c.pending == 0 {
		c.pending = c.sched.RequestFrame(c.frame)
	}
}

// InitialFPS picks a default tick rate for a cols×rows grid. Larger grids
// start slower since every generation touches every cell.
func InitialFPS(cols, rows int) int {
	fps := DefaultFPS - int(math.Ceil(float64(cols)*float64(rows)*0.000008))
	return min(max(fps, MinInitialFPS), DefaultFPS)
}
