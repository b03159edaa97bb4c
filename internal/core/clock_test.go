package core

import (
	"testing"
	"time"
)

type fakeTime struct{ now time.Duration }

func (f *fakeTime) read() time.Duration { return f.now }

func newTestClock(fps int) (*Clock, *FrameQueue, *fakeTime, *int, *int) {
	ft := &fakeTime{}
	q := NewFrameQueue(ft.read)
	c := NewClock(q, fps)
	ticks, frames := new(int), new(int)
	c.Init(func() { *ticks++ }, func() { *frames++ })
	return c, q, ft, ticks, frames
}

func TestClockThrottlesTicks(t *testing.T) {
	c, q, ft, ticks, frames := newTestClock(10)
	if c.Interval() != 100*time.Millisecond {
		t.Fatalf("interval=%v, expected 100ms", c.Interval())
	}
	if q.Pending() != 0 {
		t.Fatal("Init must not schedule frames")
	}
	c.Start()

	steps := []struct {
		at     time.Duration
		ticks  int
		frames int
	}{
		{50 * time.Millisecond, 0, 1},
		{120 * time.Millisecond, 1, 2},
		{150 * time.Millisecond, 1, 3},
		{201 * time.Millisecond, 2, 4},
		{299 * time.Millisecond, 2, 5},
		{301 * time.Millisecond, 3, 6},
		{350 * time.Millisecond, 3, 7},
	}
	for _, s := range steps {
		ft.now = s.at
		if ran := q.Pump(); ran != 1 {
			t.Fatalf("at %v pumped %d frames, expected 1", s.at, ran)
		}
		if *ticks != s.ticks || *frames != s.frames {
			t.Fatalf("at %v ticks=%d frames=%d, expected %d/%d", s.at, *ticks, *frames, s.ticks, s.frames)
		}
	}
}

func TestClockCarriesRemainder(t *testing.T) {
	c, q, ft, ticks, _ := newTestClock(10)
	c.Start()
	ft.now = 250 * time.Millisecond
	q.Pump()
	if *ticks != 1 {
		t.Fatalf("ticks=%d, expected 1", *ticks)
	}
	if c.last != 200*time.Millisecond {
		t.Fatalf("last=%v, expected remainder-adjusted 200ms", c.last)
	}
}

func TestClockZeroFPSNeverTicks(t *testing.T) {
	c, q, ft, ticks, frames := newTestClock(0)
	if c.Interval() != 0 {
		t.Fatalf("interval=%v, expected 0", c.Interval())
	}
	c.Start()
	for i := 1; i <= 100; i++ {
		ft.now = time.Duration(i) * time.Second
		q.Pump()
	}
	if *ticks != 0 {
		t.Fatalf("ticks=%d at 0 fps", *ticks)
	}
	if *frames != 100 {
		t.Fatalf("frames=%d, expected rendering to continue", *frames)
	}
}

func TestClockCancel(t *testing.T) {
	c, q, ft, ticks, frames := newTestClock(10)
	c.Start()
	ft.now = 80 * time.Millisecond
	q.Pump()

	ft.now = 90 * time.Millisecond
	c.Cancel()
	if c.State() != Stopped {
		t.Fatalf("state=%v after cancel", c.State())
	}
	if c.delta != 0 || c.last != 90*time.Millisecond {
		t.Fatalf("cancel left delta=%v last=%v", c.delta, c.last)
	}
	ft.now = 500 * time.Millisecond
	if ran := q.Pump(); ran != 0 {
		t.Fatalf("cancelled clock ran %d frames", ran)
	}

	ft.now = 90 * time.Millisecond
	c.Start()
	ft.now = 150 * time.Millisecond
	q.Pump()
	if *ticks != 0 {
		t.Fatalf("ticks=%d, stale time leaked across cancel", *ticks)
	}
	if *frames != 2 {
		t.Fatalf("frames=%d, expected 2", *frames)
	}
}

func TestClockCancelFromCallback(t *testing.T) {
	ft := &fakeTime{}
	q := NewFrameQueue(ft.read)
	c := NewClock(q, 10)
	c.Init(nil, func() { c.Cancel() })
	c.Start()
	q.Pump()
	if q.Pending() != 0 {
		t.Fatal("clock rescheduled after cancelling inside the frame callback")
	}
}

func TestClockRestartFromCallbackKeepsOneRequest(t *testing.T) {
	ft := &fakeTime{}
	q := NewFrameQueue(ft.read)
	c := NewClock(q, 10)
	frames := 0
	c.Init(nil, func() {
		frames++
		if frames == 1 {
			c.Cancel()
			c.Start()
		}
	})
	c.Start()
	for range 4 {
		ft.now += 16 * time.Millisecond
		q.Pump()
	}
	if q.Pending() != 1 || frames != 4 {
		t.Fatalf("pending=%d frames=%d after 4 pumps, expected 1 and 4", q.Pending(), frames)
	}
	c.Cancel()
	q.Pump()
	if q.Pending() != 0 || frames != 4 {
		t.Fatalf("pending=%d frames=%d after cancel, expected 0 and 4", q.Pending(), frames)
	}
}

func TestClockStartIsIdempotent(t *testing.T) {
	c, q, _, _, _ := newTestClock(10)
	c.Start()
	c.Start()
	if q.Pending() != 1 {
		t.Fatalf("pending=%d, expected a single frame request", q.Pending())
	}
}

func TestSetFPSClamps(t *testing.T) {
	c, _, _, _, _ := newTestClock(10)
	cases := map[int]int{-5: 0, -1: 0, 0: 0, 1: 1, 30: 30, 60: 60, 61: 60, 1000: 60}
	for in, want := range cases {
		if got := c.SetFPS(in); got != want || c.FPS() != want {
			t.Fatalf("SetFPS(%d)=%d fps=%d, expected %d", in, got, c.FPS(), want)
		}
	}
	c.SetFPS(20)
	if c.Interval() != 50*time.Millisecond {
		t.Fatalf("interval=%v at 20 fps", c.Interval())
	}
}

func TestInitialFPS(t *testing.T) {
	cases := []struct {
		cols, rows, want int
	}{
		{1, 1, 9},
		{100, 100, 9},
		{400, 400, 8},
		{1000, 900, 2},
		{2000, 2000, 1},
	}
	for _, tc := range cases {
		if got := InitialFPS(tc.cols, tc.rows); got != tc.want {
			t.Fatalf("InitialFPS(%d, %d)=%d, expected %d", tc.cols, tc.rows, got, tc.want)
		}
	}
}
