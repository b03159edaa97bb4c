package session

import (
	"errors"
	"slices"
	"testing"
	"time"

	"lifecanvas/internal/core"
	"lifecanvas/internal/view"
	"lifecanvas/pkg/life"
)

type fakeTime struct{ now time.Duration }

func (f *fakeTime) read() time.Duration { return f.now }

// newTestSession builds a 10x10 grid of 36px cells on an 800x600 surface, so
// the grid spans screen pixels [220,580)×[120,480) at scale 1.
func newTestSession(t *testing.T) (*Session, *core.FrameQueue, *fakeTime) {
	t.Helper()
	ft := &fakeTime{}
	q := core.NewFrameQueue(ft.read)
	s, err := New(Config{Cols: 10, Rows: 10, Unit: 36, FPS: 10, Width: 800, Height: 600}, q, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, q, ft
}

func cell(s *Session, l life.Layer, x, y int) uint8 {
	v, _ := s.Grid().Get(l, x, y)
	return v
}

func TestNewRejectsDegenerateGrid(t *testing.T) {
	_, err := New(Config{Cols: 0, Rows: 10, Unit: 36}, core.NewFrameQueue(nil), nil)
	if !errors.Is(err, life.ErrDegenerateGrid) {
		t.Fatalf("err=%v, expected ErrDegenerateGrid", err)
	}
}

func TestNewPicksInitialFPS(t *testing.T) {
	s, err := New(Config{Cols: 1000, Rows: 900, Unit: 4, Width: 100, Height: 100}, core.NewFrameQueue(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Clock().FPS() != 2 {
		t.Fatalf("fps=%d, expected area-derived 2", s.Clock().FPS())
	}
	if s.Mode() != ModeEdit || s.Tool() != ToolPencil {
		t.Fatalf("mode=%v tool=%v, expected editing with pencil", s.Mode(), s.Tool())
	}
}

func TestPaintMapsScreenToCell(t *testing.T) {
	s, _, _ := newTestSession(t)
	if !s.Paint(1, 400, 300) {
		t.Fatal("paint at screen centre was rejected")
	}
	if cell(s, life.LayerRoot, 5, 5) != 1 || cell(s, life.LayerWorking, 5, 5) != 1 {
		t.Fatal("paint at screen centre did not reach cell (5,5) in both buffers")
	}
	if !s.Paint(1, 220, 120) {
		t.Fatal("paint at grid corner was rejected")
	}
	if cell(s, life.LayerWorking, 0, 0) != 1 {
		t.Fatal("corner paint missed cell (0,0)")
	}
	for _, p := range [][2]float64{{0, 0}, {219, 300}, {580, 300}, {400, 480}, {400, 119}} {
		if s.Paint(1, p[0], p[1]) {
			t.Fatalf("paint at %v outside the grid was accepted", p)
		}
	}
	if s.Grid().Population() != 2 {
		t.Fatalf("population=%d, expected 2", s.Grid().Population())
	}
}

func TestPaintFollowsPanAndZoom(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Zoom(view.ZoomIn)
	s.PanBy(-100, 0)
	// unit 45, grid mid 225, pan -1.6 → floor -2, translation x = 400-225-2.5.
	x, y, ok := s.CellAt(400, 300)
	if !ok || x != 5 || y != 5 {
		t.Fatalf("CellAt(centre)=(%d,%d,%v), expected (5,5,true)", x, y, ok)
	}
	x, _, _ = s.CellAt(172.5, 300)
	if x != 0 {
		t.Fatalf("left edge mapped to column %d, expected 0", x)
	}
	x, _, _ = s.CellAt(172.4, 300)
	if x != -1 {
		t.Fatalf("pixel left of the grid mapped to column %d, expected -1", x)
	}
}

func TestPencilAndEraserStrokes(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.BeginStroke(400, 300)
	if s.Grid().Population() != 0 {
		t.Fatal("pressing must not paint")
	}
	s.MoveStroke(400, 300)
	s.MoveStroke(436, 300)
	s.EndStroke(472, 300)
	for x := 5; x <= 7; x++ {
		if cell(s, life.LayerRoot, x, 5) != 1 {
			t.Fatalf("cell (%d,5) not painted by stroke", x)
		}
	}

	s.MoveStroke(508, 300)
	if cell(s, life.LayerRoot, 8, 5) != 0 {
		t.Fatal("move after release painted")
	}

	s.Do(ActionEraser)
	s.BeginStroke(436, 300)
	s.EndStroke(436, 300)
	if cell(s, life.LayerRoot, 6, 5) != 0 || cell(s, life.LayerWorking, 6, 5) != 0 {
		t.Fatal("eraser did not clear cell (6,5)")
	}
	if s.Grid().Population() != 2 {
		t.Fatalf("population=%d after erase, expected 2", s.Grid().Population())
	}
}

func TestPanStrokeAccumulatesFromOrigin(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.SelectTool(ToolPan)
	s.BeginStroke(500, 500)
	s.MoveStroke(400, 500)
	s.MoveStroke(400, 500)
	if x, y := s.Viewport().Pan(); x != 4 || y != 0 {
		t.Fatalf("pan=(%v,%v), expected (4,0)", x, y)
	}
	s.EndStroke(400, 500)
	s.MoveStroke(0, 0)
	if x, _ := s.Viewport().Pan(); x != 4 {
		t.Fatalf("pan moved after release: %v", x)
	}
	if s.Grid().Population() != 0 {
		t.Fatal("pan stroke painted cells")
	}
}

func TestRunTicksAndResetRestores(t *testing.T) {
	s, q, ft := newTestSession(t)
	if err := s.Stamp("blinker"); err != nil {
		t.Fatal(err)
	}
	root := slices.Clone(s.Grid().Root())
	s.Start()

	// Edit mode renders but never advances.
	ft.now = 500 * time.Millisecond
	q.Pump()
	if s.Grid().Generation() != 0 {
		t.Fatal("grid advanced while editing")
	}

	s.Do(ActionRun)
	if s.Mode() != ModeRun || s.Tool() != ToolPan {
		t.Fatalf("mode=%v tool=%v after run", s.Mode(), s.Tool())
	}
	for i := 1; i <= 3; i++ {
		ft.now += 150 * time.Millisecond
		q.Pump()
	}
	if s.Grid().Generation() != 3 {
		t.Fatalf("generation=%d, expected 3", s.Grid().Generation())
	}
	if slices.Equal(root, s.Grid().Working()) {
		t.Fatal("blinker did not oscillate after an odd number of generations")
	}

	if s.Do(ActionClear) {
		t.Fatal("clear must not be available while running")
	}
	s.Do(ActionReset)
	if s.Mode() != ModeEdit || s.Tool() != ToolPencil {
		t.Fatalf("mode=%v tool=%v after reset", s.Mode(), s.Tool())
	}
	if !slices.Equal(root, s.Grid().Working()) {
		t.Fatal("reset did not restore the root pattern")
	}
}

func TestPaintWhileRunningUpdatesRoot(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.StartRun()
	s.Paint(1, 400, 300)
	s.Reset()
	if cell(s, life.LayerWorking, 5, 5) != 1 {
		t.Fatal("cell painted while running was lost on reset")
	}
}

func TestActionsByMode(t *testing.T) {
	s, _, _ := newTestSession(t)
	want := []Action{ActionPencil, ActionEraser, ActionPan, ActionClear, ActionRun}
	if !slices.Equal(want, s.Actions()) {
		t.Fatalf("edit actions=%v", s.Actions())
	}
	if s.Do(ActionReset) {
		t.Fatal("reset must not be available while editing")
	}
	if !s.Active(ActionPencil) || s.Active(ActionPan) {
		t.Fatal("pencil should be the only active tool")
	}
	s.StartRun()
	if !slices.Equal([]Action{ActionPan, ActionReset}, s.Actions()) {
		t.Fatalf("run actions=%v", s.Actions())
	}
	if s.Do(ActionPencil) {
		t.Fatal("pencil must not be available while running")
	}
}

func TestZoomRebuildsTile(t *testing.T) {
	s, _, _ := newTestSession(t)
	before := s.Snapshot().Tile
	if before.Size() != 36 || before.Radius != 2 {
		t.Fatalf("initial tile size=%d radius=%v", before.Size(), before.Radius)
	}
	if !s.Zoom(view.ZoomIn) {
		t.Fatal("zoom in from scale 1 should succeed")
	}
	after := s.Snapshot().Tile
	if after == before || after.Size() != 45 || after.Radius != 2.5 {
		t.Fatalf("tile not rebuilt: size=%d radius=%v", after.Size(), after.Radius)
	}
	for s.Zoom(view.ZoomIn) {
	}
	if s.Zoom(view.ZoomIn) {
		t.Fatal("zoom beyond the maximum should report false")
	}
}

func TestFrameSnapshot(t *testing.T) {
	s, q, ft := newTestSession(t)
	var frames []Frame
	s.OnFrame(func(f Frame) { frames = append(frames, f) })
	s.Paint(1, 400, 300)
	s.Start()
	ft.now = 10 * time.Millisecond
	q.Pump()
	if len(frames) != 1 {
		t.Fatalf("received %d frames, expected 1", len(frames))
	}
	f := frames[0]
	if f.TranslateX != 220 || f.TranslateY != 120 {
		t.Fatalf("translation=(%v,%v), expected (220,120)", f.TranslateX, f.TranslateY)
	}
	if f.Unit != 36 || f.Cols != 10 || f.Rows != 10 || len(f.Cells) != 100 {
		t.Fatalf("unexpected geometry %+v", f)
	}
	if f.Population != 1 || f.Cells[55] != 1 {
		t.Fatal("frame does not reflect the painted cell")
	}
	if f.FPS != 10 || f.Scale != 1 || f.Background != view.DefaultPalette.Background {
		t.Fatalf("unexpected frame state fps=%d scale=%v", f.FPS, f.Scale)
	}
	if s.Frame().Population != 1 {
		t.Fatal("Frame() must return the last rendered frame")
	}

	s.Stop()
	ft.now = time.Second
	q.Pump()
	if len(frames) != 1 {
		t.Fatal("stopped session kept rendering")
	}
}

func TestParameters(t *testing.T) {
	s, _, _ := newTestSession(t)
	if !s.SetIntParameter("fps", 100) || s.Clock().FPS() != 60 {
		t.Fatalf("fps=%d, expected clamp to 60", s.Clock().FPS())
	}
	if s.AdjustFPS(-61) != 0 {
		t.Fatal("fps must clamp at 0")
	}
	if !s.SetFloatParameter("scale", 1.3) || s.Viewport().Scale() != 1.25 {
		t.Fatalf("scale=%v, expected snap to 1.25", s.Viewport().Scale())
	}
	if s.SetIntParameter("scale", 1) || s.SetFloatParameter("fps", 1) {
		t.Fatal("mismatched parameter types must be rejected")
	}
	snap := s.Parameters()
	if p, ok := snap.Lookup("fps"); !ok || p.Value != "0" {
		t.Fatalf("fps parameter=%+v", p)
	}
	if p, ok := snap.Lookup("scale"); !ok || p.Value != "1.25" {
		t.Fatalf("scale parameter=%+v", p)
	}
	if p, ok := snap.Lookup("zoom"); !ok || p.Value != "125%" {
		t.Fatalf("zoom parameter=%+v", p)
	}
	if p, ok := snap.Lookup("position"); !ok || p.Value != "0, 0" {
		t.Fatalf("position parameter=%+v", p)
	}
	if len(s.ParameterControls()) != 2 {
		t.Fatal("expected scale and speed controls")
	}
}

func TestSeedAndStamp(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Seed(4, 1)
	if s.Grid().Population() != 100 {
		t.Fatalf("population=%d after full seed", s.Grid().Population())
	}
	s.Clear()
	if err := s.Stamp("glider"); err != nil {
		t.Fatal(err)
	}
	if s.Grid().Population() != 5 {
		t.Fatalf("population=%d after glider stamp", s.Grid().Population())
	}
	if err := s.Stamp("nope"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err=%v, expected ErrUnknownPattern", err)
	}
}
