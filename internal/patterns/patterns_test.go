package patterns

import (
	"slices"
	"testing"

	"lifecanvas/pkg/life"
)

func TestFromRows(t *testing.T) {
	p := FromRows("glider", "", ".O.", "..O", "OOO")
	want := []life.Point{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	if !slices.Equal(want, p.Cells) {
		t.Fatalf("cells=%v, expected %v", p.Cells, want)
	}
	if w, h := p.Bounds(); w != 3 || h != 3 {
		t.Fatalf("bounds=(%d,%d), expected (3,3)", w, h)
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	for _, name := range []string{"block", "blinker", "glider", "lwss", "r-pentomino", "acorn", "gosper-gun"} {
		p, ok := Lookup(name)
		if !ok {
			t.Fatalf("pattern %q missing", name)
		}
		if len(p.Cells) == 0 {
			t.Fatalf("pattern %q has no cells", name)
		}
	}
	if p, _ := Lookup("gosper-gun"); len(p.Cells) != 36 {
		t.Fatalf("gosper gun has %d cells, expected 36", len(p.Cells))
	}
}

func TestGunEmitsGliders(t *testing.T) {
	p, _ := Lookup("gosper-gun")
	g, err := life.NewGrid(64, 48, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.Stamp(p.Cells, 2, 2)
	start := g.Population()
	for range 30 {
		g.Advance()
	}
	if g.Population() != start+5 {
		t.Fatalf("population after one period=%d, expected %d", g.Population(), start+5)
	}
}

func TestRegisterIgnoresEmptyName(t *testing.T) {
	before := len(Names())
	Register(Pattern{})
	if len(Names()) != before {
		t.Fatal("empty pattern name was registered")
	}
}
