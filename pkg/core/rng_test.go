package core

import (
	"slices"
	"testing"
)

func TestFillDensityDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillDensity(NewRand(7), a, 0.3)
	FillDensity(NewRand(7), b, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
	for i, v := range a {
		if v > 1 {
			t.Fatalf("cell %d = %d, expected 0 or 1", i, v)
		}
	}
}

func TestFillDensityBounds(t *testing.T) {
	buf := make([]uint8, 64)
	FillDensity(NewRand(1), buf, 2)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("cell %d = %d after full density", i, v)
		}
	}
	FillDensity(NewRand(1), buf, -1)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("cell %d = %d after zero density", i, v)
		}
	}
}
