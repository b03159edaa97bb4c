package core

import "math/rand/v2"

// NewRand returns a deterministic generator for the provided seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillDensity sets each cell of buf to 1 with probability density and to 0
// otherwise. Densities outside [0, 1] are clamped.
func FillDensity(r *rand.Rand, buf []uint8, density float64) {
	switch {
	case density <= 0:
		clear(buf)
		return
	case density >= 1:
		for i := range buf {
			buf[i] = 1
		}
		return
	}
	for i := range buf {
		if r.Float64() < density {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}
