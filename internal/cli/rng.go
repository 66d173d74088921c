package cli

import "math/rand/v2"

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int   { return rand.IntN(n) }
func (stdRNG) Float64() float64 { return rand.Float64() }

// seededRNG wraps a PCG source for reproducible dataset runs.
type seededRNG struct{ r *rand.Rand }

func newSeededRNG(seed uint64) seededRNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s seededRNG) Intn(n int) int   { return s.r.IntN(n) }
func (s seededRNG) Float64() float64 { return s.r.Float64() }
