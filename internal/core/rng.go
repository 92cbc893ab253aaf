package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// State returns Alive or Dead with equal probability.
func (r *RNG) State() uint8 {
	return uint8(r.r.IntN(2))
}

// FillBinary sets every cell of g independently to Alive or Dead.
func (r *RNG) FillBinary(g *Grid) {
	for i := range g.data {
		g.data[i] = r.State()
	}
}
