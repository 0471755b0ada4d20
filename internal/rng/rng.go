// Package rng wraps math/rand/v2 behind the three primitives the
// original Corblivar tool's RNG contract exposes: a uniform integer in
// [0,n), a uniform float in [0,1), and a coin flip.
package rng

import "math/rand/v2"

// RNG is a seeded source for the three primitives the annealer and its
// mutation operators need. It is not safe for concurrent use; the SA
// driver is single-threaded (spec.md §5).
type RNG struct {
	r *rand.Rand
}

// New returns an RNG seeded deterministically from seed, so a run can be
// reproduced given the same seed and inputs.
func New(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform integer in [0, n). Panics if n <= 0.
func (g *RNG) IntN(n int) int {
	return g.r.IntN(n)
}

// Float64 returns a uniform float in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Bool returns a uniform coin flip.
func (g *RNG) Bool() bool {
	return g.r.IntN(2) == 1
}

// Perm returns a random permutation of [0, n).
func (g *RNG) Perm(n int) []int {
	return g.r.Perm(n)
}
