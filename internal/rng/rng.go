// Package rng is the seeded random source shared by map generation and
// spawning.
package rng

import "math/rand"

// Source supplies uniform integers.
type Source interface {
	// Range returns a uniform integer in [lo, hi].
	Range(lo, hi int) int
	// RollDice returns the sum of n rolls of a sides-sided die.
	RollDice(n, sides int) int
}

// Rand is a Source backed by math/rand.
type Rand struct {
	r *rand.Rand
}

// New returns a Source seeded with seed. The same seed yields the same
// sequence.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func (g *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// RollDice returns the sum of n rolls of a sides-sided die.
func (g *Rand) RollDice(n, sides int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += g.Range(1, sides)
	}
	return total
}
