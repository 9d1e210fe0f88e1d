// Package rng provides the single injectable source of randomness used by the
// simulation. Every draw is an inclusive uniform integer.
package rng

import (
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Source draws a uniform integer in [lo, hi]. Implementations panic when hi < lo.
type Source interface {
	Int(lo, hi int) int
}

// Rand is a seeded PCG-backed Source
type Rand struct {
	r *rand.Rand
}

// New returns a Source that replays the same sequence for the same seed
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Int returns a uniform integer in [lo, hi]
func (s *Rand) Int(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: empty range [%d, %d]", lo, hi))
	}
	return lo + s.r.IntN(hi-lo+1)
}

// SeedFromPhrase turns a human readable phrase into a seed so runs can be
// shared as "nachenblaster -seed-phrase 'friday night'".
func SeedFromPhrase(phrase string) uint64 {
	return xxhash.Sum64String(phrase)
}
