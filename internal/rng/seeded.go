package rng

import (
	"math/rand"
	"time"
)

// Seeded is a deterministic generator backed by math/rand
// Two generators created with the same seed produce the same sequence, which makes shuffles repeatable.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a new seeded generator
// If seed is 0, the current time is used
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Seed returns the seed used by the generator
func (s *Seeded) Seed() int64 {
	return s.seed
}
