package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto draws shoe positions from crypto/rand
// It is the generator used for the shoe when no seed is configured.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: invalid bound %d", n))
	}

	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// the system entropy source is gone, nothing can be shuffled fairly
		panic(fmt.Errorf("rng: %w", err))
	}

	return int(v.Int64())
}
