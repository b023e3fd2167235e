package rng

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestSeeded_Intn(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		n := a.Intn(52)
		assert.Equal(t, n, b.Intn(52))
		assert.T(t, n >= 0 && n < 52, "out of range", n)
	}

	assert.Equal(t, int64(42), a.Seed())
}

func TestNewSeeded_zeroSeed(t *testing.T) {
	s := NewSeeded(0)
	assert.NotEqual(t, int64(0), s.Seed())
}

func TestGenerator_implementations(t *testing.T) {
	var _ Generator = Crypto{}
	var _ Generator = &Seeded{}
}
