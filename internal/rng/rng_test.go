package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	c := Crypto{}
	for i := 0; i < 100; i++ {
		n := c.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
}

func TestSeed(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		seed := Seed()
		assert.Greater(t, seed, int64(0))
		seen[seed] = true
	}

	assert.Greater(t, len(seen), 1)
}
