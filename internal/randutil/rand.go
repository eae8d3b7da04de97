// Package randutil builds the random sources decks shuffle with.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Two decks built from the same seed shuffle identically, which is what makes
// a game replayable from its logged seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed resolves the user-facing seed convention: 0 means "pick one", any
// other value is used as is.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}
	return s
}

// Derive returns the seed for the i-th game of a run so every game can be
// replayed on its own.
func Derive(seed int64, i int) int64 {
	return int64(mix(uint64(seed) + uint64(i)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
