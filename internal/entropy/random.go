// Package entropy provides the randomness source for roster generation.
// Production uses crypto/rand; tests and replays inject a seeded source so
// generated rosters are reproducible.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand"
)

// Source yields random values for stochastic game events.
type Source interface {
	// Float returns a uniform float64 in [0, 1).
	Float() float64
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// Crypto is a Source backed by crypto/rand.
type Crypto struct{}

func (Crypto) Float() float64 {
	return cryptoRandFloat()
}

func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("entropy: Intn with non-positive n")
	}
	return int(math.Floor(c.Float() * float64(n)))
}

// Seeded returns a deterministic Source for the given seed.
func Seeded(seed int64) Source {
	return &seeded{rng: mrand.New(mrand.NewSource(seed))}
}

type seeded struct {
	rng *mrand.Rand
}

func (s *seeded) Float() float64 {
	return s.rng.Float64()
}

func (s *seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// cryptoRandFloat generates a uniform float64 in [0, 1) from crypto/rand.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// Should never happen; 0.5 is a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
