package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	exprand "golang.org/x/exp/rand"
)

// SeedSize is a native seed width of the generator.
const SeedSize = 32

// Seed is an exact-width seed of the generator.
type Seed [SeedSize]byte

// Rand is a ChaCha8 based random number generator.
// Each bag owns its own instance, so reseeding one never affects the others.
type Rand struct {
	r   *rand.Rand
	det bool
}

// NewEntropy makes generator seeded from the system entropy source.
// Output isn't reproducible across runs.
func NewEntropy() *Rand {
	var seed Seed
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic(err)
	}
	return &Rand{r: rand.New(rand.NewChaCha8(seed))}
}

// NewSeed makes generator seeded deterministically by exact seed.
func NewSeed(seed Seed) *Rand {
	return &Rand{
		r:   rand.New(rand.NewChaCha8(seed)),
		det: true,
	}
}

// NewUint64 makes generator seeded deterministically by 64-bit integer.
// The integer expands to full-width seed using ExpandUint64.
func NewUint64(seed uint64) *Rand {
	return NewSeed(ExpandUint64(seed))
}

// ExpandUint64 expands 64-bit integer to full-width seed.
// Seed bytes are sequential outputs of PCG generator seeded with given integer, so close integers produce
// unrelated seeds.
func ExpandUint64(seed uint64) (s Seed) {
	var src exprand.PCGSource
	src.Seed(seed)
	for i := 0; i < SeedSize; i += 8 {
		binary.LittleEndian.PutUint64(s[i:], src.Uint64())
	}
	return
}

// Float64 returns uniformly distributed value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Deterministic reports whether generator was seeded explicitly.
func (r *Rand) Deterministic() bool {
	return r.det
}
