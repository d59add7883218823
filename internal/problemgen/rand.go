package problemgen

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// pcgStream is mixed into the second PCG word so a single seed fills both.
const pcgStream = 0x9e3779b97f4a7c15

// NewRand returns a deterministic random source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// RandomSeed returns a fresh seed from the runtime's entropy-backed source.
func RandomSeed() uint64 {
	return rand.Uint64()
}

// SeedFromString maps an arbitrary string (e.g. a worksheet share code)
// to a stable seed.
func SeedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(h[:8])
}

// LockedSource serialises draws from an underlying source so a single
// *rand.Rand can be shared across goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

// NewLockedSource wraps src.
func NewLockedSource(src rand.Source) *LockedSource {
	return &LockedSource{src: src}
}

func (s *LockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// draw returns a uniform value from r. The range must be non-empty.
func draw(rng *rand.Rand, r Range) int {
	return r.Min + rng.IntN(r.Size())
}
