package maze

import (
	"math/rand"
	"time"
)

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// NewSeed returns a fresh non-zero seed taken from the wall clock.
// Callers that need to report or replay a layout pick a seed with NewSeed
// and pass it through WithSeed.
func NewSeed() int64 {
	s := time.Now().UnixNano()
	if s == 0 {
		s = defaultRNGSeed
	}
	return s
}

// pick returns a uniformly chosen index in [0, n), or 0 when n <= 0.
func pick(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return src.Intn(n)
}
