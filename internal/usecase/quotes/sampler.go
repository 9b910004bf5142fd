package quotes

import (
	"math/rand/v2"

	"github.com/quotewell/quotewell/internal/domain/quote"
)

// sample draws k distinct quotes uniformly at random without replacement.
// It runs a partial Fisher-Yates over a working copy: each draw picks a
// uniform index over the remaining population, emits that element, and
// swap-removes it so the population shrinks by exactly one per draw.
// The caller guarantees k <= len(candidates).
func sample(rnd Rand, candidates []quote.Quote, k int) []quote.Quote {
	working := make([]quote.Quote, len(candidates))
	copy(working, candidates)

	out := make([]quote.Quote, 0, k)
	for range k {
		n := len(working)
		j := rnd.Intn(n)
		out = append(out, working[j])
		working[j] = working[n-1]
		working = working[:n-1]
	}
	return out
}

// systemRand adapts math/rand/v2's shared, goroutine-safe generator.
type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.IntN(n) }
