package quotes

import "github.com/quotewell/quotewell/internal/domain/quote"

// CorpusReader supplies the immutable quote corpus. Implementations must
// return the same snapshot for the lifetime of the process; the engine
// never mutates it.
type CorpusReader interface {
	Quotes() []quote.Quote
}

// Rand yields a uniformly distributed integer in [0, n). The engine takes
// it as a dependency so tests can inject a seeded source and assert exact
// sampling sequences.
type Rand interface {
	Intn(n int) int
}
