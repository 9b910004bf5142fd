package health

import "github.com/quotewell/quotewell/internal/domain/quote"

// CorpusReader reports on the loaded corpus.
type CorpusReader interface {
	Quotes() []quote.Quote
}
