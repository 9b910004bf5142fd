package quotes

import (
	"testing"

	"github.com/quotewell/quotewell/internal/domain/quote"
)

// stubCorpus implements CorpusReader over a fixed quote list.
type stubCorpus struct {
	quotes []quote.Quote
}

func (s *stubCorpus) Quotes() []quote.Quote { return s.quotes }

// scriptedRand replays a fixed index sequence so tests can assert exact
// sampling output. Indices are reduced modulo the remaining population.
type scriptedRand struct {
	seq []int
	pos int
}

func (r *scriptedRand) Intn(n int) int {
	if r.pos >= len(r.seq) {
		return 0
	}
	v := r.seq[r.pos] % n
	r.pos++
	return v
}

func mustQuote(t *testing.T, text, author string, tags []string, length int) quote.Quote {
	t.Helper()
	q, err := quote.New(text, author, tags, length)
	if err != nil {
		t.Fatalf("build quote: %v", err)
	}
	return q
}

// testCorpus builds the fixture corpus shared by matcher tests.
func testCorpus(t *testing.T) *stubCorpus {
	t.Helper()
	return &stubCorpus{quotes: []quote.Quote{
		mustQuote(t, "The secret of getting ahead is getting started.",
			"Mark Twain", []string{"motivation", "success"}, 47),
		mustQuote(t, "If you tell the truth, you don't have to remember anything.",
			"Mark Twain", []string{"truth", "humor"}, 59),
		mustQuote(t, "Kindness is the language which the deaf can hear and see.",
			"Mark Twain", []string{"wisdom", "life"}, 50),
		mustQuote(t, "Be yourself; everyone else is already taken.",
			"Oscar Wilde", []string{"humor", "individuality"}, 44),
		mustQuote(t, "Experience is simply the name we give our mistakes.",
			"Oscar Wilde", []string{"experience", "humor"}, 51),
		mustQuote(t, "Tough love beats half-truths.",
			"Shannon L. Alder", []string{"tough-love", "lifestyle"}, 29),
	}}
}

func texts(qs []quote.Quote) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Text()
	}
	return out
}
