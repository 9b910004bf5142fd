package chi

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"go.uber.org/zap"

	"github.com/quotewell/quotewell/internal/domain"
	"github.com/quotewell/quotewell/internal/domain/quote"
	"github.com/quotewell/quotewell/internal/normalize"
	directoryuc "github.com/quotewell/quotewell/internal/usecase/directory"
	healthuc "github.com/quotewell/quotewell/internal/usecase/health"
	quotesuc "github.com/quotewell/quotewell/internal/usecase/quotes"
)

// fakeCorpus backs the engine, directory, and health services in tests.
type fakeCorpus struct {
	quotes  []quote.Quote
	authors map[string]int
	tags    []string
}

func (f *fakeCorpus) Quotes() []quote.Quote { return f.quotes }

func (f *fakeCorpus) Authors() []domain.AuthorEntry {
	out := make([]domain.AuthorEntry, 0, len(f.authors))
	for name, count := range f.authors {
		out = append(out, domain.AuthorEntry{Name: name, QuoteCount: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakeCorpus) LookupAuthor(raw string) (domain.AuthorEntry, bool, error) {
	norm, err := normalize.Author(raw)
	if err != nil {
		return domain.AuthorEntry{}, false, err
	}
	for name, count := range f.authors {
		if normalize.Term(name) == norm {
			return domain.AuthorEntry{Name: name, QuoteCount: count}, true, nil
		}
	}
	return domain.AuthorEntry{}, false, nil
}

func (f *fakeCorpus) Tags() []string {
	out := make([]string, len(f.tags))
	copy(out, f.tags)
	sort.Strings(out)
	return out
}

func (f *fakeCorpus) HasTag(tag string) bool {
	for _, t := range f.tags {
		if t == tag {
			return true
		}
	}
	return false
}

type seededRand struct {
	r *rand.Rand
}

func (s seededRand) Intn(n int) int { return s.r.IntN(n) }

func mustQuote(t *testing.T, text, author string, tags []string, length int) quote.Quote {
	t.Helper()
	q, err := quote.New(text, author, tags, length)
	if err != nil {
		t.Fatalf("build quote: %v", err)
	}
	return q
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	corpus := &fakeCorpus{
		quotes: []quote.Quote{
			mustQuote(t, "The secret of getting ahead is getting started.",
				"Mark Twain", []string{"motivation", "success"}, 47),
			mustQuote(t, "Kindness is the language which the deaf can hear and see.",
				"Mark Twain", []string{"wisdom", "life"}, 50),
			mustQuote(t, "Be yourself; everyone else is already taken.",
				"Oscar Wilde", []string{"humor", "individuality"}, 44),
		},
		authors: map[string]int{"Mark Twain": 2, "Oscar Wilde": 1},
		tags:    []string{"motivation", "success", "wisdom", "life", "humor", "individuality"},
	}

	engine := quotesuc.New(corpus, seededRand{r: rand.New(rand.NewPCG(1, 2))})
	directory := directoryuc.New(corpus)
	health := healthuc.New(corpus)

	return NewServer(engine, directory, health, Limits{
		MaxCount:     50,
		DefaultLimit: 20,
		MaxLimit:     100,
	}, zap.NewNop())
}

// doGet runs handler against a GET request with the given query string.
func doGet(handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var obj map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &obj); err != nil {
		t.Fatalf("decode object: %v (body %q)", err, rec.Body.String())
	}
	return obj
}

func decodeArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var arr []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &arr); err != nil {
		t.Fatalf("decode array: %v (body %q)", err, rec.Body.String())
	}
	return arr
}
