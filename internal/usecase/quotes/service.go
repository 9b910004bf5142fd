// Package quotes implements the quote retrieval and matching engine:
// normalization, filter predicate composition, and uniform sampling
// without replacement over an immutable corpus.
package quotes

import (
	"context"
	"fmt"

	"github.com/quotewell/quotewell/internal/domain"
	"github.com/quotewell/quotewell/internal/domain/criteria"
	"github.com/quotewell/quotewell/internal/domain/quote"
	"github.com/quotewell/quotewell/internal/normalize"
)

// Service is the quote engine. It is stateless: every call reads the shared
// read-only corpus and allocates its own working copies, so concurrent
// invocations never interact.
type Service struct {
	corpus CorpusReader
	rnd    Rand
}

// New creates a quote engine. A nil rnd falls back to the process-wide
// math/rand/v2 generator.
func New(corpus CorpusReader, rnd Rand) *Service {
	if rnd == nil {
		rnd = systemRand{}
	}
	return &Service{corpus: corpus, rnd: rnd}
}

// GetQuotes filters the corpus with exact-match predicates (author
// equality, full tag-set membership) plus length bounds, then samples up
// to Count quotes without replacement. Filters apply in fixed order
// author -> tags -> length, with an emptiness checkpoint after the
// category filters and another after the length filter. An empty candidate
// set yields domain.ErrNoMatch, never a panic or an empty slice.
func (s *Service) GetQuotes(_ context.Context, c criteria.Exact) ([]quote.Quote, error) {
	authors, err := normalizeAuthors(c.Authors())
	if err != nil {
		return nil, err
	}

	all := s.corpus.Quotes()
	candidates := make([]quote.Quote, 0, len(all))
	for _, q := range all {
		if !matchesAuthorsExact(q, authors) {
			continue
		}
		if !matchesTagsExact(q, c.Tags()) {
			continue
		}
		candidates = append(candidates, q)
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoMatch
	}

	candidates = filterLength(candidates, c.Length())
	if len(candidates) == 0 {
		return nil, domain.ErrNoMatch
	}

	count := min(c.Count(), len(candidates))
	return sample(s.rnd, candidates, count), nil
}

// SearchQuotes filters the corpus with partial predicates: every author
// term must be a substring of the normalized author name and every tag
// term must be contained in at least one tag, case-insensitively. When
// ExactTags is set the tag filter reverts to full membership. Shares the
// exact matcher's filter order, checkpoints, clamping, and sampling.
func (s *Service) SearchQuotes(_ context.Context, c criteria.Partial) ([]quote.Quote, error) {
	authorTerms, err := normalizeAuthors(c.AuthorTerms())
	if err != nil {
		return nil, err
	}
	tagTerms := make([]string, 0, len(c.TagTerms()))
	for _, t := range c.TagTerms() {
		tagTerms = append(tagTerms, normalize.Term(t))
	}

	all := s.corpus.Quotes()
	candidates := make([]quote.Quote, 0, len(all))
	for _, q := range all {
		if !matchesAuthorPartial(q, authorTerms) {
			continue
		}
		if c.ExactTags() {
			if !matchesTagsExact(q, c.TagTerms()) {
				continue
			}
		} else if !matchesTagPartial(q, tagTerms) {
			continue
		}
		candidates = append(candidates, q)
	}
	if len(candidates) == 0 {
		return nil, domain.ErrNoMatch
	}

	candidates = filterLength(candidates, c.Length())
	if len(candidates) == 0 {
		return nil, domain.ErrNoMatch
	}

	limit := min(c.Limit(), len(candidates))
	return sample(s.rnd, candidates, limit), nil
}

// normalizeAuthors canonicalizes requested author values once, up front.
// A malformed percent-escape surfaces as invalid criteria.
func normalizeAuthors(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		na, err := normalize.Author(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCriteria, err)
		}
		out = append(out, na)
	}
	return out, nil
}

func filterLength(candidates []quote.Quote, r criteria.LengthRange) []quote.Quote {
	if r.IsEmpty() {
		return candidates
	}
	kept := candidates[:0]
	for _, q := range candidates {
		if r.Contains(q.Length()) {
			kept = append(kept, q)
		}
	}
	return kept
}
