package quotes

import (
	"strings"

	"github.com/quotewell/quotewell/internal/domain/quote"
	"github.com/quotewell/quotewell/internal/normalize"
)

// Predicates are pure boolean functions over a single quote. Filter values
// are normalized once by the caller, not per quote.
//
// Author filters use OR semantics across requested values; tag filters use
// AND semantics across requested values.

// matchesAuthorsExact reports whether the quote's author equals any of the
// normalized requested authors. An empty request matches vacuously.
func matchesAuthorsExact(q quote.Quote, normAuthors []string) bool {
	if len(normAuthors) == 0 {
		return true
	}
	author := normalize.Term(q.Author())
	for _, want := range normAuthors {
		if author == want {
			return true
		}
	}
	return false
}

// matchesTagsExact reports whether every requested tag is present in the
// quote's tag set. Membership is by exact string, case-sensitive as stored.
func matchesTagsExact(q quote.Quote, tags []string) bool {
	for _, want := range tags {
		if !containsTag(q.Tags(), want) {
			return false
		}
	}
	return true
}

// matchesAuthorPartial reports whether every normalized term is a substring
// of the normalized author name.
func matchesAuthorPartial(q quote.Quote, normTerms []string) bool {
	if len(normTerms) == 0 {
		return true
	}
	author := normalize.Term(q.Author())
	for _, term := range normTerms {
		if !strings.Contains(author, term) {
			return false
		}
	}
	return true
}

// matchesTagPartial reports whether every normalized term is a
// case-insensitive substring of at least one of the quote's tags.
func matchesTagPartial(q quote.Quote, normTerms []string) bool {
	for _, term := range normTerms {
		if !anyTagContains(q.Tags(), term) {
			return false
		}
	}
	return true
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func anyTagContains(tags []string, normTerm string) bool {
	for _, t := range tags {
		if strings.Contains(normalize.Term(t), normTerm) {
			return true
		}
	}
	return false
}
