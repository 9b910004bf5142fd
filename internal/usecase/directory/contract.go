package directory

import "github.com/quotewell/quotewell/internal/domain"

// Reader supplies the author directory and tag vocabulary.
type Reader interface {
	Authors() []domain.AuthorEntry
	LookupAuthor(raw string) (domain.AuthorEntry, bool, error)
	Tags() []string
	HasTag(tag string) bool
}
