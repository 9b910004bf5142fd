package domain

// AuthorEntry is one row of the author directory: the canonical display
// name and the number of quotes attributed to it.
type AuthorEntry struct {
	Name       string
	QuoteCount int
}
