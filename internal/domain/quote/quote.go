package quote

import "fmt"

// Quote is a single quotation (immutable value object).
// Length is precomputed by the corpus source and trusted as-is;
// it is the filterable character count of the text.
type Quote struct {
	text   string
	author string
	tags   []string
	length int
}

// New validates and creates a Quote.
func New(text, author string, tags []string, length int) (Quote, error) {
	if text == "" {
		return Quote{}, fmt.Errorf("quote text is required")
	}
	if author == "" {
		return Quote{}, fmt.Errorf("quote author is required")
	}
	if length <= 0 {
		return Quote{}, fmt.Errorf("quote length must be positive, got %d", length)
	}
	return Quote{
		text:   text,
		author: author,
		tags:   cloneTags(tags),
		length: length,
	}, nil
}

// Text returns the quotation body.
func (q Quote) Text() string { return q.text }

// Author returns the display-cased author name.
func (q Quote) Author() string { return q.author }

// Tags returns the quote's tag labels.
func (q Quote) Tags() []string { return q.tags }

// Length returns the precomputed character count of the text.
func (q Quote) Length() int { return q.length }

func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
