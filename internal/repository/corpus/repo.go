// Package corpus loads the read-only quote corpus from disk: the quote
// list, the author directory, and the tag vocabulary. Everything is read
// once at startup and never mutated, so concurrent readers need no
// synchronization.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/quotewell/quotewell/internal/domain"
	"github.com/quotewell/quotewell/internal/domain/quote"
	"github.com/quotewell/quotewell/internal/normalize"
)

const (
	quotesFile  = "quotes.json"
	authorsFile = "authors.json"
	tagsFile    = "tags.json"
)

// Repo holds the immutable corpus and its auxiliary directories.
type Repo struct {
	quotes []quote.Quote

	// display name -> quote count, plus a normalized index so lookups are
	// case and percent-encoding insensitive.
	authorCounts map[string]int
	authorIndex  map[string]string

	tags   []string
	tagSet map[string]bool
}

// Load reads the corpus from dir. Any failure wraps domain.ErrDataUnavailable:
// the process must not serve without the corpus.
func Load(dir string) (*Repo, error) {
	var rows []quoteRow
	if err := readJSON(filepath.Join(dir, quotesFile), &rows); err != nil {
		return nil, err
	}
	quotes := make([]quote.Quote, len(rows))
	for i, row := range rows {
		q, err := quoteFromRow(i, row)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrDataUnavailable, err)
		}
		quotes[i] = q
	}

	var authorCounts map[string]int
	if err := readJSON(filepath.Join(dir, authorsFile), &authorCounts); err != nil {
		return nil, err
	}
	authorIndex := make(map[string]string, len(authorCounts))
	for name := range authorCounts {
		authorIndex[normalize.Term(name)] = name
	}

	var tags []string
	if err := readJSON(filepath.Join(dir, tagsFile), &tags); err != nil {
		return nil, err
	}
	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}

	return &Repo{
		quotes:       quotes,
		authorCounts: authorCounts,
		authorIndex:  authorIndex,
		tags:         tags,
		tagSet:       tagSet,
	}, nil
}

// Quotes returns the full corpus. Callers must treat it as read-only.
func (r *Repo) Quotes() []quote.Quote { return r.quotes }

// Authors returns the author directory sorted by display name.
func (r *Repo) Authors() []domain.AuthorEntry {
	entries := make([]domain.AuthorEntry, 0, len(r.authorCounts))
	for name, count := range r.authorCounts {
		entries = append(entries, domain.AuthorEntry{Name: name, QuoteCount: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// LookupAuthor resolves a raw (possibly percent-encoded, arbitrarily cased)
// author string against the directory. It returns the canonical display
// name and quote count when found.
func (r *Repo) LookupAuthor(raw string) (domain.AuthorEntry, bool, error) {
	norm, err := normalize.Author(raw)
	if err != nil {
		return domain.AuthorEntry{}, false, err
	}
	name, ok := r.authorIndex[norm]
	if !ok {
		return domain.AuthorEntry{}, false, nil
	}
	return domain.AuthorEntry{Name: name, QuoteCount: r.authorCounts[name]}, true, nil
}

// Tags returns the tag vocabulary sorted alphabetically.
func (r *Repo) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	sort.Strings(out)
	return out
}

// HasTag reports whether tag is part of the vocabulary (exact match, as
// stored; tags are plain labels and are never percent-decoded).
func (r *Repo) HasTag(tag string) bool { return r.tagSet[tag] }

func readJSON(path string, v any) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", domain.ErrDataUnavailable, path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parse %s: %w", domain.ErrDataUnavailable, path, err)
	}
	return nil
}
