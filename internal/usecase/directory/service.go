// Package directory serves the author directory and tag vocabulary, and
// performs the exact-mode validation the route layer runs before invoking
// the quote engine.
package directory

import (
	"context"
	"fmt"

	"github.com/quotewell/quotewell/internal/domain"
)

// Service exposes author/tag listings and exact-mode validation.
type Service struct {
	repo Reader
}

// New creates a directory service.
func New(repo Reader) *Service {
	return &Service{repo: repo}
}

// Authors returns the author directory sorted by display name.
func (s *Service) Authors(_ context.Context) []domain.AuthorEntry {
	return s.repo.Authors()
}

// Tags returns the tag vocabulary sorted alphabetically.
func (s *Service) Tags(_ context.Context) []string {
	return s.repo.Tags()
}

// CanonicalAuthors resolves each raw author against the directory and
// returns the canonical display-cased names. An author absent from the
// directory yields domain.ErrUnknownAuthor; a malformed percent-escape
// yields domain.ErrInvalidCriteria.
func (s *Service) CanonicalAuthors(_ context.Context, raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		entry, ok, err := s.repo.LookupAuthor(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCriteria, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAuthor, a)
		}
		out = append(out, entry.Name)
	}
	return out, nil
}

// ValidateTags checks each tag against the vocabulary (exact match, as
// stored). An unknown tag yields domain.ErrUnknownTag.
func (s *Service) ValidateTags(_ context.Context, tags []string) error {
	for _, t := range tags {
		if !s.repo.HasTag(t) {
			return fmt.Errorf("%w: %q", domain.ErrUnknownTag, t)
		}
	}
	return nil
}
