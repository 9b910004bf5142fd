// Package criteria defines the request-scoped filter records accepted by
// the quote engine. Each matcher has its own type so the compiler enforces
// which fields apply to which mode.
package criteria

import "fmt"

// MaxFilterValues is the maximum number of values per filter group.
const MaxFilterValues = 32

// LengthRange bounds quote length inclusively. Nil boundaries are absent.
type LengthRange struct {
	min *int
	max *int
}

// NewLengthRange validates and creates a LengthRange.
// Boundaries must be non-negative and min must not exceed max.
func NewLengthRange(min, max *int) (LengthRange, error) {
	if min != nil && *min < 0 {
		return LengthRange{}, fmt.Errorf("minLength must be non-negative, got %d", *min)
	}
	if max != nil && *max < 0 {
		return LengthRange{}, fmt.Errorf("maxLength must be non-negative, got %d", *max)
	}
	if min != nil && max != nil && *min > *max {
		return LengthRange{}, fmt.Errorf("minLength %d exceeds maxLength %d", *min, *max)
	}
	return LengthRange{min: min, max: max}, nil
}

// Min returns the inclusive lower bound.
func (r LengthRange) Min() *int { return r.min }

// Max returns the inclusive upper bound.
func (r LengthRange) Max() *int { return r.max }

// IsEmpty reports whether the range has no boundaries.
func (r LengthRange) IsEmpty() bool { return r.min == nil && r.max == nil }

// Contains reports whether n falls within the range, boundaries inclusive.
func (r LengthRange) Contains(n int) bool {
	if r.min != nil && n < *r.min {
		return false
	}
	if r.max != nil && n > *r.max {
		return false
	}
	return true
}

// Exact carries the exact-mode filter set: author equality (OR across the
// requested authors), full tag-set membership (AND across the requested
// tags), inclusive length bounds, and the requested sample count.
type Exact struct {
	authors []string
	tags    []string
	length  LengthRange
	count   int
}

// NewExact validates and creates exact-mode criteria.
// Empty author/tag groups are legal and match vacuously.
func NewExact(authors, tags []string, length LengthRange, count int) (Exact, error) {
	if count < 1 {
		return Exact{}, fmt.Errorf("count must be at least 1, got %d", count)
	}
	if len(authors) > MaxFilterValues {
		return Exact{}, fmt.Errorf("too many authors (max %d)", MaxFilterValues)
	}
	if len(tags) > MaxFilterValues {
		return Exact{}, fmt.Errorf("too many tags (max %d)", MaxFilterValues)
	}
	return Exact{
		authors: cloneValues(authors),
		tags:    cloneValues(tags),
		length:  length,
		count:   count,
	}, nil
}

// Authors returns the requested author names.
func (c Exact) Authors() []string { return c.authors }

// Tags returns the requested tag labels.
func (c Exact) Tags() []string { return c.tags }

// Length returns the length bounds.
func (c Exact) Length() LengthRange { return c.length }

// Count returns the requested sample size.
func (c Exact) Count() int { return c.count }

// Partial carries the partial-mode filter set: substring terms over the
// author name (AND across terms) and over tags (AND across terms, OR
// across a quote's tags per term), inclusive length bounds, and the
// requested result limit. ExactTags switches tag matching back to full
// membership for callers that want exact tags with partial authors.
type Partial struct {
	authorTerms []string
	tagTerms    []string
	exactTags   bool
	length      LengthRange
	limit       int
}

// NewPartial validates and creates partial-mode criteria.
// Empty term groups are legal and match vacuously.
func NewPartial(authorTerms, tagTerms []string, exactTags bool, length LengthRange, limit int) (Partial, error) {
	if limit < 1 {
		return Partial{}, fmt.Errorf("limit must be at least 1, got %d", limit)
	}
	if len(authorTerms) > MaxFilterValues {
		return Partial{}, fmt.Errorf("too many author terms (max %d)", MaxFilterValues)
	}
	if len(tagTerms) > MaxFilterValues {
		return Partial{}, fmt.Errorf("too many tag terms (max %d)", MaxFilterValues)
	}
	return Partial{
		authorTerms: cloneValues(authorTerms),
		tagTerms:    cloneValues(tagTerms),
		exactTags:   exactTags,
		length:      length,
		limit:       limit,
	}, nil
}

// AuthorTerms returns the author substring terms.
func (c Partial) AuthorTerms() []string { return c.authorTerms }

// TagTerms returns the tag substring terms.
func (c Partial) TagTerms() []string { return c.tagTerms }

// ExactTags reports whether tag terms require full membership instead of
// substring containment.
func (c Partial) ExactTags() bool { return c.exactTags }

// Length returns the length bounds.
func (c Partial) Length() LengthRange { return c.length }

// Limit returns the requested result limit.
func (c Partial) Limit() int { return c.limit }

func cloneValues(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}
