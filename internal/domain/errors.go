package domain

import "errors"

var (
	// ErrNoMatch signals that the filters produced an empty candidate set.
	// It is a value-level result, not a failure: callers branch on it.
	ErrNoMatch = errors.New("no quote matched the given criteria")
	// ErrUnknownAuthor signals a requested author absent from the directory.
	ErrUnknownAuthor = errors.New("unknown author")
	// ErrUnknownTag signals a requested tag absent from the vocabulary.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrInvalidCriteria signals malformed filter criteria.
	ErrInvalidCriteria = errors.New("invalid criteria")
	// ErrDataUnavailable signals that corpus data failed to load.
	ErrDataUnavailable = errors.New("corpus data unavailable")
)
