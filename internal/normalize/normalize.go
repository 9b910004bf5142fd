// Package normalize provides canonical string forms for quote matching.
// Author names arrive from query parameters and may be percent-encoded;
// tags are plain labels from a fixed vocabulary and are never decoded.
package normalize

import (
	"fmt"
	"net/url"
	"strings"
)

// Author canonicalizes a raw author string for comparison:
// percent-decode, trim surrounding whitespace, lowercase.
// A malformed percent-escape is a propagated error, never swallowed.
func Author(raw string) (string, error) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("decode author %q: %w", raw, err)
	}
	return strings.ToLower(strings.TrimSpace(decoded)), nil
}

// Term canonicalizes a tag or search term: trim and lowercase only.
func Term(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
