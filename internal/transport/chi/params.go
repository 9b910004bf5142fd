package chi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/quotewell/quotewell/internal/domain/criteria"
)

// splitCSV splits a comma-separated parameter value, trimming whitespace
// and dropping empty entries. An absent parameter yields nil, which the
// engine treats as a vacuous filter.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// parseLengthRange parses the optional minLength/maxLength parameters.
func parseLengthRange(q url.Values) (criteria.LengthRange, error) {
	min, err := parseOptionalInt(q, "minLength")
	if err != nil {
		return criteria.LengthRange{}, err
	}
	max, err := parseOptionalInt(q, "maxLength")
	if err != nil {
		return criteria.LengthRange{}, err
	}
	return criteria.NewLengthRange(min, max)
}

// parseOptionalInt parses an optional integer parameter, nil when absent.
func parseOptionalInt(q url.Values, name string) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return &n, nil
}

// parseBoundedInt parses an optional integer parameter with a default and
// an inclusive upper bound enforced at the route layer.
func parseBoundedInt(q url.Values, name string, def, max int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("%s must be between 1 and %d, got %d", name, max, n)
	}
	return n, nil
}

// parseBool parses an optional boolean parameter, false when absent.
func parseBool(q url.Values, name string) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", name, raw)
	}
	return b, nil
}
