package corpus

import (
	"fmt"

	"github.com/quotewell/quotewell/internal/domain/quote"
)

// quoteRow is the on-disk JSON representation of a single quote.
// Length is precomputed by the data pipeline and trusted as-is.
type quoteRow struct {
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
	Length int      `json:"length"`
}

// quoteFromRow hydrates a domain Quote from its wire form.
func quoteFromRow(i int, row quoteRow) (quote.Quote, error) {
	q, err := quote.New(row.Text, row.Author, row.Tags, row.Length)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("quote %d: %w", i, err)
	}
	return q, nil
}
