package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quotewell/quotewell/internal/normalize"
	"github.com/quotewell/quotewell/internal/repository/corpus"
)

var validateDataDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and cross-check the corpus data files",
	Long: `Validate loads quotes.json, authors.json, and tags.json and reports
inconsistencies between them: quote authors missing from the author
directory, quote tags missing from the vocabulary, and directory counts
that disagree with the quote list.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return validate(validateDataDir)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateDataDir, "data", "data", "corpus data directory")
}

func validate(dir string) error {
	repo, err := corpus.Load(dir)
	if err != nil {
		return err
	}

	quotes := repo.Quotes()
	fmt.Printf("loaded %d quotes, %d authors, %d tags from %s\n",
		len(quotes), len(repo.Authors()), len(repo.Tags()), dir)

	problems := 0
	counted := make(map[string]int)
	for i, q := range quotes {
		counted[q.Author()]++
		if _, ok, lookupErr := repo.LookupAuthor(q.Author()); lookupErr != nil || !ok {
			fmt.Printf("quote %d: author %q missing from authors.json\n", i, q.Author())
			problems++
		}
		for _, t := range q.Tags() {
			if !repo.HasTag(t) {
				fmt.Printf("quote %d: tag %q missing from tags.json\n", i, t)
				problems++
			}
			if t != normalize.Term(t) {
				fmt.Printf("quote %d: tag %q is not in canonical lowercase form\n", i, t)
				problems++
			}
		}
	}

	for _, entry := range repo.Authors() {
		if got := counted[entry.Name]; got != entry.QuoteCount {
			fmt.Printf("author %q: directory says %d quotes, corpus has %d\n",
				entry.Name, entry.QuoteCount, got)
			problems++
		}
	}

	if problems > 0 {
		return fmt.Errorf("corpus validation found %d problem(s)", problems)
	}
	fmt.Println("corpus is consistent")
	return nil
}
