package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/quotewell/quotewell/internal/domain"
)

func writeTestCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		quotesFile: `[
			{"text": "The secret of getting ahead is getting started.", "author": "Mark Twain", "tags": ["motivation", "success"], "length": 47},
			{"text": "Be yourself; everyone else is already taken.", "author": "Oscar Wilde", "tags": ["humor"], "length": 44}
		]`,
		authorsFile: `{"Mark Twain": 1, "Oscar Wilde": 1}`,
		tagsFile:    `["success", "motivation", "humor"]`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	repo, err := Load(writeTestCorpus(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.Quotes()) != 2 {
		t.Fatalf("got %d quotes, want 2", len(repo.Quotes()))
	}
	q := repo.Quotes()[0]
	if q.Author() != "Mark Twain" || q.Length() != 47 {
		t.Errorf("quote 0 = %q/%d", q.Author(), q.Length())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := writeTestCorpus(t)
	if err := os.Remove(filepath.Join(dir, tagsFile)); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := writeTestCorpus(t)
	if err := os.WriteFile(filepath.Join(dir, quotesFile), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestLoad_InvalidQuote(t *testing.T) {
	dir := writeTestCorpus(t)
	bad := `[{"text": "", "author": "Nobody", "tags": [], "length": 5}]`
	if err := os.WriteFile(filepath.Join(dir, quotesFile), []byte(bad), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if !errors.Is(err, domain.ErrDataUnavailable) {
		t.Fatalf("err = %v, want ErrDataUnavailable", err)
	}
}

func TestAuthors_SortedByName(t *testing.T) {
	repo, err := Load(writeTestCorpus(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := repo.Authors()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Mark Twain" || entries[1].Name != "Oscar Wilde" {
		t.Errorf("entries out of order: %v", entries)
	}
	if entries[0].QuoteCount != 1 {
		t.Errorf("QuoteCount = %d, want 1", entries[0].QuoteCount)
	}
}

func TestLookupAuthor(t *testing.T) {
	repo, err := Load(writeTestCorpus(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		raw   string
		found bool
	}{
		{"canonical", "Mark Twain", true},
		{"lowercase", "mark twain", true},
		{"percent encoded mixed case", "mark%20TWAIN", true},
		{"padded", "  Oscar Wilde  ", true},
		{"unknown", "Lao Tzu", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok, err := repo.LookupAuthor(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && entry.Name == "" {
				t.Error("found entry has empty canonical name")
			}
		})
	}
}

func TestLookupAuthor_MalformedEscape(t *testing.T) {
	repo, err := Load(writeTestCorpus(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := repo.LookupAuthor("mark%2"); err == nil {
		t.Fatal("expected error for malformed escape")
	}
}

func TestTags_SortedCopy(t *testing.T) {
	repo, err := Load(writeTestCorpus(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags := repo.Tags()
	if !sort.StringsAreSorted(tags) {
		t.Errorf("Tags() not sorted: %v", tags)
	}

	tags[0] = "mutated"
	if repo.Tags()[0] == "mutated" {
		t.Error("Tags() must return a copy")
	}
}

func TestHasTag(t *testing.T) {
	repo, err := Load(writeTestCorpus(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.HasTag("humor") {
		t.Error("HasTag(humor) = false")
	}
	if repo.HasTag("Humor") {
		t.Error("tag vocabulary membership is exact, as stored")
	}
	if repo.HasTag("nonexistent") {
		t.Error("HasTag(nonexistent) = true")
	}
}
