package chi

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "wisdom", []string{"wisdom"}},
		{"multiple", "wisdom,life", []string{"wisdom", "life"}},
		{"trims whitespace", " wisdom , life ", []string{"wisdom", "life"}},
		{"drops empty entries", "wisdom,,life,", []string{"wisdom", "life"}},
		{"only separators", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, splitCSV(tt.raw)); diff != "" {
				t.Errorf("splitCSV(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParseBoundedInt(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"absent uses default", "", 7, false},
		{"explicit", "count=3", 3, false},
		{"at max", "count=50", 50, false},
		{"above max", "count=51", 0, true},
		{"zero", "count=0", 0, true},
		{"negative", "count=-1", 0, true},
		{"not an int", "count=abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.raw)
			got, err := parseBoundedInt(q, "count", 7, 50)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseLengthRange(t *testing.T) {
	q, _ := url.ParseQuery("minLength=10&maxLength=100")
	r, err := parseLengthRange(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(10) || !r.Contains(100) || r.Contains(9) || r.Contains(101) {
		t.Error("parsed range has wrong bounds")
	}

	q, _ = url.ParseQuery("minLength=100&maxLength=10")
	if _, err := parseLengthRange(q); err == nil {
		t.Error("expected error for inverted bounds")
	}

	q, _ = url.ParseQuery("minLength=ten")
	if _, err := parseLengthRange(q); err == nil {
		t.Error("expected error for non-integer bound")
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{"", false, false},
		{"exactTags=true", true, false},
		{"exactTags=false", false, false},
		{"exactTags=1", true, false},
		{"exactTags=maybe", false, true},
	}

	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.raw)
		got, err := parseBool(q, "exactTags")
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.raw, got, tt.want)
		}
	}
}
