package questions

import (
	"reflect"
	"strings"
	"testing"
)

// --- TestNormalize ---

func TestNormalize(t *testing.T) {
	tok := NewTokenizer(nil)
	tests := []struct {
		text string
		want []string
	}{
		{"Python is a programming language.", []string{"python", "programming", "language"}},
		{"The cat sat", []string{"cat", "sat"}},
		{"cat CAT Cat", []string{"cat", "cat", "cat"}}, // multiplicity kept
		{"'quoted' words", []string{"quoted", "words"}},
		{"... !!!", nil},
		{"", nil},
	}
	for _, tc := range tests {
		got := tok.Normalize(tc.text)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Normalize(%q)=%#v; want %#v", tc.text, got, tc.want)
		}
	}
}

// The stopword test runs on the token exactly as the splitter produced it;
// punctuation is only trimmed afterwards.
func TestNormalizePreStripStopwords(t *testing.T) {
	tok := NewTokenizer(nil)
	tok.Words = func(text string) []string { return strings.Split(text, "|") }

	tests := []struct {
		text string
		want []string
	}{
		{"Hello|the|world!", []string{"hello", "world"}},
		// "the!" is not a stopword, so the trimmed form survives
		{"the!|cat", []string{"the", "cat"}},
	}
	for _, tc := range tests {
		got := tok.Normalize(tc.text)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Normalize(%q)=%#v; want %#v", tc.text, got, tc.want)
		}
	}
}

func TestNormalizeStemming(t *testing.T) {
	tok := NewTokenizer(nil)
	tok.Stem = true

	got := tok.Normalize("running runs")
	want := []string{"run", "run"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("stemmed Normalize=%#v; want %#v", got, want)
	}
}

// --- TestQuery ---

func TestQuery(t *testing.T) {
	tok := NewTokenizer(nil)

	q := tok.Query("Cat cat dog")
	if len(q) != 2 {
		t.Fatalf("Query set=%#v; want 2 entries", q)
	}
	for _, w := range []string{"cat", "dog"} {
		if _, ok := q[w]; !ok {
			t.Fatalf("Query set missing %q; got %#v", w, q)
		}
	}
}
