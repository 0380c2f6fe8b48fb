package questions

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// WordFunc splits raw text into word tokens. The default is SplitWords;
// callers may inject their own splitter.
type WordFunc func(text string) []string

// Tokenizer converts raw text into normalized word tokens. It is a pure
// function of its inputs: the word splitter and the stopword set are fixed
// at construction and never mutated, so one Tokenizer is safe to share.
type Tokenizer struct {
	Words WordFunc
	Stop  map[string]struct{}
	Stem  bool // stem tokens with the Snowball English stemmer
}

// NewTokenizer creates a tokenizer with the default word splitter.
// If stop is nil, uses DefaultStopwords().
func NewTokenizer(stop map[string]struct{}) *Tokenizer {
	if stop == nil {
		stop = DefaultStopwords()
	}
	return &Tokenizer{Words: SplitWords, Stop: stop}
}

// SplitWords is the default word tokenizer: maximal runs of letters, digits,
// apostrophes and hyphens. Everything else is a boundary.
func SplitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-')
	})
}

// Normalize returns the ordered token sequence of text. Pipeline:
// lower -> split -> stop filter -> trim punctuation -> optional stem.
// The stopword test runs against the token as produced by the splitter,
// before punctuation is trimmed. Repeated words yield repeated entries;
// tokens that trim or stem to "" are dropped.
func (t *Tokenizer) Normalize(text string) []string {
	var out []string
	for _, w := range t.Words(strings.ToLower(text)) {
		if _, bad := t.Stop[w]; bad {
			continue
		}
		w = strings.TrimFunc(w, unicode.IsPunct)
		if w == "" {
			continue
		}
		if t.Stem {
			w = english.Stem(w, true)
			if w == "" {
				continue
			}
		}
		out = append(out, w)
	}
	return out
}

// Query is a normalized query word set; duplicates collapse and order is
// irrelevant.
type Query map[string]struct{}

// Query normalizes free text into a query word set.
func (t *Tokenizer) Query(text string) Query {
	q := make(Query)
	for _, w := range t.Normalize(text) {
		q[w] = struct{}{}
	}
	return q
}
