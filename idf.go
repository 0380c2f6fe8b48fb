package questions

import (
	"errors"
	"math"
)

// ErrEmptyCollection reports an IDF computation over zero documents.
var ErrEmptyCollection = errors.New("idf: empty collection")

// FileIDF maps a token to its inverse document frequency across the corpus
// files. Distinct from SentenceIDF so the two tables cannot be swapped by
// accident.
type FileIDF map[string]float64

// SentenceIDF maps a token to its inverse document frequency across the
// sentence set drawn from one query's top files. It is recomputed for every
// query and must never be reused across queries or in place of a FileIDF.
type SentenceIDF map[string]float64

// computeIDF returns idf(t) = ln(D / df(t)) for every token that appears in
// at least one entry. df counts each entry at most once regardless of the
// token's multiplicity inside it, so df >= 1 and every value is finite and
// non-negative; a token present in every entry gets exactly 0.
func computeIDF(collection map[string][]string) (map[string]float64, error) {
	d := len(collection)
	if d == 0 {
		return nil, ErrEmptyCollection
	}
	df := make(map[string]int)
	for _, tokens := range collection {
		seen := make(map[string]bool, len(tokens))
		for _, w := range tokens {
			if !seen[w] {
				seen[w] = true
				df[w]++
			}
		}
	}
	idf := make(map[string]float64, len(df))
	for w, n := range df {
		idf[w] = math.Log(float64(d) / float64(n))
	}
	return idf, nil
}

// ComputeFileIDF builds the corpus-level IDF table over per-file token
// lists. Computed once per corpus load.
func ComputeFileIDF(fileTokens map[string][]string) (FileIDF, error) {
	idf, err := computeIDF(fileTokens)
	return FileIDF(idf), err
}

// ComputeSentenceIDF builds a query-local IDF table over a sentence set.
// Sentences are keyed by text, so duplicate texts count as one document.
func ComputeSentenceIDF(sents []Sentence) (SentenceIDF, error) {
	collection := make(map[string][]string, len(sents))
	for _, s := range sents {
		collection[s.Text] = s.Tokens
	}
	idf, err := computeIDF(collection)
	return SentenceIDF(idf), err
}
