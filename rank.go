package questions

import "sort"

// FileHit is a scored document in the file-ranking stage.
type FileHit struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// lessFileHit orders two hits: higher score first; if scores are equal,
// name ascending to keep results deterministic.
func lessFileHit(a, b FileHit) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Name < b.Name
}

// TopFiles ranks files by the summed TF-IDF of the query words and returns
// the names of the best n (all of them when n exceeds the file count).
// Score(file) = sum over query words of count(word, file) * idf(word); a
// query word missing from the table contributes 0, never a lookup failure.
func TopFiles(query Query, fileTokens map[string][]string, idf FileIDF, n int) []string {
	hits := make([]FileHit, 0, len(fileTokens))
	for name, tokens := range fileTokens {
		var score float64
		for w := range query {
			wIDF, ok := idf[w]
			if !ok {
				continue
			}
			count := 0
			for _, tok := range tokens {
				if tok == w {
					count++
				}
			}
			score += float64(count) * wIDF
		}
		hits = append(hits, FileHit{Name: name, Score: score})
	}
	sort.Slice(hits, func(i, j int) bool {
		return lessFileHit(hits[i], hits[j])
	})

	if n < 0 {
		n = 0
	}
	if n > len(hits) {
		n = len(hits)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = hits[i].Name
	}
	return names
}

// Sentence is one ranking candidate: its original text plus its normalized
// token list. Zero-token sentences must be filtered out before ranking.
type Sentence struct {
	Text   string
	Tokens []string
}

// SentenceHit is a scored sentence. Score is the summed IDF of the query
// words the sentence contains; Density is the share of the sentence's
// tokens that are query words.
type SentenceHit struct {
	Text    string  `json:"text"`
	Score   float64 `json:"score"`
	Density float64 `json:"density"`
}

// lessSentenceHit orders hits by matched IDF sum first; equal sums fall
// through to query term density.
func lessSentenceHit(a, b SentenceHit) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Density > b.Density
}

// TopSentences ranks sentences by summed IDF of the query words they
// contain, tie-broken by query term density (matched tokens over sentence
// token count), and returns the best n. The two keys are compared in one
// stable sort, so fully tied sentences keep their input order. Query words
// absent from the table or the sentence contribute 0.
func TopSentences(query Query, sents []Sentence, idf SentenceIDF, n int) []SentenceHit {
	hits := make([]SentenceHit, 0, len(sents))
	for _, s := range sents {
		if len(s.Tokens) == 0 {
			continue
		}
		present := make(map[string]bool, len(s.Tokens))
		matched := 0
		for _, tok := range s.Tokens {
			present[tok] = true
			if _, ok := query[tok]; ok {
				matched++
			}
		}
		var sum float64
		for w := range query {
			if present[w] {
				sum += idf[w]
			}
		}
		hits = append(hits, SentenceHit{
			Text:    s.Text,
			Score:   sum,
			Density: float64(matched) / float64(len(s.Tokens)),
		})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return lessSentenceHit(hits[i], hits[j])
	})

	if n < 0 {
		n = 0
	}
	if n > len(hits) {
		n = len(hits)
	}
	return hits[:n]
}
