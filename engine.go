package questions

import "strings"

// Engine answers queries against a fixed corpus. The corpus is tokenized
// and the file-level IDF table computed once at construction; after that
// the engine is immutable, so concurrent queries need no locking.
type Engine struct {
	docs       map[string]string
	fileTokens map[string][]string
	fileIDF    FileIDF
	tok        *Tokenizer
	split      SentenceSplitter
}

// NewEngine builds an engine over docs. A nil tok or split selects the
// default tokenizer or the Punkt splitter. An empty corpus is an error.
func NewEngine(docs map[string]string, tok *Tokenizer, split SentenceSplitter) (*Engine, error) {
	if tok == nil {
		tok = NewTokenizer(nil)
	}
	if split == nil {
		s, err := NewPunktSplitter()
		if err != nil {
			return nil, err
		}
		split = s
	}

	fileTokens := make(map[string][]string, len(docs))
	for name, text := range docs {
		fileTokens[name] = tok.Normalize(text)
	}
	fileIDF, err := ComputeFileIDF(fileTokens)
	if err != nil {
		return nil, err
	}

	return &Engine{
		docs:       docs,
		fileTokens: fileTokens,
		fileIDF:    fileIDF,
		tok:        tok,
		split:      split,
	}, nil
}

// Answer runs one query: rank files by TF-IDF, segment only the top fileN
// files into sentences, compute a fresh IDF table over exactly that
// sentence set, and rank the sentences. The sentence-level table never
// outlives the query. Returns at most sentN hits; nil when the top files
// yield no usable sentences.
func (e *Engine) Answer(query string, fileN, sentN int) ([]SentenceHit, error) {
	q := e.tok.Query(query)
	names := TopFiles(q, e.fileTokens, e.fileIDF, fileN)

	sents := e.collectSentences(names)
	if len(sents) == 0 {
		return nil, nil
	}
	idf, err := ComputeSentenceIDF(sents)
	if err != nil {
		return nil, err
	}
	return TopSentences(q, sents, idf, sentN), nil
}

// collectSentences segments the named files line by line, normalizes each
// sentence and drops the ones with no tokens left. Duplicate sentence
// texts collapse to their first occurrence.
func (e *Engine) collectSentences(names []string) []Sentence {
	var sents []Sentence
	seen := make(map[string]bool)
	for _, name := range names {
		for _, passage := range strings.Split(e.docs[name], "\n") {
			for _, text := range e.split.Split(passage) {
				if seen[text] {
					continue
				}
				tokens := e.tok.Normalize(text)
				if len(tokens) == 0 {
					continue
				}
				seen[text] = true
				sents = append(sents, Sentence{Text: text, Tokens: tokens})
			}
		}
	}
	return sents
}
