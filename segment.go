package questions

import (
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// SentenceSplitter segments one passage of raw text into sentence strings.
type SentenceSplitter interface {
	Split(text string) []string
}

// PunktSplitter segments text with the Punkt algorithm trained for English.
type PunktSplitter struct {
	tok *sentences.DefaultSentenceTokenizer
}

func NewPunktSplitter() (*PunktSplitter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &PunktSplitter{tok: tok}, nil
}

// Split segments a single passage. Callers split documents into passages
// (lines) first, so sentence boundaries never cross passage breaks.
func (p *PunktSplitter) Split(text string) []string {
	var out []string
	for _, s := range p.tok.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
