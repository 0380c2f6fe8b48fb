package questions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadCorpus reads every document file directly inside dir and returns a
// map from file name to raw text. Subdirectories and dotfiles are skipped.
// HTML files are reduced to their visible text; everything else is read
// verbatim.
func LoadCorpus(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not open corpus directory %s: %w", dir, err)
	}

	docs := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", path, err)
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".html", ".htm", ".xhtml":
			docs[entry.Name()] = ExtractText(raw)
		default:
			docs[entry.Name()] = string(raw)
		}
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("corpus directory %s contains no documents", dir)
	}
	return docs, nil
}
