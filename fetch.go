package questions

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
)

// Download fetches a single URL and returns the response body.
func Download(u string) ([]byte, error) {
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// FetchCorpus downloads each URL and reduces the pages to text documents.
// Documents are keyed by the URL's last path element, falling back to the
// full URL when that is empty or already taken.
func FetchCorpus(urls []string) (map[string]string, error) {
	docs := make(map[string]string, len(urls))
	for _, u := range urls {
		body, err := Download(u)
		if err != nil {
			return nil, fmt.Errorf("could not fetch %s: %w", u, err)
		}
		name := path.Base(u)
		if name == "" || name == "." || name == "/" {
			name = u
		}
		if _, dup := docs[name]; dup {
			name = u
		}
		docs[name] = ExtractText(body)
	}
	if len(docs) == 0 {
		return nil, errors.New("no corpus urls given")
	}
	return docs, nil
}
