package questions

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// NewMux exposes the engine over HTTP. /ask?q=... answers one query and
// returns the ranked sentence hits as JSON; optional n and files parameters
// control how many sentences are returned and how many top documents the
// sentences are drawn from. Library-only: does not start the server by
// itself.
func NewMux(e *Engine) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ask", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			http.Error(w, "missing q parameter", http.StatusBadRequest)
			return
		}
		n, ok := countParam(r, "n")
		if !ok {
			http.Error(w, "invalid n parameter", http.StatusBadRequest)
			return
		}
		files, ok := countParam(r, "files")
		if !ok {
			http.Error(w, "invalid files parameter", http.StatusBadRequest)
			return
		}

		hits, err := e.Answer(q, files, n)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if hits == nil {
			hits = []SentenceHit{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(hits)
	})

	return mux
}

// countParam reads a positive integer query parameter, defaulting to 1.
func countParam(r *http.Request, key string) (int, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 1, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
