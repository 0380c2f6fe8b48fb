package questions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("a.txt", "Alpha text.")
	write("b.html", "<html><body><p>Beta text.</p><script>var x=1</script></body></html>")
	write(".hidden", "nope")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "c.txt"), []byte("nested"), 0o644); err != nil {
		t.Fatalf("write nested: %v", err)
	}

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus error: %v", err)
	}
	// subdirectory and dotfile must be skipped
	if len(docs) != 2 {
		t.Fatalf("LoadCorpus=%#v; want 2 documents", docs)
	}
	if docs["a.txt"] != "Alpha text." {
		t.Fatalf("a.txt=%q; want verbatim text", docs["a.txt"])
	}
	if got := docs["b.html"]; !strings.Contains(got, "Beta text.") || strings.Contains(got, "var") {
		t.Fatalf("b.html=%q; want visible text without script", got)
	}
}

func TestLoadCorpusMissingDir(t *testing.T) {
	if _, err := LoadCorpus(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("LoadCorpus should error on a missing directory")
	}
}

func TestLoadCorpusEmptyDir(t *testing.T) {
	if _, err := LoadCorpus(t.TempDir()); err == nil {
		t.Fatalf("LoadCorpus should error on a directory with no documents")
	}
}

func TestExtractText(t *testing.T) {
	html := `
	<!doctype html>
	<html>
	  <head>
	    <style>body{color:red}</style>
	    <script>var x=1</script>
	  </head>
	  <body>
	    <p>First paragraph.</p>
	    <p>Second paragraph.</p>
	  </body>
	</html>`

	got := ExtractText([]byte(html))

	// should NOT include script/style content
	for _, bad := range []string{"var", "color"} {
		if strings.Contains(got, bad) {
			t.Fatalf("ExtractText should exclude script/style; found %q in %q", bad, got)
		}
	}

	// paragraphs must end up on separate lines so sentence segmentation
	// never joins them
	var lines []string
	for _, line := range strings.Split(got, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != 2 || lines[0] != "First paragraph." || lines[1] != "Second paragraph." {
		t.Fatalf("ExtractText lines=%#v; want the two paragraphs separately", lines)
	}
}
