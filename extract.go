package questions

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// blockTags mark elements whose boundaries end a passage; text on either
// side must not be joined into one sentence.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "tr": true, "td": true, "th": true,
	"section": true, "article": true, "header": true, "footer": true,
	"blockquote": true, "pre": true, "title": true,
}

// ExtractText reduces an HTML document to its visible text. Text under
// <script> or <style> is dropped, and block element boundaries become
// newlines so downstream sentence segmentation never crosses them.
func ExtractText(body []byte) string {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var b strings.Builder

	//track a "skip depth" to ignore text under <script> or <style>
	var skipDepth int

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		// Entering a script/style element: increase skip depth.
		if n.Type == html.ElementNode && (strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style")) {
			skipDepth++
		}

		if skipDepth == 0 {
			if n.Type == html.ElementNode && blockTags[strings.ToLower(n.Data)] {
				b.WriteString("\n")
			}
			if n.Type == html.TextNode {
				if t := strings.TrimSpace(n.Data); t != "" {
					b.WriteString(t)
					b.WriteString(" ")
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		// Leaving a script/style element: decrease skip depth.
		if n.Type == html.ElementNode {
			if strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style") {
				skipDepth--
			} else if skipDepth == 0 && blockTags[strings.ToLower(n.Data)] {
				b.WriteString("\n")
			}
		}
	}
	walk(root)
	return strings.TrimSpace(b.String())
}
