package views

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

// render renders n to a string, failing the test on error
func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

// parse renders n and parses the markup into a DOM tree
func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(render(t, n)))
	if err != nil {
		t.Fatalf("failed to parse rendered markup: %v", err)
	}
	return doc
}

// findAll returns every element under root matching match, in document order
func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(key, val string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, key)
		return ok && v == val
	}
}

func hasAttrKey(key string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		_, ok := attr(n, key)
		return ok
	}
}

func isTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag
	}
}

// text returns the concatenated, whitespace-trimmed text content of n
func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func classList(n *html.Node) []string {
	v, _ := attr(n, "class")
	return strings.Fields(v)
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range classList(n) {
		if c == class {
			return true
		}
	}
	return false
}

// headingText returns the text of the first card title (h3) inside a card
func headingText(card *html.Node) string {
	titles := findAll(card, isTag("h3"))
	if len(titles) == 0 {
		return ""
	}
	return text(titles[0])
}
