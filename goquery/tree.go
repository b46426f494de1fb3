package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// tree is a parsed page. Nodes are handles into the document and are only
// valid while the tree is alive.
type tree struct {
	doc *goquery.Document

	// nodes holds every node in document order, lazily built.
	nodes []*html.Node
}

// parseTree parses markup into a tree.
func parseTree(markup string) (*tree, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return &tree{doc: doc}, nil
}

// codeBlocks returns the <code> elements in document order whose inner
// markup satisfies keep.
func (t *tree) codeBlocks(keep func(lines int) bool) []*html.Node {
	var blocks []*html.Node
	t.doc.Find("code").Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		if keep(countLines(innerHTML(n))) {
			blocks = append(blocks, n)
		}
	})
	return blocks
}

// multiLineBlocks returns the <code> elements spanning more than one line.
func (t *tree) multiLineBlocks() []*html.Node {
	return t.codeBlocks(func(lines int) bool { return lines > 1 })
}

// singleLineBlocks returns the <code> elements spanning at most one line.
func (t *tree) singleLineBlocks() []*html.Node {
	return t.codeBlocks(func(lines int) bool { return lines <= 1 })
}

// flatten returns every node below the document root in document order.
func (t *tree) flatten() []*html.Node {
	if t.nodes != nil {
		return t.nodes
	}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			t.nodes = append(t.nodes, c)
			walk(c)
		}
	}
	for _, root := range t.doc.Nodes {
		walk(root)
	}
	return t.nodes
}

// childCount returns the number of direct child nodes of n, text and
// comments included.
func childCount(n *html.Node) int {
	return goquery.NewDocumentFromNode(n).Contents().Length()
}

// innerHTML returns the serialized markup of n's children. Text and comment
// nodes have no children, so they render as themselves.
func innerHTML(n *html.Node) string {
	var b strings.Builder
	if n.Type != html.ElementNode {
		_ = html.Render(&b, n)
		return b.String()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// countLines counts lines the way a reader would: an empty string has none
// and a trailing newline does not open another line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// isTag reports whether n is an element with the given tag name.
func isTag(n *html.Node, name string) bool {
	return n.Type == html.ElementNode && n.Data == name
}
