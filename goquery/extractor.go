package goquery

import (
	"strings"

	"github.com/fwojciec/aocexample"
	"golang.org/x/net/html"
)

// Ensure Extractor implements aocexample.ExampleExtractor at compile time.
var _ aocexample.ExampleExtractor = (*Extractor)(nil)

// AnchorPhrase is the prose that usually introduces the example input.
const AnchorPhrase = "for example"

// AnchorWindow is how many nodes, starting at the anchor, are searched for
// the example's <pre> block. The block is expected immediately after the
// phrase.
const AnchorWindow = 5

// Extractor picks the example input block from puzzle page HTML.
type Extractor struct {
	// Reporter is notified of the outcome. Optional.
	Reporter aocexample.Reporter
}

// NewExtractor creates a new Extractor reporting to r, which may be nil.
func NewExtractor(r aocexample.Reporter) *Extractor {
	return &Extractor{Reporter: r}
}

// attempt is one step of the heuristic chain. It returns the selected
// node's markup, or ok=false to hand over to the next step.
type attempt struct {
	heuristic aocexample.Heuristic
	try       func(s *selection) (markup string, ok bool)
}

// attempts is the heuristic chain in priority order.
var attempts = []attempt{
	{aocexample.HeuristicSingleCandidate, trySingleCandidate},
	{aocexample.HeuristicAnchor, tryAnchor},
	{aocexample.HeuristicMultiLine, tryMultiLine},
	{aocexample.HeuristicSingleLine, trySingleLine},
}

// selection is the per-call state shared by the attempts.
type selection struct {
	tree      *tree
	multiLine []*html.Node
}

// Extract returns the example input of page, or nil if no heuristic matched.
// The page's year and day are only used for reporting.
func (e *Extractor) Extract(page *aocexample.Page) (*aocexample.Example, error) {
	t, err := parseTree(page.HTML)
	if err != nil {
		return nil, aocexample.Errorf(aocexample.EINVALID, "failed to parse HTML: %v", err)
	}

	s := &selection{tree: t, multiLine: t.multiLineBlocks()}

	if example := firstMatch(s, attempts); example != nil {
		if e.Reporter != nil {
			e.Reporter.Selected(page, example)
		}
		return example, nil
	}

	if e.Reporter != nil {
		e.Reporter.NotFound(page, len(s.multiLine))
	}
	return nil, nil
}

// firstMatch runs the attempts in order and returns the first success.
func firstMatch(s *selection, chain []attempt) *aocexample.Example {
	for _, a := range chain {
		if markup, ok := a.try(s); ok {
			return &aocexample.Example{
				Text:       Normalize(markup),
				Heuristic:  a.heuristic,
				Candidates: len(s.multiLine),
			}
		}
	}
	return nil
}

// trySingleCandidate returns the only multi-line block, whatever it holds.
func trySingleCandidate(s *selection) (string, bool) {
	if len(s.multiLine) != 1 {
		return "", false
	}
	return innerHTML(s.multiLine[0]), true
}

// tryAnchor looks for a <pre><code> block right after the last node that
// mentions the anchor phrase. Ancestors of that node contain the phrase too
// and come earlier in document order, so the last match is the innermost.
func tryAnchor(s *selection) (string, bool) {
	if len(s.multiLine) < 2 {
		return "", false
	}

	nodes := s.tree.flatten()
	start := -1
	for i := len(nodes) - 1; i >= 0; i-- {
		if strings.Contains(strings.ToLower(innerHTML(nodes[i])), AnchorPhrase) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := min(start+AnchorWindow, len(nodes))
	for _, n := range nodes[start:end] {
		if !isTag(n, "pre") {
			continue
		}
		inner := innerHTML(n)
		if !strings.Contains(inner, "<code>") {
			return "", false
		}
		return inner, true
	}
	return "", false
}

// tryMultiLine applies the plain-text check to the multi-line blocks.
func tryMultiLine(s *selection) (string, bool) {
	return firstPlainText(s.multiLine)
}

// trySingleLine applies the plain-text check to the single-line blocks.
func trySingleLine(s *selection) (string, bool) {
	return firstPlainText(s.tree.singleLineBlocks())
}

// firstPlainText returns the markup of the first block that looks like
// plain text.
func firstPlainText(blocks []*html.Node) (string, bool) {
	for _, n := range blocks {
		if IsPlainText(n) {
			return innerHTML(n), true
		}
	}
	return "", false
}

// IsPlainText reports whether a code block holds nothing but text: exactly
// one direct child, and that child is a text node. A block decorated with
// inline markup (e.g. a hidden <span>) has more than one child, and a
// highlighted answer like <code><em>42</em></code> has an element child.
func IsPlainText(n *html.Node) bool {
	return childCount(n) == 1 && n.FirstChild.Type == html.TextNode
}
