package aocexample

// Heuristic names the rule that selected an example.
type Heuristic string

const (
	// HeuristicSingleCandidate is used when the page has exactly one
	// multi-line code block.
	HeuristicSingleCandidate Heuristic = "single-candidate"
	// HeuristicAnchor is used when a <pre><code> block follows the
	// phrase "for example".
	HeuristicAnchor Heuristic = "anchor"
	// HeuristicMultiLine is used for the first multi-line code block
	// with plain text content.
	HeuristicMultiLine Heuristic = "multi-line"
	// HeuristicSingleLine is used for the first single-line code block
	// with plain text content.
	HeuristicSingleLine Heuristic = "single-line"
)

// Example is the example input extracted from a page.
type Example struct {
	// Text is plain text with no trailing blank lines.
	Text string

	// Heuristic is the rule that selected the code block.
	Heuristic Heuristic

	// Candidates is the number of multi-line code blocks on the page.
	Candidates int
}

// ExampleExtractor extracts the example input from a puzzle page.
type ExampleExtractor interface {
	// Extract returns the example for the page, or nil if no heuristic
	// matched. An error is returned only when the page cannot be parsed.
	Extract(page *Page) (*Example, error)
}

// Reporter receives the outcome of an extraction.
// Implementations must not alter the result.
type Reporter interface {
	// Selected is called when a heuristic commits to a code block.
	Selected(page *Page, example *Example)

	// NotFound is called when every heuristic failed. candidates is the
	// number of multi-line code blocks on the page; zero means the page
	// had none at all.
	NotFound(page *Page, candidates int)
}
