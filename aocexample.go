// Package aocexample extracts the example input from the HTML description
// of a daily coding-puzzle page.
//
// Puzzle pages mix the example input with prose, unrelated code samples and
// decorative inline markup. The extractor picks one code block using an
// ordered chain of heuristics and returns its plain text, or reports that no
// block matched.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, slog/, fs/).
package aocexample
