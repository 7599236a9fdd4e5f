// Package highlight implements the scope-flattening and escape-sequence
// compositor: it takes source text plus a tree of nested style annotations
// and produces a single string of literal text interleaved with terminal
// SGR sequences, ready to be written to a terminal.
package highlight

// Scope is one highlighted region of the source text: a byte range tagged
// with a token-class name, possibly containing nested sub-regions.
//
// Every child must be fully contained in its parent, siblings are ordered by
// Start and do not overlap (touching at boundaries is fine). A Length of
// zero is legal and denotes a zero-width marker.
//
// A tree is built once per rendered unit by the tokenizer, consumed once by
// Compose, then discarded.
type Scope struct {
	Start    int    // byte offset into the source text
	Length   int    // bytes covered
	Class    string // style-table key
	Children []Scope
}

// End returns the byte offset one past the last byte the scope covers.
func (s Scope) End() int {
	return s.Start + s.Length
}
