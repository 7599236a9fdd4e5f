package highlight

import "sort"

// eventKind tags an event as a style open or close.
type eventKind uint8

const (
	openEvent eventKind = iota
	closeEvent
)

// event marks a style boundary at a byte offset. Open events carry the scope
// whose style is resolved lazily at emission time; close events always stand
// for the fixed full-reset sequence.
type event struct {
	pos   int
	kind  eventKind
	scope *Scope // set for open events only
}

// flatten walks the scope tree pre-order, emitting an open at each scope's
// start followed by its children's events and a close at its end. Traversal
// order encodes proper nesting, so the final sort by position must be stable:
// an open and a close can legitimately share a position (zero-length or
// boundary-adjacent scopes) and the visual outcome depends on which was
// generated first.
func flatten(root *Scope) []event {
	var events []event
	var walk func(s *Scope)
	walk = func(s *Scope) {
		events = append(events, event{pos: s.Start, kind: openEvent, scope: s})
		for i := range s.Children {
			walk(&s.Children[i])
		}
		events = append(events, event{pos: s.End(), kind: closeEvent})
	}
	walk(root)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].pos < events[j].pos
	})
	return events
}
