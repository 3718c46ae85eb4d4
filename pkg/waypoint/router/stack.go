package router

// Stack holds the push-navigation history of a router, root to leaf.
// It only grows and shrinks at the top; entries are never reordered.
type Stack[D any] struct {
	entries []D
}

// NewStack creates a new empty navigation stack.
func NewStack[D any]() *Stack[D] {
	return &Stack[D]{
		entries: make([]D, 0),
	}
}

// Push adds a destination to the top of the stack.
func (s *Stack[D]) Push(destination D) {
	s.entries = append(s.entries, destination)
}

// Pop removes and returns the top destination.
// Returns false if the stack is empty.
func (s *Stack[D]) Pop() (D, bool) {
	var zero D
	if len(s.entries) == 0 {
		return zero, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top destination without removing it.
// Returns false if the stack is empty.
func (s *Stack[D]) Peek() (D, bool) {
	if len(s.entries) == 0 {
		var zero D
		return zero, false
	}
	return s.entries[len(s.entries)-1], true
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[D]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[D]) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the stack contents, root first.
func (s *Stack[D]) Entries() []D {
	out := make([]D, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear removes all entries from the stack.
func (s *Stack[D]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
