package frontier

// Stack is a LIFO Frontier.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity entries.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) { s.items = append(s.items, item) }

// Pop removes the most recently pushed entry.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release reference for GC
	s.items = s.items[:n-1]

	return item, true
}

// Len returns the number of entries.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no entries.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
