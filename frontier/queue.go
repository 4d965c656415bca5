package frontier

// compactAt is the dequeued-prefix length after which Queue reclaims space.
const compactAt = 64

// Queue is a FIFO Frontier backed by a slice with a moving head.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue with room for capacity entries.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends item at the tail.
func (q *Queue[T]) Push(item T) { q.items = append(q.items, item) }

// Pop removes the oldest entry.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// Slide live entries down once the dead prefix dominates.
	if q.head >= compactAt && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, true
}

// Len returns the number of entries.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue holds no entries.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }
