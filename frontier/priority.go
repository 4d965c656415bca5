package frontier

import "container/heap"

// entry pairs an item with its priority and insertion sequence number.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap is a min-heap ordered by priority, then by insertion order.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return it
}

// Priority is a stable min-priority queue. Entries with equal priority are
// popped in the order they were pushed.
//
// Stale entries are never removed: callers that find a cheaper route to an
// item push it again and ignore the outdated entry when it surfaces
// ("lazy decrease-key").
type Priority[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// NewPriority returns an empty priority queue with room for capacity entries.
func NewPriority[T any](capacity int) *Priority[T] {
	return &Priority[T]{h: make(entryHeap[T], 0, capacity)}
}

// PushPriority inserts item with the given priority.
func (p *Priority[T]) PushPriority(item T, priority float64) {
	heap.Push(&p.h, entry[T]{item: item, priority: priority, seq: p.seq})
	p.seq++
}

// Pop removes the entry with the smallest priority.
func (p *Priority[T]) Pop() (T, bool) {
	item, _, ok := p.PopPriority()
	return item, ok
}

// PopPriority removes the smallest entry and also returns its priority.
func (p *Priority[T]) PopPriority() (T, float64, bool) {
	if len(p.h) == 0 {
		var zero T
		return zero, 0, false
	}
	e := heap.Pop(&p.h).(entry[T])

	return e.item, e.priority, true
}

// Peek returns the smallest entry without removing it.
func (p *Priority[T]) Peek() (T, float64, bool) {
	if len(p.h) == 0 {
		var zero T
		return zero, 0, false
	}

	return p.h[0].item, p.h[0].priority, true
}

// Len returns the number of entries, stale ones included.
func (p *Priority[T]) Len() int { return len(p.h) }

// Empty reports whether the queue holds no entries.
func (p *Priority[T]) Empty() bool { return len(p.h) == 0 }

// PriorityFunc is a Priority whose priorities come from a scoring function
// evaluated once at push time.
type PriorityFunc[T any] struct {
	Priority[T]
	score func(T) float64
}

// NewPriorityFunc returns an empty queue ordered ascending by score.
func NewPriorityFunc[T any](capacity int, score func(T) float64) *PriorityFunc[T] {
	return &PriorityFunc[T]{
		Priority: Priority[T]{h: make(entryHeap[T], 0, capacity)},
		score:    score,
	}
}

// Push inserts item with priority score(item).
func (p *PriorityFunc[T]) Push(item T) { p.PushPriority(item, p.score(item)) }
