// Package frontier provides the three container strategies that decide the
// exploration order of a search:
//
//   - Stack[T]         LIFO, used by depth-first search.
//   - Queue[T]         FIFO, used by breadth-first search.
//   - Priority[T]      min-heap on an explicit float64 priority, used by
//     uniform-cost search and A*.
//   - PriorityFunc[T]  Priority driven by a supplied scoring function.
//
// All containers satisfy Frontier[T]. Priority containers are stable: entries
// with equal priority pop in insertion order, so the successor order of a
// problem remains the tie-break.
//
// Complexity:
//
//   - Stack, Queue:  O(1) amortised Push and Pop.
//   - Priority:      O(log n) Push and Pop (container/heap).
//
// Containers are not safe for concurrent use; each search owns its own.
package frontier
