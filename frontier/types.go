package frontier

// Frontier is a container of discovered-but-not-expanded entries whose Pop
// order defines an exploration strategy.
type Frontier[T any] interface {
	// Push adds an entry.
	Push(item T)

	// Pop removes and returns the next entry; ok is false when empty.
	Pop() (item T, ok bool)

	// Len returns the number of entries held.
	Len() int

	// Empty reports whether Len() == 0.
	Empty() bool
}

var (
	_ Frontier[int] = (*Stack[int])(nil)
	_ Frontier[int] = (*Queue[int])(nil)
	_ Frontier[int] = (*PriorityFunc[int])(nil)
)
