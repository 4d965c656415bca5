package problem

// Funcs adapts four plain functions into a Problem. Any nil field makes the
// corresponding operation return ErrNotImplemented.
type Funcs[S comparable, A any] struct {
	Start  func() (S, error)
	Goal   func(state S) (bool, error)
	Expand func(state S) ([]Successor[S, A], error)
	Cost   func(actions []A) (float64, error)
}

var _ Problem[string, string] = Funcs[string, string]{}

// StartState calls f.Start.
func (f Funcs[S, A]) StartState() (S, error) {
	if f.Start == nil {
		var zero S
		return zero, ErrNotImplemented
	}

	return f.Start()
}

// IsGoal calls f.Goal.
func (f Funcs[S, A]) IsGoal(state S) (bool, error) {
	if f.Goal == nil {
		return false, ErrNotImplemented
	}

	return f.Goal(state)
}

// Successors calls f.Expand.
func (f Funcs[S, A]) Successors(state S) ([]Successor[S, A], error) {
	if f.Expand == nil {
		return nil, ErrNotImplemented
	}

	return f.Expand(state)
}

// CostOfActions calls f.Cost.
func (f Funcs[S, A]) CostOfActions(actions []A) (float64, error) {
	if f.Cost == nil {
		return 0, ErrNotImplemented
	}

	return f.Cost(actions)
}
