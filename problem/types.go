// Package problem declares the Problem contract, transitions, heuristics
// and the sentinel errors shared by search algorithms.
package problem

import "errors"

// Sentinel errors for problem operations.
var (
	// ErrNotImplemented indicates a required problem operation was not supplied.
	ErrNotImplemented = errors.New("problem: operation not implemented")

	// ErrIllegalAction indicates an action is not among the successors of the current state.
	ErrIllegalAction = errors.New("problem: illegal action")

	// ErrNotGoal indicates an action sequence ends on a state that is not a goal.
	ErrNotGoal = errors.New("problem: final state is not a goal")
)

// Successor is one transition produced by expanding a state: the state reached,
// the action that reaches it, and the non-negative cost of taking that step.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is the capability every search algorithm consumes.
//
// Implementations must be deterministic: StartState returns the same state on
// every call and Successors returns transitions in a stable order.
type Problem[S comparable, A any] interface {
	// StartState returns the state the search begins from.
	StartState() (S, error)

	// IsGoal reports whether state is a successful terminus of the search.
	IsGoal(state S) (bool, error)

	// Successors returns the transitions out of state, in tie-break order.
	Successors(state S) ([]Successor[S, A], error)

	// CostOfActions returns the total cost of a sequence of legal actions
	// taken from the start state.
	CostOfActions(actions []A) (float64, error)
}

// Heuristic estimates the remaining cost from state to the nearest goal of p.
// A* returns optimal paths only when the estimate is admissible.
type Heuristic[S comparable, A any] func(state S, p Problem[S, A]) (float64, error)

// NullHeuristic is the trivial estimate: always zero.
// A* with NullHeuristic behaves exactly like uniform-cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) (float64, error) {
	return 0, nil
}
