package problem

import "fmt"

// Replay walks actions from the start state of p, at each step following the
// first successor whose action equals the next action. It returns the state
// reached and the sum of the step costs along the way.
//
// Returns ErrIllegalAction (wrapped with the step index) when an action is not
// offered by the current state; problem errors are returned unchanged.
// Complexity: O(L·b) for L actions and branching factor b.
func Replay[S, A comparable](p Problem[S, A], actions []A) (S, float64, error) {
	state, err := p.StartState()
	if err != nil {
		return state, 0, err
	}

	var total float64
	for i, act := range actions {
		succs, err := p.Successors(state)
		if err != nil {
			return state, total, err
		}
		found := false
		for _, s := range succs {
			if s.Action == act {
				state = s.State
				total += s.Cost
				found = true
				break
			}
		}
		if !found {
			return state, total, fmt.Errorf("%w: step %d action %v from %v", ErrIllegalAction, i, act, state)
		}
	}

	return state, total, nil
}

// Verify replays actions and checks that the final state is a goal.
func Verify[S, A comparable](p Problem[S, A], actions []A) error {
	final, _, err := Replay(p, actions)
	if err != nil {
		return err
	}
	ok, err := p.IsGoal(final)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotGoal, final)
	}

	return nil
}
