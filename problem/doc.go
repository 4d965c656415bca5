// Package problem defines the contract every search algorithm in lvsearch consumes.
//
// What
//
//   - Problem[S, A]: four operations a concrete search problem must provide:
//   - StartState:    the state the search begins from
//   - IsGoal:        goal test
//   - Successors:    ordered (state, action, step cost) transitions out of a state
//   - CostOfActions: total cost of a full action sequence, for external validation
//   - Heuristic[S, A]: optional cost-to-goal estimate consumed only by A*.
//   - Funcs[S, A]: adapter turning four plain functions into a Problem.
//   - Replay / Verify: independent checks that an action sequence is legal and reaches a goal.
//
// State and action types
//
//	S must be comparable: state equality is what the visited and best-cost maps
//	key on, so two states that compare equal are the same node. A is opaque to
//	the engine; Replay and Verify additionally require A to be comparable.
//
// Ordering
//
//	The order of the slice returned by Successors is the tie-break order the
//	algorithms use. Stack-based search expands the last successor first,
//	queue- and priority-based searches keep list order among equals.
//
// Errors
//
//   - ErrNotImplemented  returned by Funcs for an operation whose function is nil.
//   - ErrIllegalAction   returned by Replay when an action is not offered by Successors.
//   - ErrNotGoal         returned by Verify when a replay ends on a non-goal state.
//
// Any error a Problem or Heuristic returns is propagated to the search caller
// without wrapping.
package problem
