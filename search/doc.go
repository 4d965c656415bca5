// Package search implements the four classic state-space search strategies
// over a problem.Problem: depth-first, breadth-first, uniform-cost and A*.
//
// What
//
//   - DepthFirstSearch   (alias DFS):   LIFO frontier, states marked visited when popped.
//   - BreadthFirstSearch (alias BFS):   FIFO frontier, states marked visited when pushed.
//   - UniformCostSearch  (alias UCS):   priority frontier on accumulated cost g.
//   - AStarSearch        (alias AStar): priority frontier on g + h(state).
//   - Run: dispatch by Algorithm and return a full Result (actions, cost,
//     expansion count, goal state, run ID).
//
// Every entry point returns the ordered list of actions leading from the
// start state to the first goal state popped from the frontier.
//
// Tie-breaks
//
//	Successors are pushed in the order the problem lists them. On a stack
//	that means the last successor is expanded first; queues and priority
//	frontiers keep list order among equals.
//
// Relaxation (UCS, A*)
//
//	A successor is pushed when it has no recorded best cost or when the new
//	cost is strictly lower. Superseded entries stay in the heap and are
//	skipped when popped ("lazy decrease-key"), so only the best known cost
//	of a state is ever expanded.
//
// Failure
//
//	An exhausted frontier is not an error: the entry points return an empty,
//	non-nil action slice and Result.Found is false. Errors returned by the
//	problem or the heuristic are returned to the caller unchanged.
//
// Options
//
//   - WithContext(ctx):       cancel a long search; checked once per pop.
//   - WithSink(sink):         receive start / expand / goal events (see package diag).
//   - WithMaxExpansions(n):   fail with ErrExpansionLimit after n expansions.
//
// Complexity (b = branching factor, d = depth of the shallowest goal,
// C* = optimal cost, ε = smallest step cost)
//
//   - BFS:       time and memory O(b^d).
//   - DFS:       time O(b^m) for maximum depth m; memory O(b·m) frontier plus the visited set.
//   - UCS, A*:   time and memory O(b^(1+C*/ε)) with a binary heap; A* expands no
//     more states than UCS when the heuristic is consistent.
//
// Telemetry
//
//	Run opens an OpenTelemetry span per search and records run, expansion and
//	duration metrics through the global providers; both are no-ops until a
//	provider is installed (see package telemetry).
package search
