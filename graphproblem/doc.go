// Package graphproblem provides an explicit, labelled, weighted graph that
// implements problem.Problem[string, string].
//
// States are string IDs, actions are edge labels, and successors come back
// in edge insertion order, which is what the uninformed searches use to
// break ties. A graph is built in code:
//
//	g, _ := graphproblem.New("A", "D")
//	_ = g.AddEdge("A", "B", "", 1) // label defaults to "A->B"
//
// or loaded from YAML:
//
//	start: A
//	goals: [D]
//	edges:
//	  - {from: A, to: B, cost: 1}
//	  - {from: A, to: C, action: detour, cost: 5}
//	heuristic: {A: 2, B: 1, C: 1}
//
// Graphs are safe for concurrent searches. Every Successors call is appended
// to an expansion log (ExpandedStates), which tests use to check search order.
package graphproblem
