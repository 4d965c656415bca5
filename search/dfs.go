package search

import (
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/problem"
)

// DepthFirstSearch searches the deepest nodes of the search tree first.
//
// A state may be pushed several times before it is popped; only its first
// pop is expanded. Successors are pushed in list order, so the last one is
// expanded first. Returns an empty slice when no goal is reachable.
func DepthFirstSearch[S comparable, A any](p problem.Problem[S, A], opts ...Option) ([]A, error) {
	res, err := Run(p, AlgorithmDFS, nil, opts...)
	if err != nil {
		return nil, err
	}

	return res.Actions, nil
}

// depthFirst runs graph-search DFS with lazy visited marking.
func (r *runner[S, A]) depthFirst() (*Result[S, A], error) {
	start, err := r.root()
	if err != nil {
		return nil, err
	}

	stack := frontier.NewStack[*node[S, A]](16)
	stack.Push(start)
	visited := make(map[S]struct{})
	r.begin(start)

	for !stack.Empty() {
		n, _ := stack.Pop()
		if _, seen := visited[n.state]; seen {
			continue
		}
		visited[n.state] = struct{}{}
		if err = r.expand(n); err != nil {
			return nil, err
		}

		goal, err := r.p.IsGoal(n.state)
		if err != nil {
			return nil, err
		}
		if goal {
			return r.found(n), nil
		}

		succs, err := r.p.Successors(n.state)
		if err != nil {
			return nil, err
		}
		for _, s := range succs {
			if _, seen := visited[s.State]; !seen {
				stack.Push(n.child(s))
			}
		}
	}

	return r.exhausted(), nil
}
