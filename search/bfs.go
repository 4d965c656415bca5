package search

import (
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/problem"
)

// BreadthFirstSearch searches the shallowest nodes of the search tree first.
//
// States are marked visited when enqueued, so each state enters the queue at
// most once and the first time it is dequeued its path has the fewest
// possible actions. Returns an empty slice when no goal is reachable.
func BreadthFirstSearch[S comparable, A any](p problem.Problem[S, A], opts ...Option) ([]A, error) {
	res, err := Run(p, AlgorithmBFS, nil, opts...)
	if err != nil {
		return nil, err
	}

	return res.Actions, nil
}

// breadthFirst runs graph-search BFS with eager visited marking.
func (r *runner[S, A]) breadthFirst() (*Result[S, A], error) {
	start, err := r.root()
	if err != nil {
		return nil, err
	}

	queue := frontier.NewQueue[*node[S, A]](16)
	queue.Push(start)
	visited := map[S]struct{}{start.state: {}}
	r.begin(start)

	for !queue.Empty() {
		n, _ := queue.Pop()
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
			if _, seen := visited[s.State]; seen {
				continue
			}
			visited[s.State] = struct{}{}
			queue.Push(n.child(s))
		}
	}

	return r.exhausted(), nil
}
