package search

import (
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/problem"
)

// UniformCostSearch searches the node of least accumulated cost first.
//
// With non-negative step costs the first goal popped is reached by a
// cheapest path. Equal-cost entries pop in the order they were pushed.
// Returns an empty slice when no goal is reachable.
func UniformCostSearch[S comparable, A any](p problem.Problem[S, A], opts ...Option) ([]A, error) {
	res, err := Run(p, AlgorithmUCS, nil, opts...)
	if err != nil {
		return nil, err
	}

	return res.Actions, nil
}

// uniformCost runs UCS: a priority frontier ordered by g.
func (r *runner[S, A]) uniformCost() (*Result[S, A], error) {
	start, err := r.root()
	if err != nil {
		return nil, err
	}

	pq := frontier.NewPriorityFunc(16, func(n *node[S, A]) float64 { return n.g })
	pq.Push(start)
	bestG := map[S]float64{start.state: 0}
	r.begin(start)

	for !pq.Empty() {
		n, _ := pq.Pop()
		// a cheaper route to this state was pushed after this entry
		if n.g > bestG[n.state] {
			continue
		}
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
			newG := n.g + s.Cost
			if old, ok := bestG[s.State]; ok && newG >= old {
				continue
			}
			bestG[s.State] = newG
			pq.Push(n.child(s))
		}
	}

	return r.exhausted(), nil
}
