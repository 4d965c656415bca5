package search

import (
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/problem"
)

// AStarSearch searches the node with the lowest g + h first, where g is the
// accumulated cost and h the heuristic estimate of the remaining cost.
//
// A nil heuristic selects problem.NullHeuristic, which makes A* identical to
// UniformCostSearch. The result is optimal only when h is admissible; the
// engine does not check this. Heuristic errors are returned unchanged.
func AStarSearch[S comparable, A any](p problem.Problem[S, A], h problem.Heuristic[S, A], opts ...Option) ([]A, error) {
	res, err := Run(p, AlgorithmAStar, h, opts...)
	if err != nil {
		return nil, err
	}

	return res.Actions, nil
}

// aStar runs A*: a priority frontier ordered by g + h, relaxed on g alone.
func (r *runner[S, A]) aStar(h problem.Heuristic[S, A]) (*Result[S, A], error) {
	start, err := r.root()
	if err != nil {
		return nil, err
	}
	if start.h, err = h(start.state, r.p); err != nil {
		return nil, err
	}

	pq := frontier.NewPriority[*node[S, A]](16)
	pq.PushPriority(start, start.g+start.h)
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
			c := n.child(s)
			if c.h, err = h(c.state, r.p); err != nil {
				return nil, err
			}
			bestG[s.State] = newG
			pq.PushPriority(c, c.g+c.h)
		}
	}

	return r.exhausted(), nil
}
