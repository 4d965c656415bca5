package search

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/diag"
	"github.com/katalvlaran/lvsearch/problem"
)

// node is a frontier entry. The path to a node is kept as a parent chain and
// only materialised when a goal is returned.
type node[S comparable, A any] struct {
	state  S
	action A
	parent *node[S, A]
	depth  int     // number of actions from the start
	g      float64 // accumulated step cost
	h      float64 // heuristic estimate (A* only)
}

// child builds the node reached from n through s.
func (n *node[S, A]) child(s problem.Successor[S, A]) *node[S, A] {
	return &node[S, A]{
		state:  s.State,
		action: s.Action,
		parent: n,
		depth:  n.depth + 1,
		g:      n.g + s.Cost,
	}
}

// path reconstructs the actions from the start to n, start first.
func (n *node[S, A]) path() []A {
	actions := make([]A, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		actions[cur.depth-1] = cur.action
	}

	return actions
}

// runner encapsulates the state shared by all four strategies during one call.
type runner[S comparable, A any] struct {
	p     problem.Problem[S, A]
	opts  Options
	alg   Algorithm
	runID string

	// withG / withH select which cost fields appear in events.
	withG, withH bool

	expanded int
}

// event builds a diagnostic event for n.
func (r *runner[S, A]) event(kind diag.Kind, n *node[S, A]) diag.Event {
	e := diag.Event{
		RunID:     r.runID,
		Algorithm: r.alg.Tag(),
		Kind:      kind,
		State:     n.state,
		PathLen:   n.depth,
	}
	if kind != diag.Start {
		e.G, e.HasG = n.g, r.withG
		// goal lines carry g only
		e.H, e.HasH = n.h, r.withH && kind == diag.Expand
	}

	return e
}

// begin announces the start state.
func (r *runner[S, A]) begin(start *node[S, A]) {
	r.opts.Sink.Record(r.event(diag.Start, start))
}

// expand is called for every popped node that is about to be examined.
// It enforces cancellation and the expansion bound, then records the event.
func (r *runner[S, A]) expand(n *node[S, A]) error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
	}
	if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions (%s)", ErrExpansionLimit, r.expanded, r.alg)
	}
	r.expanded++
	r.opts.Sink.Record(r.event(diag.Expand, n))

	return nil
}

// found builds the success result for goal node n.
func (r *runner[S, A]) found(n *node[S, A]) *Result[S, A] {
	r.opts.Sink.Record(r.event(diag.Goal, n))

	return &Result[S, A]{
		RunID:     r.runID,
		Algorithm: r.alg,
		Actions:   n.path(),
		Cost:      n.g,
		Expanded:  r.expanded,
		Found:     true,
		Goal:      n.state,
	}
}

// exhausted builds the failure result: empty action list, Found=false.
func (r *runner[S, A]) exhausted() *Result[S, A] {
	return &Result[S, A]{
		RunID:     r.runID,
		Algorithm: r.alg,
		Actions:   []A{},
		Expanded:  r.expanded,
	}
}

// root fetches the start state and wraps it in a node.
func (r *runner[S, A]) root() (*node[S, A], error) {
	start, err := r.p.StartState()
	if err != nil {
		return nil, err
	}

	return &node[S, A]{state: start}, nil
}
