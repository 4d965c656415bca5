package graphproblem

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvsearch/problem"
)

var _ problem.Problem[string, string] = (*Graph)(nil)

// New creates a graph with the given start and goal states.
// Returns ErrEmptyStart, ErrNoGoals or ErrEmptyStateID.
func New(start string, goals []string, opts ...Option) (*Graph, error) {
	if start == "" {
		return nil, ErrEmptyStart
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}
	g := &Graph{
		start:     start,
		goals:     make(map[string]struct{}, len(goals)),
		known:     make(map[string]struct{}),
		adj:       make(map[string][]*Edge),
		heuristic: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.addState(start)
	for _, id := range goals {
		if id == "" {
			return nil, ErrEmptyStateID
		}
		g.goals[id] = struct{}{}
		g.addState(id)
	}

	return g, nil
}

// AddEdge adds a transition from→to. An empty action is labelled
// "from->to". Self-loops and parallel edges are allowed.
//
// Returns ErrEmptyStateID for an empty endpoint and ErrNegativeCost for a
// negative or NaN cost. +Inf is accepted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to, action string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyStateID
	}
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%w: %s->%s cost %v", ErrNegativeCost, from, to, cost)
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	g.link(from, to, action, cost, false)
	if g.undirected && from != to {
		g.link(to, from, action, cost, true)
	}

	return nil
}

// link stores one directed edge. Caller holds muEdge.
func (g *Graph) link(from, to, action string, cost float64, mirror bool) {
	if action == "" {
		action = from + "->" + to
	}
	g.nextEdgeID++
	e := &Edge{
		ID:     "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:   from,
		To:     to,
		Action: action,
		Cost:   cost,
		mirror: mirror,
	}
	g.addState(from)
	g.addState(to)
	g.edges = append(g.edges, e)
	g.adj[from] = append(g.adj[from], e)
}

func (g *Graph) addState(id string) {
	if _, ok := g.known[id]; ok {
		return
	}
	g.known[id] = struct{}{}
	g.states = append(g.states, id)
}

// SetHeuristic records the estimate h for state id.
func (g *Graph) SetHeuristic(id string, h float64) {
	g.muEdge.Lock()
	g.heuristic[id] = h
	g.muEdge.Unlock()
}

// Heuristic returns a problem.Heuristic reading the table set with
// SetHeuristic or loaded from YAML. States without an entry estimate 0.
func (g *Graph) Heuristic() problem.Heuristic[string, string] {
	return func(state string, _ problem.Problem[string, string]) (float64, error) {
		g.muEdge.RLock()
		defer g.muEdge.RUnlock()
		return g.heuristic[state], nil
	}
}

// States returns every state ID in first-seen order.
func (g *Graph) States() []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]string, len(g.states))
	copy(out, g.states)
	return out
}

// Edges returns copies of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}
	return out
}

// Goals returns the goal IDs sorted.
func (g *Graph) Goals() []string {
	out := make([]string, 0, len(g.goals))
	for id := range g.goals {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// StartState returns the start ID.
func (g *Graph) StartState() (string, error) { return g.start, nil }

// IsGoal reports whether state is a goal.
func (g *Graph) IsGoal(state string) (bool, error) {
	_, ok := g.goals[state]
	return ok, nil
}

// Successors returns the outgoing edges of state in insertion order and
// appends state to the expansion log. Unknown states have no successors.
func (g *Graph) Successors(state string) ([]problem.Successor[string, string], error) {
	g.muEdge.RLock()
	out := make([]problem.Successor[string, string], len(g.adj[state]))
	for i, e := range g.adj[state] {
		out[i] = problem.Successor[string, string]{State: e.To, Action: e.Action, Cost: e.Cost}
	}
	g.muEdge.RUnlock()

	g.muLog.Lock()
	g.expanded = append(g.expanded, state)
	g.muLog.Unlock()

	return out, nil
}

// CostOfActions walks actions from the start, taking the first edge with a
// matching label at each step. An unmatched label returns ErrUnknownAction.
func (g *Graph) CostOfActions(actions []string) (float64, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	cur, total := g.start, 0.0
	for i, a := range actions {
		var next *Edge
		for _, e := range g.adj[cur] {
			if e.Action == a {
				next = e
				break
			}
		}
		if next == nil {
			return 0, fmt.Errorf("%w: step %d %q from %q", ErrUnknownAction, i, a, cur)
		}
		total += next.Cost
		cur = next.To
	}

	return total, nil
}

// ExpandedStates returns the expansion log: one entry per Successors call.
func (g *Graph) ExpandedStates() []string {
	g.muLog.Lock()
	defer g.muLog.Unlock()
	out := make([]string, len(g.expanded))
	copy(out, g.expanded)
	return out
}

// ResetLog clears the expansion log.
func (g *Graph) ResetLog() {
	g.muLog.Lock()
	g.expanded = nil
	g.muLog.Unlock()
}
