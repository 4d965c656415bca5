package search_test

import (
	"container/heap"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsearch/problem"
)

// edge is a directed, labelled, weighted transition.
type edge struct {
	from, to string
	cost     float64
}

// digraph is a small explicit problem whose actions are "from->to" labels.
// Successors come back in edge insertion order.
type digraph struct {
	start string
	goals map[string]bool
	adj   map[string][]problem.Successor[string, string]
}

func newDigraph(start string, goals []string, edges ...edge) *digraph {
	g := &digraph{start: start, goals: map[string]bool{}, adj: map[string][]problem.Successor[string, string]{}}
	for _, s := range goals {
		g.goals[s] = true
	}
	for _, e := range edges {
		g.adj[e.from] = append(g.adj[e.from], problem.Successor[string, string]{
			State: e.to, Action: e.from + "->" + e.to, Cost: e.cost,
		})
	}
	return g
}

func (g *digraph) StartState() (string, error)    { return g.start, nil }
func (g *digraph) IsGoal(s string) (bool, error) { return g.goals[s], nil }

func (g *digraph) Successors(s string) ([]problem.Successor[string, string], error) {
	return g.adj[s], nil
}

func (g *digraph) CostOfActions(actions []string) (float64, error) {
	_, c, err := problem.Replay[string, string](g, actions)
	return c, err
}

// abcd is the reference scenario: A->B(1), A->C(5), B->D(1), C->D(1), goal D.
func abcd() *digraph {
	return newDigraph("A", []string{"D"},
		edge{"A", "B", 1}, edge{"A", "C", 5}, edge{"B", "D", 1}, edge{"C", "D", 1})
}

// randomDigraph builds a connected-ish random graph of n states "s0".."s{n-1}"
// with integer costs in [1, 9]; s0 is the start, the last state the goal.
func randomDigraph(seed int64, n, extra int) *digraph {
	rng := rand.New(rand.NewSource(seed))
	name := func(i int) string { return fmt.Sprintf("s%d", i) }
	var edges []edge
	// action labels must stay unambiguous, so each pair appears once
	seen := map[[2]int]bool{}
	add := func(a, b int) {
		if a == b || seen[[2]int{a, b}] {
			return
		}
		seen[[2]int{a, b}] = true
		edges = append(edges, edge{name(a), name(b), float64(1 + rng.Intn(9))})
	}
	// spanning chain in random order keeps the goal reachable
	prev := 0
	for _, p := range rng.Perm(n - 1) {
		add(prev, p+1)
		prev = p + 1
	}
	for i := 0; i < extra; i++ {
		add(rng.Intn(n), rng.Intn(n))
	}
	return newDigraph(name(0), []string{name(n - 1)}, edges...)
}

// minEdges is an oracle: fewest actions from start to any goal, -1 if none.
func minEdges(g *digraph) int {
	dist := map[string]int{g.start: 0}
	queue := []string{g.start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if g.goals[u] {
			return dist[u]
		}
		for _, s := range g.adj[u] {
			if _, ok := dist[s.State]; !ok {
				dist[s.State] = dist[u] + 1
				queue = append(queue, s.State)
			}
		}
	}
	return -1
}

type distItem struct {
	id string
	d  float64
}

type distHeap []distItem

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].d < h[j].d }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)        { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() any {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]
	return it
}

// dijkstra is a reference shortest-distance oracle over adj.
func dijkstra(adj map[string][]problem.Successor[string, string], src string) map[string]float64 {
	dist := map[string]float64{src: 0}
	pq := &distHeap{{src, 0}}
	for pq.Len() > 0 {
		it := heap.Pop(pq).(distItem)
		if it.d > dist[it.id] {
			continue
		}
		for _, s := range adj[it.id] {
			nd := it.d + s.Cost
			if old, ok := dist[s.State]; !ok || nd < old {
				dist[s.State] = nd
				heap.Push(pq, distItem{s.State, nd})
			}
		}
	}
	return dist
}

// minCost is an oracle: cheapest cost from start to any goal, +Inf if none.
func minCost(g *digraph) float64 {
	best := math.Inf(1)
	for s, d := range dijkstra(g.adj, g.start) {
		if g.goals[s] && d < best {
			best = d
		}
	}
	return best
}

// exactHeuristic returns the true remaining cost of each state, computed on
// the reversed graph, and +Inf for states that cannot reach a goal. It is
// admissible and consistent by construction.
func exactHeuristic(g *digraph) problem.Heuristic[string, string] {
	rev := map[string][]problem.Successor[string, string]{}
	for from, succs := range g.adj {
		for _, s := range succs {
			rev[s.State] = append(rev[s.State], problem.Successor[string, string]{State: from, Cost: s.Cost})
		}
	}
	remaining := map[string]float64{}
	for goal := range g.goals {
		for s, d := range dijkstra(rev, goal) {
			if old, ok := remaining[s]; !ok || d < old {
				remaining[s] = d
			}
		}
	}
	return func(s string, _ problem.Problem[string, string]) (float64, error) {
		if d, ok := remaining[s]; ok {
			return d, nil
		}
		return math.Inf(1), nil
	}
}
