package graphproblem_test

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/graphproblem"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

func TestNew_Errors(t *testing.T) {
	_, err := graphproblem.New("", []string{"D"})
	assert.ErrorIs(t, err, graphproblem.ErrEmptyStart)

	_, err = graphproblem.New("A", nil)
	assert.ErrorIs(t, err, graphproblem.ErrNoGoals)

	_, err = graphproblem.New("A", []string{"D", ""})
	assert.ErrorIs(t, err, graphproblem.ErrEmptyStateID)
}

func TestAddEdge(t *testing.T) {
	g, err := graphproblem.New("A", []string{"C"})
	require.NoError(t, err)

	require.NoError(t, g.AddEdge("A", "B", "", 1))
	require.NoError(t, g.AddEdge("A", "B", "slow", 3))
	require.NoError(t, g.AddEdge("B", "B", "wait", 0))
	require.NoError(t, g.AddEdge("B", "C", "", math.Inf(1)))

	assert.ErrorIs(t, g.AddEdge("", "B", "", 1), graphproblem.ErrEmptyStateID)
	assert.ErrorIs(t, g.AddEdge("A", "B", "", -1), graphproblem.ErrNegativeCost)
	assert.ErrorIs(t, g.AddEdge("A", "B", "", math.NaN()), graphproblem.ErrNegativeCost)

	succs, err := g.Successors("A")
	require.NoError(t, err)
	assert.Equal(t, []problem.Successor[string, string]{
		{State: "B", Action: "A->B", Cost: 1},
		{State: "B", Action: "slow", Cost: 3},
	}, succs)

	succs, err = g.Successors("nowhere")
	require.NoError(t, err)
	assert.Empty(t, succs)

	assert.Equal(t, []string{"A", "C", "B"}, g.States())
	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "wait", edges[2].Action)
}

func TestWithUndirected(t *testing.T) {
	g, err := graphproblem.New("A", []string{"B"}, graphproblem.WithUndirected())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("A", "B", "", 2))
	require.NoError(t, g.AddEdge("B", "B", "spin", 1))

	back, err := g.Successors("B")
	require.NoError(t, err)
	assert.Equal(t, []problem.Successor[string, string]{
		{State: "A", Action: "B->A", Cost: 2},
		{State: "B", Action: "spin", Cost: 1},
	}, back)
	assert.Len(t, g.Edges(), 3, "self-loop is not mirrored")
}

func TestCostOfActions(t *testing.T) {
	g, err := graphproblem.Load(filepath.Join("testdata", "abcd.yaml"))
	require.NoError(t, err)

	c, err := g.CostOfActions([]string{"A->C", "C->D"})
	require.NoError(t, err)
	assert.Equal(t, 6.0, c)

	c, err = g.CostOfActions(nil)
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = g.CostOfActions([]string{"A->D"})
	assert.ErrorIs(t, err, graphproblem.ErrUnknownAction)
}

func TestHeuristic(t *testing.T) {
	g, err := graphproblem.Load(filepath.Join("testdata", "abcd.yaml"))
	require.NoError(t, err)
	h := g.Heuristic()

	v, err := h("A", g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	v, err = h("D", g)
	require.NoError(t, err)
	assert.Zero(t, v, "missing entries estimate 0")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		doc string
		err error
	}{
		"NoStart":      {"goals: [D]\n", graphproblem.ErrEmptyStart},
		"NoGoals":      {"start: A\n", graphproblem.ErrNoGoals},
		"NegativeCost": {"start: A\ngoals: [B]\nedges:\n  - {from: A, to: B, cost: -2}\n", graphproblem.ErrNegativeCost},
		"EmptyEnd":     {"start: A\ngoals: [B]\nedges:\n  - {from: A, cost: 1}\n", graphproblem.ErrEmptyStateID},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphproblem.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := graphproblem.Parse([]byte("start: A\ngoals: [B]\nweights: {}\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = graphproblem.Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	g, err := graphproblem.Load(filepath.Join("testdata", "romania.yaml"))
	require.NoError(t, err)

	data, err := g.Marshal()
	require.NoError(t, err)
	back, err := graphproblem.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, g.States(), back.States())
	assert.Equal(t, g.Goals(), back.Goals())
	assert.Equal(t, len(g.Edges()), len(back.Edges()))
	for _, id := range g.States() {
		want, _ := g.Successors(id)
		got, _ := back.Successors(id)
		assert.Equal(t, want, got, id)
	}
}

func TestSearch_ABCD(t *testing.T) {
	g, err := graphproblem.Load(filepath.Join("testdata", "abcd.yaml"))
	require.NoError(t, err)

	res, err := search.Run[string, string](g, search.AlgorithmAStar, g.Heuristic())
	require.NoError(t, err)
	assert.Equal(t, []string{"A->B", "B->D"}, res.Actions)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, []string{"A", "B"}, g.ExpandedStates())

	g.ResetLog()
	actions, err := search.DFS[string, string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A->C", "C->D"}, actions)
	assert.Equal(t, []string{"A", "C"}, g.ExpandedStates())
}

func TestSearch_Romania(t *testing.T) {
	g, err := graphproblem.Load(filepath.Join("testdata", "romania.yaml"))
	require.NoError(t, err)

	want := []string{"Arad->Sibiu", "Sibiu->Rimnicu Vilcea", "Rimnicu Vilcea->Pitesti", "Pitesti->Bucharest"}
	for _, alg := range []search.Algorithm{search.AlgorithmUCS, search.AlgorithmAStar} {
		res, err := search.Run[string, string](g, alg, g.Heuristic())
		require.NoError(t, err)
		assert.Equal(t, want, res.Actions, alg)
		assert.Equal(t, 418.0, res.Cost, alg)
	}

	bfs, err := search.BFS[string, string](g)
	require.NoError(t, err)
	assert.Equal(t, []string{"Arad->Sibiu", "Sibiu->Fagaras", "Fagaras->Bucharest"}, bfs)

	ucs, err := search.Run[string, string](g, search.AlgorithmUCS, nil)
	require.NoError(t, err)
	astar, err := search.Run[string, string](g, search.AlgorithmAStar, g.Heuristic())
	require.NoError(t, err)
	assert.Less(t, astar.Expanded, ucs.Expanded)
}

func TestExpandedStates_Concurrent(t *testing.T) {
	g, err := graphproblem.Load(filepath.Join("testdata", "romania.yaml"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, alg := range search.Algorithms() {
		wg.Add(1)
		go func(alg search.Algorithm) {
			defer wg.Done()
			_, err := search.Run[string, string](g, alg, g.Heuristic())
			assert.NoError(t, err)
		}(alg)
	}
	wg.Wait()
	assert.NotEmpty(t, g.ExpandedStates())
}
