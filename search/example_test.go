// Package search_test shows the four strategies on a small explicit problem.
// Each example is runnable via "go test -run Example".
package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/diag"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleUCS finds the cheap route of the ABCD scenario:
// A->B(1), A->C(5), B->D(1), C->D(1).
func ExampleUCS() {
	actions, err := search.UCS[string, string](abcd())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(actions)
	// Output: [A->B B->D]
}

// ExampleDFS shows that DFS returns a path, not necessarily a cheap one.
func ExampleDFS() {
	actions, _ := search.DFS[string, string](abcd())
	fmt.Println(actions)
	// Output: [A->C C->D]
}

// ExampleAStar uses an admissible table heuristic.
func ExampleAStar() {
	estimate := map[string]float64{"A": 2, "B": 1, "C": 1}
	h := func(s string, _ problem.Problem[string, string]) (float64, error) {
		return estimate[s], nil
	}

	actions, err := search.AStar[string, string](abcd(), h)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(actions)
	// Output: [A->B B->D]
}

// ExampleRun collects the full result and prints every lifecycle event.
func ExampleRun() {
	sink := diag.SinkFunc(func(e diag.Event) { fmt.Println(e) })

	res, err := search.Run[string, string](abcd(), search.AlgorithmBFS, nil, search.WithSink(sink))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("found=%v actions=%v expanded=%d\n", res.Found, res.Actions, res.Expanded)
	// Output:
	// BFS start: A
	// BFS expand: A | path_len=0
	// BFS expand: B | path_len=1
	// BFS expand: C | path_len=1
	// BFS expand: D | path_len=2
	// BFS goal: D | path_len=2
	// found=true actions=[A->B B->D] expanded=4
}

// Example_funcs builds a problem from plain functions: count from 0 to 3.
func Example_funcs() {
	p := problem.Funcs[int, string]{
		Start: func() (int, error) { return 0, nil },
		Goal:  func(n int) (bool, error) { return n == 3, nil },
		Expand: func(n int) ([]problem.Successor[int, string], error) {
			return []problem.Successor[int, string]{
				{State: n + 1, Action: "inc", Cost: 1},
				{State: n * 2, Action: "dbl", Cost: 1},
			}, nil
		},
	}

	actions, _ := search.BFS[int, string](p)
	fmt.Println(actions)
	// Output: [inc inc inc]
}
