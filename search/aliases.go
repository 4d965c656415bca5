package search

import "github.com/katalvlaran/lvsearch/problem"

// DFS is shorthand for DepthFirstSearch.
func DFS[S comparable, A any](p problem.Problem[S, A], opts ...Option) ([]A, error) {
	return DepthFirstSearch(p, opts...)
}

// BFS is shorthand for BreadthFirstSearch.
func BFS[S comparable, A any](p problem.Problem[S, A], opts ...Option) ([]A, error) {
	return BreadthFirstSearch(p, opts...)
}

// UCS is shorthand for UniformCostSearch.
func UCS[S comparable, A any](p problem.Problem[S, A], opts ...Option) ([]A, error) {
	return UniformCostSearch(p, opts...)
}

// AStar is shorthand for AStarSearch.
func AStar[S comparable, A any](p problem.Problem[S, A], h problem.Heuristic[S, A], opts ...Option) ([]A, error) {
	return AStarSearch(p, h, opts...)
}
