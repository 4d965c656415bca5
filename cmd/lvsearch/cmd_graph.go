package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/graphproblem"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Search an explicit graph described in YAML",
		Long: `Search an explicit graph loaded from a YAML document:

  start: A
  goals: [D]
  edges:
    - {from: A, to: B, cost: 1}
    - {from: B, to: D, action: finish, cost: 1}
  heuristic: {A: 2, B: 1}

The heuristic table is used by A* unless --heuristic null is given.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runGraph,
	}
	cmd.Flags().String("algo", "", "search algorithm: dfs, bfs, ucs, astar")
	cmd.Flags().String("heuristic", "", "null disables the document's heuristic table")
	return cmd
}

func (a *app) runGraph(cmd *cobra.Command, args []string) error {
	g, err := graphproblem.Load(args[0])
	if err != nil {
		return err
	}
	alg, _ := search.ParseAlgorithm(a.cfg.Search.Algorithm)

	opts, cancel := a.searchOptions(cmd.Context())
	defer cancel()
	res, err := search.Run[string, string](g, alg, graphHeuristic(g, a.cfg.Search.Heuristic), opts...)
	if err != nil {
		return err
	}
	a.logger.Info("search finished",
		"run", res.RunID,
		"algorithm", string(alg),
		"found", res.Found,
		"expanded", res.Expanded,
	)
	printSummary(a.out, summarize(alg, res, nil))
	return nil
}

func graphHeuristic(g *graphproblem.Graph, name string) problem.Heuristic[string, string] {
	if strings.ToLower(name) == config.HeuristicNull {
		return nil
	}
	return g.Heuristic()
}
