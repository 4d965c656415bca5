package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/graphproblem"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run all four strategies on one problem and tabulate them",
		Long: `Run DFS, BFS, UCS and A* concurrently on a maze layout (default) or a YAML
graph (--graph) and print one row per strategy.

A strategy that hits --max-expansions or --timeout is reported in its row;
the other strategies still finish.

Examples:
  lvsearch compare --layout mediumMaze --heuristic manhattan
  lvsearch compare --graph testdata/romania.yaml`,
		Args: cobra.NoArgs,
		RunE: a.runCompare,
	}
	cmd.Flags().String("graph", "", "YAML graph file instead of a maze")
	addMazeFlags(cmd)
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, _ []string) error {
	graphFile, _ := cmd.Flags().GetString("graph")

	var run func(ctx context.Context, alg search.Algorithm) summary
	if graphFile != "" {
		g, err := graphproblem.Load(graphFile)
		if err != nil {
			return err
		}
		h := graphHeuristic(g, a.cfg.Search.Heuristic)
		run = func(ctx context.Context, alg search.Algorithm) summary {
			opts, cancel := a.searchOptions(ctx)
			defer cancel()
			res, err := search.Run[string, string](g, alg, h, opts...)
			return summarize(alg, res, err)
		}
	} else {
		m, err := loadMaze(a.cfg.Maze)
		if err != nil {
			return err
		}
		h := mazeHeuristic(a.cfg.Search.Heuristic)
		run = func(ctx context.Context, alg search.Algorithm) summary {
			opts, cancel := a.searchOptions(ctx)
			defer cancel()
			res, err := search.Run[maze.Point, maze.Direction](newMazeProblem(m, a.cfg.Maze), alg, h, opts...)
			return summarize(alg, res, err)
		}
	}

	algs := search.Algorithms()
	rows := make([]summary, len(algs))
	grp, ctx := errgroup.WithContext(cmd.Context())
	for i, alg := range algs {
		i, alg := i, alg
		grp.Go(func() error {
			rows[i] = run(ctx, alg)
			if err := rows[i].err; err != nil && !isBound(err) {
				return err
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	for _, s := range rows {
		a.logger.Info("search finished",
			"algorithm", string(s.alg),
			"found", s.found,
			"expanded", s.expanded,
			"err", s.err,
		)
	}
	printTable(a.out, rows)
	return nil
}

// isBound reports whether err is an expansion or time bound rather than a
// failure of the problem itself.
func isBound(err error) bool {
	return errors.Is(err, search.ErrExpansionLimit) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
