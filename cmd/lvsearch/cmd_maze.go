package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().String("layout", "", "embedded layout name (see 'lvsearch layouts')")
	cmd.Flags().String("layout-file", "", "layout file; wins over --layout")
	cmd.Flags().String("cost", "", "move cost: unit, stayeast, staywest")
	cmd.Flags().String("heuristic", "", "A* heuristic: null, manhattan, euclidean")
}

func newMazeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Find a path through a maze layout",
		Long: `Find a path from the start tile 'P' to a goal tile '.' of a maze layout
and draw it.

Examples:
  lvsearch maze --layout tinyMaze --algo dfs
  lvsearch maze --layout mediumMaze --algo ucs --cost stayeast
  lvsearch maze --layout-file my.lay --algo astar --heuristic euclidean`,
		Args: cobra.NoArgs,
		RunE: a.runMaze,
	}
	cmd.Flags().String("algo", "", "search algorithm: dfs, bfs, ucs, astar")
	addMazeFlags(cmd)
	return cmd
}

func (a *app) runMaze(cmd *cobra.Command, _ []string) error {
	m, err := loadMaze(a.cfg.Maze)
	if err != nil {
		return err
	}
	alg, _ := search.ParseAlgorithm(a.cfg.Search.Algorithm)
	p := newMazeProblem(m, a.cfg.Maze)

	opts, cancel := a.searchOptions(cmd.Context())
	defer cancel()
	res, err := search.Run[maze.Point, maze.Direction](p, alg, mazeHeuristic(a.cfg.Search.Heuristic), opts...)
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
	if !res.Found {
		return nil
	}
	drawn, err := m.Render(res.Actions)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, drawn)
	return nil
}

// loadMaze reads cfg.LayoutFile if set, else the embedded cfg.Layout.
func loadMaze(cfg config.MazeConfig) (*maze.Maze, error) {
	if cfg.LayoutFile != "" {
		data, err := os.ReadFile(cfg.LayoutFile)
		if err != nil {
			return nil, err
		}
		return maze.Parse(string(data))
	}
	return maze.Layout(cfg.Layout)
}

func newMazeProblem(m *maze.Maze, cfg config.MazeConfig) *maze.PositionProblem {
	cost := maze.UnitCost
	switch strings.ToLower(cfg.Cost) {
	case config.CostStayEast:
		cost = maze.StayEastCost
	case config.CostStayWest:
		cost = maze.StayWestCost
	}
	return maze.NewPositionProblem(m, maze.WithCostFunc(cost))
}

func mazeHeuristic(name string) problem.Heuristic[maze.Point, maze.Direction] {
	switch strings.ToLower(name) {
	case config.HeuristicManhattan:
		return maze.ManhattanHeuristic
	case config.HeuristicEuclidean:
		return maze.EuclideanHeuristic
	}
	return problem.NullHeuristic[maze.Point, maze.Direction]
}
