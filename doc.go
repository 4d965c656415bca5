// Package lvsearch is a small, generic graph and tree search engine.
//
// 🚀 What is in the box?
//
//	A problem is anything that can name a start state, recognise a goal and
//	list the successors of a state. Four strategies solve it:
//		• Depth-first search (stack, lazy visited marking)
//		• Breadth-first search (queue, fewest actions)
//		• Uniform-cost search (priority on path cost, cheapest path)
//		• A* search (priority on cost + heuristic estimate)
//
// ✨ Why lvsearch?
//
//   - Generic – states and actions are your own types
//   - Observable – every start, expansion and goal is an event you can log,
//     count or write to search_log.txt
//   - Bounded – cancellation and expansion limits via options
//   - Traced – one OpenTelemetry span and a few metrics per search
//
// Packages:
//
//	problem/:      the Problem contract, Successor, Heuristic, Funcs adapter, Replay
//	frontier/:     stack, FIFO queue and stable priority queue
//	search/:       DFS, BFS, UCS, A*, Run, options and aliases
//	diag/:         diagnostic event sinks (file, slog, Prometheus)
//	maze/:         text maze layouts as position search problems
//	graphproblem/: explicit labelled graphs, loadable from YAML
//	telemetry/:    OpenTelemetry provider setup
//	config/:       YAML configuration for the command
//	cmd/lvsearch/: command-line front end
//
// Quick start:
//
//	m, _ := maze.Layout("tinyMaze")
//	p := maze.NewPositionProblem(m)
//	actions, err := search.AStar[maze.Point, maze.Direction](p, maze.ManhattanHeuristic)
package lvsearch
