// Command lvsearch runs the search strategies on maze layouts and YAML graphs.
//
//	lvsearch maze --layout mediumMaze --algo astar --heuristic manhattan
//	lvsearch graph problem.yaml --algo ucs
//	lvsearch compare --layout openMaze
//	lvsearch layouts
//
// Configuration is read from --config (YAML), LVSEARCH_* environment
// variables and flags, in increasing priority.
package main

import (
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
