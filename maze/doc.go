// Package maze turns text maze layouts into search problems.
//
// A layout is a rectangle of tiles, one line per row, top row first:
//
//	%  wall
//	P  start position (exactly one)
//	.  goal (at least one)
//	   open floor (space)
//
// Coordinates follow the usual maze convention: X grows to the east and
// Y grows to the north, so (0,0) is the bottom-left tile. Movement is
// four-connected; successors are always produced in North, South, East,
// West order, which fixes the tie-breaking of the uninformed searches.
//
// Four layouts are embedded (see Layouts); Parse accepts any other.
// PositionProblem adapts a Maze to problem.Problem[Point, Direction] with a
// pluggable per-cell cost, and ManhattanHeuristic / EuclideanHeuristic give
// admissible estimates for unit-cost movement.
package maze
