package maze

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/lvsearch/problem"
)

// CostFunc prices entering a cell.
type CostFunc func(p Point) float64

// UnitCost charges 1 for every move.
func UnitCost(Point) float64 { return 1 }

// StayEastCost makes western cells expensive: 0.5^x.
func StayEastCost(p Point) float64 { return math.Pow(0.5, float64(p.X)) }

// StayWestCost makes eastern cells expensive: 2^x.
func StayWestCost(p Point) float64 { return math.Pow(2, float64(p.X)) }

// Option configures a PositionProblem.
type Option func(*PositionProblem)

// WithCostFunc replaces the unit move cost. A nil fn is ignored.
func WithCostFunc(fn CostFunc) Option {
	return func(pp *PositionProblem) {
		if fn != nil {
			pp.cost = fn
		}
	}
}

// WithStart overrides the layout's start position.
func WithStart(p Point) Option {
	return func(pp *PositionProblem) { pp.start = p }
}

// PositionProblem is the problem of walking from the start tile to any goal
// tile. It records the states it expands; the counters are safe for
// concurrent searches over the same instance.
type PositionProblem struct {
	maze  *Maze
	start Point
	cost  CostFunc

	mu       sync.Mutex
	expanded int
	visited  []Point
	seen     map[Point]bool
}

var _ problem.Problem[Point, Direction] = (*PositionProblem)(nil)

// NewPositionProblem wraps m. Defaults: layout start, unit cost.
func NewPositionProblem(m *Maze, opts ...Option) *PositionProblem {
	pp := &PositionProblem{
		maze:  m,
		start: m.Start(),
		cost:  UnitCost,
		seen:  make(map[Point]bool),
	}
	for _, opt := range opts {
		opt(pp)
	}
	return pp
}

// Maze returns the underlying layout.
func (pp *PositionProblem) Maze() *Maze { return pp.maze }

// Goals returns the goal tiles; used by the heuristics.
func (pp *PositionProblem) Goals() []Point { return pp.maze.Goals() }

// StartState returns the start position. A start inside a wall is an error.
func (pp *PositionProblem) StartState() (Point, error) {
	if pp.maze.IsWall(pp.start) {
		return Point{}, fmt.Errorf("%w: start %v is a wall", ErrIllegalMove, pp.start)
	}
	return pp.start, nil
}

// IsGoal reports whether p is a goal tile.
func (pp *PositionProblem) IsGoal(p Point) (bool, error) {
	return pp.maze.IsGoal(p), nil
}

// Successors returns the legal moves from p in North, South, East, West
// order, each priced by the cost function of the destination cell.
func (pp *PositionProblem) Successors(p Point) ([]problem.Successor[Point, Direction], error) {
	moves := pp.maze.Moves(p)
	out := make([]problem.Successor[Point, Direction], 0, len(moves))
	for _, d := range moves {
		next := p.Add(d)
		out = append(out, problem.Successor[Point, Direction]{State: next, Action: d, Cost: pp.cost(next)})
	}

	pp.mu.Lock()
	pp.expanded++
	if !pp.seen[p] {
		pp.seen[p] = true
		pp.visited = append(pp.visited, p)
	}
	pp.mu.Unlock()

	return out, nil
}

// CostOfActions prices actions walked from the start. A move into a wall
// returns ErrIllegalMove.
func (pp *PositionProblem) CostOfActions(actions []Direction) (float64, error) {
	cur, total := pp.start, 0.0
	for i, d := range actions {
		next := cur.Add(d)
		if pp.maze.IsWall(next) {
			return 0, fmt.Errorf("%w: step %d %v from %v", ErrIllegalMove, i, d, cur)
		}
		total += pp.cost(next)
		cur = next
	}
	return total, nil
}

// Expanded returns how many times Successors was called.
func (pp *PositionProblem) Expanded() int {
	pp.mu.Lock()
	defer pp.mu.Unlock()
	return pp.expanded
}

// Visited returns the distinct expanded states in first-expansion order.
func (pp *PositionProblem) Visited() []Point {
	pp.mu.Lock()
	defer pp.mu.Unlock()
	out := make([]Point, len(pp.visited))
	copy(out, pp.visited)
	return out
}

// goaler is satisfied by problems that expose their goal tiles.
type goaler interface {
	Goals() []Point
}

// ManhattanHeuristic is the grid distance to the nearest goal. It is
// admissible for unit-cost movement.
func ManhattanHeuristic(p Point, pr problem.Problem[Point, Direction]) (float64, error) {
	return nearest(p, pr, func(a, b Point) float64 {
		return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
	})
}

// EuclideanHeuristic is the straight-line distance to the nearest goal.
func EuclideanHeuristic(p Point, pr problem.Problem[Point, Direction]) (float64, error) {
	return nearest(p, pr, func(a, b Point) float64 {
		return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
	})
}

func nearest(p Point, pr problem.Problem[Point, Direction], dist func(a, b Point) float64) (float64, error) {
	g, ok := pr.(goaler)
	if !ok {
		return 0, ErrNoGoals
	}
	goals := g.Goals()
	if len(goals) == 0 {
		return 0, ErrNoGoals
	}
	best := math.Inf(1)
	for _, goal := range goals {
		best = math.Min(best, dist(p, goal))
	}
	return best, nil
}
