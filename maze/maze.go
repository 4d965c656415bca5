package maze

import (
	"fmt"
	"strings"
)

// Parse builds a Maze from a layout. Trailing blank lines and '\r' are
// ignored. Goals are returned by Goals in reading order (top row first).
//
// Returns ErrEmptyLayout, ErrNonRectangular, ErrUnknownTile, ErrNoStart,
// ErrMultipleStarts or ErrNoGoal for malformed input.
// Complexity: O(W×H).
func Parse(layout string) (*Maze, error) {
	layout = strings.ReplaceAll(layout, "\r", "")
	rows := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, i, len(row), w)
		}
	}

	m := &Maze{Width: w, Height: h, walls: make([]bool, w*h)}
	starts := 0
	for r, row := range rows {
		y := h - 1 - r
		for x, c := range []byte(row) {
			switch c {
			case TileWall:
				m.walls[m.index(x, y)] = true
			case TileStart:
				starts++
				m.start = Point{X: x, Y: y}
			case TileGoal:
				m.goals = append(m.goals, Point{X: x, Y: y})
			case TileOpen:
			default:
				return nil, fmt.Errorf("%w %q at row %d column %d", ErrUnknownTile, c, r, x)
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrMultipleStarts
	case len(m.goals) == 0:
		return nil, ErrNoGoal
	}

	return m, nil
}

// MustParse is Parse for layouts known to be valid; it panics on error.
func MustParse(layout string) *Maze {
	m, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return m
}

// Start returns the start position.
func (m *Maze) Start() Point { return m.start }

// Goals returns a copy of the goal positions.
func (m *Maze) Goals() []Point {
	out := make([]Point, len(m.goals))
	copy(out, m.goals)
	return out
}

// IsGoal reports whether p is a goal tile.
func (m *Maze) IsGoal(p Point) bool {
	for _, g := range m.goals {
		if g == p {
			return true
		}
	}
	return false
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// IsWall reports whether p is a wall. Cells outside the grid count as walls.
func (m *Maze) IsWall(p Point) bool {
	return !m.InBounds(p) || m.walls[m.index(p.X, p.Y)]
}

// Moves returns the legal directions from p in North, South, East, West order.
func (m *Maze) Moves(p Point) []Direction {
	out := make([]Direction, 0, len(compass))
	for _, d := range compass {
		if !m.IsWall(p.Add(d)) {
			out = append(out, d)
		}
	}
	return out
}

// Walk follows actions from the start and returns every position visited,
// start included. A move into a wall yields ErrIllegalMove.
func (m *Maze) Walk(actions []Direction) ([]Point, error) {
	cur := m.start
	path := make([]Point, 0, len(actions)+1)
	path = append(path, cur)
	for i, d := range actions {
		next := cur.Add(d)
		if m.IsWall(next) {
			return nil, fmt.Errorf("%w: step %d %v from %v", ErrIllegalMove, i, d, cur)
		}
		cur = next
		path = append(path, cur)
	}
	return path, nil
}

// Render draws the layout with the cells visited by actions marked 'o'.
// Start and goal tiles keep their characters.
func (m *Maze) Render(actions []Direction) (string, error) {
	path, err := m.Walk(actions)
	if err != nil {
		return "", err
	}
	onPath := make(map[Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := m.Height - 1; y >= 0; y-- {
		for x := 0; x < m.Width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case m.walls[m.index(x, y)]:
				b.WriteByte(TileWall)
			case p == m.start:
				b.WriteByte(TileStart)
			case m.IsGoal(p):
				b.WriteByte(TileGoal)
			case onPath[p]:
				b.WriteByte(TilePath)
			default:
				b.WriteByte(TileOpen)
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// String renders the layout unchanged.
func (m *Maze) String() string {
	s, _ := m.Render(nil)
	return s
}

// Regions groups the open cells into four-connected regions.
// Each region lists its cells in breadth-first order from its lowest
// row-major cell; regions are ordered by that cell.
// Time: O(W·H). Memory: O(W·H).
func (m *Maze) Regions() [][]Point {
	seen := make([]bool, len(m.walls))
	var regions [][]Point
	for i := range m.walls {
		if m.walls[i] || seen[i] {
			continue
		}
		seen[i] = true
		queue := []int{i}
		var region []Point
		for qi := 0; qi < len(queue); qi++ {
			u := m.coordinate(queue[qi])
			region = append(region, u)
			for _, d := range compass {
				v := u.Add(d)
				if m.IsWall(v) {
					continue
				}
				if vi := m.index(v.X, v.Y); !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// GoalReachable reports whether some goal shares the start's region.
func (m *Maze) GoalReachable() bool {
	for _, region := range m.Regions() {
		hasStart, hasGoal := false, false
		for _, p := range region {
			hasStart = hasStart || p == m.start
			hasGoal = hasGoal || m.IsGoal(p)
		}
		if hasStart {
			return hasGoal
		}
	}
	return false
}

// index maps (x,y) to a row-major index.
func (m *Maze) index(x, y int) int { return y*m.Width + x }

// coordinate converts a row-major index back to a Point.
func (m *Maze) coordinate(i int) Point { return Point{X: i % m.Width, Y: i / m.Width} }
