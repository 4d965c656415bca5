package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout parsing and move validation.
var (
	// ErrEmptyLayout indicates the layout has no rows or no columns.
	ErrEmptyLayout = errors.New("maze: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNoStart indicates the layout has no 'P' tile.
	ErrNoStart = errors.New("maze: layout has no start tile 'P'")
	// ErrMultipleStarts indicates more than one 'P' tile.
	ErrMultipleStarts = errors.New("maze: layout has more than one start tile 'P'")
	// ErrNoGoal indicates the layout has no '.' tile.
	ErrNoGoal = errors.New("maze: layout has no goal tile '.'")
	// ErrUnknownTile indicates a character outside the tile alphabet.
	ErrUnknownTile = errors.New("maze: unknown tile")
	// ErrUnknownLayout indicates Layout was asked for a name it does not embed.
	ErrUnknownLayout = errors.New("maze: unknown layout")
	// ErrIllegalMove indicates a move into a wall or off the grid.
	ErrIllegalMove = errors.New("maze: illegal move")
	// ErrNoGoals is returned by the heuristics for a problem without goal tiles.
	ErrNoGoals = errors.New("maze: heuristic needs a problem exposing Goals()")
)

// Tile characters of the layout format.
const (
	TileWall  = '%'
	TileStart = 'P'
	TileGoal  = '.'
	TileOpen  = ' '
	TilePath  = 'o' // used by Render only
)

// Point is a cell coordinate. Y grows to the north.
type Point struct {
	X, Y int
}

// String renders p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Add returns p moved by d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a maze action.
type Direction int

const (
	// North moves one cell up (Y+1).
	North Direction = iota
	// South moves one cell down (Y-1).
	South
	// East moves one cell right (X+1).
	East
	// West moves one cell left (X-1).
	West
)

// compass lists the directions in successor order.
var compass = [...]Direction{North, South, East, West}

// Directions returns the four directions in successor order.
func Directions() []Direction { return compass[:] }

// Delta returns the coordinate offset of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Maze is a parsed layout. It is immutable once built.
// walls is row-major with row 0 at the bottom: walls[y*Width+x].
type Maze struct {
	Width, Height int
	start         Point
	goals         []Point
	walls         []bool
}
