package types

// Point is a cell position in board units. Coordinates are always multiples
// of the unit size.
type Point struct {
	X, Y int
}

// Grid describes the board: its size in logical units and the side of one cell.
type Grid struct {
	Width  int
	Height int
	Unit   int
}

// Columns returns the number of cells across.
func (g Grid) Columns() int {
	return g.Width / g.Unit
}

// Rows returns the number of cells down.
func (g Grid) Rows() int {
	return g.Height / g.Unit
}

// Cells returns how many cells the board holds.
func (g Grid) Cells() int {
	return g.Columns() * g.Rows()
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Direction is one of the four headings.
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a one-cell step vector.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// Step moves p by one cell of size unit in direction d.
func (p Point) Step(d Direction, unit int) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X*unit, Y: p.Y + v.Y*unit}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
