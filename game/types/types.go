package types

import "time"

// Point is one grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved by delta.
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// InBounds reports whether p lies inside a size x size board.
func (p Point) InBounds(size int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < size && p.Y < size
}

// Game constants
const (
	Squares      = 16                     // Cells per board side
	TickInterval = 300 * time.Millisecond // Time between two advances
)

// Direction is one of the four cardinal directions the snake can travel in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in the order keys are probed.
var Directions = [...]Direction{Right, Left, Up, Down}

// Delta converts a Direction into a one-cell displacement
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
