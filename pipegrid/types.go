package pipegrid

import "fmt"

// Symbol is a single grid character.
type Symbol byte

// The pipe alphabet.
const (
	Ground     Symbol = '.'
	Horizontal Symbol = '-' // East + West
	Vertical   Symbol = '|' // North + South
	BendNE     Symbol = 'L' // North + East
	BendNW     Symbol = 'J' // North + West
	BendSW     Symbol = '7' // South + West
	BendSE     Symbol = 'F' // South + East
	Start      Symbol = 'S'
)

// Pipes lists every pipe shape, straights first.
var Pipes = [6]Symbol{Horizontal, Vertical, BendNE, BendNW, BendSW, BendSE}

// String returns the symbol as a one-character string.
func (s Symbol) String() string { return string(rune(s)) }

// Direction is a unit step on the grid.
type Direction struct {
	DRow, DCol int
}

// The four orthogonal directions.
var (
	North = Direction{-1, 0}
	South = Direction{1, 0}
	East  = Direction{0, 1}
	West  = Direction{0, -1}
)

// Directions lists the four directions in clockwise order from North.
// Start-marker derivation probes neighbours in this order.
var Directions = [4]Direction{North, East, South, West}

// Reverse negates both components.
func (d Direction) Reverse() Direction {
	return Direction{-d.DRow, -d.DCol}
}

// String names the direction; non-unit vectors print as (dr,dc).
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
}

// Position is a 0-indexed, row-major cell coordinate.
type Position struct {
	Row, Col int
}

// Add returns the position one step along d.
func (p Position) Add(d Direction) Position {
	return Position{p.Row + d.DRow, p.Col + d.DCol}
}

// String formats the position as (row,col).
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rectangular field of symbols.
// Rows and Cols define its dimensions; cells[r][c] holds the symbol.
type Grid struct {
	Rows, Cols int
	cells      [][]Symbol
}
