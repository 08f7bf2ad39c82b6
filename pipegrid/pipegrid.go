package pipegrid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of symbols.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs and ErrUnknownSymbol
// (wrapped with the offending position) for characters outside the alphabet.
// Complexity: O(R×C) time and memory.
func New(rows [][]Symbol) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]Symbol, h)
	for r := 0; r < h; r++ {
		for c, s := range rows[r] {
			if !s.Valid() {
				return nil, fmt.Errorf("%w %q at %s", ErrUnknownSymbol, rune(s), Position{r, c})
			}
		}
		cells[r] = make([]Symbol, w)
		copy(cells[r], rows[r])
	}

	return &Grid{Rows: h, Cols: w, cells: cells}, nil
}

// FromLines builds a Grid from text rows, one byte per cell.
func FromLines(lines []string) (*Grid, error) {
	rows := make([][]Symbol, len(lines))
	for i, line := range lines {
		rows[i] = []Symbol(line)
	}
	return New(rows)
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At returns the symbol at p. Positions outside the grid read as Ground.
// Complexity: O(1).
func (g *Grid) At(p Position) Symbol {
	if !g.InBounds(p) {
		return Ground
	}
	return g.cells[p.Row][p.Col]
}

// Area is the number of cells, Rows×Cols.
func (g *Grid) Area() int {
	return g.Rows * g.Cols
}

// Index maps p to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.Cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.Cols, Col: idx % g.Cols}
}

// FindStart scans row-major for the start marker.
// Returns ErrStartNotFound when there is none and ErrMultipleStarts when the
// marker is not unique.
// Complexity: O(R×C).
func (g *Grid) FindStart() (Position, error) {
	found := Position{-1, -1}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[r][c] != Start {
				continue
			}
			if found.Row >= 0 {
				return found, fmt.Errorf("%w: %s and %s", ErrMultipleStarts, found, Position{r, c})
			}
			found = Position{r, c}
		}
	}
	if found.Row < 0 {
		return found, ErrStartNotFound
	}
	return found, nil
}

// Connections returns the directions the cell at p joins.
// Pipes report their fixed pair; the start marker reports every direction d
// whose neighbour at p+d connects back along d.Reverse(), probed in
// Directions order; ground and out-of-bounds cells report nil.
// Complexity: O(1).
func (g *Grid) Connections(p Position) []Direction {
	s := g.At(p)
	if s != Start {
		return s.Connections()
	}
	var dirs []Direction
	for _, d := range Directions {
		if g.At(p.Add(d)).Connects(d.Reverse()) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Shape returns the real pipe at p: the start marker is resolved through
// ShapeOf(Connections(p)). A start with other than two valid neighbours
// resolves to Ground: only the traced loop knows which two it uses (see
// circuit.Loop.Shape).
func (g *Grid) Shape(p Position) Symbol {
	s := g.At(p)
	if s == Start {
		return ShapeOf(g.Connections(p)...)
	}
	return s
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, s := range row {
			sb.WriteByte(byte(s))
		}
	}
	return sb.String()
}
