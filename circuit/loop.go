package circuit

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Grid returns the grid the loop was traced on.
func (l *Loop) Grid() *pipegrid.Grid { return l.grid }

// Len is the number of cells on the loop.
func (l *Loop) Len() int { return len(l.positions) }

// Start returns the first cell of the loop.
func (l *Loop) Start() pipegrid.Position { return l.positions[0] }

// Positions returns a copy of the loop in traversal order.
func (l *Loop) Positions() []pipegrid.Position {
	out := make([]pipegrid.Position, len(l.positions))
	copy(out, l.positions)
	return out
}

// Contains reports whether p is on the loop.
func (l *Loop) Contains(p pipegrid.Position) bool {
	_, ok := l.index[p]
	return ok
}

// IndexOf returns the traversal offset of p.
func (l *Loop) IndexOf(p pipegrid.Position) (int, bool) {
	i, ok := l.index[p]
	return i, ok
}

// Shape returns the real pipe at p for loop cells and Ground for everything
// else. It is read off the two loop neighbours of p, so a start marker
// resolves to the arms the loop actually uses even when junk pipes point
// into it.
func (l *Loop) Shape(p pipegrid.Position) pipegrid.Symbol {
	i, ok := l.index[p]
	if !ok {
		return pipegrid.Ground
	}
	n := len(l.positions)
	prev, next := l.positions[(i+n-1)%n], l.positions[(i+1)%n]
	return pipegrid.ShapeOf(towards(p, prev), towards(p, next))
}

// towards is the unit step from p to the adjacent cell q.
func towards(p, q pipegrid.Position) pipegrid.Direction {
	return pipegrid.Direction{DRow: q.Row - p.Row, DCol: q.Col - p.Col}
}

// reverse flips the traversal sense, keeping the start first.
func (l *Loop) reverse() {
	slices.Reverse(l.positions[1:])
	for i, p := range l.positions {
		l.index[p] = i
	}
}

// Distance is the fewest steps along the loop from the start to p,
// going whichever way round is shorter.
func (l *Loop) Distance(p pipegrid.Position) (int, bool) {
	i, ok := l.index[p]
	if !ok {
		return 0, false
	}
	return min(i, len(l.positions)-i), true
}

// Steps is the anti-point distance with integer division.
func (l *Loop) Steps() int { return len(l.positions) / 2 }

// AntiPointPosition returns the cell halfway round the loop.
func (l *Loop) AntiPointPosition() pipegrid.Position {
	return l.positions[len(l.positions)/2]
}

// AntiPoint returns the distance from the start to the farthest loop cell.
// See AntiPoint (package function) for the odd-length behaviour.
func (l *Loop) AntiPoint() (float64, error) {
	return AntiPoint(len(l.positions))
}

// AntiPoint converts a loop length to the anti-point distance, length/2.
// For an odd length the fractional value is returned together with
// ErrMalformedLoop, so callers can warn and carry on.
func AntiPoint(length int) (float64, error) {
	d := float64(length) / 2
	if length%2 != 0 {
		return d, fmt.Errorf("%w: %d cells", ErrMalformedLoop, length)
	}
	return d, nil
}
