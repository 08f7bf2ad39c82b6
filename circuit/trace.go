package circuit

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Trace reconstructs the loop through start.
//
// Steps:
//  1. Read the start's arms (derived from its neighbours when it is the
//     'S' marker). Fewer than two arms is ErrNoCycleFound.
//  2. Leave by each arm in turn, in pipegrid.Directions order, until one
//     walk steps back onto the start through another of its arms. Junk
//     pipes pointing into an 'S' marker give it extra arms; their walks
//     break off and are discarded.
//  3. On each cell, check it connects back the way we came, record it, and
//     leave by its other arm. An 'S' met on the way branches the same way.
//  4. WithReversed returns the same cycle walked the other way round.
//
// Any cell may serve as start as long as it lies on the loop, so rotating
// the start yields the same set of positions.
// Complexity: O(L) time and memory for a start with two arms; every extra
// arm adds at most one broken walk.
func Trace(g *pipegrid.Grid, start pipegrid.Position, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	arms := g.Connections(start)
	if len(arms) < 2 {
		return nil, fmt.Errorf("%w: start %s has %d arms", ErrNoCycleFound, start, len(arms))
	}

	t := &tracer{
		grid:      g,
		start:     start,
		limit:     g.Area(),
		logger:    o.Logger,
		positions: []pipegrid.Position{start},
		index:     map[pipegrid.Position]int{start: 0},
	}
	if _, err := t.branch(start, arms); err != nil {
		return nil, err
	}

	loop := &Loop{grid: g, positions: t.positions, index: t.index}
	if o.Reversed {
		loop.reverse()
	}
	o.Logger.Debug("loop closed", zap.Int("length", loop.Len()))
	return loop, nil
}

// tracer holds the walk in progress. positions and index always describe
// the same path from start; a failed branch is cut back off both.
type tracer struct {
	grid      *pipegrid.Grid
	start     pipegrid.Position
	limit     int
	logger    *zap.Logger
	positions []pipegrid.Position
	index     map[pipegrid.Position]int
}

// branch tries each exit of from in order and keeps the first walk that
// closes on the start. It returns the direction of the closing step.
func (t *tracer) branch(from pipegrid.Position, exits []pipegrid.Direction) (pipegrid.Direction, error) {
	mark := len(t.positions)
	var err error
	for _, d := range exits {
		if from == t.start {
			t.logger.Debug("leaving start", zap.Stringer("pos", from), zap.Stringer("dir", d))
		}
		var closing pipegrid.Direction
		if closing, err = t.walk(from.Add(d), d); err == nil {
			return closing, nil
		}
		t.logger.Debug("arm does not close", zap.Stringer("from", from), zap.Stringer("dir", d), zap.Error(err))
		t.truncate(mark)
	}
	return pipegrid.Direction{}, err
}

// walk follows the pipes from cur, entered by moving along heading, until
// it steps back onto the start.
func (t *tracer) walk(cur pipegrid.Position, heading pipegrid.Direction) (pipegrid.Direction, error) {
	for cur != t.start {
		if len(t.positions) >= t.limit {
			return heading, fmt.Errorf("%w: walk exceeded %d cells", ErrNoCycleFound, t.limit)
		}
		entry := heading.Reverse()
		if !t.accepts(cur, entry) {
			return heading, fmt.Errorf("%w: %s does not connect back %s", ErrNoCycleFound, cur, entry)
		}
		if _, seen := t.index[cur]; seen {
			return heading, fmt.Errorf("%w: revisited %s", ErrNoCycleFound, cur)
		}
		t.index[cur] = len(t.positions)
		t.positions = append(t.positions, cur)

		exits := slices.DeleteFunc(t.grid.Connections(cur), func(d pipegrid.Direction) bool {
			return d == entry
		})
		switch len(exits) {
		case 0:
			return heading, fmt.Errorf("%w: dead end at %s", ErrNoCycleFound, cur)
		case 1:
		default:
			return t.branch(cur, exits)
		}
		heading = exits[0]
		t.logger.Debug("step", zap.Stringer("pos", cur), zap.Stringer("dir", heading))
		cur = cur.Add(heading)
	}
	if !t.accepts(t.start, heading.Reverse()) {
		return heading, fmt.Errorf("%w: start %s does not accept %s", ErrNoCycleFound, t.start, heading.Reverse())
	}
	return heading, nil
}

// accepts reports whether the cell at p has an arm along d.
func (t *tracer) accepts(p pipegrid.Position, d pipegrid.Direction) bool {
	return slices.Contains(t.grid.Connections(p), d)
}

// truncate drops every recorded cell from offset n on.
func (t *tracer) truncate(n int) {
	for _, p := range t.positions[n:] {
		delete(t.index, p)
	}
	t.positions = t.positions[:n]
}
