package containment

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// frontier is one pending step of an escape walk. Open cells are expanded
// in all four directions; loop cells through the crossing table.
type frontier struct {
	pos      pipegrid.Position
	approach Approach
	open     bool
}

// walk is the outcome of one escape attempt: the verdict plus every cell
// index and crossing key it recorded.
type walk struct {
	escaped   bool
	cells     []int
	crossings []int
}

// openExits are the moves out of an open cell: every direction, entering
// the neighbour along its facing edge.
var openExits = func() []Exit {
	exits := make([]Exit, 0, len(pipegrid.Directions))
	for _, d := range pipegrid.Directions {
		exits = append(exits, Exit{Dir: d, Land: entering(d)})
	}
	return exits
}()

// attemptEscape floods outward from the open cell start until it leaves
// the grid, touches a recorded verdict or runs out of frontier.
//
// Behavior:
//  1. Pop the newest frontier entry (LIFO; the order only changes the
//     memory shape, never the verdict).
//  2. For each exit: leaving the grid escapes; a recorded cell or crossing
//     ends the walk with that verdict; an unseen one is marked and pushed.
//  3. An exhausted frontier is trapped.
//
// Every entry is marked seen before it is pushed, so each (cell, approach)
// is expanded at most once and the walk terminates.
func (c *Classifier) attemptEscape(start pipegrid.Position) walk {
	w := walk{cells: []int{c.grid.Index(start)}}
	seenCells := map[int]struct{}{c.grid.Index(start): {}}
	seenCrossings := make(map[int]struct{})
	stack := []frontier{{pos: start, open: true}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, ex := range c.exits(f) {
			next := f.pos.Add(ex.Dir)
			if !c.grid.InBounds(next) {
				w.escaped = true
				return w
			}

			if c.loop.Contains(next) {
				key := c.crossingKey(next, ex.Land)
				switch c.approaches[key] {
				case escaped:
					w.escaped = true
					return w
				case trapped:
					return w
				}
				if _, ok := seenCrossings[key]; ok {
					continue
				}
				seenCrossings[key] = struct{}{}
				w.crossings = append(w.crossings, key)
				stack = append(stack, frontier{pos: next, approach: ex.Land})
				continue
			}

			idx := c.grid.Index(next)
			switch c.cells[idx] {
			case escaped:
				w.escaped = true
				return w
			case trapped:
				return w
			}
			if _, ok := seenCells[idx]; ok {
				continue
			}
			seenCells[idx] = struct{}{}
			w.cells = append(w.cells, idx)
			stack = append(stack, frontier{pos: next, open: true})
		}
	}
	return w
}

// exits lists the moves out of a frontier entry. A loop cell with no
// usable crossing is logged and treated as a dead end.
func (c *Classifier) exits(f frontier) []Exit {
	if f.open {
		return openExits
	}
	shape := c.loop.Shape(f.pos)
	exits, err := crossingsFor(shape, f.approach)
	if err != nil {
		c.opts.Logger.Warn("dead-end crossing",
			zap.Stringer("pos", f.pos),
			zap.Stringer("approach", f.approach),
			zap.Error(err))
		return nil
	}
	return exits
}

// crossingKey indexes the approaches memo.
func (c *Classifier) crossingKey(p pipegrid.Position, a Approach) int {
	return c.grid.Index(p)*int(approachCount) + int(a)
}
