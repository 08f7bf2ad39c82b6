package containment

import (
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/circuit"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Classifier owns the memo of every verdict reached so far.
// cells holds one verdict per grid cell (row-major); approaches holds one
// per (loop cell, approach) pair at index cell*approachCount+approach.
// Both only ever move from unknown to trapped or escaped.
// A Classifier is not safe for concurrent use.
type Classifier struct {
	grid       *pipegrid.Grid
	loop       loopCells
	opts       Options
	cells      []verdict
	approaches []verdict
	attempts   int
	result     Result
	done       bool
}

// New prepares a Classifier for loop on g.
// Returns ErrGridNil, ErrNilLoop or ErrGridMismatch for invalid inputs.
// Complexity: O(R×C) memory.
func New(g *pipegrid.Grid, loop *circuit.Loop, opts ...Option) (*Classifier, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if loop == nil {
		return nil, ErrNilLoop
	}
	if loop.Grid() != g {
		return nil, ErrGridMismatch
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newClassifier(g, loop, o), nil
}

// loopCells is the part of a traced loop classification reads.
type loopCells interface {
	Contains(p pipegrid.Position) bool
	Shape(p pipegrid.Position) pipegrid.Symbol
}

func newClassifier(g *pipegrid.Grid, loop loopCells, o Options) *Classifier {
	return &Classifier{
		grid:       g,
		loop:       loop,
		opts:       o,
		cells:      make([]verdict, g.Area()),
		approaches: make([]verdict, g.Area()*int(approachCount)),
	}
}

// Classify is shorthand for New followed by Run.
func Classify(g *pipegrid.Grid, loop *circuit.Loop, opts ...Option) (Result, error) {
	c, err := New(g, loop, opts...)
	if err != nil {
		return Result{}, err
	}
	return c.Run()
}

// Run classifies every cell off the loop and returns the counts.
// Cells already recorded by an earlier walk are skipped, so most cells
// next to a classified region cost nothing. A second Run returns the same
// Result without walking again.
// If the context is cancelled between walks, Run returns its error and no
// counts; a later Run resumes from the memo.
func (c *Classifier) Run() (Result, error) {
	if c.done {
		return c.result, nil
	}
	for idx := range c.cells {
		if err := c.opts.Ctx.Err(); err != nil {
			return Result{}, err
		}
		p := c.grid.Coordinate(idx)
		if c.loop.Contains(p) || c.cells[idx] != unknown {
			continue
		}
		w := c.attemptEscape(p)
		c.merge(w)
		c.attempts++

		c.opts.Logger.Debug("escape attempt",
			zap.Stringer("start", p),
			zap.Bool("escaped", w.escaped),
			zap.Int("cells", len(w.cells)),
			zap.Int("crossings", len(w.crossings)))
		if c.opts.OnAttempt != nil {
			c.opts.OnAttempt(p, w.escaped, len(w.cells)+len(w.crossings))
		}
	}

	var res Result
	for _, v := range c.cells {
		switch v {
		case trapped:
			res.Trapped++
		case escaped:
			res.Escaped++
		}
	}
	c.result, c.done = res, true
	return res, nil
}

// merge records every cell and crossing of w under its verdict.
func (c *Classifier) merge(w walk) {
	v := trapped
	if w.escaped {
		v = escaped
	}
	for _, i := range w.cells {
		c.cells[i] = v
	}
	for _, k := range w.crossings {
		c.approaches[k] = v
	}
}

// Attempts reports how many escape walks Run has performed.
func (c *Classifier) Attempts() int { return c.attempts }

// IsTrapped reports whether p was found enclosed by the loop.
func (c *Classifier) IsTrapped(p pipegrid.Position) bool {
	return c.grid.InBounds(p) && c.cells[c.grid.Index(p)] == trapped
}

// IsEscaped reports whether p was found to reach the grid boundary.
func (c *Classifier) IsEscaped(p pipegrid.Position) bool {
	return c.grid.InBounds(p) && c.cells[c.grid.Index(p)] == escaped
}

// Trapped returns the enclosed cells in row-major order.
func (c *Classifier) Trapped() []pipegrid.Position {
	var out []pipegrid.Position
	for idx, v := range c.cells {
		if v == trapped {
			out = append(out, c.grid.Coordinate(idx))
		}
	}
	return out
}

// Overlay renders the grid with loop cells kept, enclosed cells as 'I',
// escaped cells as 'O' and unclassified cells as '?'.
func (c *Classifier) Overlay() []string {
	lines := make([]string, c.grid.Rows)
	var sb strings.Builder
	for r := 0; r < c.grid.Rows; r++ {
		sb.Reset()
		for col := 0; col < c.grid.Cols; col++ {
			p := pipegrid.Position{Row: r, Col: col}
			switch {
			case c.loop.Contains(p):
				sb.WriteByte(byte(c.grid.At(p)))
			case c.cells[c.grid.Index(p)] == trapped:
				sb.WriteByte('I')
			case c.cells[c.grid.Index(p)] == escaped:
				sb.WriteByte('O')
			default:
				sb.WriteByte('?')
			}
		}
		lines[r] = sb.String()
	}
	return lines
}
