package circuit

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

var (
	// ErrGridNil is returned when a nil grid is passed to Trace.
	ErrGridNil = errors.New("circuit: grid is nil")

	// ErrNoCycleFound indicates that walking the pipes from the start never
	// returns to it: an arm leads off the grid, into a cell that does not
	// connect back, or onto an already visited cell.
	ErrNoCycleFound = errors.New("circuit: no cycle through start")

	// ErrMalformedLoop indicates an odd loop length, which no closed walk on
	// a square grid can have. It is a warning: the fractional anti-point is
	// still reported.
	ErrMalformedLoop = errors.New("circuit: loop length is odd")
)

// Option configures optional behavior of Trace.
type Option func(*Options)

// Options holds configurable parameters for Trace.
type Options struct {
	// Reversed leaves the start by its second arm instead of its first,
	// walking the loop in the opposite sense. Length, membership and
	// enclosure results do not depend on it.
	Reversed bool

	// Logger receives one debug entry per step. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns Options with the forward direction and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Reversed: false,
		Logger:   zap.NewNop(),
	}
}

// WithReversed returns an Option that traces the loop in the other sense.
func WithReversed() Option {
	return func(o *Options) {
		o.Reversed = true
	}
}

// WithLogger returns an Option that sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Loop is the ordered cycle of cells through the start.
// positions[0] is the start; consecutive entries are adjacent and the last
// entry steps back onto the first. index maps every member to its offset.
type Loop struct {
	grid      *pipegrid.Grid
	positions []pipegrid.Position
	index     map[pipegrid.Position]int
}
