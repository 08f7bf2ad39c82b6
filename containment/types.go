package containment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for containment analysis.
var (
	// ErrGridNil is returned when a nil grid is passed to New.
	ErrGridNil = errors.New("containment: grid is nil")

	// ErrNilLoop is returned when a nil loop is passed to New.
	ErrNilLoop = errors.New("containment: loop is nil")

	// ErrGridMismatch is returned when the loop was traced on another grid.
	ErrGridMismatch = errors.New("containment: loop does not belong to grid")

	// ErrAmbiguousApproach indicates a crossing lookup with no exits: the
	// cell has no resolvable pipe or the approach is unknown.
	ErrAmbiguousApproach = errors.New("containment: no exits for approach")
)

// Result counts the cells off the loop by verdict.
// Trapped + Escaped equals the grid area minus the loop length.
type Result struct {
	Trapped int `yaml:"trapped" json:"trapped"`
	Escaped int `yaml:"escaped" json:"escaped"`
}

// Option configures a Classifier.
type Option func(*Options)

// Options holds configurable parameters for classification.
type Options struct {
	// Ctx is checked between escape walks; cancelling it aborts Run.
	Ctx context.Context

	// Logger receives a debug entry per walk and warnings for dead-end
	// crossings. Defaults to a no-op logger.
	Logger *zap.Logger

	// OnAttempt, if non-nil, is called after each escape walk with the
	// cell it started from, its verdict, and how many cells and crossings
	// it recorded.
	OnAttempt func(start pipegrid.Position, escaped bool, visited int)
}

// DefaultOptions returns Options with a background context, a no-op logger
// and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    zap.NewNop(),
		OnAttempt: nil,
	}
}

// WithContext sets the context checked between walks. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAttempt installs a hook run after every escape walk.
func WithOnAttempt(fn func(start pipegrid.Position, escaped bool, visited int)) Option {
	return func(o *Options) {
		o.OnAttempt = fn
	}
}

// verdict is the recorded outcome for a cell or crossing.
type verdict uint8

const (
	unknown verdict = iota
	trapped
	escaped
)
