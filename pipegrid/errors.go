package pipegrid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrUnknownSymbol indicates a cell outside the pipe alphabet.
	ErrUnknownSymbol = errors.New("pipegrid: unknown symbol")
	// ErrStartNotFound indicates the grid has no start marker.
	ErrStartNotFound = errors.New("pipegrid: start marker not found")
	// ErrMultipleStarts indicates the grid has more than one start marker.
	ErrMultipleStarts = errors.New("pipegrid: multiple start markers")
)
