// Package pipegrid models a rectangular field of pipe symbols and the
// geometry needed to walk it.
//
// What:
//
//   - Grid wraps a rectangular [][]Symbol with bounds checks and row-major
//     indexing; it is immutable once built.
//   - Symbol is one of ground '.', straights '-' '|', bends 'L' 'J' '7' 'F'
//     and the start marker 'S'.
//   - Direction is a unit step North, East, South or West; Position is a
//     0-indexed (Row, Col) pair.
//   - Each pipe connects exactly two directions. The start marker's
//     connections are derived from its neighbours: a direction d is valid
//     iff the neighbour at Start+d connects back along d.Reverse().
//
// Why:
//
//   - Loop tracing and enclosure tests need one shared vocabulary for
//     cells, steps and pipe shapes.
//
// Complexity:
//
//   - New, FromLines: O(R×C) time and memory (deep copy + validation).
//   - At, InBounds, Connections, Shape: O(1).
//   - FindStart: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownSymbol: a cell holds a character outside the alphabet.
//   - ErrStartNotFound: no 'S' cell exists.
//   - ErrMultipleStarts: more than one 'S' cell exists.
package pipegrid
