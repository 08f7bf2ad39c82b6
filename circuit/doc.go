// Package circuit traces the single closed pipe loop that threads through a
// start cell of a pipegrid.Grid.
//
// What:
//
//   - Trace walks from the start along one of its arms, always leaving
//     each pipe by the arm it did not enter through, until it steps back
//     onto the start. The visited cells, in order, form the Loop. Junk
//     pipes pointing into the 'S' marker are tried and dropped.
//   - Loop answers membership, real pipe shape (the start marker resolved),
//     per-cell distance along the loop and the anti-point: the cell
//     farthest from the start, len/2 steps away in either direction.
//
// Why:
//
//   - Enclosure classification needs the loop both as an ordered circuit
//     and as an O(1) membership set.
//
// Complexity:
//
//   - Trace: Time O(L), Memory O(L) where L is the loop length (≤ R×C),
//     plus the length of any junk arm tried first.
//   - Contains, IndexOf, Distance, Shape: O(1).
//
// Errors:
//
//   - ErrGridNil        grid pointer is nil
//   - ErrNoCycleFound   the walk cannot return to the start
//   - ErrMalformedLoop  odd loop length; AntiPoint still returns len/2
package circuit
