// Package containment decides, for every cell off a traced loop, whether
// the loop encloses it.
//
// What:
//
//   - Classifier scans the grid row-major. For each cell not on the loop
//     and not yet classified it runs one escape walk: a flood fill over
//     open cells that may also slide through loop cells alongside their
//     pipes. Everything the walk touched is recorded under its verdict, so
//     a whole region is classified in one pass and later walks stop as
//     soon as they touch a known cell or crossing.
//   - A loop cell is split into four quadrants; its pipe arms are walls
//     between them. Approach names where a walker enters: a whole edge
//     (N, E, S, W) when it comes from open ground, or a single quadrant
//     (NE, NW, SE, SW) when it slides in beside another pipe. The crossing
//     table maps (pipe, approach) to the exits reachable from there.
//   - A walk escapes when it steps off the grid (from an open cell or out
//     of a loop cell's reachable quadrant) or onto something already known
//     to escape. It is trapped when it runs out of frontier or touches
//     something already known to be trapped.
//
// Why:
//
//   - Pipes are thin lines through cell centres, so two parallel pipes
//     leave a gap a walker can squeeze through. A plain cell flood would
//     count such squeezed-out ground as enclosed.
//
// Complexity:
//
//   - Run: Time O(R×C) amortised, since every (cell, approach) pair is
//     expanded at most once across all walks; Memory O(R×C).
//   - Crossings: O(1) lookup into a table built once at package init.
//
// Errors:
//
//   - ErrGridNil, ErrNilLoop, ErrGridMismatch: invalid inputs to New.
//   - ErrAmbiguousApproach: a crossing lookup with no exits. Walks log it
//     and treat the cell as a dead end.
//   - context errors from WithContext, checked between walks.
package containment
