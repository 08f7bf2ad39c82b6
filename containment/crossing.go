package containment

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Exit is one way out of a loop cell: the step to take and the approach it
// makes into the neighbour.
type Exit struct {
	Dir  pipegrid.Direction
	Land Approach
}

// String formats the exit as dir/approach, e.g. "S/NE".
func (e Exit) String() string {
	return fmt.Sprintf("%s/%s", e.Dir, e.Land)
}

// regions lists, per pipe, the two quadrant groups its arms keep apart.
// A bend walls off the single quadrant between its arms; a straight splits
// the cell in halves.
var regions = map[pipegrid.Symbol][2]quadrants{
	pipegrid.Horizontal: {quadNW | quadNE, quadSW | quadSE},
	pipegrid.Vertical:   {quadNW | quadSW, quadNE | quadSE},
	pipegrid.BendSW:     {quadSW, quadNW | quadNE | quadSE},
	pipegrid.BendNW:     {quadNW, quadNE | quadSW | quadSE},
	pipegrid.BendNE:     {quadNE, quadNW | quadSW | quadSE},
	pipegrid.BendSE:     {quadSE, quadNW | quadNE | quadSW},
}

// crossings is the exhaustive (pipe, approach) → exits lookup.
var crossings = buildCrossings()

func buildCrossings() map[pipegrid.Symbol][approachCount][]Exit {
	table := make(map[pipegrid.Symbol][approachCount][]Exit, len(regions))
	for shape, parts := range regions {
		var row [approachCount][]Exit
		for _, a := range Approaches {
			row[a] = exitsFrom(occupied(parts, a.quadrants()))
		}
		table[shape] = row
	}
	return table
}

// occupied returns every quadrant reachable from entry without crossing an
// arm: the union of the regions entry touches.
func occupied(parts [2]quadrants, entry quadrants) quadrants {
	var occ quadrants
	for _, r := range parts {
		if r&entry != 0 {
			occ |= r
		}
	}
	return occ
}

// exitsFrom lists the steps out of a set of occupied quadrants, one per edge
// they touch, in pipegrid.Directions order. A fully occupied edge lands on
// the neighbour's whole facing edge; a half-occupied one lands in the
// mirrored quadrant only.
func exitsFrom(occ quadrants) []Exit {
	var exits []Exit
	for _, d := range pipegrid.Directions {
		side := occ & edgeQuadrants[d]
		if side == 0 {
			continue
		}
		if land, ok := approachOf(mirror(side, d)); ok {
			exits = append(exits, Exit{Dir: d, Land: land})
		}
	}
	return exits
}

// Crossings returns the exits available after entering a loop cell shaped
// shape through approach a. Ground, the unresolved start marker and
// invalid approaches yield ErrAmbiguousApproach.
func Crossings(shape pipegrid.Symbol, a Approach) ([]Exit, error) {
	exits, err := crossingsFor(shape, a)
	return slices.Clone(exits), err
}

func crossingsFor(shape pipegrid.Symbol, a Approach) ([]Exit, error) {
	row, ok := crossings[shape]
	if !ok || !a.Valid() || len(row[a]) == 0 {
		return nil, fmt.Errorf("%w: %s from %s", ErrAmbiguousApproach, shape, a)
	}
	return row[a], nil
}
