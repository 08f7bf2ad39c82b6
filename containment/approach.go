package containment

import "github.com/katalvlaran/pipeloop/pipegrid"

// quadrants is a set of sub-cell quadrants.
type quadrants uint8

const (
	quadNW quadrants = 1 << iota
	quadNE
	quadSW
	quadSE
)

// edgeQuadrants lists the quadrants touching each edge of a cell.
var edgeQuadrants = map[pipegrid.Direction]quadrants{
	pipegrid.North: quadNW | quadNE,
	pipegrid.South: quadSW | quadSE,
	pipegrid.East:  quadNE | quadSE,
	pipegrid.West:  quadNW | quadSW,
}

// mirror reflects q across the edge facing d: the quadrants a walker lands
// in after stepping out of q along d.
func mirror(q quadrants, d pipegrid.Direction) quadrants {
	if d == pipegrid.North || d == pipegrid.South {
		return (q&(quadNW|quadNE))<<2 | (q&(quadSW|quadSE))>>2
	}
	return (q&(quadNW|quadSW))<<1 | (q&(quadNE|quadSE))>>1
}

// Approach is the part of a cell a walker enters through.
type Approach uint8

const (
	// ApproachN enters along the whole north edge.
	ApproachN Approach = iota
	// ApproachE enters along the whole east edge.
	ApproachE
	// ApproachS enters along the whole south edge.
	ApproachS
	// ApproachW enters along the whole west edge.
	ApproachW
	// ApproachNE enters the north-east quadrant only.
	ApproachNE
	// ApproachNW enters the north-west quadrant only.
	ApproachNW
	// ApproachSE enters the south-east quadrant only.
	ApproachSE
	// ApproachSW enters the south-west quadrant only.
	ApproachSW

	approachCount
)

// Approaches lists every approach, edges first.
var Approaches = [approachCount]Approach{
	ApproachN, ApproachE, ApproachS, ApproachW,
	ApproachNE, ApproachNW, ApproachSE, ApproachSW,
}

var approachQuadrants = [approachCount]quadrants{
	ApproachN:  quadNW | quadNE,
	ApproachE:  quadNE | quadSE,
	ApproachS:  quadSW | quadSE,
	ApproachW:  quadNW | quadSW,
	ApproachNE: quadNE,
	ApproachNW: quadNW,
	ApproachSE: quadSE,
	ApproachSW: quadSW,
}

var approachNames = [approachCount]string{"N", "E", "S", "W", "NE", "NW", "SE", "SW"}

// Valid reports whether a is one of the eight approaches.
func (a Approach) Valid() bool { return a < approachCount }

// String returns the compass label of the approach.
func (a Approach) String() string {
	if !a.Valid() {
		return "?"
	}
	return approachNames[a]
}

func (a Approach) quadrants() quadrants {
	if !a.Valid() {
		return 0
	}
	return approachQuadrants[a]
}

// entering returns the approach made by a walker stepping along d across a
// whole edge: moving East enters the neighbour along its west edge.
func entering(d pipegrid.Direction) Approach {
	switch d {
	case pipegrid.North:
		return ApproachS
	case pipegrid.South:
		return ApproachN
	case pipegrid.East:
		return ApproachW
	default:
		return ApproachE
	}
}

// approachOf maps a single quadrant or a full edge back to its label.
func approachOf(q quadrants) (Approach, bool) {
	for _, a := range Approaches {
		if approachQuadrants[a] == q {
			return a, true
		}
	}
	return 0, false
}
