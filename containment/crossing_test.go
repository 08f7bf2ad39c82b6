package containment_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/containment"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// exitDirs collects the directions of a list of exits.
func exitDirs(exits []containment.Exit) []pipegrid.Direction {
	dirs := make([]pipegrid.Direction, len(exits))
	for i, e := range exits {
		dirs[i] = e.Dir
	}
	return dirs
}

// TestCrossings_Exhaustive requires at least one exit for every pipe and
// approach, and never more than one exit per direction.
func TestCrossings_Exhaustive(t *testing.T) {
	for _, shape := range pipegrid.Pipes {
		for _, a := range containment.Approaches {
			exits, err := containment.Crossings(shape, a)
			require.NoError(t, err, "%s from %s", shape, a)
			require.NotEmpty(t, exits, "%s from %s", shape, a)

			seen := map[pipegrid.Direction]bool{}
			for _, e := range exits {
				assert.False(t, seen[e.Dir], "%s from %s: duplicate %s", shape, a, e.Dir)
				seen[e.Dir] = true
				assert.True(t, e.Land.Valid())
			}
		}
	}
}

// TestCrossings_Table pins representative entries of the table.
func TestCrossings_Table(t *testing.T) {
	cases := []struct {
		shape pipegrid.Symbol
		from  containment.Approach
		want  string
	}{
		// Walking down onto '-' stays above it.
		{pipegrid.Horizontal, containment.ApproachN, "[N/S E/NW W/NE]"},
		{pipegrid.Horizontal, containment.ApproachSE, "[E/SW S/N W/SE]"},
		// Approaching '|' from its west keeps to the west half.
		{pipegrid.Vertical, containment.ApproachW, "[N/SW S/NW W/E]"},
		{pipegrid.Vertical, containment.ApproachNE, "[N/SE E/W S/NE]"},
		// Outside of '7' wraps round three quadrants.
		{pipegrid.BendSW, containment.ApproachN, "[N/S E/W S/NE W/NE]"},
		{pipegrid.BendSW, containment.ApproachSE, "[N/S E/W S/NE W/NE]"},
		// Inside of '7' only leaves along its arms.
		{pipegrid.BendSW, containment.ApproachSW, "[S/NW W/SE]"},
		{pipegrid.BendNW, containment.ApproachNW, "[N/SW W/NE]"},
		{pipegrid.BendNE, containment.ApproachNE, "[N/SE E/NW]"},
		{pipegrid.BendSE, containment.ApproachSE, "[E/SW S/NE]"},
		{pipegrid.BendSE, containment.ApproachW, "[N/S E/NW S/NW W/E]"},
	}
	for _, tc := range cases {
		exits, err := containment.Crossings(tc.shape, tc.from)
		require.NoError(t, err)
		assert.Equal(t, tc.want, fmt.Sprint(exits), "%s from %s", tc.shape, tc.from)
	}
}

// TestCrossings_StraightsBlock: a straight pipe never lets a walker through
// to the far side.
func TestCrossings_StraightsBlock(t *testing.T) {
	blocked := map[pipegrid.Symbol]map[containment.Approach]pipegrid.Direction{
		pipegrid.Horizontal: {
			containment.ApproachN: pipegrid.South, containment.ApproachNE: pipegrid.South, containment.ApproachNW: pipegrid.South,
			containment.ApproachS: pipegrid.North, containment.ApproachSE: pipegrid.North, containment.ApproachSW: pipegrid.North,
		},
		pipegrid.Vertical: {
			containment.ApproachW: pipegrid.East, containment.ApproachNW: pipegrid.East, containment.ApproachSW: pipegrid.East,
			containment.ApproachE: pipegrid.West, containment.ApproachNE: pipegrid.West, containment.ApproachSE: pipegrid.West,
		},
	}
	for shape, byApproach := range blocked {
		for a, far := range byApproach {
			exits, err := containment.Crossings(shape, a)
			require.NoError(t, err)
			assert.NotContains(t, exitDirs(exits), far, "%s from %s", shape, a)
		}
	}
}

// TestCrossings_BendsPermeable: a bend's outside reaches all four edges;
// its inside quadrant only reaches the two edges its arms point to.
func TestCrossings_BendsPermeable(t *testing.T) {
	inner := map[pipegrid.Symbol]containment.Approach{
		pipegrid.BendSW: containment.ApproachSW,
		pipegrid.BendNW: containment.ApproachNW,
		pipegrid.BendNE: containment.ApproachNE,
		pipegrid.BendSE: containment.ApproachSE,
	}
	for shape, in := range inner {
		for _, a := range containment.Approaches {
			exits, err := containment.Crossings(shape, a)
			require.NoError(t, err)
			if a == in {
				assert.ElementsMatch(t, shape.Connections(), exitDirs(exits), "%s inside", shape)
				continue
			}
			assert.Len(t, exits, 4, "%s from %s", shape, a)
		}
	}
}

// TestCrossings_Errors rejects cells without a resolved pipe and bad approaches.
func TestCrossings_Errors(t *testing.T) {
	_, err := containment.Crossings(pipegrid.Ground, containment.ApproachN)
	assert.ErrorIs(t, err, containment.ErrAmbiguousApproach)
	_, err = containment.Crossings(pipegrid.Start, containment.ApproachN)
	assert.ErrorIs(t, err, containment.ErrAmbiguousApproach)
	_, err = containment.Crossings(pipegrid.Vertical, containment.Approach(42))
	assert.ErrorIs(t, err, containment.ErrAmbiguousApproach)
}

// TestCrossings_ReturnsCopy protects the shared table from callers.
func TestCrossings_ReturnsCopy(t *testing.T) {
	exits, err := containment.Crossings(pipegrid.BendSW, containment.ApproachSW)
	require.NoError(t, err)
	exits[0].Dir = pipegrid.North

	again, err := containment.Crossings(pipegrid.BendSW, containment.ApproachSW)
	require.NoError(t, err)
	assert.Equal(t, pipegrid.South, again[0].Dir)
}

// TestApproach_String names every approach and flags unknown ones.
func TestApproach_String(t *testing.T) {
	var names []string
	for _, a := range containment.Approaches {
		assert.True(t, a.Valid())
		names = append(names, a.String())
	}
	assert.Equal(t, []string{"N", "E", "S", "W", "NE", "NW", "SE", "SW"}, names)
	assert.False(t, containment.Approach(8).Valid())
	assert.Equal(t, "?", containment.Approach(8).String())
}
