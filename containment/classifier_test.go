package containment_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pipeloop/circuit"
	"github.com/katalvlaran/pipeloop/containment"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Reference fields with known enclosure counts.
var (
	flatRing = []string{
		"S--7",
		"L--J",
	}
	singlePocket = []string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	}
	junkPocket = []string{
		"7-.....",
		".S--7.L",
		".|..|.-",
		".|..|F.",
		".L--J|.",
		"J..-...",
	}
	junkIntoStart = []string{
		".|...",
		"-S-7.",
		".|.|.",
		".L-J.",
		".....",
	}
	squeezeWide = []string{
		"...........",
		".S-------7.",
		".|F-----7|.",
		".||.....||.",
		".||.....||.",
		".|L-7.F-J|.",
		".|..|.|..|.",
		".L--J.L--J.",
		"...........",
	}
	squeezeTight = []string{
		"..........",
		".S------7.",
		".|F----7|.",
		".||....||.",
		".||....||.",
		".|L-7F-J|.",
		".|..||..|.",
		".L--JL--J.",
		"..........",
	}
	tangled = []string{
		".F----7F7F7F7F-7....",
		".|F--7||||||||FJ....",
		".||.FJ||||||||L7....",
		"FJL7L7LJLJ||LJ.L-7..",
		"L--J.L7...LJS7F-7L7.",
		"....F-J..F7FJ|L7L7L7",
		"....L7.F7||L7|.L7L7|",
		".....|FJLJ|FJ|F7|.LJ",
		"....FJL-7.||.||||...",
		"....L---J.LJ.LJLJ...",
	}
	junkField = []string{
		"FF7FSF7F7F7F7F7F---7",
		"L|LJ||||||||||||F--J",
		"FL-7LJLJ||||||LJL-77",
		"F--JF--7||LJLJ7F7FJ-",
		"L---JF-JLJ.||-FJLJJ7",
		"|F|F-JF---7F7-L7L|7|",
		"|FFJF7L7F-JF7|JL---7",
		"7-L-JL7||F7|L7F-7F7|",
		"L.L7LFJ|||||FJL7||LJ",
		"L7JLJL-JLJLJL--JLJ.L",
	}
)

// ring returns an n×n loop with a one-cell ground border around it.
func ring(n int) []string {
	pad := strings.Repeat(".", n+2)
	lines := []string{pad, ".S" + strings.Repeat("-", n-2) + "7."}
	for i := 0; i < n-2; i++ {
		lines = append(lines, ".|"+strings.Repeat(".", n-2)+"|.")
	}
	return append(lines, ".L"+strings.Repeat("-", n-2)+"J.", pad)
}

// traced builds the grid and loop for lines.
func traced(t testing.TB, lines []string, opts ...circuit.Option) (*pipegrid.Grid, *circuit.Loop) {
	t.Helper()
	g, err := pipegrid.FromLines(lines)
	require.NoError(t, err)
	start, err := g.FindStart()
	require.NoError(t, err)
	loop, err := circuit.Trace(g, start, opts...)
	require.NoError(t, err)
	return g, loop
}

// ClassifierSuite exercises Classify on reference fields and its invariants.
type ClassifierSuite struct {
	suite.Suite
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierSuite))
}

// TestReferenceFields checks the enclosure counts of every reference field.
func (s *ClassifierSuite) TestReferenceFields() {
	cases := []struct {
		name    string
		lines   []string
		trapped int
		steps   int
	}{
		{"FlatRing", flatRing, 0, 4},
		{"SinglePocket", singlePocket, 1, 4},
		{"JunkPocket", junkPocket, 4, 6},
		{"JunkIntoStart", junkIntoStart, 1, 4},
		{"SqueezeWide", squeezeWide, 4, 23},
		{"SqueezeTight", squeezeTight, 4, 22},
		{"Tangled", tangled, 8, 70},
		{"JunkField", junkField, 10, 80},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			g, loop := traced(s.T(), tc.lines)
			res, err := containment.Classify(g, loop)
			s.Require().NoError(err)

			s.Equal(tc.trapped, res.Trapped)
			s.Equal(g.Area()-loop.Len()-tc.trapped, res.Escaped)
			s.Equal(tc.steps, loop.Steps())
		})
	}
}

// TestPartition verifies every off-loop cell gets exactly one verdict.
func (s *ClassifierSuite) TestPartition() {
	for _, lines := range [][]string{singlePocket, junkPocket, tangled, junkField} {
		g, loop := traced(s.T(), lines)
		c, err := containment.New(g, loop)
		s.Require().NoError(err)
		res, err := c.Run()
		s.Require().NoError(err)

		var in, out int
		for i := 0; i < g.Area(); i++ {
			p := g.Coordinate(i)
			t, e := c.IsTrapped(p), c.IsEscaped(p)
			if loop.Contains(p) {
				s.False(t || e, "loop cell %s classified", p)
				continue
			}
			s.True(t != e, "cell %s trapped=%v escaped=%v", p, t, e)
			if t {
				in++
			} else {
				out++
			}
		}
		s.Equal(res, containment.Result{Trapped: in, Escaped: out})
		s.Len(c.Trapped(), in)
	}
}

// TestIdempotent runs the classifier twice, and a fresh one, with equal results.
func (s *ClassifierSuite) TestIdempotent() {
	g, loop := traced(s.T(), tangled)
	c, err := containment.New(g, loop)
	s.Require().NoError(err)

	first, err := c.Run()
	s.Require().NoError(err)
	attempts := c.Attempts()
	second, err := c.Run()
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Equal(attempts, c.Attempts(), "second Run must not walk again")

	fresh, err := containment.Classify(g, loop)
	s.Require().NoError(err)
	s.Equal(first, fresh)
}

// TestDirectionSymmetry classifies with both loop senses.
func (s *ClassifierSuite) TestDirectionSymmetry() {
	for _, lines := range [][]string{junkPocket, junkIntoStart, squeezeTight, junkField} {
		g, fwd := traced(s.T(), lines)
		rev, err := circuit.Trace(g, fwd.Start(), circuit.WithReversed())
		s.Require().NoError(err)
		s.Require().Equal(fwd.Positions()[1], rev.Positions()[rev.Len()-1])

		a, err := containment.New(g, fwd)
		s.Require().NoError(err)
		b, err := containment.New(g, rev)
		s.Require().NoError(err)
		ra, err := a.Run()
		s.Require().NoError(err)
		rb, err := b.Run()
		s.Require().NoError(err)

		s.Equal(ra, rb)
		if diff := cmp.Diff(a.Trapped(), b.Trapped()); diff != "" {
			s.Failf("trapped cells differ", "(-fwd +rev):\n%s", diff)
		}
	}
}

// TestLargeRing checks a big enclosed area is flooded in one walk.
func (s *ClassifierSuite) TestLargeRing() {
	const n = 40
	g, loop := traced(s.T(), ring(n))
	c, err := containment.New(g, loop)
	s.Require().NoError(err)
	res, err := c.Run()
	s.Require().NoError(err)

	s.Equal((n-2)*(n-2), res.Trapped)
	s.Equal(4*n+4, res.Escaped)
	s.Less(c.Attempts(), res.Trapped+res.Escaped)
}

// TestOverlay renders verdicts over the field.
func (s *ClassifierSuite) TestOverlay() {
	g, loop := traced(s.T(), junkPocket)
	c, err := containment.New(g, loop)
	s.Require().NoError(err)
	_, err = c.Run()
	s.Require().NoError(err)

	want := []string{
		"OOOOOOO",
		"OS--7OO",
		"O|II|OO",
		"O|II|OO",
		"OL--JOO",
		"OOOOOOO",
	}
	if diff := cmp.Diff(want, c.Overlay()); diff != "" {
		s.Failf("overlay mismatch", "(-want +got):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Options and errors
//----------------------------------------------------------------------------//

// TestNew_Errors covers nil and mismatched inputs.
func TestNew_Errors(t *testing.T) {
	g, loop := traced(t, singlePocket)
	other, _ := traced(t, singlePocket)

	_, err := containment.New(nil, loop)
	require.ErrorIs(t, err, containment.ErrGridNil)
	_, err = containment.New(g, nil)
	require.ErrorIs(t, err, containment.ErrNilLoop)
	_, err = containment.Classify(other, loop)
	require.ErrorIs(t, err, containment.ErrGridMismatch)
}

// TestRun_Cancelled stops before the first walk and resumes afterwards.
func TestRun_Cancelled(t *testing.T) {
	g, loop := traced(t, junkField)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := containment.New(g, loop, containment.WithContext(ctx))
	require.NoError(t, err)
	_, err = c.Run()
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, c.Attempts())
}

// TestRun_Hooks checks the attempt hook and the per-walk debug log agree.
func TestRun_Hooks(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g, loop := traced(t, tangled)

	var calls, escapedCalls int
	hook := func(_ pipegrid.Position, escaped bool, visited int) {
		calls++
		if escaped {
			escapedCalls++
		}
		require.Positive(t, visited)
	}
	c, err := containment.New(g, loop,
		containment.WithLogger(zap.New(core)),
		containment.WithOnAttempt(hook))
	require.NoError(t, err)
	_, err = c.Run()
	require.NoError(t, err)

	require.Equal(t, c.Attempts(), calls)
	require.Equal(t, calls, logs.FilterMessage("escape attempt").Len())
	require.Positive(t, escapedCalls)
	require.Less(t, escapedCalls, calls)
	require.Zero(t, logs.FilterMessage("dead-end crossing").Len())
}
