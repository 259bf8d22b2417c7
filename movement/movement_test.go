package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

func mustGrid(t testing.TB, text string) *gridgraph.CostGrid {
	t.Helper()
	g, err := gridgraph.Parse(text)
	require.NoError(t, err)

	return g
}

func TestHeading_Rotation(t *testing.T) {
	for _, h := range movement.Headings {
		assert.Equal(t, h, h.RotateLeft().RotateRight(), "left then right is identity for %v", h)
		assert.Equal(t, h, h.RotateRight().RotateRight().RotateRight().RotateRight())
		assert.NotEqual(t, h, h.RotateLeft())

		dr, dc := h.Delta()
		assert.Equal(t, 1, abs(dr)+abs(dc), "unit step for %v", h)
	}
	assert.Equal(t, movement.Left, movement.Up.RotateLeft())
	assert.Equal(t, movement.Right, movement.Up.RotateRight())
	assert.Equal(t, movement.Up, movement.Left.RotateRight())
	assert.Equal(t, movement.Down, movement.Left.RotateLeft())
}

func TestHeading_String(t *testing.T) {
	assert.Equal(t, "up", movement.Up.String())
	assert.Equal(t, "left", movement.Left.String())
	assert.Equal(t, ">", movement.Right.Arrow())
	assert.Equal(t, "invalid", movement.Heading(9).String())
	assert.False(t, movement.Heading(4).Valid())
}

func TestConstraints_Validate(t *testing.T) {
	cases := []struct {
		name string
		c    movement.Constraints
		err  error
	}{
		{"Loose", movement.Loose, nil},
		{"Strict", movement.Strict, nil},
		{"Equal", movement.Constraints{MinRun: 2, MaxRun: 2}, nil},
		{"ZeroMin", movement.Constraints{MinRun: 0, MaxRun: 3}, movement.ErrBadMinRun},
		{"ZeroMax", movement.Constraints{MinRun: 1, MaxRun: 0}, movement.ErrBadMaxRun},
		{"Inverted", movement.Constraints{MinRun: 5, MaxRun: 4}, movement.ErrRunRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewModel_Errors(t *testing.T) {
	_, err := movement.NewModel(nil, movement.Loose)
	assert.ErrorIs(t, err, movement.ErrNilGrid)

	_, err = movement.NewModel(mustGrid(t, "1\n"), movement.Constraints{MinRun: 3, MaxRun: 1})
	assert.ErrorIs(t, err, movement.ErrRunRange)
}

func TestSuccessors_Enumeration(t *testing.T) {
	g := mustGrid(t, "123\n456\n789\n")
	m, err := movement.NewModel(g, movement.Loose)
	require.NoError(t, err)

	center := gridgraph.Position{Row: 1, Col: 1}
	got := m.Successors(movement.State{Pos: center, Heading: movement.Right, Run: 1}, nil)
	want := []movement.Step{
		{State: movement.State{Pos: gridgraph.Position{Row: 1, Col: 2}, Heading: movement.Right, Run: 2}, Cost: 6},
		{State: movement.State{Pos: gridgraph.Position{Row: 0, Col: 1}, Heading: movement.Up, Run: 1}, Cost: 2},
		{State: movement.State{Pos: gridgraph.Position{Row: 2, Col: 1}, Heading: movement.Down, Run: 1}, Cost: 8},
	}
	assert.Equal(t, want, got)

	for _, s := range got {
		assert.NotEqual(t, movement.Left, s.State.Heading, "reversal must never be produced")
	}
}

func TestSuccessors_MaxRunForcesTurn(t *testing.T) {
	g := mustGrid(t, "11111\n11111\n11111\n")
	m, err := movement.NewModel(g, movement.Loose)
	require.NoError(t, err)

	s := movement.State{Pos: gridgraph.Position{Row: 1, Col: 1}, Heading: movement.Right, Run: 3}
	for _, st := range m.Successors(s, nil) {
		assert.NotEqual(t, s.Heading, st.State.Heading)
		assert.Equal(t, 1, st.State.Run)
	}
}

func TestSuccessors_MinRunForbidsTurn(t *testing.T) {
	g := mustGrid(t, "11111111111\n11111111111\n11111111111\n")
	m, err := movement.NewModel(g, movement.Strict)
	require.NoError(t, err)

	for run := 1; run < movement.Strict.MinRun; run++ {
		s := movement.State{Pos: gridgraph.Position{Row: 1, Col: 1}, Heading: movement.Right, Run: run}
		got := m.Successors(s, nil)
		require.Len(t, got, 1, "run %d", run)
		assert.Equal(t, movement.Right, got[0].State.Heading)
		assert.Equal(t, run+1, got[0].State.Run)
	}
}

func TestSuccessors_CornerPruning(t *testing.T) {
	g := mustGrid(t, "12\n34\n")
	m, err := movement.NewModel(g, movement.Loose)
	require.NoError(t, err)

	// Facing up from the top-left corner: straight and left leave the grid.
	got := m.Successors(movement.State{Pos: gridgraph.Position{}, Heading: movement.Up, Run: 1}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, movement.State{Pos: gridgraph.Position{Row: 0, Col: 1}, Heading: movement.Right, Run: 1}, got[0].State)
	assert.Equal(t, 2, got[0].Cost)
}

// TestSuccessors_Properties sweeps every state of a small grid under several
// constraint pairs and checks the invariants of the transition rule.
func TestSuccessors_Properties(t *testing.T) {
	g := mustGrid(t, "2413432\n3215453\n3255245\n3446585\n4546657\n")
	rows, cols := g.Dimensions()

	for _, c := range []movement.Constraints{movement.Loose, movement.Strict, {MinRun: 2, MaxRun: 2}, {MinRun: 1, MaxRun: 1}} {
		m, err := movement.NewModel(g, c)
		require.NoError(t, err)

		var buf []movement.Step
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				for _, h := range movement.Headings {
					for run := 1; run <= c.MaxRun; run++ {
						s := movement.State{Pos: gridgraph.Position{Row: r, Col: col}, Heading: h, Run: run}
						buf = m.Successors(s, buf[:0])
						for _, st := range buf {
							assert.True(t, g.InBounds(st.State.Pos), "%v → %v out of bounds", s, st.State)
							assert.Equal(t, g.Cost(st.State.Pos), st.Cost)
							assert.Equal(t, 1, s.Pos.Manhattan(st.State.Pos))
							assert.NotEqual(t, h.RotateLeft().RotateLeft(), st.State.Heading, "reversal")
							if st.State.Heading == h {
								assert.Less(t, run, c.MaxRun, "straight at max run from %v", s)
								assert.Equal(t, run+1, st.State.Run)
							} else {
								assert.GreaterOrEqual(t, run, c.MinRun, "turn below min run from %v", s)
								assert.Equal(t, 1, st.State.Run)
							}
						}
					}
				}
			}
		}
	}
}

func TestStateSpace(t *testing.T) {
	m, err := movement.NewModel(mustGrid(t, "123\n456\n"), movement.Strict)
	require.NoError(t, err)
	assert.Equal(t, 2*3*4*10, m.StateSpace())
	assert.Equal(t, movement.Strict, m.Constraints())
}

func TestValidateRuns(t *testing.T) {
	at := func(r, c int, h movement.Heading, run int) movement.State {
		return movement.State{Pos: gridgraph.Position{Row: r, Col: c}, Heading: h, Run: run}
	}
	c := movement.Constraints{MinRun: 2, MaxRun: 3}

	ok := []movement.State{
		at(0, 0, movement.Right, 1),
		at(0, 1, movement.Right, 2),
		at(1, 1, movement.Down, 1), // final run may be short
	}
	assert.NoError(t, movement.ValidateRuns(ok, c))
	assert.NoError(t, movement.ValidateRuns(nil, c))

	early := []movement.State{
		at(0, 0, movement.Right, 1),
		at(1, 0, movement.Down, 1),
	}
	assert.ErrorIs(t, movement.ValidateRuns(early, c), movement.ErrRunViolation)

	long := []movement.State{
		at(0, 0, movement.Right, 1),
		at(0, 1, movement.Right, 2),
		at(0, 2, movement.Right, 3),
		at(0, 3, movement.Right, 4),
	}
	assert.ErrorIs(t, movement.ValidateRuns(long, c), movement.ErrRunViolation)

	skipped := []movement.State{
		at(0, 0, movement.Right, 1),
		at(0, 1, movement.Right, 3),
	}
	assert.ErrorIs(t, movement.ValidateRuns(skipped, c), movement.ErrRunViolation)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
