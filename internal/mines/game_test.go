package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, width, height int, rule Rule, mines ...int) *GameState {
	t.Helper()
	grid, err := GridFromMines(width, height, mines)
	require.NoError(t, err)
	return NewGameFromGrid(grid, rule)
}

func index(width, x, y int) int {
	return y*width + x
}

// wallLayout returns a 10x10 board with a column of mines at x=5.
func wallLayout(t *testing.T, rule Rule) *GameState {
	mines := make([]int, 0, 10)
	for y := range 10 {
		mines = append(mines, index(10, 5, y))
	}
	return newTestGame(t, 10, 10, rule, mines...)
}

func TestFloodRevealStopsAtBorder(t *testing.T) {
	s := wallLayout(t, RuleStrict)

	require.True(t, s.OpenCell(0, 0))
	for y := range 10 {
		for x := range 10 {
			c, _ := s.Cell(x, y)
			if x <= 4 {
				assert.Equal(t, Revealed, c.State, "cell %d:%d", x, y)
			} else {
				assert.Equal(t, Hidden, c.State, "cell %d:%d", x, y)
			}
		}
	}
	assert.Equal(t, 50, s.count(Revealed))
	assert.Equal(t, InProgress, s.Outcome)

	// repeated reveal is a no-op
	assert.False(t, s.OpenCell(0, 0))
	assert.False(t, s.OpenCell(4, 4))
	assert.Equal(t, 50, s.count(Revealed))

	require.True(t, s.OpenCell(9, 9))
	assert.Equal(t, 90, s.count(Revealed))
	assert.Equal(t, InProgress, s.Outcome, "mines are not flagged yet")

	for y := range 10 {
		require.True(t, s.FlagCell(5, y))
	}
	assert.Equal(t, Won, s.Outcome)
}

// naiveReveal is the recursive flood from the arcade launcher, used as a
// reference.
func naiveReveal(g *Grid, revealed []bool, x, y int) {
	i := index(g.Width, x, y)
	if revealed[i] || g.at(x, y).State == Flagged {
		return
	}
	revealed[i] = true
	c := g.at(x, y)
	if c.Mine || c.Adjacent != 0 {
		return
	}
	for n := range g.neighbors(x, y) {
		if !n.Mine {
			naiveReveal(g, revealed, n.X, n.Y)
		}
	}
}

func TestFloodRevealMatchesRecursiveReference(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	p := GameParams{Width: 10, Height: 10, MineCount: 12}

	for round := range 200 {
		s, err := NewGame(p, r)
		require.NoError(t, err)

		// a few flags on safe cells to exercise the strict rule
		for range 3 {
			i := r.IntN(100)
			if !s.cells[i].Mine {
				s.FlagCell(i%10, i/10)
			}
		}

		x, y := r.IntN(10), r.IntN(10)
		expected := make([]bool, 100)
		if c, _ := s.Cell(x, y); c.State == Hidden {
			naiveReveal(s.Grid, expected, x, y)
		}
		s.OpenCell(x, y)

		for i := range s.cells {
			assert.Equal(t, expected[i], s.cells[i].State == Revealed, "round %d cell %d", round, i)
		}
	}
}

func TestRuleVariants(t *testing.T) {
	tests := []struct {
		rule     Rule
		revealed int
		flagged  Cell
	}{
		{RuleStrict, 23, Cell{X: 0, Y: 4, State: Flagged}},
		{RuleThroughFlags, 24, Cell{X: 0, Y: 4, State: Revealed}},
		{RuleNoCascade, 1, Cell{X: 0, Y: 4, State: Flagged}},
	}

	for _, test := range tests {
		t.Run(test.rule.String(), func(t *testing.T) {
			s := newTestGame(t, 5, 5, test.rule, index(5, 4, 4))
			require.True(t, s.FlagCell(0, 4))
			require.True(t, s.OpenCell(0, 0))

			assert.Equal(t, test.revealed, s.count(Revealed))
			c, _ := s.Cell(0, 4)
			assert.Equal(t, test.flagged.State, c.State)
			mine, _ := s.Cell(4, 4)
			assert.Equal(t, Hidden, mine.State, "mines are never auto-revealed")
		})
	}
}

func TestWinOn2x2(t *testing.T) {
	s := newTestGame(t, 2, 2, RuleStrict, 0)
	require.True(t, s.FlagCell(0, 0))
	require.True(t, s.OpenCell(1, 0))
	require.True(t, s.OpenCell(0, 1))
	assert.Equal(t, InProgress, s.Outcome)
	require.True(t, s.OpenCell(1, 1))
	assert.Equal(t, Won, s.Outcome)
}

func TestWinIsOrderIndependent(t *testing.T) {
	s := newTestGame(t, 2, 2, RuleStrict, 0)
	require.True(t, s.OpenCell(1, 1))
	require.True(t, s.OpenCell(0, 1))
	require.True(t, s.OpenCell(1, 0))
	assert.Equal(t, InProgress, s.Outcome)
	require.True(t, s.FlagCell(0, 0))
	assert.Equal(t, Won, s.Outcome)
}

func TestLossIsSticky(t *testing.T) {
	s := newTestGame(t, 2, 2, RuleStrict, 0)
	require.True(t, s.OpenCell(0, 0))
	assert.Equal(t, Lost, s.Outcome)

	assert.False(t, s.FlagCell(0, 0))
	assert.False(t, s.OpenCell(1, 0))
	assert.False(t, s.OpenCell(0, 1))
	assert.False(t, s.OpenCell(1, 1))
	assert.False(t, s.ChordCell(0, 0))
	assert.Equal(t, Lost, s.Outcome)
	assert.Equal(t, Lost, Evaluate(s.Grid))
}

func TestFlagBlocksReveal(t *testing.T) {
	s := newTestGame(t, 2, 2, RuleStrict, 0)
	require.True(t, s.FlagCell(1, 1))
	assert.False(t, s.OpenCell(1, 1))
	c, _ := s.Cell(1, 1)
	assert.Equal(t, Flagged, c.State)
	assert.Equal(t, InProgress, s.Outcome)

	require.True(t, s.FlagCell(1, 1))
	c, _ = s.Cell(1, 1)
	assert.Equal(t, Hidden, c.State)
	assert.True(t, s.OpenCell(1, 1))
}

func TestFlagIgnoresRevealedCell(t *testing.T) {
	s := newTestGame(t, 2, 2, RuleStrict, 0)
	require.True(t, s.OpenCell(1, 1))
	assert.False(t, s.FlagCell(1, 1))
	c, _ := s.Cell(1, 1)
	assert.Equal(t, Revealed, c.State)
}

func TestOutOfBoundsIsNoOp(t *testing.T) {
	s := wallLayout(t, RuleStrict)
	before := s.String()
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {-5, -5}, {100, 100}} {
		assert.False(t, s.OpenCell(p[0], p[1]))
		assert.False(t, s.FlagCell(p[0], p[1]))
		assert.False(t, s.ChordCell(p[0], p[1]))
	}
	assert.Equal(t, before, s.String())
	assert.Equal(t, InProgress, s.Outcome)
}

func TestChordCell(t *testing.T) {
	t.Run("unsatisfied", func(t *testing.T) {
		s := newTestGame(t, 3, 3, RuleStrict, 0)
		require.True(t, s.OpenCell(1, 1))
		assert.False(t, s.ChordCell(1, 1))
		assert.Equal(t, 1, s.count(Revealed))
	})

	t.Run("satisfied", func(t *testing.T) {
		s := newTestGame(t, 3, 3, RuleStrict, 0)
		require.True(t, s.OpenCell(1, 1))
		require.True(t, s.FlagCell(0, 0))
		assert.True(t, s.ChordCell(1, 1))
		assert.Equal(t, 8, s.count(Revealed))
		assert.Equal(t, Won, s.Outcome)
	})

	t.Run("wrong flag", func(t *testing.T) {
		s := newTestGame(t, 3, 3, RuleStrict, 0)
		require.True(t, s.OpenCell(1, 1))
		require.True(t, s.FlagCell(1, 0))
		assert.True(t, s.ChordCell(1, 1))
		assert.Equal(t, Lost, s.Outcome)
	})

	t.Run("zero cell", func(t *testing.T) {
		s := newTestGame(t, 3, 3, RuleStrict, 0)
		require.True(t, s.OpenCell(2, 2))
		assert.False(t, s.ChordCell(2, 2))
	})
}

func TestRevealAllDisplay(t *testing.T) {
	// mines at 0:0 and 2:0
	s := newTestGame(t, 3, 2, RuleStrict, 0, 2)
	require.True(t, s.FlagCell(0, 0))
	require.True(t, s.FlagCell(1, 1))
	require.True(t, s.OpenCell(1, 0))
	assert.Equal(t, Display(2), mustCell(t, s, 1, 0).Display())
	require.True(t, s.OpenCell(2, 0))
	require.Equal(t, Lost, s.Outcome)

	s.RevealAll()
	assert.Zero(t, s.count(Hidden))
	assert.Zero(t, s.count(Flagged))
	assert.Equal(t, CorrectFlag, mustCell(t, s, 0, 0).Display())
	assert.Equal(t, ExplodedMine, mustCell(t, s, 2, 0).Display())
	assert.Equal(t, WrongFlag, mustCell(t, s, 1, 1).Display())
	assert.Equal(t, Display(1), mustCell(t, s, 0, 1).Display())
	assert.Equal(t, Lost, Evaluate(s.Grid))
}

func mustCell(t *testing.T, s *GameState, x, y int) Cell {
	t.Helper()
	c, ok := s.Cell(x, y)
	require.True(t, ok)
	return c
}

func TestEvaluate(t *testing.T) {
	g, err := GridFromMines(2, 1, []int{0})
	require.NoError(t, err)
	assert.Equal(t, InProgress, Evaluate(g))

	g.at(0, 0).State = Flagged
	assert.Equal(t, InProgress, Evaluate(g))
	g.at(1, 0).State = Revealed
	assert.Equal(t, Won, Evaluate(g))

	g.at(0, 0).State = Revealed
	assert.Equal(t, InProgress, Evaluate(g), "an opened mine that did not explode is not a loss")
	g.at(0, 0).exploded = true
	assert.Equal(t, Lost, Evaluate(g))
}
