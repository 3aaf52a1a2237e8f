package mines

import (
	"math/rand/v2"
	"strconv"
)

type Outcome int8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// GameState is one play-through: a board and its outcome.
type GameState struct {
	*Grid
	Params  GameParams
	Outcome Outcome
}

func NewGame(p GameParams, r *rand.Rand) (*GameState, error) {
	grid, err := Generate(p, r)
	if err != nil {
		return nil, err
	}
	return &GameState{Grid: grid, Params: p}, nil
}

// NewGameFromGrid starts a play-through on a prepared board.
func NewGameFromGrid(grid *Grid, rule Rule) *GameState {
	return &GameState{
		Grid: grid,
		Params: GameParams{
			Width:     grid.Width,
			Height:    grid.Height,
			MineCount: grid.MineCount(),
			Rule:      rule,
		},
	}
}

func (s *GameState) Over() bool {
	return s.Outcome != InProgress
}

// FlagCell toggles a flag on a hidden or flagged cell. It reports whether
// the board changed.
func (s *GameState) FlagCell(x, y int) bool {
	if s.Over() || !s.InBounds(x, y) {
		return false
	}
	c := s.at(x, y)
	switch c.State {
	case Hidden:
		c.State = Flagged
	case Flagged:
		c.State = Hidden
	default:
		return false
	}
	s.Outcome = Evaluate(s.Grid)
	return true
}

// OpenCell reveals a hidden cell. Flagged and revealed cells ignore it.
// It reports whether the board changed.
func (s *GameState) OpenCell(x, y int) bool {
	if s.Over() || !s.InBounds(x, y) {
		return false
	}
	c := s.at(x, y)
	if c.State != Hidden {
		return false
	}
	c.State = Revealed

	if c.Mine {
		/*
		 * The player has landed on a mine. Nothing else opens; the
		 * remaining board is exposed by RevealAll.
		 */
		c.exploded = true
		s.Outcome = Lost
		return true
	}

	if c.Adjacent == 0 && s.Params.Rule != RuleNoCascade {
		s.floodReveal(c)
	}

	s.Outcome = Evaluate(s.Grid)
	return true
}

// ChordCell opens every hidden neighbor of a revealed number whose flagged
// neighbors already account for all of its mines.
func (s *GameState) ChordCell(x, y int) bool {
	if s.Over() || !s.InBounds(x, y) {
		return false
	}
	c := s.at(x, y)
	if c.State != Revealed || c.Mine || c.Adjacent == 0 {
		return false
	}

	flags := 0
	hidden := make([]*Cell, 0, 8)
	for n := range s.neighbors(c.X, c.Y) {
		switch n.State {
		case Flagged:
			flags++
		case Hidden:
			hidden = append(hidden, n)
		}
	}
	if flags != int(c.Adjacent) {
		return false
	}

	changed := false
	for _, n := range hidden {
		if s.OpenCell(n.X, n.Y) {
			changed = true
		}
		if s.Over() {
			break
		}
	}
	return changed
}

// RevealAll exposes every hidden and flagged cell for the end-of-game
// display. Cells remember whether they carried a flag.
func (s *GameState) RevealAll() {
	for i := range s.cells {
		c := &s.cells[i]
		if c.State == Revealed {
			continue
		}
		c.wasFlagged = c.State == Flagged
		c.State = Revealed
	}
}

// FlagsPlaced counts cells currently flagged.
func (s *GameState) FlagsPlaced() int {
	return s.count(Flagged)
}

// Evaluate reports the outcome implied by the board alone: Lost once a mine
// has exploded, Won when every mine is flagged and every safe cell is
// revealed, InProgress otherwise.
func Evaluate(g *Grid) Outcome {
	won := true
	for i := range g.cells {
		c := &g.cells[i]
		if c.exploded {
			return Lost
		}
		if c.Mine && c.State != Flagged || !c.Mine && c.State != Revealed {
			won = false
		}
	}
	if won {
		return Won
	}
	return InProgress
}
