package mines

import (
	"math/rand/v2"
	"strconv"

	"github.com/sirupsen/logrus"
)

type Phase int8

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
	PhaseExited
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseExited:
		return "exited"
	default:
		return "Phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// Result is handed to the shell once a session ends.
type Result struct {
	Outcome      Outcome
	ElapsedTicks int
}

// Controller drives one session at a time through
// setup, playing, won/lost and restart or exit.
type Controller struct {
	log    *logrus.Logger
	rnd    *rand.Rand
	params GameParams
	game   *GameState
	phase  Phase
	ticks  int
}

func NewController(r *rand.Rand, log *logrus.Logger) *Controller {
	return &Controller{
		log: log,
		rnd: r,
	}
}

// Setup generates a fresh board and starts playing it. On a
// [*ConfigurationError] the controller stays in setup.
func (c *Controller) Setup(p GameParams) error {
	c.discard()
	c.params = p

	game, err := NewGame(p, c.rnd)
	if err != nil {
		c.log.WithError(err).WithField("params", p.String()).Error("unable to set up board")
		return err
	}
	c.start(game)
	return nil
}

// SetupGrid starts playing a prepared board.
func (c *Controller) SetupGrid(grid *Grid, rule Rule) {
	c.discard()
	game := NewGameFromGrid(grid, rule)
	c.params = game.Params
	c.start(game)
}

func (c *Controller) start(game *GameState) {
	c.game = game
	c.phase = PhasePlaying
	c.log.WithFields(logrus.Fields{
		"width":      game.Width,
		"height":     game.Height,
		"mine_count": game.Params.MineCount,
		"rule":       game.Params.Rule.String(),
	}).Debug("session started")
}

func (c *Controller) discard() {
	c.game = nil
	c.ticks = 0
	c.phase = PhaseSetup
}

// Primary reveals the cell at x,y.
func (c *Controller) Primary(x, y int) {
	c.apply("open", (*GameState).OpenCell, x, y)
}

// Secondary toggles the flag at x,y.
func (c *Controller) Secondary(x, y int) {
	c.apply("flag", (*GameState).FlagCell, x, y)
}

// Chord opens the unflagged neighbors of a satisfied number at x,y.
func (c *Controller) Chord(x, y int) {
	c.apply("chord", (*GameState).ChordCell, x, y)
}

func (c *Controller) apply(name string, move func(*GameState, int, int) bool, x, y int) {
	if c.phase != PhasePlaying {
		return
	}
	if !c.game.InBounds(x, y) {
		c.log.WithFields(logrus.Fields{"move": name, "x": x, "y": y}).Debug("ignoring move outside the board")
		return
	}
	if !move(c.game, x, y) {
		return
	}

	switch Evaluate(c.game.Grid) {
	case Won:
		c.finish(PhaseWon)
	case Lost:
		c.finish(PhaseLost)
	}
}

func (c *Controller) finish(phase Phase) {
	c.game.RevealAll()
	c.phase = phase
	c.log.WithFields(logrus.Fields{
		"outcome": c.game.Outcome.String(),
		"ticks":   c.ticks,
	}).Info("session over")
}

// Tick advances the session clock while playing.
func (c *Controller) Tick() {
	if c.phase == PhasePlaying {
		c.ticks++
	}
}

// Result returns the session result once it has been won or lost.
func (c *Controller) Result() (Result, bool) {
	if c.phase != PhaseWon && c.phase != PhaseLost {
		return Result{}, false
	}
	return Result{Outcome: c.game.Outcome, ElapsedTicks: c.ticks}, true
}

// Restart discards the current session and sets up a new one, with the
// previous parameters when p is nil.
func (c *Controller) Restart(p *GameParams) error {
	params := c.params
	if p != nil {
		params = *p
	}
	return c.Setup(params)
}

// Exit discards the current session. Inputs are ignored afterwards until
// the next Setup or Restart.
func (c *Controller) Exit() {
	c.discard()
	c.phase = PhaseExited
}

func (c *Controller) Phase() Phase {
	return c.phase
}

func (c *Controller) Params() GameParams {
	return c.params
}

func (c *Controller) ElapsedTicks() int {
	return c.ticks
}

// Session is the board being played, nil outside of a session.
func (c *Controller) Session() *GameState {
	return c.game
}
