package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() (*Controller, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewController(rand.New(rand.NewPCG(1, 2)), logger), hook
}

func TestControllerSetupRejectsBadParams(t *testing.T) {
	c, hook := newTestController()

	err := c.Setup(GameParams{Width: 2, Height: 2, MineCount: 4})
	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, PhaseSetup, c.Phase())
	assert.Nil(t, c.Session())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)

	// inputs before a session exists are ignored
	c.Primary(0, 0)
	c.Secondary(0, 0)
	c.Tick()
	assert.Equal(t, PhaseSetup, c.Phase())
	assert.Zero(t, c.ElapsedTicks())
	_, ok := c.Result()
	assert.False(t, ok)
}

func TestControllerSetup(t *testing.T) {
	c, _ := newTestController()
	p := GameParams{Width: 9, Height: 9, MineCount: 10}
	require.NoError(t, c.Setup(p))

	assert.Equal(t, PhasePlaying, c.Phase())
	assert.Equal(t, p, c.Params())
	require.NotNil(t, c.Session())
	assert.Equal(t, 10, c.Session().MineCount())
	assert.Equal(t, 81, c.Session().count(Hidden))

	c.Tick()
	c.Tick()
	assert.Equal(t, 2, c.ElapsedTicks())
	_, ok := c.Result()
	assert.False(t, ok)
}

func TestControllerWin(t *testing.T) {
	c, _ := newTestController()
	grid, err := GridFromMines(2, 2, []int{0})
	require.NoError(t, err)
	c.SetupGrid(grid, RuleStrict)

	c.Tick()
	c.Secondary(0, 0)
	c.Primary(1, 0)
	c.Tick()
	c.Primary(0, 1)
	c.Tick()
	assert.Equal(t, PhasePlaying, c.Phase())
	c.Primary(1, 1)

	assert.Equal(t, PhaseWon, c.Phase())
	res, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, Result{Outcome: Won, ElapsedTicks: 3}, res)

	s := c.Session()
	assert.Zero(t, s.count(Hidden))
	assert.Zero(t, s.count(Flagged))
	assert.Equal(t, CorrectFlag, mustCell(t, s, 0, 0).Display())

	c.Tick()
	res, _ = c.Result()
	assert.Equal(t, 3, res.ElapsedTicks, "clock stops at the end")
}

func TestControllerLoss(t *testing.T) {
	c, _ := newTestController()
	grid, err := GridFromMines(2, 2, []int{0})
	require.NoError(t, err)
	c.SetupGrid(grid, RuleStrict)

	c.Secondary(1, 1)
	c.Primary(0, 0)
	assert.Equal(t, PhaseLost, c.Phase())

	s := c.Session()
	assert.Equal(t, ExplodedMine, mustCell(t, s, 0, 0).Display())
	assert.Equal(t, WrongFlag, mustCell(t, s, 1, 1).Display())
	assert.Equal(t, Display(1), mustCell(t, s, 1, 0).Display())

	c.Secondary(0, 0)
	c.Primary(1, 0)
	c.Chord(1, 0)
	assert.Equal(t, PhaseLost, c.Phase())
	res, ok := c.Result()
	require.True(t, ok)
	assert.Equal(t, Lost, res.Outcome)
}

func TestControllerFlagBlocksPrimary(t *testing.T) {
	c, _ := newTestController()
	grid, err := GridFromMines(2, 2, []int{0})
	require.NoError(t, err)
	c.SetupGrid(grid, RuleStrict)

	c.Secondary(0, 0)
	c.Primary(0, 0)
	assert.Equal(t, PhasePlaying, c.Phase())
	assert.Equal(t, Flagged, mustCell(t, c.Session(), 0, 0).State)
	assert.Equal(t, 1, c.Session().FlagsPlaced())
}

func TestControllerIgnoresOutOfBounds(t *testing.T) {
	c, hook := newTestController()
	require.NoError(t, c.Setup(GameParams{Width: 10, Height: 10, MineCount: 10}))
	before := c.Session().String()

	c.Primary(-1, 0)
	assert.Equal(t, "ignoring move outside the board", hook.LastEntry().Message)
	c.Primary(10, 3)
	c.Secondary(3, 10)
	c.Chord(-1, -1)

	assert.Equal(t, before, c.Session().String())
	assert.Equal(t, PhasePlaying, c.Phase())
}

func TestControllerRestart(t *testing.T) {
	c, _ := newTestController()
	p := GameParams{Width: 4, Height: 4, MineCount: 3}
	require.NoError(t, c.Setup(p))
	first := c.Session()
	c.Secondary(0, 0)
	c.Tick()

	require.NoError(t, c.Restart(nil))
	assert.Equal(t, PhasePlaying, c.Phase())
	assert.Equal(t, p, c.Params())
	assert.Zero(t, c.ElapsedTicks())
	assert.NotSame(t, first, c.Session())
	assert.Equal(t, 16, c.Session().count(Hidden))

	bigger := GameParams{Width: 8, Height: 8, MineCount: 10, Rule: RuleNoCascade}
	require.NoError(t, c.Restart(&bigger))
	assert.Equal(t, bigger, c.Params())
	assert.Equal(t, 64, c.Session().count(Hidden))

	bad := GameParams{Width: 1, Height: 1, MineCount: 1}
	assert.Error(t, c.Restart(&bad))
	assert.Equal(t, PhaseSetup, c.Phase())
	assert.Nil(t, c.Session())
}

func TestControllerExit(t *testing.T) {
	c, _ := newTestController()
	require.NoError(t, c.Setup(GameParams{Width: 4, Height: 4, MineCount: 3}))
	c.Exit()

	assert.Equal(t, PhaseExited, c.Phase())
	assert.Nil(t, c.Session())
	c.Primary(0, 0)
	c.Tick()
	assert.Equal(t, PhaseExited, c.Phase())
	assert.Zero(t, c.ElapsedTicks())

	require.NoError(t, c.Restart(nil))
	assert.Equal(t, PhasePlaying, c.Phase())
}
