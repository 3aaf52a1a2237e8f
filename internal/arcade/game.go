package arcade

import (
	"math/rand/v2"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/arcade-classics/internal/config"
)

// Context carries what the shell hands to every game it launches.
type Context struct {
	Screen tcell.Screen
	Log    *logrus.Logger
	Rand   *rand.Rand
	Config *config.Config
}

type Outcome int8

const (
	Won Outcome = iota
	Lost
	Abandoned
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Abandoned:
		return "abandoned"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

type Result struct {
	Outcome      Outcome
	ElapsedTicks int
	// Detail is an optional game specific summary line.
	Detail string
}

// Game is a single mini-game driven by the shell loop. All methods are
// called from the loop goroutine.
type Game interface {
	HandleEvent(ev tcell.Event)
	Tick()
	Draw(s tcell.Screen)
	// Result reports the outcome once the game has ended.
	Result() (Result, bool)
	// Restart starts a new round with the same settings.
	Restart() error
}

type Factory func(ctx *Context) (Game, error)
