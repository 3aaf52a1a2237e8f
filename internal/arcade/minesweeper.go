package arcade

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/arcade-classics/internal/mines"
)

const (
	cellWidth = 2
	boardTop  = 2
)

var numberColors = [...]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorWhite,
	tcell.ColorGray,
}

type minesweeper struct {
	ctx       *Context
	ctrl      *mines.Controller
	mouse     clicks
	cursorX   int
	cursorY   int
	abandoned bool
}

func NewMinesweeper(ctx *Context) (Game, error) {
	p, err := ctx.Config.Minesweeper.GameParams()
	if err != nil {
		return nil, err
	}
	ctrl := mines.NewController(ctx.Rand, ctx.Log)
	if err := ctrl.Setup(p); err != nil {
		return nil, err
	}
	return newMinesweeper(ctx, ctrl), nil
}

func newMinesweeper(ctx *Context, ctrl *mines.Controller) *minesweeper {
	return &minesweeper{ctx: ctx, ctrl: ctrl}
}

// origin is the screen position of the top left cell.
func (m *minesweeper) origin() (x, y int) {
	w, _ := m.ctx.Screen.Size()
	return max(0, (w-m.ctrl.Params().Width*cellWidth)/2), boardTop
}

// cellAt maps a screen position to board coordinates, which may lie
// outside the board.
func (m *minesweeper) cellAt(sx, sy int) (x, y int) {
	ox, oy := m.origin()
	return floorDiv(sx-ox, cellWidth), sy - oy
}

func (m *minesweeper) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		m.handleKey(ev)
	case *tcell.EventMouse:
		down := m.mouse.pressed(ev)
		if down == 0 {
			return
		}
		x, y := m.cellAt(ev.Position())
		if m.ctrl.Params().PointInBounds(x, y) {
			m.cursorX, m.cursorY = x, y
		}
		switch {
		case down&tcell.ButtonPrimary != 0:
			m.ctrl.Primary(x, y)
		case down&tcell.ButtonSecondary != 0:
			m.ctrl.Secondary(x, y)
		case down&tcell.ButtonMiddle != 0:
			m.ctrl.Chord(x, y)
		}
	}
}

func (m *minesweeper) handleKey(ev *tcell.EventKey) {
	p := m.ctrl.Params()
	switch ev.Key() {
	case tcell.KeyUp:
		m.cursorY = max(0, m.cursorY-1)
	case tcell.KeyDown:
		m.cursorY = min(p.Height-1, m.cursorY+1)
	case tcell.KeyLeft:
		m.cursorX = max(0, m.cursorX-1)
	case tcell.KeyRight:
		m.cursorX = min(p.Width-1, m.cursorX+1)
	case tcell.KeyEnter:
		m.ctrl.Primary(m.cursorX, m.cursorY)
	case tcell.KeyEscape:
		m.exit()
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			m.ctrl.Primary(m.cursorX, m.cursorY)
		case 'f', 'F':
			m.ctrl.Secondary(m.cursorX, m.cursorY)
		case 'c', 'C':
			m.ctrl.Chord(m.cursorX, m.cursorY)
		case 'r', 'R':
			if err := m.Restart(); err != nil {
				m.ctx.Log.WithError(err).Error("unable to restart minesweeper")
			}
		case 'q', 'Q':
			m.exit()
		}
	}
}

func (m *minesweeper) exit() {
	m.ctrl.Exit()
	m.abandoned = true
}

func (m *minesweeper) Tick() {
	m.ctrl.Tick()
}

func (m *minesweeper) Result() (Result, bool) {
	if m.abandoned {
		return Result{Outcome: Abandoned, ElapsedTicks: m.ctrl.ElapsedTicks()}, true
	}
	r, ok := m.ctrl.Result()
	if !ok {
		return Result{}, false
	}
	res := Result{Outcome: Lost, ElapsedTicks: r.ElapsedTicks, Detail: m.ctrl.Params().String()}
	if r.Outcome == mines.Won {
		res.Outcome = Won
	}
	return res, true
}

func (m *minesweeper) Restart() error {
	if err := m.ctrl.Restart(nil); err != nil {
		return err
	}
	m.abandoned = false
	m.cursorX, m.cursorY = 0, 0
	return nil
}

func cellStyle(d mines.Display) (rune, tcell.Style) {
	hidden := tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	open := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch d {
	case mines.Unknown:
		return ' ', hidden
	case mines.Flag:
		return 'F', hidden.Foreground(tcell.ColorRed)
	case mines.CorrectFlag:
		return 'F', open.Foreground(tcell.ColorGreen)
	case mines.ExplodedMine:
		return '*', open.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
	case mines.WrongFlag:
		return 'x', open.Foreground(tcell.ColorRed)
	case mines.UnflaggedMine:
		return '*', open.Foreground(tcell.ColorWhite)
	case 0:
		return ' ', open
	}
	if 0 < d && int(d) < len(numberColors) {
		return rune('0' + d), open.Foreground(numberColors[d])
	}
	return '?', open
}

func (m *minesweeper) Draw(s tcell.Screen) {
	game := m.ctrl.Session()
	if game == nil {
		return
	}
	p := game.Params
	seconds := m.ctrl.ElapsedTicks() / max(1, m.ctx.Config.TickRate)
	drawText(s, 0, 0, styleDefault, fmt.Sprintf("Mines: %d  Flags: %d  Time: %ds  Rule: %s",
		p.MineCount, game.FlagsPlaced(), seconds, p.Rule))

	ox, oy := m.origin()
	for y := range game.Height {
		for x := range game.Width {
			c, _ := game.Cell(x, y)
			r, style := cellStyle(c.Display())
			if x == m.cursorX && y == m.cursorY && !game.Over() {
				style = style.Reverse(true)
			}
			s.SetContent(ox+x*cellWidth, oy+y, r, nil, style)
			s.SetContent(ox+x*cellWidth+1, oy+y, ' ', nil, style)
		}
	}

	status := "arrows move, space open, f flag, c chord, r restart, q menu"
	switch game.Outcome {
	case mines.Won:
		status = "All mines found!"
	case mines.Lost:
		status = "Boom!"
	}
	drawText(s, 0, oy+game.Height+1, styleHint, status)
}
