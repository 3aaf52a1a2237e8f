package arcade

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/arcade-classics/internal/memory"
)

const (
	boxWidth  = 4
	boxHeight = 2
)

var iconColors = map[memory.Color]tcell.Color{
	memory.Red:    tcell.ColorRed,
	memory.Green:  tcell.ColorGreen,
	memory.Blue:   tcell.ColorBlue,
	memory.Yellow: tcell.ColorYellow,
}

type memoryGame struct {
	ctx     *Context
	params  memory.Params
	game    *memory.Game
	mouse   clicks
	cursorX int
	cursorY int
	ticks   int
	quit    bool
}

func NewMemory(ctx *Context) (Game, error) {
	cfg := ctx.Config
	m := &memoryGame{
		ctx: ctx,
		params: memory.Params{
			Width:         cfg.Memory.Width,
			Height:        cfg.Memory.Height,
			Theme:         cfg.Memory.Theme,
			TimeLimit:     cfg.Ticks(cfg.Memory.TimeLimit),
			Bonus:         cfg.Ticks(cfg.Memory.Bonus),
			MismatchDelay: cfg.Ticks(cfg.Memory.MismatchDelay),
		},
	}
	if err := m.Restart(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *memoryGame) Restart() error {
	game, err := memory.New(m.params, m.ctx.Rand)
	if err != nil {
		return err
	}
	m.game = game
	m.cursorX, m.cursorY, m.ticks = 0, 0, 0
	m.quit = false
	return nil
}

func (m *memoryGame) origin() (x, y int) {
	w, _ := m.ctx.Screen.Size()
	return max(0, (w-m.game.Width*boxWidth)/2), boardTop
}

func (m *memoryGame) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			m.cursorY = max(0, m.cursorY-1)
		case tcell.KeyDown:
			m.cursorY = min(m.game.Height-1, m.cursorY+1)
		case tcell.KeyLeft:
			m.cursorX = max(0, m.cursorX-1)
		case tcell.KeyRight:
			m.cursorX = min(m.game.Width-1, m.cursorX+1)
		default:
			switch {
			case isConfirm(ev):
				m.game.Select(m.cursorX, m.cursorY)
			case isQuit(ev):
				m.quit = true
			}
		}
	case *tcell.EventMouse:
		if m.mouse.pressed(ev)&tcell.ButtonPrimary == 0 {
			return
		}
		sx, sy := ev.Position()
		ox, oy := m.origin()
		x, y := floorDiv(sx-ox, boxWidth), floorDiv(sy-oy, boxHeight)
		if m.game.InBounds(x, y) {
			m.cursorX, m.cursorY = x, y
			m.game.Select(x, y)
		}
	}
}

func (m *memoryGame) Tick() {
	if m.game.Status == memory.Playing {
		m.ticks++
	}
	m.game.Tick()
}

func (m *memoryGame) Result() (Result, bool) {
	r := Result{ElapsedTicks: m.ticks}
	switch {
	case m.quit:
		r.Outcome = Abandoned
	case m.game.Status == memory.Won:
		r.Outcome = Won
	case m.game.Status == memory.Lost:
		r.Outcome = Lost
		r.Detail = "Time is up"
	default:
		return Result{}, false
	}
	if m.game.BonusAwarded {
		r.Detail = "Bonus word " + m.game.Theme.Bonus + " found"
	}
	return r, true
}

func (m *memoryGame) Draw(s tcell.Screen) {
	g := m.game
	seconds := g.Remaining / max(1, m.ctx.Config.TickRate)
	drawText(s, 0, 0, styleDefault, fmt.Sprintf("Theme: %s  Bonus word: %s  Time remaining: %d:%02d",
		g.Theme.Name, g.Theme.Bonus, seconds/60, seconds%60))

	ox, oy := m.origin()
	for y := range g.Height {
		for x := range g.Width {
			icon, open := g.Box(x, y)
			label := "[ ]"
			style := styleButton
			if open {
				label = "[" + string(icon.Symbol) + "]"
				style = tcell.StyleDefault.Foreground(iconColors[icon.Color]).Bold(true)
			}
			if x == m.cursorX && y == m.cursorY {
				style = style.Reverse(true)
			}
			drawText(s, ox+x*boxWidth, oy+y*boxHeight, style, label)
		}
	}

	hint := "arrows move, space turn over, q menu"
	if g.BonusAwarded {
		hint = "Bonus time added!"
	}
	drawText(s, 0, oy+g.Height*boxHeight, styleHint, hint)
}
