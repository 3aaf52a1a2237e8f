package arcade

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/arcade-classics/internal/snake"
)

var fruitColors = map[int]tcell.Color{
	10: tcell.ColorRed,
	15: tcell.ColorBlue,
	20: tcell.ColorYellow,
}

type snakeGame struct {
	ctx    *Context
	params snake.Params
	game   *snake.Game
	ticks  int
	quit   bool
}

func NewSnake(ctx *Context) (Game, error) {
	cfg := ctx.Config
	s := &snakeGame{
		ctx: ctx,
		params: snake.Params{
			Width:        cfg.Snake.Width,
			Height:       cfg.Snake.Height,
			InitialSpeed: cfg.Snake.InitialSpeed,
			MaxSpeed:     cfg.Snake.MaxSpeed,
			TickRate:     cfg.TickRate,
		},
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *snakeGame) Restart() error {
	game, err := snake.New(s.params, s.ctx.Rand)
	if err != nil {
		return err
	}
	s.game = game
	s.ticks = 0
	s.quit = false
	return nil
}

func (s *snakeGame) HandleEvent(ev tcell.Event) {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch k.Key() {
	case tcell.KeyUp:
		s.game.Turn(snake.Up)
	case tcell.KeyDown:
		s.game.Turn(snake.Down)
	case tcell.KeyLeft:
		s.game.Turn(snake.Left)
	case tcell.KeyRight:
		s.game.Turn(snake.Right)
	default:
		if isQuit(k) {
			s.quit = true
		}
	}
}

func (s *snakeGame) Tick() {
	if s.game.Status == snake.Playing {
		s.ticks++
	}
	s.game.Tick()
}

func (s *snakeGame) Result() (Result, bool) {
	r := Result{
		ElapsedTicks: s.ticks,
		Detail:       fmt.Sprintf("Score %d, level %d", s.game.Score, s.game.Level),
	}
	switch {
	case s.quit:
		r.Outcome = Abandoned
	case s.game.Status == snake.Lost:
		r.Outcome = Lost
	default:
		return Result{}, false
	}
	return r, true
}

func (s *snakeGame) Draw(scr tcell.Screen) {
	g := s.game
	drawText(scr, 0, 0, styleDefault, fmt.Sprintf("Score: %d  Level: %d  Speed: %d", g.Score, g.Level, g.Speed))

	// the board sits inside a one cell wall
	const ox, oy = 1, 2
	wall := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := -1; x <= g.Width; x++ {
		scr.SetContent(ox+x, oy-1, '#', nil, wall)
		scr.SetContent(ox+x, oy+g.Height, '#', nil, wall)
	}
	for y := range g.Height {
		scr.SetContent(ox-1, oy+y, '#', nil, wall)
		scr.SetContent(ox+g.Width, oy+y, '#', nil, wall)
	}

	for _, p := range g.Obstacles {
		scr.SetContent(ox+p.X, oy+p.Y, 'X', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	if g.InBounds(g.Fruit) {
		scr.SetContent(ox+g.Fruit.X, oy+g.Fruit.Y, '●', nil, tcell.StyleDefault.Foreground(fruitColors[g.FruitValue]))
	}
	body := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i, p := range g.Body {
		r := 'o'
		if i == 0 {
			r = '@'
		}
		scr.SetContent(ox+p.X, oy+p.Y, r, nil, body)
	}
	drawText(scr, 0, oy+g.Height+1, styleHint, "arrows steer, q menu")
}
