package arcade

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

type phase int8

const (
	menuPhase phase = iota
	playingPhase
	gameOverPhase
	quitPhase
)

func (p phase) String() string {
	switch p {
	case menuPhase:
		return "menu"
	case playingPhase:
		return "playing"
	case gameOverPhase:
		return "game over"
	case quitPhase:
		return "quit"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

const (
	menuTop     = 5
	gameOverTop = 8
	// finished games stay on screen this long before the game over screen
	resultDelay = 2 * time.Second
)

const (
	overMenu = iota
	overAgain
	overQuit
)

// Shell is the launcher: a menu of games, the running game and the game
// over screen.
type Shell struct {
	ctx      *Context
	registry *Registry

	phase    phase
	selected int
	notice   string
	mouse    clicks

	name   string
	game   Game
	result Result
	linger int
}

func NewShell(ctx *Context, registry *Registry) *Shell {
	return &Shell{
		ctx:      ctx,
		registry: registry,
	}
}

func (s *Shell) Done() bool {
	return s.phase == quitPhase
}

// Launch starts the named game. Any failure is logged and leaves the
// shell on the menu.
func (s *Shell) Launch(name string) {
	game, err := s.create(name)
	if err != nil {
		s.ctx.Log.WithError(err).WithField("game", name).Error("unable to launch game")
		s.toMenu("Unable to start " + name)
		return
	}
	s.name = name
	s.game = game
	s.notice = ""
	s.phase = playingPhase
	s.linger = -1
	s.ctx.Log.WithField("game", name).Info("game launched")
}

func (s *Shell) create(name string) (game Game, err error) {
	factory, err := s.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			game, err = nil, fmt.Errorf("%s panicked on start: %v", name, r)
		}
	}()
	game, err = factory(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to create %s: %w", name, err)
	}
	return game, nil
}

// guard runs a call into the game, dropping back to the menu if it
// panics. It reports whether the call returned normally.
func (s *Shell) guard(op string, f func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.ctx.Log.WithFields(logrus.Fields{
				"game":  s.name,
				"op":    op,
				"panic": r,
			}).Error("game crashed")
			s.game = nil
			s.toMenu(s.name + " crashed")
			ok = false
		}
	}()
	f()
	return true
}

func (s *Shell) toMenu(notice string) {
	s.phase = menuPhase
	s.notice = notice
	s.game = nil
	s.selected = max(0, slices.Index(s.registry.Names(), s.name))
}

func (s *Shell) quit() {
	s.phase = quitPhase
	s.ctx.Log.Info("quitting")
}

func (s *Shell) gameOver(r Result) {
	s.result = r
	s.phase = gameOverPhase
	s.selected = overAgain
	s.ctx.Log.WithFields(logrus.Fields{
		"game":    s.name,
		"outcome": r.Outcome.String(),
		"ticks":   r.ElapsedTicks,
	}).Info("game over")
}

func (s *Shell) HandleEvent(ev tcell.Event) {
	if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyCtrlC {
		s.quit()
		return
	}
	switch s.phase {
	case menuPhase:
		s.handleMenu(ev)
	case playingPhase:
		s.handlePlaying(ev)
	case gameOverPhase:
		s.handleGameOver(ev)
	}
}

func (s *Shell) menuButtons() []button {
	return buttonColumn(s.ctx.Screen, menuTop, s.registry.Names()...)
}

func (s *Shell) handleMenu(ev tcell.Event) {
	names := s.registry.Names()
	if len(names) == 0 {
		if k, ok := ev.(*tcell.EventKey); ok && isQuit(k) {
			s.quit()
		}
		return
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case isQuit(ev):
			s.quit()
		case ev.Key() == tcell.KeyUp:
			s.selected = cycle(s.selected, -1, len(names))
		case ev.Key() == tcell.KeyDown || ev.Key() == tcell.KeyTab:
			s.selected = cycle(s.selected, 1, len(names))
		case isConfirm(ev):
			s.Launch(names[s.selected])
		case ev.Key() == tcell.KeyRune && '1' <= ev.Rune() && ev.Rune() < '1'+rune(len(names)):
			s.selected = int(ev.Rune() - '1')
			s.Launch(names[s.selected])
		}
	case *tcell.EventMouse:
		if s.mouse.pressed(ev)&tcell.ButtonPrimary == 0 {
			return
		}
		x, y := ev.Position()
		if i := hitButton(s.menuButtons(), x, y); i >= 0 {
			s.selected = i
			s.Launch(names[i])
		}
	}
}

func (s *Shell) handlePlaying(ev tcell.Event) {
	if s.linger >= 0 {
		// any key or click skips to the game over screen
		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.gameOver(s.result)
		case *tcell.EventMouse:
			if s.mouse.pressed(ev) != 0 {
				s.gameOver(s.result)
			}
		}
		return
	}
	if m, ok := ev.(*tcell.EventMouse); ok {
		s.mouse.pressed(m)
	}
	if s.guard("event", func() { s.game.HandleEvent(ev) }) {
		s.checkResult()
	}
}

// checkResult moves to the game over screen once the game has ended.
// Won and lost games linger on screen first.
func (s *Shell) checkResult() {
	r, ok := s.game.Result()
	if !ok {
		return
	}
	s.result = r
	if r.Outcome == Abandoned {
		s.gameOver(r)
		return
	}
	s.linger = s.ctx.Config.Ticks(resultDelay)
	if s.linger <= 0 {
		s.gameOver(r)
	}
}

func (s *Shell) gameOverButtons() []button {
	return buttonColumn(s.ctx.Screen, gameOverTop, "Main Menu", "Play "+s.name+" Again", "Quit")
}

func (s *Shell) handleGameOver(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape:
			s.toMenu("")
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			s.quit()
		case ev.Key() == tcell.KeyUp:
			s.selected = cycle(s.selected, -1, 3)
		case ev.Key() == tcell.KeyDown || ev.Key() == tcell.KeyTab:
			s.selected = cycle(s.selected, 1, 3)
		case isConfirm(ev):
			s.choose(s.selected)
		}
	case *tcell.EventMouse:
		if s.mouse.pressed(ev)&tcell.ButtonPrimary == 0 {
			return
		}
		x, y := ev.Position()
		if i := hitButton(s.gameOverButtons(), x, y); i >= 0 {
			s.choose(i)
		}
	}
}

func (s *Shell) choose(option int) {
	switch option {
	case overMenu:
		s.toMenu("")
	case overAgain:
		s.playAgain()
	case overQuit:
		s.quit()
	}
}

func (s *Shell) playAgain() {
	if s.game == nil {
		s.Launch(s.name)
		return
	}
	var err error
	if !s.guard("restart", func() { err = s.game.Restart() }) {
		return
	}
	if err != nil {
		s.ctx.Log.WithError(err).WithField("game", s.name).Error("unable to restart game")
		s.toMenu("Unable to restart " + s.name)
		return
	}
	s.phase = playingPhase
	s.linger = -1
	s.ctx.Log.WithField("game", s.name).Info("game restarted")
}

// Tick advances the running game by one frame.
func (s *Shell) Tick() {
	if s.phase != playingPhase {
		return
	}
	if s.linger >= 0 {
		s.linger--
		if s.linger <= 0 {
			s.gameOver(s.result)
		}
		return
	}
	if s.guard("tick", s.game.Tick) {
		s.checkResult()
	}
}

func (s *Shell) Draw() {
	scr := s.ctx.Screen
	scr.Clear()
	switch s.phase {
	case menuPhase:
		s.drawMenu(scr)
	case playingPhase:
		s.guard("draw", func() { s.game.Draw(scr) })
	case gameOverPhase:
		s.drawGameOver(scr)
	}
}

func (s *Shell) drawMenu(scr tcell.Screen) {
	drawCentered(scr, 1, styleTitle, "Arcade Games Collection")
	drawCentered(scr, 3, styleDefault, "Select game")
	buttons := s.menuButtons()
	drawButtons(scr, buttons, s.selected)

	y := menuTop + 2*len(buttons)
	if s.notice != "" {
		drawCentered(scr, y, styleError, s.notice)
	}
	drawCentered(scr, y+2, styleHint, "up/down select, enter play, q quit")
}

func (s *Shell) drawGameOver(scr tcell.Screen) {
	drawCentered(scr, 1, styleTitle, "Game Over")
	r := s.result
	var headline string
	switch r.Outcome {
	case Won:
		headline = "You won " + s.name + "!"
	case Lost:
		headline = "You lost " + s.name + "."
	default:
		headline = s.name + " abandoned."
	}
	drawCentered(scr, 3, styleDefault, headline)
	seconds := r.ElapsedTicks / max(1, s.ctx.Config.TickRate)
	drawCentered(scr, 4, styleHint, fmt.Sprintf("Time: %d:%02d (%d ticks)", seconds/60, seconds%60, r.ElapsedTicks))
	if r.Detail != "" {
		drawCentered(scr, 5, styleDefault, r.Detail)
	}
	drawButtons(scr, s.gameOverButtons(), s.selected)
}
