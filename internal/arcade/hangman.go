package arcade

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/vancomm/arcade-classics/internal/hangman"
)

var keyboardRows = []string{"QWERTZUIOPÜ", "ASDFGHJKLÖÄ", "YXCVBNM"}

const (
	keyWidth    = 4
	keyboardTop = 14
)

var gallows = [hangman.MaxWrong + 1][]string{
	{"  +---+", "      |", "      |", "      |", "     ==="},
	{"  +---+", "  O   |", "      |", "      |", "     ==="},
	{"  +---+", "  O   |", "  |   |", "      |", "     ==="},
	{"  +---+", "  O   |", " /|   |", "      |", "     ==="},
	{"  +---+", "  O   |", " /|\\  |", "      |", "     ==="},
	{"  +---+", "  O   |", " /|\\  |", " /    |", "     ==="},
	{"  +---+", "  O   |", " /|\\  |", " / \\  |", "     ==="},
}

type hangmanGame struct {
	ctx      *Context
	theme    string
	game     *hangman.Game
	choosing bool
	selected int
	mouse    clicks
	ticks    int
	quit     bool
}

func NewHangman(ctx *Context) (Game, error) {
	h := &hangmanGame{ctx: ctx, theme: ctx.Config.Hangman.Theme}
	if err := h.Restart(); err != nil {
		return nil, err
	}
	return h, nil
}

// Restart picks a new word, asking for a theme first unless one is
// configured.
func (h *hangmanGame) Restart() error {
	h.ticks = 0
	h.quit = false
	h.game = nil
	if h.theme == "" {
		h.choosing = true
		return nil
	}
	return h.start(h.theme)
}

func (h *hangmanGame) start(theme string) error {
	game, err := hangman.New(theme, h.ctx.Rand)
	if err != nil {
		return err
	}
	h.game = game
	h.choosing = false
	return nil
}

func (h *hangmanGame) themeButtons() []button {
	return buttonColumn(h.ctx.Screen, menuTop, hangman.Themes()...)
}

func (h *hangmanGame) choose(i int) {
	if err := h.start(hangman.Themes()[i]); err != nil {
		h.ctx.Log.WithError(err).Error("unable to start hangman")
	}
}

// keyAt returns the keyboard letter drawn at a screen position.
func (h *hangmanGame) keyAt(sx, sy int) (rune, bool) {
	row := sy - keyboardTop
	if row < 0 || row%2 != 0 || row/2 >= len(keyboardRows) {
		return 0, false
	}
	keys := []rune(keyboardRows[row/2])
	x0 := h.rowStart(runewidth.StringWidth(keyboardRows[row/2]))
	if sx < x0 {
		return 0, false
	}
	i := (sx - x0) / keyWidth
	if i >= len(keys) {
		return 0, false
	}
	return keys[i], true
}

func (h *hangmanGame) rowStart(keys int) int {
	w, _ := h.ctx.Screen.Size()
	return max(0, (w-keys*keyWidth)/2)
}

func (h *hangmanGame) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// letters are guesses once playing
		if ev.Key() == tcell.KeyEscape || h.choosing && isQuit(ev) {
			h.quit = true
			return
		}
		if h.choosing {
			h.handleThemeKey(ev)
			return
		}
		if ev.Key() == tcell.KeyRune {
			h.game.Guess(ev.Rune())
		}
	case *tcell.EventMouse:
		if h.mouse.pressed(ev)&tcell.ButtonPrimary == 0 {
			return
		}
		x, y := ev.Position()
		if h.choosing {
			if i := hitButton(h.themeButtons(), x, y); i >= 0 {
				h.choose(i)
			}
			return
		}
		if r, ok := h.keyAt(x, y); ok {
			h.game.Guess(r)
		}
	}
}

func (h *hangmanGame) handleThemeKey(ev *tcell.EventKey) {
	n := len(hangman.Themes())
	switch {
	case ev.Key() == tcell.KeyUp:
		h.selected = cycle(h.selected, -1, n)
	case ev.Key() == tcell.KeyDown || ev.Key() == tcell.KeyTab:
		h.selected = cycle(h.selected, 1, n)
	case isConfirm(ev):
		h.choose(h.selected)
	}
}

func (h *hangmanGame) Tick() {
	if h.game != nil && h.game.Status == hangman.Playing {
		h.ticks++
	}
}

func (h *hangmanGame) Result() (Result, bool) {
	r := Result{ElapsedTicks: h.ticks}
	switch {
	case h.quit:
		r.Outcome = Abandoned
		return r, true
	case h.game == nil:
		return Result{}, false
	case h.game.Status == hangman.Won:
		r.Outcome = Won
	case h.game.Status == hangman.Lost:
		r.Outcome = Lost
	default:
		return Result{}, false
	}
	r.Detail = "The word was " + h.game.Word
	return r, true
}

func (h *hangmanGame) Draw(s tcell.Screen) {
	if h.choosing {
		drawCentered(s, 1, styleTitle, "Hangman")
		drawCentered(s, 3, styleDefault, "Choose a theme")
		drawButtons(s, h.themeButtons(), h.selected)
		return
	}
	g := h.game
	drawText(s, 0, 0, styleDefault, fmt.Sprintf("Theme: %s  Wrong guesses: %d/%d", g.Theme, g.Wrong, hangman.MaxWrong))
	for i, line := range gallows[min(g.Wrong, hangman.MaxWrong)] {
		drawText(s, 2, 2+i, styleDefault, line)
	}
	drawCentered(s, 9, styleTitle, g.Masked())
	switch g.Status {
	case hangman.Won:
		drawCentered(s, 11, tcell.StyleDefault.Foreground(tcell.ColorGreen), "You guessed it!")
	case hangman.Lost:
		drawCentered(s, 11, styleError, "The word was "+g.Word)
	}

	for row, keys := range keyboardRows {
		x := h.rowStart(runewidth.StringWidth(keys))
		for _, r := range keys {
			style := styleButton
			if tried, correct := g.Tried(r); tried && correct {
				style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
			} else if tried {
				style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed)
			}
			drawText(s, x, keyboardTop+2*row, style, " "+string(r)+" ")
			x += keyWidth
		}
	}
	drawText(s, 0, keyboardTop+2*len(keyboardRows), styleHint, "type or click letters, esc menu")
}
