package arcade

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleButton   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// drawText writes text starting at x,y and returns the column after it.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func drawCentered(s tcell.Screen, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	drawText(s, (w-runewidth.StringWidth(text))/2, y, style, text)
}

type button struct {
	label   string
	x, y, w int
}

func (b button) hit(x, y int) bool {
	return y == b.y && b.x <= x && x < b.x+b.w
}

// buttonColumn lays out labels as equally wide buttons centered on the
// screen, one every other row starting at top.
func buttonColumn(s tcell.Screen, top int, labels ...string) []button {
	width := 0
	for _, l := range labels {
		width = max(width, runewidth.StringWidth(l)+4)
	}
	sw, _ := s.Size()
	buttons := make([]button, len(labels))
	for i, l := range labels {
		buttons[i] = button{label: l, x: (sw - width) / 2, y: top + 2*i, w: width}
	}
	return buttons
}

func drawButtons(s tcell.Screen, buttons []button, selected int) {
	for i, b := range buttons {
		style := styleButton
		if i == selected {
			style = styleSelected
		}
		for x := b.x; x < b.x+b.w; x++ {
			s.SetContent(x, b.y, ' ', nil, style)
		}
		drawText(s, b.x+(b.w-runewidth.StringWidth(b.label))/2, b.y, style, b.label)
	}
}

func hitButton(buttons []button, x, y int) int {
	for i, b := range buttons {
		if b.hit(x, y) {
			return i
		}
	}
	return -1
}

// clicks tracks mouse buttons so that a held button fires once.
type clicks struct {
	held tcell.ButtonMask
}

// pressed returns the buttons that went down with ev.
func (c *clicks) pressed(ev *tcell.EventMouse) tcell.ButtonMask {
	now := ev.Buttons() & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	down := now &^ c.held
	c.held = now
	return down
}

// floorDiv rounds toward negative infinity so positions left of or above
// an origin map to negative cells.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func cycle(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

func isConfirm(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyRune && ev.Rune() == ' '
}
