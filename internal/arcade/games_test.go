package arcade

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/arcade-classics/internal/hangman"
	"github.com/vancomm/arcade-classics/internal/memory"
	"github.com/vancomm/arcade-classics/internal/snake"
)

func TestHangmanThemeChoice(t *testing.T) {
	ctx, screen, _ := newTestContext(t)
	g, err := NewHangman(ctx)
	require.NoError(t, err)
	h := g.(*hangmanGame)
	require.True(t, h.choosing)

	h.Draw(screen)
	assert.Contains(t, screenText(screen), "Choose a theme")

	send(h, key(tcell.KeyDown), key(tcell.KeyEnter))
	require.False(t, h.choosing)
	assert.Equal(t, "Sports", h.game.Theme)

	require.NoError(t, h.Restart())
	assert.True(t, h.choosing, "no configured theme asks again")
	b := h.themeButtons()[3]
	send(h, click(b.x, b.y, tcell.ButtonPrimary)...)
	require.False(t, h.choosing)
	assert.Equal(t, "Animals", h.game.Theme)
}

func TestHangmanPlay(t *testing.T) {
	ctx, screen, _ := newTestContext(t)
	ctx.Config.Hangman.Theme = "Science"
	g, err := NewHangman(ctx)
	require.NoError(t, err)
	h := g.(*hangmanGame)
	require.False(t, h.choosing)
	h.game = hangman.NewWithWord("ATOM")

	send(h, letter('q'))
	_, ok := h.Result()
	assert.False(t, ok, "q is a guess while playing")
	assert.Equal(t, 1, h.game.Wrong)

	// T sits on the top keyboard row
	x := h.rowStart(11) + 4*4
	send(h, click(x+1, keyboardTop, tcell.ButtonPrimary)...)
	tried, correct := h.game.Tried('T')
	assert.True(t, tried)
	assert.True(t, correct)

	h.Tick()
	send(h, letter('a'), letter('o'), letter('m'))
	r, ok := h.Result()
	require.True(t, ok)
	assert.Equal(t, Won, r.Outcome)
	assert.Equal(t, "The word was ATOM", r.Detail)
	assert.Equal(t, 1, r.ElapsedTicks)

	h.Draw(screen)
	assert.Contains(t, screenText(screen), "A T O M")
}

func TestHangmanEscape(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	g, err := NewHangman(ctx)
	require.NoError(t, err)
	send(g, key(tcell.KeyEscape))
	r, ok := g.Result()
	require.True(t, ok)
	assert.Equal(t, Abandoned, r.Outcome)
}

func TestMemoryView(t *testing.T) {
	ctx, screen, _ := newTestContext(t)
	g, err := NewMemory(ctx)
	require.NoError(t, err)
	m := g.(*memoryGame)
	assert.Equal(t, ctx.Config.Ticks(ctx.Config.Memory.TimeLimit), m.game.Remaining)

	send(m, letter(' '))
	_, open := m.game.Box(0, 0)
	assert.True(t, open)

	ox, oy := m.origin()
	send(m, click(ox+boxWidth+1, oy, tcell.ButtonPrimary)...)
	_, open = m.game.Box(1, 0)
	assert.True(t, open)
	assert.Equal(t, 1, m.cursorX)

	m.Draw(screen)
	assert.Contains(t, screenText(screen), "Time remaining: 3:00")

	for m.game.Status == memory.Playing {
		m.Tick()
	}
	r, ok := m.Result()
	require.True(t, ok)
	assert.Equal(t, Lost, r.Outcome)

	require.NoError(t, m.Restart())
	send(m, letter('q'))
	r, ok = m.Result()
	require.True(t, ok)
	assert.Equal(t, Abandoned, r.Outcome)
}

func TestSnakeView(t *testing.T) {
	ctx, screen, _ := newTestContext(t)
	g, err := NewSnake(ctx)
	require.NoError(t, err)
	s := g.(*snakeGame)

	s.Draw(screen)
	text := screenText(screen)
	assert.Contains(t, text, "Score: 0")
	assert.Contains(t, text, "ooo@")

	send(s, key(tcell.KeyUp))
	for range 1000 {
		if _, ok := s.Result(); ok {
			break
		}
		s.Tick()
	}
	r, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, Lost, r.Outcome)
	assert.Equal(t, snake.Lost, s.game.Status)

	require.NoError(t, s.Restart())
	send(s, letter('q'))
	r, ok = s.Result()
	require.True(t, ok)
	assert.Equal(t, Abandoned, r.Outcome)
}
