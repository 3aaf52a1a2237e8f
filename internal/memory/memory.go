package memory

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

type Color int8

const (
	Red Color = iota
	Green
	Blue
	Yellow
)

var colors = []Color{Red, Green, Blue, Yellow}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Icon is the face of a box. Two boxes match when their icons are equal.
type Icon struct {
	Symbol rune
	Color  Color
}

type Theme struct {
	Name    string
	Letters string
	// Bonus is awarded once all of its letters have been matched.
	Bonus string
}

var themes = []Theme{
	{Name: "default", Letters: "AEFGHILP", Bonus: "APPLE"},
	{Name: "animals", Letters: "CATTIGDOG", Bonus: "CAT"},
	{Name: "space", Letters: "STARMOON", Bonus: "DOG"},
}

func LookupTheme(name string) (Theme, bool) {
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

func (t Theme) icons() []Icon {
	var letters []rune
	for _, r := range t.Letters {
		if !slices.Contains(letters, r) {
			letters = append(letters, r)
		}
	}
	icons := make([]Icon, 0, len(letters)*len(colors))
	for _, r := range letters {
		for _, c := range colors {
			icons = append(icons, Icon{Symbol: r, Color: c})
		}
	}
	return icons
}

// Params are in ticks of the caller's clock.
type Params struct {
	Width, Height int
	Theme         string
	TimeLimit     int
	Bonus         int
	MismatchDelay int
}

type Status int8

const (
	Playing Status = iota
	Won
	Lost
)

type Game struct {
	Width, Height int
	Theme         Theme
	Remaining     int
	Status        Status
	BonusAwarded  bool

	bonus   int
	delay   int
	icons   []Icon
	open    []bool
	first   int
	miss    [2]int
	coverIn int
}

func New(p Params, r *rand.Rand) (*Game, error) {
	theme, ok := LookupTheme(p.Theme)
	if !ok {
		return nil, fmt.Errorf("unknown memory theme %q", p.Theme)
	}
	n := p.Width * p.Height
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return nil, fmt.Errorf("invalid memory board %dx%d", p.Width, p.Height)
	case n%2 != 0:
		return nil, fmt.Errorf("memory board %dx%d has an odd number of boxes", p.Width, p.Height)
	case p.TimeLimit <= 0:
		return nil, fmt.Errorf("memory time limit must be positive")
	}

	all := theme.icons()
	if n/2 > len(all) {
		return nil, fmt.Errorf("theme %s has %d icons, board %dx%d needs %d",
			theme.Name, len(all), p.Width, p.Height, n/2)
	}
	r.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	icons := append(slices.Clone(all[:n/2]), all[:n/2]...)
	r.Shuffle(len(icons), func(i, j int) { icons[i], icons[j] = icons[j], icons[i] })

	return newGame(p, theme, icons), nil
}

func newGame(p Params, theme Theme, icons []Icon) *Game {
	return &Game{
		Width:     p.Width,
		Height:    p.Height,
		Theme:     theme,
		Remaining: p.TimeLimit,
		bonus:     p.Bonus,
		delay:     p.MismatchDelay,
		icons:     icons,
		open:      make([]bool, len(icons)),
		first:     -1,
	}
}

func (g *Game) InBounds(x, y int) bool {
	return 0 <= x && x < g.Width && 0 <= y && y < g.Height
}

// Box returns the icon at x,y and whether it is face up.
func (g *Game) Box(x, y int) (icon Icon, open bool) {
	i := y*g.Width + x
	return g.icons[i], g.open[i]
}

// Waiting reports whether a mismatched pair is still showing.
func (g *Game) Waiting() bool {
	return g.coverIn > 0
}

// Select turns over the box at x,y. Selections are ignored while a
// mismatched pair is showing.
func (g *Game) Select(x, y int) bool {
	if g.Status != Playing || !g.InBounds(x, y) || g.Waiting() {
		return false
	}
	i := y*g.Width + x
	if g.open[i] {
		return false
	}
	g.open[i] = true

	if g.first < 0 {
		g.first = i
		return true
	}
	first := g.first
	g.first = -1

	if g.icons[first] != g.icons[i] {
		g.miss = [2]int{first, i}
		g.coverIn = g.delay
		if g.coverIn <= 0 {
			g.cover()
		}
		return true
	}

	g.checkBonus()
	if !slices.Contains(g.open, false) {
		g.Status = Won
	}
	return true
}

func (g *Game) cover() {
	g.open[g.miss[0]] = false
	g.open[g.miss[1]] = false
	g.coverIn = 0
}

func (g *Game) checkBonus() {
	if g.BonusAwarded || g.Theme.Bonus == "" {
		return
	}
	found := make(map[rune]int)
	for i, ok := range g.open {
		if ok && i != g.first {
			found[g.icons[i].Symbol]++
		}
	}
	for _, r := range g.Theme.Bonus {
		if found[r] == 0 {
			return
		}
		found[r]--
	}
	g.BonusAwarded = true
	g.Remaining += g.bonus
}

// Tick advances the clock by one frame.
func (g *Game) Tick() {
	if g.Status != Playing {
		return
	}
	if g.coverIn > 0 {
		g.coverIn--
		if g.coverIn == 0 {
			g.cover()
		}
	}
	g.Remaining--
	if g.Remaining <= 0 {
		g.Remaining = 0
		g.Status = Lost
	}
}
