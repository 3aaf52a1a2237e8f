package hangman

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"
)

// MaxWrong wrong guesses complete the drawing and lose the game.
const MaxWrong = 6

var themes = map[string][]string{
	"Science":   {"GRAVITY", "ATOM", "ENERGY", "QUANTUM", "NEURON"},
	"Sports":    {"FOOTBALL", "BASKETBALL", "CRICKET", "TENNIS", "BASEBALL"},
	"Geography": {"MOUNTAIN", "RIVER", "COUNTRY", "CITY", "OCEAN"},
	"Animals":   {"ELEPHANT", "GIRAFFE", "RHINOCEROS", "KANGAROO", "TIGER"},
}

// Themes lists the theme names in menu order.
func Themes() []string {
	return []string{"Science", "Sports", "Geography", "Animals"}
}

func Words(theme string) ([]string, bool) {
	words, ok := themes[theme]
	return slices.Clone(words), ok
}

type Status int8

const (
	Playing Status = iota
	Won
	Lost
)

type Game struct {
	Theme  string
	Word   string
	Wrong  int
	Status Status

	guessed map[rune]bool // letter -> in word
}

// New picks a random word from theme, or from a random theme when theme
// is empty.
func New(theme string, r *rand.Rand) (*Game, error) {
	if theme == "" {
		names := Themes()
		theme = names[r.IntN(len(names))]
	}
	words, ok := themes[theme]
	if !ok {
		return nil, fmt.Errorf("unknown hangman theme %q", theme)
	}
	g := NewWithWord(words[r.IntN(len(words))])
	g.Theme = theme
	return g, nil
}

func NewWithWord(word string) *Game {
	return &Game{
		Word:    strings.ToUpper(word),
		guessed: make(map[rune]bool),
	}
}

// Guess tries a letter. Letters already tried, non-letters and guesses
// after the game is over are ignored; the result reports whether the
// guess counted.
func (g *Game) Guess(letter rune) bool {
	if g.Status != Playing || !unicode.IsLetter(letter) {
		return false
	}
	letter = unicode.ToUpper(letter)
	if _, ok := g.guessed[letter]; ok {
		return false
	}

	correct := strings.ContainsRune(g.Word, letter)
	g.guessed[letter] = correct
	if !correct {
		g.Wrong++
	}

	switch {
	case g.Wrong >= MaxWrong:
		g.Status = Lost
	case g.solved():
		g.Status = Won
	}
	return true
}

func (g *Game) solved() bool {
	for _, r := range g.Word {
		if !g.guessed[r] {
			return false
		}
	}
	return true
}

// Tried reports whether letter was guessed and whether it was in the word.
func (g *Game) Tried(letter rune) (tried, correct bool) {
	correct, tried = g.guessed[unicode.ToUpper(letter)]
	return
}

// Masked renders the word with unguessed letters as underscores.
func (g *Game) Masked() string {
	parts := make([]string, 0, len(g.Word))
	for _, r := range g.Word {
		if g.guessed[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}
