package arcade

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNoEntryPoint = errors.New("game has no entry point")
)

type Entry struct {
	Name string
	New  Factory
}

// Registry is an ordered, fixed table of launchable games.
type Registry struct {
	entries []Entry
}

func NewRegistry(entries ...Entry) *Registry {
	return &Registry{entries: entries}
}

// Games is the registry of every built-in game, in menu order.
func Games() *Registry {
	return NewRegistry(
		Entry{Name: "Snake", New: NewSnake},
		Entry{Name: "Minesweeper", New: NewMinesweeper},
		Entry{Name: "Memory", New: NewMemory},
		Entry{Name: "Hangman", New: NewHangman},
	)
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup finds a game by case-insensitive name.
func (r *Registry) Lookup(name string) (Factory, error) {
	for _, e := range r.entries {
		if !strings.EqualFold(e.Name, name) {
			continue
		}
		if e.New == nil {
			return nil, fmt.Errorf("%s: %w", e.Name, ErrNoEntryPoint)
		}
		return e.New, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrGameNotFound)
}
