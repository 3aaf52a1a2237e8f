package config

import "github.com/vancomm/arcade-classics/internal/mines"

func (m Minesweeper) GameParams() (mines.GameParams, error) {
	rule, err := mines.ParseRule(m.Rule)
	if err != nil {
		return mines.GameParams{}, err
	}
	p := mines.GameParams{
		Width:     m.Width,
		Height:    m.Height,
		MineCount: m.MineCount,
		Rule:      rule,
	}
	return p, p.Validate()
}
