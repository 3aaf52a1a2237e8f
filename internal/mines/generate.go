package mines

import (
	"fmt"
	"math/rand/v2"
)

// Generate places p.MineCount mines uniformly at random without replacement
// and computes every cell's adjacent mine count.
func Generate(p GameParams, r *rand.Rand) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	width, height, mineCount, _ := p.Unpack()

	/*
	 * Partial Fisher-Yates: after k steps the tail of candidates holds a
	 * uniformly chosen k-subset of all cell indexes.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		k--
		candidates[i], candidates[k] = candidates[k], candidates[i]
	}

	return buildGrid(width, height, candidates[k:]), nil
}

// GridFromMines builds a grid with mines at the given row-major indexes.
func GridFromMines(width, height int, mines []int) (*Grid, error) {
	p := GameParams{Width: width, Height: height, MineCount: len(mines)}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	seen := make(map[int]bool, len(mines))
	for _, i := range mines {
		if i < 0 || i >= width*height {
			return nil, &ConfigurationError{
				Width: width, Height: height, MineCount: len(mines),
				Reason: fmt.Sprintf("mine index %d out of range", i),
			}
		}
		if seen[i] {
			return nil, &ConfigurationError{
				Width: width, Height: height, MineCount: len(mines),
				Reason: fmt.Sprintf("duplicate mine index %d", i),
			}
		}
		seen[i] = true
	}
	return buildGrid(width, height, mines), nil
}

func buildGrid(width, height int, mines []int) *Grid {
	g := newGrid(width, height)
	for _, i := range mines {
		g.cells[i].Mine = true
	}
	for i := range g.cells {
		c := &g.cells[i]
		if c.Mine {
			continue
		}
		for n := range g.neighbors(c.X, c.Y) {
			if n.Mine {
				c.Adjacent++
			}
		}
	}
	return g
}
