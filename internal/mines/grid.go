package mines

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden CellState = iota
	Flagged
	Revealed
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "CellState(" + strconv.Itoa(int(s)) + ")"
	}
}

// Display is what a renderer should draw for a cell.
type Display int8

const (
	Unknown       Display = -2
	Flag          Display = -1
	CorrectFlag   Display = 64 // post-game-over
	ExplodedMine  Display = 65
	WrongFlag     Display = 66
	UnflaggedMine Display = 67
	// 0-8 for an open cell with given number of mined neighbors
)

func (d Display) String() string {
	switch {
	case d == Unknown:
		return "."
	case d == Flag:
		return "F"
	case d == CorrectFlag:
		return "*"
	case d == ExplodedMine:
		return "X"
	case d == WrongFlag:
		return "x"
	case d == UnflaggedMine:
		return "m"
	case 0 <= d && d <= 8:
		return strconv.Itoa(int(d))
	default:
		return "!"
	}
}

type Cell struct {
	X, Y     int
	Mine     bool
	Adjacent int8
	State    CellState

	// set by the terminal reveal-all, display only
	wasFlagged bool
	exploded   bool
}

func (c Cell) Display() Display {
	switch c.State {
	case Hidden:
		return Unknown
	case Flagged:
		return Flag
	}
	switch {
	case c.exploded:
		return ExplodedMine
	case c.Mine && c.wasFlagged:
		return CorrectFlag
	case c.Mine:
		return UnflaggedMine
	case c.wasFlagged:
		return WrongFlag
	default:
		return Display(c.Adjacent)
	}
}

// Grid is a fixed-size board stored row-major, index y*Width+x.
type Grid struct {
	Width, Height int
	cells         []Cell
}

func newGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range g.cells {
		g.cells[i].X = i % width
		g.cells[i].Y = i / width
	}
	return g
}

func (g *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < g.Width && 0 <= y && y < g.Height
}

// Cell returns a copy of the cell at x,y. ok is false for out-of-grid
// coordinates.
func (g *Grid) Cell(x, y int) (c Cell, ok bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.Width+x], true
}

func (g *Grid) at(x, y int) *Cell {
	return &g.cells[y*g.Width+x]
}

// neighbors yields every in-bounds cell of the Moore neighborhood of x,y,
// excluding x,y itself.
func (g *Grid) neighbors(x, y int) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if !g.InBounds(xx, yy) {
					continue
				}
				if !yield(g.at(xx, yy)) {
					return
				}
			}
		}
	}
}

func (g *Grid) MineCount() (n int) {
	for i := range g.cells {
		if g.cells[i].Mine {
			n++
		}
	}
	return
}

func (g *Grid) count(s CellState) (n int) {
	for i := range g.cells {
		if g.cells[i].State == s {
			n++
		}
	}
	return
}

func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.Height {
		for x := range g.Width {
			fmt.Fprint(&b, g.at(x, y).Display().String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
