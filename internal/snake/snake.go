package snake

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

type Point struct {
	X, Y int
}

func (p Point) add(d Direction) Point {
	switch d {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Left:
		p.X--
	case Right:
		p.X++
	}
	return p
}

type Direction int8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Fruit values, keyed by the color the renderer draws them with.
var FruitPoints = []int{10, 15, 20}

const (
	initialLength  = 4
	pointsPerLevel = 100
)

type Params struct {
	Width, Height int
	InitialSpeed  int
	MaxSpeed      int
	// TickRate is the number of Tick calls per second; speed is in moves
	// per second.
	TickRate int
}

type Status int8

const (
	Playing Status = iota
	Lost
)

type Game struct {
	Width, Height int
	Body          []Point // head first
	Fruit         Point
	FruitValue    int
	Obstacles     []Point
	Score         int
	Level         int
	Speed         int
	Status        Status

	params  Params
	rnd     *rand.Rand
	heading Direction
	next    Direction
	ticks   int
}

func New(p Params, r *rand.Rand) (*Game, error) {
	switch {
	case p.Width < 2*initialLength || p.Height < 3:
		return nil, fmt.Errorf("snake board %dx%d is too small", p.Width, p.Height)
	case p.InitialSpeed <= 0 || p.MaxSpeed < p.InitialSpeed:
		return nil, fmt.Errorf("invalid snake speeds %d..%d", p.InitialSpeed, p.MaxSpeed)
	case p.TickRate <= 0:
		return nil, fmt.Errorf("invalid tick rate %d", p.TickRate)
	}

	g := &Game{
		Width:   p.Width,
		Height:  p.Height,
		Level:   1,
		Speed:   p.InitialSpeed,
		params:  p,
		rnd:     r,
		heading: Right,
		next:    Right,
	}
	for i := range initialLength {
		g.Body = append(g.Body, Point{X: initialLength - i, Y: p.Height / 2})
	}
	g.placeObstacles()
	g.placeFruit()
	return g, nil
}

func (g *Game) InBounds(p Point) bool {
	return 0 <= p.X && p.X < g.Width && 0 <= p.Y && p.Y < g.Height
}

func (g *Game) Head() Point {
	return g.Body[0]
}

// Turn queues a direction for the next move. Reversing onto the body is
// ignored.
func (g *Game) Turn(d Direction) {
	if d == g.heading.opposite() {
		return
	}
	g.next = d
}

func (g *Game) ticksPerMove() int {
	return max(1, g.params.TickRate/g.Speed)
}

// Tick advances the clock and moves the snake when a move is due.
func (g *Game) Tick() {
	if g.Status != Playing {
		return
	}
	g.ticks++
	if g.ticks >= g.ticksPerMove() {
		g.ticks = 0
		g.Step()
	}
}

// Step moves the snake one cell.
func (g *Game) Step() {
	if g.Status != Playing {
		return
	}
	g.heading = g.next
	head := g.Head().add(g.heading)

	eats := head == g.Fruit
	body := g.Body
	if !eats {
		body = body[:len(body)-1]
	}
	if !g.InBounds(head) || slices.Contains(body, head) || slices.Contains(g.Obstacles, head) {
		g.Status = Lost
		return
	}
	g.Body = append([]Point{head}, body...)

	if eats {
		g.Score += g.FruitValue
		if g.Score >= g.Level*pointsPerLevel {
			g.levelUp()
		}
		g.placeFruit()
	}
}

func (g *Game) levelUp() {
	g.Level++
	g.Speed = min(g.params.MaxSpeed, g.Speed+1)
	g.placeObstacles()
}

func (g *Game) occupied(p Point) bool {
	return slices.Contains(g.Body, p) || slices.Contains(g.Obstacles, p)
}

// free returns a random cell not covered by the snake or an obstacle and
// not within two cells of the head.
func (g *Game) free() (Point, bool) {
	var cells []Point
	head := g.Head()
	for y := range g.Height {
		for x := range g.Width {
			p := Point{X: x, Y: y}
			if g.occupied(p) || p == g.Fruit {
				continue
			}
			if abs(p.X-head.X) <= 2 && abs(p.Y-head.Y) <= 2 {
				continue
			}
			cells = append(cells, p)
		}
	}
	if len(cells) == 0 {
		return Point{}, false
	}
	return cells[g.rnd.IntN(len(cells))], true
}

func (g *Game) placeFruit() {
	g.Fruit = Point{X: -1, Y: -1}
	if p, ok := g.free(); ok {
		g.Fruit = p
	}
	g.FruitValue = FruitPoints[g.rnd.IntN(len(FruitPoints))]
}

func (g *Game) placeObstacles() {
	g.Obstacles = g.Obstacles[:0]
	for range 5 + 2*g.Level {
		p, ok := g.free()
		if !ok {
			return
		}
		g.Obstacles = append(g.Obstacles, p)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
