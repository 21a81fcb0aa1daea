package game

import "example.com/arena/utils"

// Position is a grid cell. Ordering is by X, then Y.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) Less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Manhattan returns |dx| + |dy| between two cells.
func Manhattan(a, b Position) int {
	return utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y)
}

// Directions in scan order: up, down, right, left. The order decides which
// moves survive a capped branching factor during search.
var Directions = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Grid is the static square board: its side length and impassable cells.
type Grid struct {
	Size      int
	Obstacles map[Position]bool
}

func NewGrid(size int, obstacles []Position) Grid {
	g := Grid{Size: size, Obstacles: make(map[Position]bool, len(obstacles))}
	for _, o := range obstacles {
		g.Obstacles[o] = true
	}
	return g
}

func (g Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

func (g Grid) Passable(p Position) bool {
	return g.InBounds(p) && !g.Obstacles[p]
}

// Clamp moves p onto the nearest in-bounds cell.
func (g Grid) Clamp(p Position) Position {
	return Position{X: utils.Clamp(p.X, 0, g.Size-1), Y: utils.Clamp(p.Y, 0, g.Size-1)}
}

// Neighbors returns the in-bounds 4-connected cells of p in Directions order.
// Obstacles are not filtered.
func (g Grid) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, len(Directions))
	for _, d := range Directions {
		n := p.Add(d[0], d[1])
		if g.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// ValidMoves returns the passable neighbors of p, or p itself if there are none.
func (g Grid) ValidMoves(p Position) []Position {
	moves := make([]Position, 0, len(Directions))
	for _, n := range g.Neighbors(p) {
		if !g.Obstacles[n] {
			moves = append(moves, n)
		}
	}
	if len(moves) == 0 {
		moves = append(moves, p)
	}
	return moves
}

// Rand is the pseudo-random source used for setup and respawn.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
