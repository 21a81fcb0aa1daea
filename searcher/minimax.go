package searcher

import (
	"math"

	"example.com/arena/game"
)

type Option func(m *Minimax)

// Minimax picks an enemy's target and move with a fixed-depth minimax search
// and alpha-beta pruning. The enemy maximizes; both players minimize jointly.
type Minimax struct {
	depth   int
	breadth int
	prune   bool
	metrics Collector
	last    SearchMetric
}

// Target is a player as seen by the search.
type Target struct {
	Position game.Position
	Health   int
}

type node struct {
	enemy   game.Position
	players [2]Target
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

func WithBreadth(breadth int) Option {
	return func(m *Minimax) {
		if breadth > 0 {
			m.breadth = breadth
		}
	}
}

// WithPruning toggles alpha-beta cutoffs. Disabled, alpha and beta stay at
// -inf and +inf for the whole search.
func WithPruning(enabled bool) Option {
	return func(m *Minimax) {
		m.prune = enabled
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:   DefaultDepth,
		breadth: DefaultBreadth,
		prune:   true,
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Evaluate scores an enemy at enemy targeting a player; closer and weaker
// players score higher.
func Evaluate(enemy, player game.Position, health int) float64 {
	return -float64(game.Manhattan(enemy, player)) + float64(100-health)/10
}

// ChooseTargetAndMove returns the position of the better target (ties go to
// p1) and the enemy's next cell from a full search.
func (m *Minimax) ChooseTargetAndMove(enemy game.Position, p1, p2 Target, grid game.Grid) (target, move game.Position) {
	target = p2.Position
	if Evaluate(enemy, p1.Position, p1.Health) >= Evaluate(enemy, p2.Position, p2.Health) {
		target = p1.Position
	}
	_, move = m.Search(enemy, p1, p2, grid)
	return target, move
}

// Search runs the search from the enemy's move and returns the minimax value
// and the enemy's best move.
func (m *Minimax) Search(enemy game.Position, p1, p2 Target, grid game.Grid) (float64, game.Position) {
	m.metrics.Start()
	value, move := m.search(node{enemy: enemy, players: [2]Target{p1, p2}}, grid, m.depth, math.Inf(-1), math.Inf(1), true)
	m.last = m.metrics.Complete()
	return value, move
}

// Metrics returns the totals of all searches run so far, zero unless
// WithMetrics was given.
func (m *Minimax) Metrics() SearchMetric {
	return m.last
}

func (m *Minimax) search(n node, grid game.Grid, depth int, alpha, beta float64, maximizing bool) (float64, game.Position) {
	m.metrics.AddNode()

	if depth == 0 {
		m.metrics.AddLeaf()
		score1 := Evaluate(n.enemy, n.players[0].Position, n.players[0].Health)
		score2 := Evaluate(n.enemy, n.players[1].Position, n.players[1].Health)
		return max(score1, score2), n.enemy
	}

	if maximizing {
		best := math.Inf(-1)
		bestMove := n.enemy
		for _, move := range grid.ValidMoves(n.enemy) {
			value, _ := m.search(node{enemy: move, players: n.players}, grid, depth-1, alpha, beta, false)
			if value > best {
				best = value
				bestMove = move
			}
			if m.prune {
				alpha = max(alpha, value)
				if beta <= alpha {
					m.metrics.AddCutoff()
					break
				}
			}
		}
		return best, bestMove
	}

	best := math.Inf(1)
	escapes1 := m.escapes(n.players[0].Position, grid)
	escapes2 := m.escapes(n.players[1].Position, grid)
	for _, e1 := range escapes1 {
		for _, e2 := range escapes2 {
			child := node{enemy: n.enemy, players: n.players}
			child.players[0].Position = e1
			child.players[1].Position = e2
			value, _ := m.search(child, grid, depth-1, alpha, beta, true)
			best = min(best, value)
			if m.prune {
				beta = min(beta, value)
				if beta <= alpha {
					m.metrics.AddCutoff()
					return best, n.enemy
				}
			}
		}
	}
	return best, n.enemy
}

func (m *Minimax) escapes(p game.Position, grid game.Grid) []game.Position {
	moves := grid.ValidMoves(p)
	if len(moves) > m.breadth {
		moves = moves[:m.breadth]
	}
	return moves
}
