// Package pathfinder finds shortest 4-connected paths on a unit-cost grid.
package pathfinder

import (
	"container/heap"

	"example.com/arena/game"
)

type entry struct {
	pos game.Position
	g   int // Steps from start
	h   int // Manhattan distance to goal
	seq int // Push order, last tie-break
}

func (e entry) f() int { return e.g + e.h }

// openList is a min-heap on f, then h, then push order, so equal inputs
// always expand in the same order.
type openList []entry

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	if fi, fj := ol[i].f(), ol[j].f(); fi != fj {
		return fi < fj
	}
	if ol[i].h != ol[j].h {
		return ol[i].h < ol[j].h
	}
	return ol[i].seq < ol[j].seq
}
func (ol openList) Swap(i, j int)      { ol[i], ol[j] = ol[j], ol[i] }
func (ol *openList) Push(x interface{}) { *ol = append(*ol, x.(entry)) }
func (ol *openList) Pop() interface{} {
	old := *ol
	e := old[len(old)-1]
	*ol = old[:len(old)-1]
	return e
}

// FindPath returns the shortest path from start to goal, both included.
// It returns [start] when start == goal or when goal is unreachable.
func FindPath(start, goal game.Position, grid game.Grid) []game.Position {
	if start == goal {
		return []game.Position{start}
	}

	seq := 0
	open := &openList{{pos: start, h: game.Manhattan(start, goal)}}
	bestF := map[game.Position]int{start: game.Manhattan(start, goal)}
	cameFrom := make(map[game.Position]game.Position)
	closed := make(map[game.Position]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(entry)
		// Dominated duplicate of a finalized cell
		if closed[cur.pos] {
			continue
		}
		closed[cur.pos] = true

		if cur.pos == goal {
			return reconstruct(cameFrom, start, goal)
		}

		for _, n := range grid.Neighbors(cur.pos) {
			if grid.Obstacles[n] || closed[n] {
				continue
			}
			next := entry{pos: n, g: cur.g + 1, h: game.Manhattan(n, goal)}
			if f, ok := bestF[n]; ok && f <= next.f() {
				continue
			}
			seq++
			next.seq = seq
			bestF[n] = next.f()
			cameFrom[n] = cur.pos
			heap.Push(open, next)
		}
	}

	return []game.Position{start}
}

func reconstruct(cameFrom map[game.Position]game.Position, start, goal game.Position) []game.Position {
	path := []game.Position{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// NextMove returns the first step from start toward goal, or start if
// there is no path or start is the goal.
func NextMove(start, goal game.Position, grid game.Grid) game.Position {
	path := FindPath(start, goal, grid)
	if len(path) > 1 {
		return path[1]
	}
	return start
}
