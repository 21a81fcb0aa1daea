package engine

import (
	"example.com/arena/game"
	"example.com/arena/pathfinder"
	"example.com/arena/searcher"
	"example.com/arena/utils"

	"github.com/rs/zerolog/log"
)

// Cells a fleeing player aims to put between itself and the nearest enemy.
const fleeDistance = 3

func (e *Engine) updatePlayer(i int) {
	w := e.world
	p := &w.Players[i]
	if !p.Alive {
		return
	}

	enemyDistance, resourceDistance := e.rules.DistanceSentinel, e.rules.DistanceSentinel
	if j := w.NearestEnemy(p.Position); j != game.None {
		enemyDistance = game.Manhattan(p.Position, w.Enemies[j].Position)
	}
	if j := w.NearestResource(p.Position, game.Health, true); j != game.None {
		resourceDistance = game.Manhattan(p.Position, w.Resources[j].Position)
	}

	p.Action = e.decider.Decide(float64(p.Health), float64(p.Score), float64(enemyDistance), float64(resourceDistance))
	target := e.playerTarget(i, p.Action)
	p.Target = &target
	next := pathfinder.NextMove(p.Position, target, w.Grid)

	log.Debug().Msgf("turn %d: %s plays %s toward %v, moves %v -> %v",
		w.TurnCount+1, p.Team, p.Action, target, p.Position, next)
	p.Position = next
}

func (e *Engine) playerTarget(i int, action game.Action) game.Position {
	w := e.world
	pos := w.Players[i].Position
	switch action {
	case game.FleeEnemy:
		return e.fleeTarget(pos)
	case game.SeekHealth:
		return e.resourceTarget(pos, game.Health, false)
	case game.CollectCoins:
		return e.resourceTarget(pos, game.Coin, false)
	case game.AggressivePlay:
		return w.Players[w.Opponent(i)].Position
	}
	// Defensive play and collect resources both head for the nearest resource
	return e.resourceTarget(pos, game.Health, true)
}

func (e *Engine) resourceTarget(pos game.Position, kind game.ResourceKind, anyKind bool) game.Position {
	r := e.world.NearestResource(pos, kind, anyKind)
	if r == game.None {
		return pos
	}
	return e.world.Resources[r].Position
}

// fleeTarget points fleeDistance cells away from the nearest enemy along the
// axis of greater separation. When the grid edge clamps that back onto pos,
// the other axis is tried instead.
func (e *Engine) fleeTarget(pos game.Position) game.Position {
	w := e.world
	nearest := w.NearestEnemy(pos)
	if nearest == game.None {
		return pos
	}
	enemy := w.Enemies[nearest].Position
	dx, dy := pos.X-enemy.X, pos.Y-enemy.Y
	size := w.Grid.Size

	var primary, secondary game.Position
	if utils.Abs(dx) > utils.Abs(dy) {
		primary = pos.Add(utils.Sign(dx)*fleeDistance, 0)
		secondary = pos.Add(0, away(dy, pos.Y, size)*fleeDistance)
	} else {
		step := -1
		if dy > 0 {
			step = 1
		}
		primary = pos.Add(0, step*fleeDistance)
		secondary = pos.Add(away(dx, pos.X, size)*fleeDistance, 0)
	}

	for _, target := range []game.Position{primary, secondary} {
		if target = w.Grid.Clamp(target); target != pos {
			return target
		}
	}
	return pos
}

// away is the unit step increasing an offset d from an enemy. A zero offset
// steps toward the larger side of the grid from coord.
func away(d, coord, size int) int {
	if d != 0 {
		return utils.Sign(d)
	}
	if coord < size/2 {
		return 1
	}
	return -1
}

func (e *Engine) updateAllies() {
	w := e.world
	for i := range w.Allies {
		a := &w.Allies[i]
		a.Target = w.NearestResource(a.Position, game.Health, true)
		if a.Target == game.None {
			continue
		}
		a.Position = pathfinder.NextMove(a.Position, w.Resources[a.Target].Position, w.Grid)
	}
}

func (e *Engine) updateEnemies() {
	w := e.world
	p1, p2 := &w.Players[0], &w.Players[1]
	for i := range w.Enemies {
		enemy := &w.Enemies[i]
		switch {
		case p1.Alive && p2.Alive:
			target, move := e.minimax.ChooseTargetAndMove(enemy.Position,
				searcher.Target{Position: p1.Position, Health: p1.Health},
				searcher.Target{Position: p2.Position, Health: p2.Health},
				w.Grid)
			enemy.TargetPlayer = 0
			if target != p1.Position {
				enemy.TargetPlayer = 1
			}
			enemy.Target = &target
			enemy.Position = move
		case p1.Alive || p2.Alive:
			chased := 0
			if !p1.Alive {
				chased = 1
			}
			target := w.Players[chased].Position
			enemy.TargetPlayer = chased
			enemy.Target = &target
			enemy.Position = pathfinder.NextMove(enemy.Position, target, w.Grid)
		default:
			enemy.TargetPlayer = game.None
			enemy.Target = nil
		}
	}
}
