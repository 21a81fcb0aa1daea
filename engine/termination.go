package engine

import (
	"fmt"

	"example.com/arena/game"

	"github.com/rs/zerolog/log"
)

// checkTermination ends the game on the first condition that holds: a
// winning score (player 1 first), a sole survivor, mutual elimination, then
// the turn limit.
func (e *Engine) checkTermination() {
	w := e.world
	p := &w.Players

	for i := range p {
		if p[i].Score >= e.rules.WinScore {
			e.finish(i, fmt.Sprintf("%s Team wins by score!", p[i].Team))
			return
		}
	}

	switch {
	case p[0].Alive != p[1].Alive:
		survivor := 0
		if p[1].Alive {
			survivor = 1
		}
		e.finish(survivor, fmt.Sprintf("%s Team wins by survival!", p[survivor].Team))
	case !p[0].Alive && !p[1].Alive:
		e.finish(game.None, "Draw! Both players eliminated!")
	case w.TurnCount >= e.rules.MaxTurns:
		switch {
		case p[0].Score > p[1].Score:
			e.finish(0, fmt.Sprintf("%s Team wins by score after %d turns!", p[0].Team, e.rules.MaxTurns))
		case p[1].Score > p[0].Score:
			e.finish(1, fmt.Sprintf("%s Team wins by score after %d turns!", p[1].Team, e.rules.MaxTurns))
		default:
			e.finish(game.None, fmt.Sprintf("Draw after %d turns!", e.rules.MaxTurns))
		}
	}
}

func (e *Engine) finish(winner int, reason string) {
	w := e.world
	w.Active = false
	w.Winner = winner
	w.Reason = reason
	log.Info().Msgf("game over after %d turns: %s", w.TurnCount, reason)
}
