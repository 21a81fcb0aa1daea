package fuzzy

import (
	"errors"
	"fmt"

	"example.com/arena/game"
)

// Engine picks a player's action by Mamdani inference over a compiled rule
// base: min for AND, max to aggregate rules per action, arg-max to decide.
type Engine struct {
	rules           []Rule
	scoreNormalizer float64
}

// NewEngine compiles every rule condition. Score is normalized against
// scoreNormalizer before fuzzification.
func NewEngine(rules []Rule, scoreNormalizer float64) (*Engine, error) {
	if scoreNormalizer <= 0 {
		return nil, fmt.Errorf("score normalizer must be positive, got %v", scoreNormalizer)
	}
	if len(rules) == 0 {
		return nil, errors.New("empty rule base")
	}
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled, scoreNormalizer: scoreNormalizer}, nil
}

// Fuzzify turns the crisp readings into the environment the rules run on.
func (e *Engine) Fuzzify(health, score, enemyDistance, resourceDistance float64) Env {
	return Env{
		Health:   HealthLevels(health),
		Score:    ScoreLevels(score, e.scoreNormalizer),
		Enemy:    DistanceLevels(enemyDistance),
		Resource: DistanceLevels(resourceDistance),
	}
}

// Strengths returns the aggregated strength of every action, indexed by
// game.Action.
func (e *Engine) Strengths(health, score, enemyDistance, resourceDistance float64) [game.NumActions]float64 {
	env := e.Fuzzify(health, score, enemyDistance, resourceDistance)
	var strengths [game.NumActions]float64
	for _, r := range e.rules {
		s, err := r.strength(env)
		if err != nil {
			// Conditions are type checked against Env at compile time
			panic(err)
		}
		strengths[r.Action] = max(strengths[r.Action], s)
	}
	return strengths
}

// Decide returns the action with the strictly greatest strength. Ties keep
// the earlier action in game.Actions order, so all-zero strengths flee.
func (e *Engine) Decide(health, score, enemyDistance, resourceDistance float64) game.Action {
	strengths := e.Strengths(health, score, enemyDistance, resourceDistance)
	best := game.Actions[0]
	for _, a := range game.Actions[1:] {
		if strengths[a] > strengths[best] {
			best = a
		}
	}
	return best
}
