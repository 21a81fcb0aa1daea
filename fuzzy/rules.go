package fuzzy

import (
	"fmt"

	"example.com/arena/game"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is what a rule condition sees: every input already fuzzified.
type Env struct {
	Health   Levels
	Score    Levels
	Enemy    Distances
	Resource Distances
}

// Rule maps the strength of its condition, scaled by Weight, onto Action.
// Conditions are expr sources over Env, e.g. "min(Health.Low, Enemy.Near)".
type Rule struct {
	Name      string
	Condition string
	Weight    float64
	Action    game.Action
	program   *vm.Program
}

// DefaultRules returns the stock rule base. Min is the fuzzy AND.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "flee", Condition: "min(Health.Low, Enemy.Near)", Weight: 1.5, Action: game.FleeEnemy},
		{Name: "seek-health", Condition: "min(Health.Low, Enemy.Far)", Weight: 1, Action: game.SeekHealth},
		{Name: "collect-coins", Condition: "min(Health.High, Score.Low)", Weight: 1, Action: game.CollectCoins},
		{Name: "aggressive", Condition: "min(Health.High, Score.High)", Weight: 1, Action: game.AggressivePlay},
		{Name: "defensive", Condition: "Health.Medium", Weight: 1, Action: game.DefensivePlay},
		{Name: "cautious-collect", Condition: "min(Health.Low, Enemy.Medium)", Weight: 0.7, Action: game.CollectResources},
		{Name: "collect", Condition: "min(Health.Medium, Score.Low)", Weight: 1, Action: game.CollectResources},
		{Name: "defensive-boost", Condition: "min(Enemy.Near, Health.Medium)", Weight: 1.2, Action: game.DefensivePlay},
	}
}

func compileRules(rules []Rule) ([]Rule, error) {
	compiled := make([]Rule, len(rules))
	for i, r := range rules {
		if r.Action < 0 || int(r.Action) >= game.NumActions {
			return nil, fmt.Errorf("rule %q: unknown action %d", r.Name, r.Action)
		}
		program, err := expr.Compile(r.Condition, expr.Env(Env{}), expr.AsFloat64())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = program
		compiled[i] = r
	}
	return compiled, nil
}

func (r Rule) strength(env Env) (float64, error) {
	result, err := vm.Run(r.program, env)
	if err != nil {
		return 0, fmt.Errorf("rule %q: %w", r.Name, err)
	}
	return result.(float64) * r.Weight, nil
}
