package engine

import (
	"example.com/arena/fuzzy"
	"example.com/arena/game"
	"example.com/arena/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine owns one World and advances it a tick at a time. Between ticks the
// World is always settled.
type Engine struct {
	rules         game.Config
	rng           game.Rand
	world         *game.World
	fuzzyRules    []fuzzy.Rule
	searchOptions []searcher.Option
	decider       *fuzzy.Engine
	minimax       *searcher.Minimax
}

// WithWorld starts the engine from a prepared world instead of a random layout.
func WithWorld(w *game.World) Option {
	return func(e *Engine) {
		e.world = w
	}
}

// WithMetrics makes the enemy search collect node and cutoff counts.
func WithMetrics() Option {
	return func(e *Engine) {
		e.searchOptions = append(e.searchOptions, searcher.WithMetrics())
	}
}

// WithSearch passes extra options to the enemy search, applied after the
// depth and breadth taken from the rules.
func WithSearch(options ...searcher.Option) Option {
	return func(e *Engine) {
		e.searchOptions = append(e.searchOptions, options...)
	}
}

// WithRules replaces the players' fuzzy rule base.
func WithRules(rules []fuzzy.Rule) Option {
	return func(e *Engine) {
		e.fuzzyRules = rules
	}
}

// New validates the rules and builds an engine. Without WithWorld a fresh
// world is laid out from rng.
func New(rules game.Config, rng game.Rand, options ...Option) (*Engine, error) {
	if rng == nil {
		panic("engine needs a random source")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		rules:      rules,
		rng:        rng,
		fuzzyRules: fuzzy.DefaultRules(),
		searchOptions: []searcher.Option{
			searcher.WithDepth(rules.SearchDepth),
			searcher.WithBreadth(rules.SearchBreadth),
		},
	}
	for _, option := range options {
		option(e)
	}

	decider, err := fuzzy.NewEngine(e.fuzzyRules, rules.ScoreNormalizer)
	if err != nil {
		return nil, err
	}
	e.decider = decider
	e.minimax = searcher.NewMinimax(e.searchOptions...)

	if e.world == nil {
		e.world = game.NewWorld(rules, rng)
	}
	return e, nil
}

// ExecuteTurn advances the game by one tick. It does nothing once the game
// is over.
func (e *Engine) ExecuteTurn() {
	w := e.world
	if !w.Active {
		return
	}

	for i := range w.Players {
		e.updatePlayer(i)
	}
	e.updateAllies()
	e.updateEnemies()

	game.ResolveCollisions(w, e.rules)
	if spawned := w.TrySpawnResources(e.rules, e.rng); spawned > 0 {
		log.Debug().Msgf("turn %d: spawned %d resources", w.TurnCount+1, spawned)
	}

	w.TurnCount++
	e.checkTermination()
}

// Reset replaces the world with a fresh random layout.
func (e *Engine) Reset() {
	e.world = game.NewWorld(e.rules, e.rng)
	log.Debug().Msg("world reset")
}

func (e *Engine) IsActive() bool {
	return e.world.Active
}

func (e *Engine) Snapshot() game.Snapshot {
	return e.world.Snapshot()
}

// Run executes ticks until the game is over and returns the final state.
// MaxTurns bounds the number of ticks.
func (e *Engine) Run() game.Snapshot {
	for e.world.Active {
		e.ExecuteTurn()
		if t := e.world.TurnCount; t%10 == 0 && e.world.Active {
			p := e.world.Players
			log.Debug().Msgf("turn %d: %s %d hp %d pts, %s %d hp %d pts",
				t, p[0].Team, p[0].Health, p[0].Score, p[1].Team, p[1].Health, p[1].Score)
		}
	}
	return e.Snapshot()
}

// SearchMetrics returns the enemy search totals, zero unless WithMetrics
// was given.
func (e *Engine) SearchMetrics() searcher.SearchMetric {
	return e.minimax.Metrics()
}
