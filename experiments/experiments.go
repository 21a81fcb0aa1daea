package experiments

import (
	"fmt"

	"example.com/arena/engine"
	"example.com/arena/experiments/metrics"
	"example.com/arena/game"
	"example.com/arena/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const NumGames = 20 // Per search config

// RunDepthExperiment plays the same seeded games at increasing enemy search
// depths and writes the results under root.
func RunDepthExperiment(rules game.Config, games int, root string) (string, error) {
	configs := []metrics.SearchConfig{
		{ID: 1, Depth: 1, Breadth: rules.SearchBreadth, Pruning: true},
		{ID: 2, Depth: 2, Breadth: rules.SearchBreadth, Pruning: true},
		{ID: 3, Depth: 3, Breadth: rules.SearchBreadth, Pruning: true},
		{ID: 4, Depth: 4, Breadth: rules.SearchBreadth, Pruning: true},
	}
	return runExperiment("depth", rules, configs, games, root)
}

// RunPruningExperiment plays the same seeded games with and without
// alpha-beta cutoffs. Outcomes match; node counts do not.
func RunPruningExperiment(rules game.Config, games int, root string) (string, error) {
	configs := []metrics.SearchConfig{
		{ID: 1, Depth: rules.SearchDepth, Breadth: rules.SearchBreadth, Pruning: false},
		{ID: 2, Depth: rules.SearchDepth, Breadth: rules.SearchBreadth, Pruning: true},
	}
	return runExperiment("pruning", rules, configs, games, root)
}

func runExperiment(name string, rules game.Config, configs []metrics.SearchConfig, games int, root string) (string, error) {
	if games <= 0 {
		games = NumGames
	}
	count := 0
	records := []metrics.GameRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(configs), config)

		for i := 0; i < games; i++ {
			seed := uint64(i + 1)
			record, err := runGame(rules, config, seed)
			if err != nil {
				return "", err
			}
			count++
			record.ID = count
			records = append(records, record)

			log.Info().Msgf("completed config %d game %d of %d after %d turns: %s",
				config.ID, i+1, games, record.Turns, record.Reason)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSearchConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored search configs")

	if err := writer.WriteGameRecords(records); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	return writer.Dir(), nil
}

// runGame plays one full game with enemies searching per config.
func runGame(rules game.Config, config metrics.SearchConfig, seed uint64) (metrics.GameRecord, error) {
	rules.SearchDepth = config.Depth
	rules.SearchBreadth = config.Breadth
	e, err := engine.New(rules, rand.New(rand.NewSource(seed)),
		engine.WithMetrics(),
		engine.WithSearch(searcher.WithPruning(config.Pruning)))
	if err != nil {
		return metrics.GameRecord{}, fmt.Errorf("failed to create engine: %w", err)
	}

	collector := metrics.NewCollector(seed)
	collector.Start()
	final := e.Run()

	return metrics.GameRecord{
		Config:     config.ID,
		GameMetric: collector.Complete(final),
		Search:     e.SearchMetrics(),
	}, nil
}
