package metrics

import (
	"time"

	"example.com/arena/game"
	"example.com/arena/searcher"
)

// SearchConfig is one enemy search setup under test.
type SearchConfig struct {
	ID      int
	Depth   int
	Breadth int
	Pruning bool
}

type GameMetric struct {
	Seed      uint64
	Winner    string // Team name, "" on a draw
	Reason    string
	Turns     int
	BlueScore int
	RedScore  int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type GameRecord struct {
	ID     int
	Config int // SearchConfig.ID
	GameMetric
	Search searcher.SearchMetric
}

// Collector times one game and summarizes its final state.
type Collector struct {
	seed      uint64
	startTime time.Time
}

func NewCollector(seed uint64) *Collector {
	return &Collector{seed: seed}
}

func (c *Collector) Start() {
	c.startTime = time.Now()
}

func (c *Collector) Complete(final game.Snapshot) GameMetric {
	end := time.Now()
	m := GameMetric{
		Seed:      c.seed,
		Reason:    final.Reason,
		Turns:     final.TurnCount,
		BlueScore: final.Players[0].Score,
		RedScore:  final.Players[1].Score,
		StartTime: c.startTime,
		EndTime:   end,
		Duration:  end.Sub(c.startTime),
	}
	if final.Winner != nil {
		m.Winner = final.Winner.String()
	}
	return m
}
