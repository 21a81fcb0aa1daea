package game

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the rules of one game instance.
type Config struct {
	GridSize              int     `yaml:"grid_size"`
	MaxObstacles          int     `yaml:"max_obstacles"`
	MaxEnemies            int     `yaml:"max_enemies"`
	MaxHealth             int     `yaml:"max_health"`
	MaxHealthPacks        int     `yaml:"max_health_packs"`
	MaxCoins              int     `yaml:"max_coins"`
	HealthPackRestore     int     `yaml:"health_pack_restore"`
	CoinValue             int     `yaml:"coin_value"`
	ResourceSpawnChance   float64 `yaml:"resource_spawn_chance"`
	WinScore              int     `yaml:"win_score"`
	MaxTurns              int     `yaml:"max_turns"`
	EnemyDamage           int     `yaml:"enemy_damage"`
	PlayerCollisionDamage int     `yaml:"player_collision_damage"`
	SearchDepth           int     `yaml:"search_depth"`
	SearchBreadth         int     `yaml:"search_breadth"`
	ScoreNormalizer       float64 `yaml:"score_normalizer"`
	DistanceSentinel      int     `yaml:"distance_sentinel"`
}

// Validate rejects configurations the core cannot run.
func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid_size must be positive, got %d", ErrInvalidConfig, c.GridSize)
	case c.MaxObstacles < 0 || c.MaxEnemies < 0 || c.MaxHealthPacks < 0 || c.MaxCoins < 0:
		return fmt.Errorf("%w: entity caps must not be negative", ErrInvalidConfig)
	case c.MaxHealth <= 0:
		return fmt.Errorf("%w: max_health must be positive, got %d", ErrInvalidConfig, c.MaxHealth)
	case c.ResourceSpawnChance < 0 || c.ResourceSpawnChance > 1:
		return fmt.Errorf("%w: resource_spawn_chance must be in [0,1], got %v", ErrInvalidConfig, c.ResourceSpawnChance)
	case c.WinScore <= 0:
		return fmt.Errorf("%w: win_score must be positive, got %d", ErrInvalidConfig, c.WinScore)
	case c.MaxTurns <= 0:
		return fmt.Errorf("%w: max_turns must be positive, got %d", ErrInvalidConfig, c.MaxTurns)
	case c.EnemyDamage < 0 || c.PlayerCollisionDamage < 0 || c.HealthPackRestore < 0 || c.CoinValue < 0:
		return fmt.Errorf("%w: damage and resource values must not be negative", ErrInvalidConfig)
	case c.SearchDepth < 0:
		return fmt.Errorf("%w: search_depth must not be negative, got %d", ErrInvalidConfig, c.SearchDepth)
	case c.SearchBreadth <= 0:
		return fmt.Errorf("%w: search_breadth must be positive, got %d", ErrInvalidConfig, c.SearchBreadth)
	case c.ScoreNormalizer <= 0:
		return fmt.Errorf("%w: score_normalizer must be positive, got %v", ErrInvalidConfig, c.ScoreNormalizer)
	case c.DistanceSentinel < 0:
		return fmt.Errorf("%w: distance_sentinel must not be negative, got %d", ErrInvalidConfig, c.DistanceSentinel)
	}
	return nil
}
