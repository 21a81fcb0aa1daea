// meta/meta.go
package meta

import (
	"fmt"
	"os"

	"example.com/arena/game"

	"gopkg.in/yaml.v3"
)

// GRID_SIZE defines the side length of the square arena.
const GRID_SIZE = 20

const (
	MAX_OBSTACLES    = 30
	MAX_ENEMIES      = 4
	MAX_HEALTH       = 100
	MAX_HEALTH_PACKS = 6
	MAX_COINS        = 6
)

const (
	HEALTH_PACK_RESTORE     = 25
	COIN_VALUE              = 50
	RESOURCE_SPAWN_CHANCE   = 0.15
	WIN_SCORE               = 500
	MAX_TURNS               = 50
	ENEMY_DAMAGE            = 20
	PLAYER_COLLISION_DAMAGE = 10
)

// MINIMAX_DEPTH defines how many plies enemies look ahead.
const MINIMAX_DEPTH = 3

// MINIMAX_BREADTH caps the escape moves considered per player.
const MINIMAX_BREADTH = 2

// DISTANCE_SENTINEL replaces the distance to an entity that does not exist.
const DISTANCE_SENTINEL = 20

func Default() game.Config {
	return game.Config{
		GridSize:              GRID_SIZE,
		MaxObstacles:          MAX_OBSTACLES,
		MaxEnemies:            MAX_ENEMIES,
		MaxHealth:             MAX_HEALTH,
		MaxHealthPacks:        MAX_HEALTH_PACKS,
		MaxCoins:              MAX_COINS,
		HealthPackRestore:     HEALTH_PACK_RESTORE,
		CoinValue:             COIN_VALUE,
		ResourceSpawnChance:   RESOURCE_SPAWN_CHANCE,
		WinScore:              WIN_SCORE,
		MaxTurns:              MAX_TURNS,
		EnemyDamage:           ENEMY_DAMAGE,
		PlayerCollisionDamage: PLAYER_COLLISION_DAMAGE,
		SearchDepth:           MINIMAX_DEPTH,
		SearchBreadth:         MINIMAX_BREADTH,
		ScoreNormalizer:       WIN_SCORE,
		DistanceSentinel:      DISTANCE_SENTINEL,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (game.Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
