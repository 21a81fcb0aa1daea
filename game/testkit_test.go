package game

// testRules mirrors the default rules without importing meta, which imports game.
func testRules() Config {
	return Config{
		GridSize:              20,
		MaxObstacles:          30,
		MaxEnemies:            4,
		MaxHealth:             100,
		MaxHealthPacks:        6,
		MaxCoins:              6,
		HealthPackRestore:     25,
		CoinValue:             50,
		ResourceSpawnChance:   0.15,
		WinScore:              500,
		MaxTurns:              50,
		EnemyDamage:           20,
		PlayerCollisionDamage: 10,
		SearchDepth:           3,
		SearchBreadth:         2,
		ScoreNormalizer:       500,
		DistanceSentinel:      20,
	}
}

// scriptedRand replays fixed draws. Exhausted draws return 0 for Intn and
// 0.99 for Float64, a roll that never passes the spawn check.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// emptyWorld builds an active world with two healthy players and nothing else.
func emptyWorld(size int, p1, p2 Position) *World {
	return &World{
		Grid:    NewGrid(size, nil),
		Players: [2]Player{NewPlayer(p1, Blue, 100), NewPlayer(p2, Red, 100)},
		Active:  true,
		Winner:  None,
	}
}
