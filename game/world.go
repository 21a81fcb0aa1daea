package game

// World is the mutable state of one game instance. It is built once by
// NewWorld, mutated in place each tick, and replaced wholesale on reset.
type World struct {
	Grid      Grid       // Static board, obstacles included
	Obstacles []Position // Obstacle cells in placement order
	Players   [2]Player
	Allies    []Ally
	Enemies   []Enemy
	Resources []Resource
	TurnCount int
	Active    bool
	Winner    int    // Index into Players, or None
	Reason    string // Human-readable game over reason, "" while active
}

// NewWorld lays out a fresh random game: obstacles, players in opposite
// corners, two allies per player, enemies in the center, then resources.
func NewWorld(rules Config, rng Rand) *World {
	size := rules.GridSize
	obstacles := randomPositions(rules.MaxObstacles, size, rng)
	grid := NewGrid(size, obstacles)

	w := &World{
		Grid:      grid,
		Obstacles: obstacles,
		Active:    true,
		Winner:    None,
	}

	occupied := make(map[Position]bool)
	place := func(preferred Position) Position {
		pos := FindFreeCell(grid.Clamp(preferred), grid, occupied)
		occupied[pos] = true
		return pos
	}

	blue := place(Position{X: 2, Y: 2})
	red := place(Position{X: size - 3, Y: size - 3})
	w.Players[0] = NewPlayer(blue, Blue, rules.MaxHealth)
	w.Players[1] = NewPlayer(red, Red, rules.MaxHealth)

	allyCells := [][2]Position{
		{{X: 1, Y: 2}, {X: 2, Y: 1}},
		{{X: size - 2, Y: size - 3}, {X: size - 3, Y: size - 2}},
	}
	for owner, cells := range allyCells {
		for _, preferred := range cells {
			w.Allies = append(w.Allies, Ally{Position: place(preferred), Owner: owner, Target: None})
		}
	}

	for i := 0; i < rules.MaxEnemies; i++ {
		w.Enemies = append(w.Enemies, Enemy{
			Position:     place(Position{X: size / 2, Y: size / 2}),
			TargetPlayer: None,
		})
	}

	w.fillResources(rules, rng)
	return w
}

// randomPositions draws up to count distinct cells, giving up after count*10 draws.
func randomPositions(count, size int, rng Rand) []Position {
	seen := make(map[Position]bool, count)
	positions := make([]Position, 0, count)
	for attempts := 0; len(positions) < count && attempts < count*10; attempts++ {
		pos := Position{X: rng.Intn(size), Y: rng.Intn(size)}
		if !seen[pos] {
			seen[pos] = true
			positions = append(positions, pos)
		}
	}
	return positions
}

func (w *World) Opponent(i int) int {
	return 1 - i
}

// LiveCount counts uncollected resources of a kind.
func (w *World) LiveCount(kind ResourceKind) int {
	n := 0
	for _, r := range w.Resources {
		if r.Kind == kind && !r.Collected {
			n++
		}
	}
	return n
}

// Occupied returns every cell held by an obstacle or mobile entity, plus
// uncollected resources when withResources is set.
func (w *World) Occupied(withResources bool) map[Position]bool {
	occupied := make(map[Position]bool, len(w.Obstacles)+len(w.Allies)+len(w.Enemies)+2)
	for _, o := range w.Obstacles {
		occupied[o] = true
	}
	for _, p := range w.Players {
		occupied[p.Position] = true
	}
	for _, a := range w.Allies {
		occupied[a.Position] = true
	}
	for _, e := range w.Enemies {
		occupied[e.Position] = true
	}
	if withResources {
		for _, r := range w.Resources {
			if !r.Collected {
				occupied[r.Position] = true
			}
		}
	}
	return occupied
}

// NearestResource returns the index of the closest uncollected resource to
// pos, restricted to kind unless anyKind is set. Ties go to the earlier
// resource. It returns None if nothing matches.
func (w *World) NearestResource(pos Position, kind ResourceKind, anyKind bool) int {
	nearest := None
	best := 0
	for i, r := range w.Resources {
		if r.Collected || (!anyKind && r.Kind != kind) {
			continue
		}
		if d := Manhattan(pos, r.Position); nearest == None || d < best {
			nearest = i
			best = d
		}
	}
	return nearest
}

// NearestEnemy returns the index of the closest enemy to pos, or None.
func (w *World) NearestEnemy(pos Position) int {
	nearest := None
	best := 0
	for i, e := range w.Enemies {
		if d := Manhattan(pos, e.Position); nearest == None || d < best {
			nearest = i
			best = d
		}
	}
	return nearest
}
