package game

// fillResources tops up each resource kind to its cap at setup.
func (w *World) fillResources(rules Config, rng Rand) {
	occupied := w.Occupied(false)
	for _, kind := range []ResourceKind{Health, Coin} {
		for n := w.LiveCount(kind); n < rules.resourceCap(kind); n++ {
			pos := FindFreeCell(w.randomCell(rng), w.Grid, occupied)
			occupied[pos] = true
			w.Resources = append(w.Resources, Resource{Position: pos, Kind: kind})
		}
	}
}

// TrySpawnResources rolls once per kind, health packs first. A successful
// roll adds one resource of that kind if the kind is below its cap.
// It returns the number of resources spawned.
func (w *World) TrySpawnResources(rules Config, rng Rand) int {
	spawned := 0
	for _, kind := range []ResourceKind{Health, Coin} {
		if rng.Float64() >= rules.ResourceSpawnChance {
			continue
		}
		if w.LiveCount(kind) >= rules.resourceCap(kind) {
			continue
		}
		pos := FindFreeCell(w.randomCell(rng), w.Grid, w.Occupied(true))
		w.Resources = append(w.Resources, Resource{Position: pos, Kind: kind})
		spawned++
	}
	return spawned
}

func (w *World) randomCell(rng Rand) Position {
	return Position{X: rng.Intn(w.Grid.Size), Y: rng.Intn(w.Grid.Size)}
}

func (c Config) resourceCap(kind ResourceKind) int {
	if kind == Coin {
		return c.MaxCoins
	}
	return c.MaxHealthPacks
}
