package game

// ResolveCollisions applies all same-cell interactions for the tick, in
// order: enemy damage, player pickups, ally pickups, player bumps.
func ResolveCollisions(w *World, rules Config) {
	players := &w.Players

	// Each enemy hits each player on its cell once per tick
	for _, e := range w.Enemies {
		for i := range players {
			if players[i].Alive && e.Position == players[i].Position {
				players[i].TakeDamage(rules.EnemyDamage)
			}
		}
	}

	// Player 1 wins a resource both players stand on
	for r := range w.Resources {
		res := &w.Resources[r]
		if res.Collected {
			continue
		}
		for i := range players {
			if players[i].Alive && res.Position == players[i].Position {
				res.Collect(&players[i], rules)
				break
			}
		}
	}

	for _, a := range w.Allies {
		for r := range w.Resources {
			res := &w.Resources[r]
			if !res.Collected && a.Position == res.Position {
				res.Collect(&players[a.Owner], rules)
			}
		}
	}

	p1, p2 := &players[0], &players[1]
	if p1.Alive && p2.Alive && p1.Position == p2.Position {
		p1.TakeDamage(rules.PlayerCollisionDamage)
		p2.TakeDamage(rules.PlayerCollisionDamage)
	}
}
