package game

const maxRingRadius = 4

// FindFreeCell returns a passable, unoccupied cell as close to preferred as
// it can find. It tries the preferred cell, then square rings of growing
// radius around it, then a full scan of the grid. If the grid is saturated
// it gives up and returns preferred, occupied or not.
func FindFreeCell(preferred Position, grid Grid, occupied map[Position]bool) Position {
	free := func(p Position) bool {
		return grid.Passable(p) && !occupied[p]
	}

	if free(preferred) {
		return preferred
	}

	for radius := 1; radius <= maxRingRadius; radius++ {
		for dx := -radius; dx <= radius; dx++ {
			for dy := -radius; dy <= radius; dy++ {
				if p := preferred.Add(dx, dy); free(p) {
					return p
				}
			}
		}
	}

	for x := 0; x < grid.Size; x++ {
		for y := 0; y < grid.Size; y++ {
			if p := (Position{X: x, Y: y}); free(p) {
				return p
			}
		}
	}

	return preferred
}
