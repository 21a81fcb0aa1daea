package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFreeCell(t *testing.T) {
	t.Run("preferred cell is free", func(t *testing.T) {
		grid := NewGrid(10, nil)

		got := FindFreeCell(Position{X: 5, Y: 5}, grid, map[Position]bool{})

		require.Equal(t, Position{X: 5, Y: 5}, got)
	})

	t.Run("occupied preferred cell falls back to the first ring cell", func(t *testing.T) {
		grid := NewGrid(10, nil)
		occupied := map[Position]bool{{X: 5, Y: 5}: true}

		got := FindFreeCell(Position{X: 5, Y: 5}, grid, occupied)

		require.Equal(t, Position{X: 4, Y: 4}, got, "Ring search scans dx then dy from -radius")
	})

	t.Run("obstacles count as taken", func(t *testing.T) {
		grid := NewGrid(10, []Position{{X: 0, Y: 0}})

		got := FindFreeCell(Position{X: 0, Y: 0}, grid, map[Position]bool{})

		require.Equal(t, Position{X: 0, Y: 1}, got, "Out-of-bounds ring cells should be skipped")
	})

	t.Run("full scan when rings are exhausted", func(t *testing.T) {
		grid := NewGrid(12, nil)
		occupied := map[Position]bool{}
		for x := 0; x <= 4; x++ {
			for y := 0; y <= 4; y++ {
				occupied[Position{X: x, Y: y}] = true
			}
		}

		got := FindFreeCell(Position{X: 0, Y: 0}, grid, occupied)

		require.Equal(t, Position{X: 0, Y: 5}, got, "Full scan walks x outer, y inner")
	})

	t.Run("saturated grid returns preferred", func(t *testing.T) {
		grid := NewGrid(2, []Position{{X: 0, Y: 0}, {X: 1, Y: 1}})
		occupied := map[Position]bool{{X: 0, Y: 1}: true, {X: 1, Y: 0}: true}

		got := FindFreeCell(Position{X: 1, Y: 0}, grid, occupied)

		require.Equal(t, Position{X: 1, Y: 0}, got, "Cell starvation should not fail")
	})
}
