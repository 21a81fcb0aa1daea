package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"example.com/arena/game"
	"example.com/arena/searcher"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	red := game.Red
	final := game.Snapshot{TurnCount: 12, Winner: &red, Reason: "Red Team wins by survival!"}
	final.Players[0].Score = 50
	final.Players[1].Score = 150

	c := NewCollector(4)
	c.Start()
	m := c.Complete(final)

	require.Equal(t, uint64(4), m.Seed)
	require.Equal(t, "Red", m.Winner)
	require.Equal(t, 12, m.Turns)
	require.Equal(t, 50, m.BlueScore)
	require.Equal(t, 150, m.RedScore)
	require.False(t, m.EndTime.Before(m.StartTime))

	draw := NewCollector(5).Complete(game.Snapshot{Reason: "Draw after 50 turns!"})
	require.Empty(t, draw.Winner)
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(w.Dir(), filepath.Join(root, "unit")))

	require.NoError(t, w.WriteSearchConfigs([]SearchConfig{{ID: 1, Depth: 3, Breadth: 2, Pruning: true}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID:         1,
		Config:     1,
		GameMetric: GameMetric{Seed: 9, Winner: "Blue", Reason: "Blue Team wins by score!", Turns: 30},
		Search:     searcher.SearchMetric{Searches: 120, Nodes: 4000, Leaves: 3000, Cutoffs: 80},
	}}))

	configs, err := os.ReadFile(filepath.Join(w.Dir(), "search_configs.csv"))
	require.NoError(t, err)
	require.Equal(t, "id,depth,breadth,pruning\n1,3,2,true\n", string(configs))

	records, err := os.ReadFile(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(records)), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "1,1,9,Blue,Blue Team wins by score!,30,0,0,"))
	require.True(t, strings.Contains(lines[1], ",120,4000,3000,80,"))
}
