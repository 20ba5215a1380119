package metrics

import (
	"encoding/csv"
	"os"
	"parques/game"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counting episodes and playouts", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 50)
		for i := 0; i < 3; i++ {
			c.AddEpisode()
		}
		c.AddFullPlayout()

		got := c.Complete()
		require.Equal(t, 4, got.Goroutines)
		require.Equal(t, 50, got.Cutoff)
		require.Equal(t, 3, got.Episodes)
		require.Equal(t, 1, got.FullPlayouts)
	})

	t.Run("resetting on start", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 10)
		c.AddEpisode()
		c.Start(1, 10)
		require.Zero(t, c.Complete().Episodes)
	})

	t.Run("collecting nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4, 50)
		c.AddEpisode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "strategy")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "strategy"), filepath.Dir(w.Dir()))

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Strategy: "random"},
			{ID: 2, Strategy: "mcts", Evaluate: "progress", Goroutines: 4, Duration: 10 * time.Millisecond, Cutoff: 50},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"2", "mcts", "progress", "4", "10ms", "0", "50"}, rows[2])
	})

	t.Run("writing game records", func(t *testing.T) {
		id := uuid.New()
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{
			{
				Game:   1,
				Lineup: [game.NumColors]int{1, 2, 1, 2},
				GameMetric: GameMetric{
					ID:            id,
					StartingColor: game.Green,
					Winner:        game.Blue,
					Finished:      true,
					StartTime:     start,
					EndTime:       start.Add(time.Second),
					Duration:      time.Second,
					Rolls:         120,
					Moves:         80,
					Captures:      5,
					Arrivals:      9,
				},
			},
			{Game: 2, GameMetric: GameMetric{ID: id}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"game", "id", "red", "blue", "green", "yellow"}, rows[0][:6])
		require.Equal(t, id.String(), rows[1][1])
		require.Equal(t, "green", rows[1][6])
		require.Equal(t, "blue", rows[1][7])
		require.Equal(t, "120", rows[1][11])
		require.Empty(t, rows[2][7], "Unfinished games have no winner")
	})

	t.Run("writing move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 3, Player: game.Yellow, SearchMetric: SearchMetric{Episodes: 200}}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "yellow", rows[1][2])
		require.Equal(t, "200", rows[1][5])
	})
}
