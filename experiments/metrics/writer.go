package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"parques/game"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one automated player taking part in an experiment.
type AgentConfig struct {
	ID         int
	Strategy   string // random, greedy or mcts
	Evaluate   string // progress or safety
	Goroutines int
	Duration   time.Duration
	Episodes   int
	Cutoff     int
}

type GameRecord struct {
	Game   int
	Lineup [game.NumColors]int // AgentConfig.ID seated at each color
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.Game
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a folder for one run of the named experiment under root,
// named by the current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "evaluate", "goroutines", "duration", "episodes", "cutoff"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			config.Evaluate,
			strconv.Itoa(config.Goroutines),
			config.Duration.String(),
			strconv.Itoa(config.Episodes),
			strconv.Itoa(config.Cutoff),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"game", "id"}
	for _, c := range game.Colors {
		header = append(header, c.String())
	}
	header = append(header, "starting_color", "winner", "start_time", "end_time", "duration",
		"rolls", "moves", "captures", "arrivals", "forfeits", "extra_turns")

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{strconv.Itoa(record.Game), record.ID.String()}
		for _, id := range record.Lineup {
			row = append(row, strconv.Itoa(id))
		}
		winner := ""
		if record.Finished {
			winner = record.Winner.String()
		}
		row = append(row,
			record.StartingColor.String(),
			winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Rolls),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.Arrivals),
			strconv.Itoa(record.Forfeits),
			strconv.Itoa(record.ExtraTurns),
		)
		rows = append(rows, row)
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "goroutines", "duration", "episodes", "full_playouts", "cutoff"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.Itoa(record.Cutoff),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
