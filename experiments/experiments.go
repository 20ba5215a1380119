package experiments

import (
	"context"
	"fmt"
	"parques/agent"
	"parques/config"
	"parques/dice"
	"parques/engine"
	"parques/experiments/metrics"
	"parques/game"
	"parques/gamemaster"
	"parques/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

const TimeBudget = 10 * time.Millisecond // Per MCTS move

// Settings are shared by every game of an experiment.
type Settings struct {
	Config *config.Config
	Games  int    // Per lineup
	Seed   uint64 // Seeds dice and agents; game i of the run uses Seed+i
	OutDir string // Records are written below this folder
}

var strategyConfigs = []metrics.AgentConfig{
	{ID: 1, Strategy: "random"},
	{ID: 2, Strategy: "greedy", Evaluate: "progress"},
	{ID: 3, Strategy: "greedy", Evaluate: "safety"},
	{ID: 4, Strategy: "mcts", Evaluate: "progress", Goroutines: 4, Duration: TimeBudget, Cutoff: 40},
}

// RunStrategyExperiment seats one agent of each strategy at the table and
// rotates the seats so every strategy plays every color.
func RunStrategyExperiment(ctx context.Context, s Settings) (string, error) {
	return runExperiment(ctx, "strategy", s, strategyConfigs, rotations(strategyConfigs))
}

// RunParallelizationExperiment pits MCTS agents with a growing number of
// goroutines against a sequential one, with random agents filling the table.
func RunParallelizationExperiment(ctx context.Context, s Settings) (string, error) {
	random := metrics.AgentConfig{ID: 0, Strategy: "random"}
	baseline := metrics.AgentConfig{ID: 1, Strategy: "mcts", Evaluate: "progress", Goroutines: 1, Duration: TimeBudget, Cutoff: 40}
	configs := []metrics.AgentConfig{random, baseline}
	lineups := [][game.NumColors]metrics.AgentConfig{}
	for i, goroutines := range []int{2, 4, 8} {
		config := baseline
		config.ID = i + 2
		config.Goroutines = goroutines
		configs = append(configs, config)
		lineups = append(lineups, rotations([]metrics.AgentConfig{baseline, random, config, random})...)
	}
	return runExperiment(ctx, "parallelization", s, configs, lineups)
}

func rotations(configs []metrics.AgentConfig) [][game.NumColors]metrics.AgentConfig {
	lineups := make([][game.NumColors]metrics.AgentConfig, game.NumColors)
	for r := range lineups {
		for seat := range lineups[r] {
			lineups[r][seat] = configs[(seat+r)%len(configs)]
		}
	}
	return lineups
}

func runExperiment(ctx context.Context, name string, s Settings, configs []metrics.AgentConfig, lineups [][game.NumColors]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for li, lineup := range lineups {
		var ids [game.NumColors]int
		for seat, config := range lineup {
			ids[seat] = config.ID
		}
		log.Info().Msgf("starting lineup %d of %d with agents %v...", li+1, len(lineups), ids)

		for i := 0; i < s.Games; i++ {
			count++
			gameMetric, moveMetrics, err := RunGame(ctx, s.Config, lineup, s.Seed+uint64(count))
			if err != nil {
				return "", fmt.Errorf("game %d: %w", count, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Game:       count,
				Lineup:     ids,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed lineup %d of %d game %d with winner: %s", li+1, len(lineups), i+1, winner(gameMetric))
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(s.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return writer.Dir(), nil
}

func winner(gm metrics.GameMetric) string {
	if !gm.Finished {
		return "none"
	}
	return gm.Winner.String()
}

// RunGame plays one game to the end with the agents seated by color. Dice
// are not delayed.
func RunGame(ctx context.Context, cfg *config.Config, lineup [game.NumColors]metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := cfg.NewGame()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	var agents [game.NumColors]agent.Agent
	for seat, config := range lineup {
		if agents[seat], err = NewAgent(config, seed+uint64(seat)); err != nil {
			return metrics.GameMetric{}, nil, err
		}
	}

	roller := dice.NewRoller(dice.NewRandomSource(seed), dice.WithDelay(0))
	session := gamemaster.NewSession(state, roller)
	return engine.LocalEngine(session, agents).Run(ctx)
}

func NewAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	evaluate, err := evaluation(config.Evaluate)
	if err != nil {
		return nil, err
	}

	switch config.Strategy {
	case "random":
		return agent.NewRandomAgent(seed), nil
	case "greedy":
		return agent.NewGreedyAgent(evaluate), nil
	case "mcts":
		return agent.NewSearchAgent(createMCTS(config, evaluate, seed)), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", config.Strategy)
	}
}

func evaluation(name string) (game.Evaluate, error) {
	switch name {
	case "", "progress":
		return game.EvaluateProgress, nil
	case "safety":
		return game.EvaluateSafety, nil
	default:
		return nil, fmt.Errorf("unknown evaluation %q", name)
	}
}

func createMCTS(config metrics.AgentConfig, evaluate game.Evaluate, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithEvaluationFn(evaluate)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Episodes <= 0 && config.Duration <= 0 {
		options = append(options, searcher.WithDuration(TimeBudget))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
