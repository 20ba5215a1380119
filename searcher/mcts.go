package searcher

import (
	"parques/experiments/metrics"
	"parques/game"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	seeds      *rand.Rand
	root       *decision
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seeds = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateProgress,
		seeds:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from state, where the active color has legal moves, and
// returns how often each move was visited.
func (m *MCTS) Simulate(state *game.GameState) (map[game.Move]float64, metrics.SearchMetric) {
	m.root = newDecision(nil, state.Active(), state)

	// Run simulations to collect statistics
	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(state)
	} else {
		m.countdown(state)
	}
	metric := m.metrics.Complete()

	// Output move policy and move finding metrics
	policy := m.root.Policy()
	return policy, metric
}

func (m *MCTS) iterate(state *game.GameState) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		rng := rand.New(rand.NewSource(m.seeds.Uint64()))
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(state, rng)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(state *game.GameState) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		rng := rand.New(rand.NewSource(m.seeds.Uint64()))
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(state, rng)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(state *game.GameState, rng *rand.Rand) {
	newNode, newState := selectThenExpand(m.root, state.Copy(), rng)
	reward := rollout(newState, m.cutoff, m.evaluate, rng, m.metrics)
	backup(newNode, reward)
}

func selectThenExpand(root Node, state *game.GameState, rng *rand.Rand) (Node, *game.GameState) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state, rng)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.SelectOrExpand(state, rng)
	}
	return child, state
}

func rollout(state *game.GameState, cutoff int, evaluate game.Evaluate, rng *rand.Rand, metrics metrics.Collector) func(game.Color) float64 {
	depth := 0
	rollDice(state, rng)
	// Rollout till game over or for cutoff number of moves
	for state.Phase != game.FinishedPhase && depth < cutoff {
		moves := state.LegalMoves()
		play(state, moves[rng.Intn(len(moves))]) // Random rollout policy
		rollDice(state, rng)
		depth++
	}

	if winner, ok := state.Winner(); ok { // Game over before cutoff
		metrics.AddFullPlayout()
		return rewarder(winner)
	}

	// At cutoff state, score every color by the evaluation
	return func(c game.Color) float64 {
		return evaluate(state, c)
	}
}

func backup(newNode Node, reward func(game.Color) float64) {
	node := newNode
	for node != nil {
		node = node.Backup(reward)
	}
}
