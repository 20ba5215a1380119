package dice

import (
	"parques/game"
	"sync"

	"golang.org/x/exp/rand"
)

// Source produces die values uniformly distributed over 1..6.
type Source interface {
	Roll() int
}

type randomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a source safe for concurrent use. The same seed
// yields the same sequence of values.
func NewRandomSource(seed uint64) Source {
	return &randomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randomSource) Roll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(game.DieFaces) + 1
}

// Sequence replays a fixed list of values, starting over when exhausted.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("sequence needs at least one value")
	}
	return &Sequence{values: values}
}

func (s *Sequence) Roll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
