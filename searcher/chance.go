package searcher

import (
	"parques/game"
	"sync"

	"golang.org/x/exp/rand"
)

// chance is a state where dice decide what happens next. Each distinct
// outcome becomes a decision child, told apart by state hash.
type chance struct {
	sync.RWMutex
	parent   Node
	mover    game.Color
	children []*decision
	rewards  float64
	visits   int
}

func newChance(parent *decision) *chance {
	return &chance{
		parent: parent,
		mover:  parent.player,
	}
}

func (c *chance) SelectOrExpand(state *game.GameState, rng *rand.Rand) (Node, *game.GameState, bool) {
	next := state.Copy()
	rollDice(next, rng)

	c.Lock()
	defer c.Unlock()

	// Select if explored outcome
	selected := true
	child := c.selects(next.Hash())
	// Expand if unexplored outcome
	if child == nil {
		child = c.expands(next)
		selected = false
	}

	child.applyLoss()
	return child, next, selected
}

func (c *chance) selects(expected game.StateHash) *decision {
	for _, child := range c.children {
		if child.hash == expected {
			return child
		}
	}
	return nil
}

func (c *chance) expands(state *game.GameState) *decision {
	child := newDecision(c, c.mover, state)
	c.children = append(c.children, child)
	return child
}

func (c *chance) applyLoss() {
	c.Lock()
	defer c.Unlock()

	c.rewards += LOSS
	c.visits++
}

func (c *chance) score(normalizer float64) float64 {
	c.RLock()
	defer c.RUnlock()

	return ucb1(c.rewards, c.visits, normalizer)
}

func (c *chance) Backup(reward func(game.Color) float64) Node {
	c.Lock()
	defer c.Unlock()

	c.reverseLoss()

	c.rewards += reward(c.mover)
	c.visits++

	return c.parent
}

func (c *chance) reverseLoss() {
	c.rewards -= LOSS
	c.visits--
}

func (c *chance) Visits() int {
	c.RLock()
	defer c.RUnlock()

	return c.visits
}
