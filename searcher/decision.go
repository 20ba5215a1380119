package searcher

import (
	"math"
	"parques/game"
	"sync"

	"golang.org/x/exp/rand"
)

// decision is a state where the active color picks one of its legal moves.
type decision struct {
	sync.RWMutex
	parent   Node
	mover    game.Color // Color whose choice led here; rewards are from its perspective
	player   game.Color // Color choosing among moves
	hash     game.StateHash
	moves    []game.Move
	children []Node
	rewards  float64
	visits   int
}

func newDecision(parent Node, mover game.Color, state *game.GameState) *decision {
	moves := state.LegalMoves()
	return &decision{
		parent:   parent,
		mover:    mover,
		player:   state.Active(),
		hash:     state.Hash(),
		moves:    moves,
		children: make([]Node, 0, len(moves)),
	}
}

func (d *decision) SelectOrExpand(state *game.GameState, rng *rand.Rand) (Node, *game.GameState, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.moves) > len(d.children) { // Expandable node
		child, state := d.addChild(state)
		child.applyLoss()
		return child, state, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	next := state.Copy()
	play(next, d.moves[ith])
	child.applyLoss()
	return child, next, true
}

// addChild plays the next unexpanded move. A move that ends the turn leads
// to a chance node where the next color rolls.
func (d *decision) addChild(state *game.GameState) (Node, *game.GameState) {
	move := d.moves[len(d.children)]
	next := state.Copy()
	out := play(next, move)

	var child Node
	if out.TurnEnded && !out.Finished {
		child = newChance(d)
	} else {
		child = newDecision(d, d.player, next)
	}
	d.children = append(d.children, child)
	return child, next
}

func (d *decision) pickChild() int {
	normalizer := C_SQUARED * math.Log(float64(max(d.visits, 1)))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += LOSS
	d.visits++
}

func (d *decision) score(normalizer float64) float64 {
	d.RLock()
	defer d.RUnlock()

	return ucb1(d.rewards, d.visits, normalizer)
}

func (d *decision) Backup(reward func(game.Color) float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += reward(d.mover)
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= LOSS
	d.visits--
}

func (d *decision) Visits() int {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy returns the share of visits each expanded move received.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	total := 0
	visits := make([]int, len(d.children))
	for i, child := range d.children {
		visits[i] = child.Visits()
		total += visits[i]
	}

	policy := make(map[game.Move]float64, len(d.children))
	for i := range d.children {
		if total == 0 {
			policy[d.moves[i]] = 1 / float64(len(d.children))
		} else {
			policy[d.moves[i]] = float64(visits[i]) / float64(total)
		}
	}
	return policy
}
