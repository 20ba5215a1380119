package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is the root aggregate of a game. It is not safe for concurrent
// use; a session owns it and hands out snapshots.
type GameState struct {
	Topology    *Topology         // Static board layout
	Rules       Rules             // Release and ordering policies
	Phase       Phase             // The current phase of the game
	Players     [NumColors]Player // Indexed by color
	Order       []Color           // Play order, fixed once established
	Turn        int               // Index into Order, or into Colors while determining the order
	Dice        Roll              // The active color's dice
	RollPending bool              // A die was requested and its value has not arrived yet
	Attempts    int               // Failed release attempts this turn
	OrderRolls  []OrderRoll       // Rolls made while determining the order
	Won         Color             // Meaningful only in FinishedPhase
	Moves       int               // Moves resolved so far
}

// NewGameState creates a game with every token in holding, waiting for the
// first order-determination roll.
func NewGameState(t *Topology, rules Rules) *GameState {
	if err := t.Validate(); err != nil {
		panic(err)
	}
	gs := &GameState{
		Topology: t,
		Rules:    rules,
		Phase:    DeterminingOrderPhase,
	}
	for _, c := range Colors {
		gs.Players[c] = newPlayer(c, c.String())
	}
	return gs
}

func (gs *GameState) SetName(c Color, name string) {
	gs.Players[c].Name = name
}

// StartWithOrder skips order determination and starts playing in the given
// order. It is only allowed before the first roll.
func (gs *GameState) StartWithOrder(order []Color) error {
	if gs.Phase != DeterminingOrderPhase || gs.Turn != 0 || gs.RollPending || gs.Dice.Rolled[DieA] {
		return ErrWrongPhase
	}
	if len(order) != NumColors {
		return fmt.Errorf("play order must name %d colors, got %d", NumColors, len(order))
	}
	seen := make(map[Color]bool, NumColors)
	for _, c := range order {
		if !c.Valid() || seen[c] {
			return fmt.Errorf("play order %v is not a permutation of the colors", order)
		}
		seen[c] = true
	}
	gs.Order = append([]Color(nil), order...)
	gs.Phase = PlayingPhase
	return nil
}

// Active returns the color whose turn it is.
func (gs *GameState) Active() Color {
	if gs.Phase == DeterminingOrderPhase {
		return Colors[gs.Turn]
	}
	return gs.Order[gs.Turn]
}

func (gs *GameState) Player(c Color) Player {
	return gs.Players[c]
}

// Winner returns the winning color once the game is finished.
func (gs *GameState) Winner() (Color, bool) {
	return gs.Won, gs.Phase == FinishedPhase
}

// RequestRoll marks a single die as requested. Only one request may be
// outstanding, and a roll may not start while both dice are still on the table.
func (gs *GameState) RequestRoll() error {
	if gs.Phase == FinishedPhase {
		return ErrWrongPhase
	}
	if gs.RollPending {
		return ErrRollInProgress
	}
	if gs.Dice.Complete() {
		return ErrDiceAlreadyRolled
	}
	gs.RollPending = true
	return nil
}

// CancelRoll drops an outstanding request whose value will never arrive.
func (gs *GameState) CancelRoll() {
	gs.RollPending = false
}

// ReceiveRoll records the value of the requested die. Once both dice are
// known it settles them: order determination advances to the next color,
// and during play a player without tokens in play either retries, forfeits,
// or gets to choose moves.
func (gs *GameState) ReceiveRoll(value int) (RollResult, error) {
	if !gs.RollPending {
		return RollResult{}, ErrNoRollRequested
	}
	if value < 1 || value > DieFaces {
		return RollResult{}, fmt.Errorf("%w: %d", ErrInvalidDieValue, value)
	}

	d := gs.Dice.next()
	gs.Dice.Values[d] = value
	gs.Dice.Rolled[d] = true
	gs.RollPending = false

	res := RollResult{
		Color:    gs.Active(),
		Die:      d,
		Value:    value,
		Complete: gs.Dice.Complete(),
		Pair:     gs.Dice.IsPair(),
	}
	if !res.Complete {
		return res, nil
	}

	switch gs.Phase {
	case DeterminingOrderPhase:
		gs.recordOrderRoll(&res)
	case PlayingPhase:
		gs.settleRoll(&res)
	}
	return res, nil
}

func (gs *GameState) recordOrderRoll(res *RollResult) {
	gs.OrderRolls = append(gs.OrderRolls, OrderRoll{Color: Colors[gs.Turn], Roll: gs.Dice})
	gs.Dice = Roll{}
	gs.Turn++
	if gs.Turn < NumColors {
		return
	}
	gs.Order = gs.Rules.OrderPlayers(gs.OrderRolls)
	gs.Phase = PlayingPhase
	gs.Turn = 0
	res.OrderEstablished = true
}

func (gs *GameState) settleRoll(res *RollResult) {
	p := &gs.Players[gs.Active()]
	if !p.HasTokenInPlay() && !gs.Rules.QualifiesForRelease(gs.Dice) {
		gs.Attempts++
		if gs.Attempts < gs.Rules.ReleaseAttempts() {
			gs.Dice = Roll{}
			res.Retry = true
			return
		}
		gs.passTurn()
		res.Forfeit = true
		res.TurnEnded = true
		return
	}

	if len(gs.LegalMoves()) == 0 {
		gs.endTurn()
		res.Forfeit = true
		res.TurnEnded = true
	}
}

// ResolveMove applies die d to the token id of the active color. The move
// is applied completely or not at all.
func (gs *GameState) ResolveMove(id TokenID, d Die) (Outcome, error) {
	if gs.Phase != PlayingPhase {
		return Outcome{}, ErrWrongPhase
	}
	if !id.Color.Valid() || id.Slot < 0 || id.Slot >= TokensPerPlayer {
		return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidToken, id)
	}
	if !d.Valid() {
		return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidDie, d)
	}
	if id.Color != gs.Active() {
		return Outcome{}, ErrNotYourToken
	}
	if gs.RollPending || !gs.Dice.Complete() {
		return Outcome{}, ErrDiceNotRolled
	}
	if gs.Dice.Consumed[d] {
		return Outcome{}, ErrNoDiceRemaining
	}

	p := &gs.Players[id.Color]
	from := p.Tokens[id.Slot].Pos
	to, err := gs.destination(p.Tokens[id.Slot], d)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{
		Move:  Move{Token: id, Die: d},
		Steps: gs.Dice.Value(d),
		From:  from,
		To:    to,
	}
	p.Tokens[id.Slot].Pos = to
	gs.Dice.Consumed[d] = true
	gs.Moves++

	if to.Zone == Track {
		out.Captured = gs.capture(id.Color, to.Index)
	}

	if to.Zone == Arrived {
		out.Arrived = true
		p.Arrived++
		if p.Finished() {
			gs.Phase = FinishedPhase
			gs.Won = id.Color
			out.Finished = true
			return out, nil
		}
	}

	if gs.Dice.Exhausted() || len(gs.LegalMoves()) == 0 {
		out.ExtraTurn = gs.endTurn()
		out.TurnEnded = true
	}
	return out, nil
}

func (gs *GameState) destination(tok Token, d Die) (Position, error) {
	switch tok.Pos.Zone {
	case Holding:
		if err := gs.Rules.CheckRelease(gs.Dice, d); err != nil {
			return Position{}, err
		}
		return TrackPosition(gs.Topology.Start[tok.ID.Color]), nil
	case Arrived:
		return Position{}, ErrTokenArrived
	default:
		return gs.Topology.Walk(tok.ID.Color, tok.Pos, gs.Dice.Value(d))
	}
}

// capture evicts every opposing token on track cell i unless it is safe.
func (gs *GameState) capture(mover Color, i int) []TokenID {
	if gs.Topology.IsSafe(i) {
		return nil
	}
	var captured []TokenID
	for c := range gs.Players {
		if Color(c) == mover {
			continue
		}
		for s := range gs.Players[c].Tokens {
			tok := &gs.Players[c].Tokens[s]
			if tok.Pos == TrackPosition(i) {
				tok.Pos = HoldingPosition
				captured = append(captured, tok.ID)
			}
		}
	}
	return captured
}

// endTurn clears the dice. A pair keeps the turn with the same color.
func (gs *GameState) endTurn() (extra bool) {
	extra = gs.Dice.IsPair()
	gs.Dice = Roll{}
	gs.Attempts = 0
	if !extra {
		gs.Turn = (gs.Turn + 1) % len(gs.Order)
	}
	return extra
}

func (gs *GameState) passTurn() {
	gs.Dice = Roll{}
	gs.Attempts = 0
	gs.Turn = (gs.Turn + 1) % len(gs.Order)
}

// LegalMoves returns every move ResolveMove would accept right now.
func (gs *GameState) LegalMoves() []Move {
	if gs.Phase != PlayingPhase || gs.RollPending || !gs.Dice.Complete() {
		return nil
	}
	var moves []Move
	p := &gs.Players[gs.Active()]
	for _, d := range gs.Dice.Remaining() {
		for _, tok := range p.Tokens {
			if _, err := gs.destination(tok, d); err == nil {
				moves = append(moves, Move{Token: tok.ID, Die: d})
			}
		}
	}
	return moves
}

// Copy returns a deep copy. Topology and rules are shared; they never change.
func (gs *GameState) Copy() *GameState {
	c := *gs
	c.Order = append([]Color(nil), gs.Order...)
	c.OrderRolls = append([]OrderRoll(nil), gs.OrderRolls...)
	return &c
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	write := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}

	write(int(gs.Phase))
	write(gs.Turn)
	write(gs.Attempts)
	for _, c := range gs.Order {
		write(int(c))
	}

	// Hash dice
	for _, d := range []Die{DieA, DieB} {
		write(gs.Dice.Values[d])
		write(boolInt(gs.Dice.Rolled[d]))
		write(boolInt(gs.Dice.Consumed[d]))
	}

	// Hash tokens
	for _, p := range gs.Players {
		for _, t := range p.Tokens {
			write(int(t.Pos.Zone))
			write(t.Pos.Index)
		}
	}
	return StateHash(hasher.Sum64())
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
