package game

import (
	"errors"
	"fmt"
	"parques/meta"
	"sort"
)

var (
	ErrReleaseRequiresPair = errors.New("releasing a token requires a pair")
	ErrReleaseRequiresPip  = errors.New("releasing a token requires a specific die value")
)

type Rules interface {
	// CheckRelease tells whether die d of roll r may bring a token out of holding.
	CheckRelease(r Roll, d Die) error
	// QualifiesForRelease tells whether a complete roll allows any release.
	QualifiesForRelease(r Roll) bool
	// ReleaseAttempts is the number of rolls a player with no token in play
	// gets before the turn is forfeited.
	ReleaseAttempts() int
	// OrderPlayers turns the order-determination rolls into the play order.
	OrderPlayers(rolls []OrderRoll) []Color
}

// ReleasePolicy decides which dice bring a token out of holding.
type ReleasePolicy interface {
	Name() string
	Check(r Roll, d Die) error
	Qualifies(r Roll) bool
}

// PairRelease lets either die of a pair release a token.
type PairRelease struct{}

func (PairRelease) Name() string { return "pair" }

func (PairRelease) Check(r Roll, d Die) error {
	if !r.IsPair() {
		return ErrReleaseRequiresPair
	}
	return nil
}

func (PairRelease) Qualifies(r Roll) bool { return r.IsPair() }

// PipRelease lets a die showing Pip release a token.
type PipRelease struct {
	Pip int
}

func (p PipRelease) Name() string { return fmt.Sprintf("pip-%d", p.Pip) }

func (p PipRelease) Check(r Roll, d Die) error {
	if r.Value(d) != p.Pip {
		return fmt.Errorf("%w: need a %d, die %s shows %d", ErrReleaseRequiresPip, p.Pip, d, r.Value(d))
	}
	return nil
}

func (p PipRelease) Qualifies(r Roll) bool {
	return r.Values[DieA] == p.Pip || r.Values[DieB] == p.Pip
}

// TieBreak orders colors whose order-determination sums are equal.
type TieBreak int

const (
	FirstRolledWins TieBreak = iota
	LastRolledWins
)

func (tb TieBreak) String() string {
	if tb == LastRolledWins {
		return "last-rolled-wins"
	}
	return "first-rolled-wins"
}

// OrderRoll is the pair a color rolled while the play order was determined.
type OrderRoll struct {
	Color Color
	Roll  Roll
}

type StandardRules struct {
	Release         ReleasePolicy
	TieBreak        TieBreak
	MaxReleaseTries int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Release:         PairRelease{},
		TieBreak:        FirstRolledWins,
		MaxReleaseTries: meta.RELEASE_ATTEMPTS,
	}
}

func (sr *StandardRules) CheckRelease(r Roll, d Die) error {
	return sr.Release.Check(r, d)
}

func (sr *StandardRules) QualifiesForRelease(r Roll) bool {
	return sr.Release.Qualifies(r)
}

func (sr *StandardRules) ReleaseAttempts() int {
	return sr.MaxReleaseTries
}

// OrderPlayers sorts by descending sum. rolls must be in the order they
// were rolled; the tie-break decides between equal sums.
func (sr *StandardRules) OrderPlayers(rolls []OrderRoll) []Color {
	sorted := make([]OrderRoll, len(rolls))
	copy(sorted, rolls)
	if sr.TieBreak == LastRolledWins {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Roll.Sum() > sorted[j].Roll.Sum()
	})

	order := make([]Color, len(sorted))
	for i, r := range sorted {
		order[i] = r.Color
	}
	return order
}
