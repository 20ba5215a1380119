package game

import "fmt"

// Die selects one of the two dice of a roll.
type Die int

const (
	DieA Die = iota
	DieB
)

func (d Die) String() string {
	switch d {
	case DieA:
		return "A"
	case DieB:
		return "B"
	default:
		return fmt.Sprintf("die(%d)", int(d))
	}
}

func (d Die) Valid() bool {
	return d == DieA || d == DieB
}

// Roll holds the two most recent dice of the active color and which of them
// have already been applied to a move.
type Roll struct {
	Values   [2]int
	Rolled   [2]bool
	Consumed [2]bool
}

// Complete reports whether both dice have been rolled.
func (r Roll) Complete() bool {
	return r.Rolled[DieA] && r.Rolled[DieB]
}

func (r Roll) IsPair() bool {
	return r.Complete() && r.Values[DieA] == r.Values[DieB]
}

func (r Roll) Sum() int {
	return r.Values[DieA] + r.Values[DieB]
}

// Value returns the pips shown by die d.
func (r Roll) Value(d Die) int {
	return r.Values[d]
}

// Remaining lists the dice that are rolled but not yet consumed.
func (r Roll) Remaining() []Die {
	var dice []Die
	for _, d := range []Die{DieA, DieB} {
		if r.Rolled[d] && !r.Consumed[d] {
			dice = append(dice, d)
		}
	}
	return dice
}

func (r Roll) Exhausted() bool {
	return r.Complete() && r.Consumed[DieA] && r.Consumed[DieB]
}

// next returns the die the next rolled value goes to.
func (r Roll) next() Die {
	if r.Rolled[DieA] {
		return DieB
	}
	return DieA
}

func (r Roll) String() string {
	show := func(d Die) string {
		if !r.Rolled[d] {
			return "-"
		}
		if r.Consumed[d] {
			return fmt.Sprintf("(%d)", r.Values[d])
		}
		return fmt.Sprintf("%d", r.Values[d])
	}
	return show(DieA) + "/" + show(DieB)
}
