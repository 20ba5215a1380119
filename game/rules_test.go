package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rolled(a, b int) Roll {
	return Roll{Values: [2]int{a, b}, Rolled: [2]bool{true, true}}
}

func TestPairRelease(t *testing.T) {
	policy := PairRelease{}

	require.NoError(t, policy.Check(rolled(4, 4), DieA))
	require.NoError(t, policy.Check(rolled(4, 4), DieB))
	require.ErrorIs(t, policy.Check(rolled(4, 5), DieA), ErrReleaseRequiresPair)
	require.True(t, policy.Qualifies(rolled(1, 1)))
	require.False(t, policy.Qualifies(rolled(1, 2)))
}

func TestPipRelease(t *testing.T) {
	policy := PipRelease{Pip: 5}

	require.NoError(t, policy.Check(rolled(5, 2), DieA))
	require.ErrorIs(t, policy.Check(rolled(5, 2), DieB), ErrReleaseRequiresPip)
	require.True(t, policy.Qualifies(rolled(2, 5)))
	require.False(t, policy.Qualifies(rolled(6, 6)), "A pair without the pip should not release")
	require.Equal(t, "pip-5", policy.Name())
}

func TestOrderPlayers(t *testing.T) {
	t.Run("sorting by descending sum", func(t *testing.T) {
		rules := NewStandardRules()
		rolls := []OrderRoll{
			{Color: Red, Roll: rolled(3, 4)},
			{Color: Blue, Roll: rolled(4, 5)},
			{Color: Green, Roll: rolled(2, 3)},
			{Color: Yellow, Roll: rolled(5, 6)},
		}

		require.Equal(t, []Color{Yellow, Blue, Red, Green}, rules.OrderPlayers(rolls))
	})

	ties := []OrderRoll{
		{Color: Red, Roll: rolled(3, 3)},
		{Color: Blue, Roll: rolled(2, 4)},
		{Color: Green, Roll: rolled(1, 1)},
		{Color: Yellow, Roll: rolled(1, 2)},
	}

	t.Run("first rolled wins ties", func(t *testing.T) {
		rules := NewStandardRules()
		require.Equal(t, []Color{Red, Blue, Yellow, Green}, rules.OrderPlayers(ties))
	})

	t.Run("last rolled wins ties", func(t *testing.T) {
		rules := NewStandardRules()
		rules.TieBreak = LastRolledWins
		require.Equal(t, []Color{Blue, Red, Yellow, Green}, rules.OrderPlayers(ties))
	})

	t.Run("input is not reordered", func(t *testing.T) {
		rules := NewStandardRules()
		rules.TieBreak = LastRolledWins
		rules.OrderPlayers(ties)
		require.Equal(t, Red, ties[0].Color)
	})
}

func TestRoll(t *testing.T) {
	var r Roll
	require.False(t, r.Complete())
	require.False(t, r.IsPair(), "An empty roll is not a pair")
	require.Equal(t, DieA, r.next())

	r.Values[DieA], r.Rolled[DieA] = 3, true
	require.Equal(t, DieB, r.next())
	require.Equal(t, []Die{DieA}, r.Remaining())

	r.Values[DieB], r.Rolled[DieB] = 3, true
	require.True(t, r.IsPair())
	require.Equal(t, 6, r.Sum())

	r.Consumed[DieA] = true
	require.Equal(t, []Die{DieB}, r.Remaining())
	require.False(t, r.Exhausted())
	require.Equal(t, "(3)/3", r.String())

	r.Consumed[DieB] = true
	require.True(t, r.Exhausted())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Yellow ")
	require.NoError(t, err)
	require.Equal(t, Yellow, c)

	_, err = ParseColor("purple")
	require.Error(t, err)

	require.Equal(t, Red, Yellow.Next(), "Seating order should wrap around")
}
