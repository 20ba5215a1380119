package game

// EvaluateProgress compares how far color c has raced its tokens with its
// strongest opponent, producing a score between -1 and 1.
func EvaluateProgress(gs *GameState, c Color) float64 {
	mine := gs.progress(c)
	return normalize(mine, gs.strongestOpponent(c, gs.progress))
}

// EvaluateSafety weighs progress like EvaluateProgress but discounts tokens
// standing on track cells where they can be captured.
func EvaluateSafety(gs *GameState, c Color) float64 {
	mine := gs.safeProgress(c)
	return normalize(mine, gs.strongestOpponent(c, gs.safeProgress))
}

// progress is the share of the total race distance covered by c's tokens.
func (gs *GameState) progress(c Color) float64 {
	covered := 0
	for _, t := range gs.Players[c].Tokens {
		covered += gs.Topology.Progress(c, t.Pos)
	}
	return float64(covered) / float64(TokensPerPlayer*gs.Topology.Distance(c))
}

func (gs *GameState) safeProgress(c Color) float64 {
	covered := 0.0
	for _, t := range gs.Players[c].Tokens {
		p := float64(gs.Topology.Progress(c, t.Pos))
		if t.Pos.Zone == Track && !gs.Topology.IsSafe(t.Pos.Index) {
			p *= 0.5
		}
		covered += p
	}
	return covered / float64(TokensPerPlayer*gs.Topology.Distance(c))
}

func (gs *GameState) strongestOpponent(c Color, score func(Color) float64) float64 {
	best := 0.0
	for _, o := range Colors {
		if o == c {
			continue
		}
		if s := score(o); s > best {
			best = s
		}
	}
	return best
}

// normalize converts two values into a single score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
