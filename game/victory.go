package game

// Score breaks down a player's current total
type Score struct {
	Base              int
	StrengthAdvantage bool
	CommerceAdvantage bool
	Total             int
}

// ScoreFor computes a player's score against their opponent. A lead of
// at least the advantage margin in strength or commerce points is worth
// one extra point each.
func ScoreFor(p, opponent *Player, b Balance) Score {
	s := Score{Base: p.VictoryPoints}
	if p.StrengthPoints-opponent.StrengthPoints >= b.AdvantageLead {
		s.StrengthAdvantage = true
	}
	if p.CommercePoints-opponent.CommercePoints >= b.AdvantageLead {
		s.CommerceAdvantage = true
	}

	s.Total = s.Base
	if s.StrengthAdvantage {
		s.Total++
	}
	if s.CommerceAdvantage {
		s.Total++
	}
	return s
}

// HasWon reports whether a score meets the victory target
func (s Score) HasWon(b Balance) bool {
	return s.Total >= b.VictoryTarget
}
