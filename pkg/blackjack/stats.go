package blackjack

// Stats tracks the results across a session
type Stats struct {
	Rounds int `json:"rounds"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Pushes int `json:"pushes"`
	// Net is the bankroll change since the session started
	Net int `json:"net"`
}

func (s *Stats) record(settlement Settlement) {
	s.Rounds++
	switch {
	case settlement.Result.IsWin():
		s.Wins++
	case settlement.Result.IsLoss():
		s.Losses++
	default:
		s.Pushes++
	}

	s.Net += settlement.Payout - settlement.Bet
}
