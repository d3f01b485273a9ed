package blackjack

// ValidateBet returns an error if the bet cannot be placed against the bankroll
func ValidateBet(bet, bankroll int) error {
	if bet <= 0 {
		return ErrZeroBet
	}

	if bet > bankroll {
		return InsufficientFundsError{Max: bankroll}
	}

	return nil
}

// acquireBet prompts until a valid bet is placed, then deducts it from the bankroll
// Rejected bets leave the bankroll untouched.
func (s *Session) acquireBet() (int, error) {
	for {
		s.renderer.ShowBankroll(s.bankroll)
		bet, err := s.input.Bet()
		if err != nil {
			return 0, err
		}

		if err := ValidateBet(bet, s.bankroll); err != nil {
			s.logger.WithError(err).WithField("bet", bet).Debug("bet rejected")
			s.renderer.BetRejected(err)
			continue
		}

		s.bankroll -= bet
		s.renderer.BetAccepted(bet, s.bankroll)
		return bet, nil
	}
}
