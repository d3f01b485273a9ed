package blackjack

import "fmt"

const dealerName = "Dealer"

// nextDealerState applies the fixed dealer policy to a total
func nextDealerState(total int) DealerState {
	switch {
	case total < DealerStandsOn:
		return DealerStateHitting
	case total < Blackjack:
		return DealerStateSticking
	case total == Blackjack:
		return DealerStateTwentyOne
	}

	return DealerStateBust
}

// dealerTurn draws for the dealer until the policy says stop
// Returns true if the dealer bust.
func (s *Session) dealerTurn(r *Round) (bool, error) {
	log := s.logger.WithField("round", r.ID)

	for {
		s.renderer.ShowHand(dealerName, r.Dealer)

		r.DealerState = nextDealerState(r.Dealer.Total())
		s.renderer.DealerState(r.DealerState)
		if r.DealerState.IsTerminal() {
			break
		}

		card, err := s.deck.DealTo(r.Dealer)
		if err != nil {
			return false, fmt.Errorf("could not deal to dealer: %w", err)
		}

		log.WithField("card", card.String()).WithField("total", r.Dealer.Total()).Debug("dealer hits")
	}

	log.WithField("state", r.DealerState).WithField("total", r.Dealer.Total()).Debug("dealer done")
	return r.DealerState == DealerStateBust, nil
}
