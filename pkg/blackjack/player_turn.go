package blackjack

import "fmt"

const playerName = "Player"

// nextPlayerState returns the player's state after a hit brings them to total
func nextPlayerState(total int) PlayerState {
	switch {
	case total > Blackjack:
		return PlayerStateBust
	case total == Blackjack:
		return PlayerStateTwentyOne
	}

	return PlayerStatePlaying
}

// playerTurn runs the hit/stick loop
// Returns true if the round is decided without the dealer: the player bust or has 21.
func (s *Session) playerTurn(r *Round) (bool, error) {
	log := s.logger.WithField("round", r.ID)

	s.renderer.ShowHand(playerName, r.Player)

	// dealt 21, nothing to decide
	if r.Player.Total() == Blackjack {
		r.PlayerState = PlayerStateTwentyOne
		log.Debug("player dealt 21")
		s.renderer.PlayerState(r.PlayerState)
		return true, nil
	}

	r.PlayerState = PlayerStatePlaying
	for !r.PlayerState.IsTerminal() {
		move, err := s.input.HitOrStick()
		if err != nil {
			return false, err
		}

		switch move {
		case MoveHit:
			card, err := s.deck.DealTo(r.Player)
			if err != nil {
				return false, fmt.Errorf("could not deal to player: %w", err)
			}

			r.PlayerState = nextPlayerState(r.Player.Total())
			log.WithField("card", card.String()).WithField("total", r.Player.Total()).Debug("player hits")
		case MoveStick:
			r.PlayerState = PlayerStateStuck
			log.WithField("total", r.Player.Total()).Debug("player sticks")
		default:
			return false, fmt.Errorf("invalid move: %d", move)
		}

		if r.PlayerState.IsTerminal() {
			s.renderer.PlayerState(r.PlayerState)
		}

		s.renderer.ShowHand(playerName, r.Player)

		if !r.PlayerState.IsTerminal() {
			if err := s.offerRaise(r); err != nil {
				return false, err
			}
		}
	}

	return r.PlayerState.DecidesRound(), nil
}

// offerRaise asks the player whether to add to their bet
// There is nothing to offer once the bankroll is empty.
func (s *Session) offerRaise(r *Round) error {
	if s.bankroll == 0 {
		return nil
	}

	raise, err := s.input.Raise()
	if err != nil || !raise {
		return err
	}

	amount, err := s.acquireBet()
	if err != nil {
		return err
	}

	r.Bet += amount
	s.logger.WithField("round", r.ID).WithField("raise", amount).WithField("bet", r.Bet).Debug("player raised")
	return nil
}
