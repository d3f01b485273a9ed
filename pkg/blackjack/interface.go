package blackjack

import "blackjack-terminal/pkg/deck"

// Input supplies the player's decisions
// Implementations own the parsing and re-prompt on input they cannot understand.
// Returning io.EOF ends the session.
type Input interface {
	// Bet returns the amount the player wants to bet; it is validated by the caller
	Bet() (int, error)

	// HitOrStick returns the player's move
	HitOrStick() (Move, error)

	// Raise returns true if the player wants to raise their bet
	Raise() (bool, error)

	// PlayAgain returns true if the player wants another round
	PlayAgain() (bool, error)
}

// Renderer presents the state of the game to the player
type Renderer interface {
	Banner()
	Clear()

	// ShowHand displays the cards in a hand along with the total
	ShowHand(name string, hand *deck.Hand)

	// ShowBankroll displays the bankroll before a bet is requested
	ShowBankroll(bankroll int)
	BetRejected(err error)
	BetAccepted(bet, bankroll int)

	PlayerState(state PlayerState)
	DealerState(state DealerState)
	Settled(s Settlement)

	// SessionOver is called once when the session ends
	SessionOver(reason error, stats Stats)
}
