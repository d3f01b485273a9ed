package blackjack

import (
	"blackjack-terminal/pkg/deck"
	"github.com/google/uuid"
)

// Round is a single hand of blackjack, from the deal to the settlement
type Round struct {
	ID          string      `json:"id"`
	Bet         int         `json:"bet"`
	Player      *deck.Hand  `json:"player"`
	Dealer      *deck.Hand  `json:"dealer"`
	PlayerState PlayerState `json:"playerState"`
	DealerState DealerState `json:"dealerState"`
	Settlement  *Settlement `json:"settlement,omitempty"`
}

func newRound() *Round {
	return &Round{
		ID:          uuid.New().String(),
		Player:      deck.NewHand(),
		Dealer:      deck.NewHand(),
		PlayerState: PlayerStatePlaying,
		DealerState: DealerStateWaiting,
	}
}

// IsSettled returns true once the bet has been paid out or lost
func (r *Round) IsSettled() bool {
	return r.Settlement != nil
}
