package blackjack

// Result is how a round ended
type Result string

// Result constants
const (
	// ResultPlayerBust means the player went over 21; the dealer did not play
	ResultPlayerBust Result = "player-bust"

	// ResultPlayerTwentyOne means the player reached 21; the dealer did not play
	ResultPlayerTwentyOne Result = "player-twenty-one"

	// ResultDealerBust means the dealer went over 21
	ResultDealerBust Result = "dealer-bust"

	// ResultPlayerWins means the player's total beat the dealer's
	ResultPlayerWins Result = "player-wins"

	// ResultPush means the totals were equal
	ResultPush Result = "push"

	// ResultDealerWins means the dealer's total beat the player's
	ResultDealerWins Result = "dealer-wins"
)

// IsWin returns true if the player is paid out double their bet
func (r Result) IsWin() bool {
	return r == ResultPlayerTwentyOne || r == ResultDealerBust || r == ResultPlayerWins
}

// IsLoss returns true if the player forfeits their bet
func (r Result) IsLoss() bool {
	return r == ResultPlayerBust || r == ResultDealerWins
}

// Settlement is the outcome of a round and what it did to the bankroll
type Settlement struct {
	Result      Result `json:"result"`
	PlayerTotal int    `json:"playerTotal"`
	DealerTotal int    `json:"dealerTotal"`
	Bet         int    `json:"bet"`
	// Payout is credited to the bankroll; the bet was deducted when it was placed
	Payout   int `json:"payout"`
	Bankroll int `json:"bankroll"`
}

// Resolve works out the result of a round
// dealerState and dealerTotal are ignored when the player's state decides the round.
func Resolve(playerState PlayerState, playerTotal int, dealerState DealerState, dealerTotal int) Result {
	switch playerState {
	case PlayerStateBust:
		return ResultPlayerBust
	case PlayerStateTwentyOne:
		return ResultPlayerTwentyOne
	}

	switch {
	case dealerState == DealerStateBust:
		return ResultDealerBust
	case playerTotal > dealerTotal:
		return ResultPlayerWins
	case playerTotal == dealerTotal:
		return ResultPush
	}

	return ResultDealerWins
}

// Payout returns the amount credited back to the bankroll for the result
func Payout(result Result, bet int) int {
	switch {
	case result.IsWin():
		return bet * 2
	case result == ResultPush:
		return bet
	}

	return 0
}
