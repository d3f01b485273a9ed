package console

import (
	"blackjack-terminal/pkg/blackjack"
	"blackjack-terminal/pkg/deck"
	"errors"
	"strings"
)

const bannerWidth = 44

// Banner prints the welcome banner
func (c *Console) Banner() {
	line := strings.Repeat("=", bannerWidth)
	title := " Welcome to Blackjack "
	pad := (bannerWidth - len(title)) / 2
	c.printf("%s\n%s%s%s\n%s\n", line, strings.Repeat("=", pad), title, strings.Repeat("=", bannerWidth-pad-len(title)), line)
}

// Clear clears the screen, if there is a screen to clear
func (c *Console) Clear() {
	if c.isTerminal {
		c.printf("\033[H\033[2J")
	}
}

// ShowHand prints every card in the hand and its total
func (c *Console) ShowHand(name string, hand *deck.Hand) {
	c.printf("%s's hand:\n", name)
	for _, card := range hand.Cards() {
		c.printf(" - %s\n", card)
	}
	c.printf("Total value: %d\n", hand.Total())
}

// ShowBankroll prints the bankroll
func (c *Console) ShowBankroll(bankroll int) {
	c.printf("Total money: %d\n", bankroll)
}

// BetRejected explains why the bet was not accepted
func (c *Console) BetRejected(err error) {
	var insufficient blackjack.InsufficientFundsError
	switch {
	case errors.Is(err, blackjack.ErrZeroBet):
		c.printf("You cannot bet 0.\n")
	case errors.As(err, &insufficient):
		c.printf("You don't have enough money to bet that amount.\n")
		c.printf("The maximum amount you can bet is %d.\n", insufficient.Max)
	default:
		c.printf("%v\n", err)
	}
}

// BetAccepted prints the bankroll left after the bet
func (c *Console) BetAccepted(_, bankroll int) {
	c.printf("Total money after bet: %d\n", bankroll)
}

// PlayerState announces the end of the player's turn
func (c *Console) PlayerState(state blackjack.PlayerState) {
	switch state {
	case blackjack.PlayerStateBust:
		c.printf("Player bust!\n")
	case blackjack.PlayerStateTwentyOne:
		c.printf("Player has 21.\n")
	case blackjack.PlayerStateStuck:
		c.printf("Player sticks.\n")
	}
}

// DealerState announces each dealer decision
func (c *Console) DealerState(state blackjack.DealerState) {
	switch state {
	case blackjack.DealerStateHitting:
		c.printf("Dealer hits.\n")
	case blackjack.DealerStateSticking:
		c.printf("Dealer sticks.\n")
	case blackjack.DealerStateTwentyOne:
		c.printf("Dealer has 21.\n")
	case blackjack.DealerStateBust:
		c.printf("Dealer bust!\n")
	}
}

// Settled prints the outcome of the round
func (c *Console) Settled(s blackjack.Settlement) {
	switch s.Result {
	case blackjack.ResultPlayerBust:
		c.printf("Dealer wins! Player loses %d.\n", s.Bet)
		c.printf("Total money: %d\n", s.Bankroll)
	case blackjack.ResultPlayerTwentyOne:
		c.printf("Player wins %d!\n", s.Payout)
		c.printf("Total money after win: %d\n", s.Bankroll)
	case blackjack.ResultDealerBust, blackjack.ResultPlayerWins:
		c.printf("Player wins!\n")
		c.printf("Player wins %d!\n", s.Payout)
		c.printf("Total money after win: %d\n", s.Bankroll)
	case blackjack.ResultPush:
		c.printf("Both players tied.\n")
		c.printf("Player has bet of %d returned.\n", s.Payout)
		c.printf("Total money after bet returned: %d\n", s.Bankroll)
	case blackjack.ResultDealerWins:
		c.printf("Dealer wins!\n")
	}
}

// SessionOver prints a summary of the session
func (c *Console) SessionOver(reason error, stats blackjack.Stats) {
	if errors.Is(reason, blackjack.ErrOutOfMoney) {
		c.printf("You are out of money.\n")
	}

	c.printf("Rounds played: %d (won %d, lost %d, tied %d)\n", stats.Rounds, stats.Wins, stats.Losses, stats.Pushes)
	c.printf("Net: %+d\n", stats.Net)
	c.printf("Thanks for playing!\n")
}
