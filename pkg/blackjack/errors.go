package blackjack

import (
	"errors"
	"fmt"
)

// ErrZeroBet is returned when a bet of zero or less is placed
var ErrZeroBet = errors.New("you cannot bet 0")

// ErrOutOfMoney is returned when a round cannot start because the bankroll is empty
var ErrOutOfMoney = errors.New("you are out of money")

// InsufficientFundsError is returned when a bet exceeds the bankroll
type InsufficientFundsError struct {
	Max int
}

func (i InsufficientFundsError) Error() string {
	return fmt.Sprintf("you don't have enough money to bet that amount, the maximum amount you can bet is %d", i.Max)
}
