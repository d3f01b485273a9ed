package deck

import "errors"

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrHandFull is an error when a card is added to a hand that is at capacity
var ErrHandFull = errors.New("hand is full")
