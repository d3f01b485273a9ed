package deck

import "encoding/json"

// MaxHandSize is the most cards a hand can hold
// Eleven cards of rank two or more always exceed 21, so ten is enough for any playable hand
const MaxHandSize = 10

// aceHigh and aceLow are the two values an ace can resolve to
const (
	aceHigh = 11
	aceLow  = 1
)

// Hand represents the cards dealt to the player or the dealer
type Hand struct {
	cards []Card
}

// NewHand returns an empty hand
func NewHand() *Hand {
	return &Hand{
		cards: make([]Card, 0, MaxHandSize),
	}
}

// AddCard adds a card to the hand and returns it with its resolved value
// An ace counts 11 if that keeps the total at or under 21, otherwise 1.
// The choice is made once; later cards never change it.
func (h *Hand) AddCard(card Card) (Card, error) {
	if h.IsFull() {
		return Card{}, ErrHandFull
	}

	if card.IsAce() {
		if h.Total()+aceHigh <= 21 {
			card.Value = aceHigh
		} else {
			card.Value = aceLow
		}
	}

	h.cards = append(h.cards, card)
	return card, nil
}

// Total returns the sum of the resolved card values
func (h *Hand) Total() int {
	total := 0
	for _, card := range h.cards {
		total += card.Value
	}

	return total
}

// Cards returns a copy of the cards in the order they were dealt
func (h *Hand) Cards() []Card {
	cards := make([]Card, len(h.cards))
	copy(cards, h.cards)

	return cards
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsFull returns true if no more cards can be added
func (h *Hand) IsFull() bool {
	return len(h.cards) >= MaxHandSize
}

// Reset empties the hand
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
}

// LastCard returns the most recently dealt card, or false if the hand is empty
func (h *Hand) LastCard() (Card, bool) {
	n := len(h.cards)
	if n == 0 {
		return Card{}, false
	}

	return h.cards[n-1], true
}

func (h *Hand) String() string {
	return CardsToString(h.cards)
}

// MarshalJSON provides custom JSON marshalling for the hand
func (h *Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(handJSON{
		Cards: h.Cards(),
		Total: h.Total(),
	})
}

type handJSON struct {
	Cards []Card `json:"cards"`
	Total int    `json:"total"`
}
