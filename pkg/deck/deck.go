package deck

import (
	"blackjack-terminal/internal/rng"
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"fmt"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a playing deck
// Cards are dealt from the front; next is the index of the next card to deal
type Deck struct {
	cards []Card
	next  int
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{rng: gen}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	d.cards = cards
	d.next = 0
}

// Shuffle will re-randomize all 52 cards and make every card available again
func (d *Deck) Shuffle() {
	if len(d.cards) != Size {
		d.buildDeck()
	}

	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}

	d.next = 0
}

// Stack replaces the deck with the cards specified, in dealing order
// This should only be used by tests
func (d *Deck) Stack(cards []Card) {
	d.cards = make([]Card, len(cards))
	copy(d.cards, cards)
	d.next = 0
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrEndOfDeck
	}

	card := d.cards[d.next]
	d.next++

	return card, nil
}

// DealTo draws the next card and adds it to the hand
// The card is not consumed if the hand is full
func (d *Deck) DealTo(h *Hand) (Card, error) {
	if h.IsFull() {
		return Card{}, ErrHandFull
	}

	card, err := d.Draw()
	if err != nil {
		return Card{}, err
	}

	resolved, err := h.AddCard(card)
	if err != nil {
		// unreachable, capacity was checked above
		panic(fmt.Sprintf("could not add %s to hand: %v", card, err))
	}

	return resolved, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return d.CardsLeft() >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards) - d.next
}

// Cards returns a copy of every card in the deck in dealing order, including dealt cards
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)

	return cards
}

// HashCode returns a SHA1 hash code of the dealing order
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
