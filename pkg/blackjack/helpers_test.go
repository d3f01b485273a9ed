package blackjack

import (
	"blackjack-terminal/pkg/deck"
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
	"testing"
)

// identity leaves the deck order untouched when shuffling
type identity struct{}

func (identity) Intn(n int) int {
	return n - 1
}

type scriptedInput struct {
	bets   []int
	moves  []Move
	raises []bool
	again  []bool
}

func (s *scriptedInput) Bet() (int, error) {
	if len(s.bets) == 0 {
		return 0, io.EOF
	}

	bet := s.bets[0]
	s.bets = s.bets[1:]
	return bet, nil
}

func (s *scriptedInput) HitOrStick() (Move, error) {
	if len(s.moves) == 0 {
		return 0, io.EOF
	}

	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, nil
}

func (s *scriptedInput) Raise() (bool, error) {
	if len(s.raises) == 0 {
		return false, io.EOF
	}

	raise := s.raises[0]
	s.raises = s.raises[1:]
	return raise, nil
}

func (s *scriptedInput) PlayAgain() (bool, error) {
	if len(s.again) == 0 {
		return false, io.EOF
	}

	again := s.again[0]
	s.again = s.again[1:]
	return again, nil
}

type recorder struct {
	events       []string
	sessionOver  bool
	sessionError error
	stats        Stats
}

func (r *recorder) add(format string, a ...interface{}) {
	r.events = append(r.events, fmt.Sprintf(format, a...))
}

func (r *recorder) Banner() { r.add("banner") }

func (r *recorder) Clear() { r.add("clear") }

func (r *recorder) ShowHand(name string, hand *deck.Hand) {
	r.add("%s %s = %d", name, hand.String(), hand.Total())
}

func (r *recorder) ShowBankroll(bankroll int) { r.add("bankroll %d", bankroll) }

func (r *recorder) BetRejected(err error) { r.add("rejected: %v", err) }

func (r *recorder) BetAccepted(bet, bankroll int) { r.add("bet %d, bankroll %d", bet, bankroll) }

func (r *recorder) PlayerState(state PlayerState) { r.add("player %s", state) }

func (r *recorder) DealerState(state DealerState) { r.add("dealer %s", state) }

func (r *recorder) Settled(s Settlement) {
	r.add("settled %s, payout %d, bankroll %d", s.Result, s.Payout, s.Bankroll)
}

func (r *recorder) SessionOver(reason error, stats Stats) {
	r.sessionOver = true
	r.sessionError = reason
	r.stats = stats
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}

	return n
}

// stackedCards returns a full deck with the given cards on top in order
func stackedCards(top string) []deck.Card {
	cards := deck.CardsFromString(top)
	used := make(map[string]bool, len(cards))
	for _, card := range cards {
		used[deck.CardToString(card)] = true
	}

	for _, card := range deck.New(nil).Cards() {
		if !used[deck.CardToString(card)] {
			cards = append(cards, card)
		}
	}

	return cards
}

// newTestSession returns a session whose every round deals the top cards in order:
// player, player, dealer, dealer, then hits
func newTestSession(t *testing.T, top string, input *scriptedInput, opts ...Options) (*Session, *recorder) {
	t.Helper()

	options := DefaultOptions()
	if len(opts) == 1 {
		options = opts[0]
	}

	r := &recorder{}
	s, err := NewSession(logrus.StandardLogger(), identity{}, input, r, options)
	if err != nil {
		t.Fatal(err)
	}

	s.deck.Stack(stackedCards(top))
	return s, r
}
