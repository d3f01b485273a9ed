package blackjack

import (
	"blackjack-terminal/internal/rng"
	"blackjack-terminal/pkg/deck"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
)

// Session is a single player's sitting at the table
// It owns the bankroll, the deck, and the current round. Only the bankroll
// carries over from one round to the next.
type Session struct {
	options  Options
	logger   logrus.FieldLogger
	input    Input
	renderer Renderer

	deck     *deck.Deck
	bankroll int
	stats    Stats
	rounds   []*Round
}

// NewSession returns a new session
func NewSession(logger logrus.FieldLogger, gen rng.Generator, input Input, renderer Renderer, options Options) (*Session, error) {
	if options.StartingBankroll <= 0 {
		return nil, errors.New("starting bankroll must be > 0")
	}

	if input == nil || renderer == nil {
		return nil, errors.New("session requires an input and a renderer")
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Session{
		options:  options,
		logger:   logger,
		input:    input,
		renderer: renderer,
		deck:     deck.New(gen),
		bankroll: options.StartingBankroll,
	}, nil
}

// Bankroll returns the money the player has that is not on the table
func (s *Session) Bankroll() int {
	return s.bankroll
}

// Stats returns the results so far
func (s *Session) Stats() Stats {
	return s.stats
}

// Rounds returns every round played, oldest first
func (s *Session) Rounds() []*Round {
	rounds := make([]*Round, len(s.rounds))
	copy(rounds, s.rounds)

	return rounds
}

// Run plays rounds until the player quits, runs out of money, or the input closes
// Only invariant violations and input failures other than io.EOF are returned.
func (s *Session) Run() error {
	s.renderer.Banner()

	for {
		if _, err := s.PlayRound(); err != nil {
			return s.end(err)
		}

		if s.bankroll == 0 {
			return s.end(ErrOutOfMoney)
		}

		again, err := s.input.PlayAgain()
		if err != nil {
			return s.end(err)
		}

		if !again {
			return s.end(nil)
		}

		if s.options.ClearBetweenRounds {
			s.renderer.Clear()
		}
	}
}

func (s *Session) end(err error) error {
	log := s.logger.WithFields(logrus.Fields{
		"rounds":   s.stats.Rounds,
		"bankroll": s.bankroll,
		"net":      s.stats.Net,
	})

	switch {
	case err == nil, errors.Is(err, io.EOF):
		log.Info("session over")
		s.renderer.SessionOver(nil, s.stats)
		return nil
	case errors.Is(err, ErrOutOfMoney):
		log.Info("session over, out of money")
		s.renderer.SessionOver(err, s.stats)
		return nil
	}

	return err
}

// PlayRound deals and plays one round, from the bet to the settlement
func (s *Session) PlayRound() (*Round, error) {
	if s.bankroll <= 0 {
		return nil, ErrOutOfMoney
	}

	r, err := s.deal()
	if err != nil {
		return nil, err
	}

	s.rounds = append(s.rounds, r)
	log := s.logger.WithField("round", r.ID)

	bet, err := s.acquireBet()
	if err != nil {
		return r, err
	}

	r.Bet = bet
	log.WithField("bet", bet).Debug("bet placed")

	decided, err := s.playerTurn(r)
	if err != nil {
		return r, err
	}

	if !decided {
		if _, err := s.dealerTurn(r); err != nil {
			return r, err
		}
	}

	settlement := s.settle(r)
	log.WithFields(logrus.Fields{
		"result":   settlement.Result,
		"bet":      settlement.Bet,
		"payout":   settlement.Payout,
		"bankroll": settlement.Bankroll,
	}).Info("round settled")

	return r, nil
}

// deal shuffles the deck and deals two cards each, player first
func (s *Session) deal() (*Round, error) {
	s.deck.Shuffle()

	r := newRound()
	s.logger.WithField("round", r.ID).WithField("deck", s.deck.HashCode()).Debug("deck shuffled")

	for _, hand := range []*deck.Hand{r.Player, r.Player, r.Dealer, r.Dealer} {
		if _, err := s.deck.DealTo(hand); err != nil {
			return nil, fmt.Errorf("could not deal opening cards: %w", err)
		}
	}

	return r, nil
}

// settle pays out the round and records the result
func (s *Session) settle(r *Round) Settlement {
	result := Resolve(r.PlayerState, r.Player.Total(), r.DealerState, r.Dealer.Total())
	payout := Payout(result, r.Bet)
	s.bankroll += payout

	settlement := Settlement{
		Result:      result,
		PlayerTotal: r.Player.Total(),
		DealerTotal: r.Dealer.Total(),
		Bet:         r.Bet,
		Payout:      payout,
		Bankroll:    s.bankroll,
	}

	r.Settlement = &settlement
	s.stats.record(settlement)
	s.renderer.Settled(settlement)

	return settlement
}
