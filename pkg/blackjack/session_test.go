package blackjack

import (
	"blackjack-terminal/pkg/snapshot"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewSession(t *testing.T) {
	a := assert.New(t)

	s, err := NewSession(logrus.StandardLogger(), identity{}, &scriptedInput{}, &recorder{}, Options{})
	a.Nil(s)
	a.EqualError(err, "starting bankroll must be > 0")

	s, err = NewSession(logrus.StandardLogger(), identity{}, nil, &recorder{}, DefaultOptions())
	a.Nil(s)
	a.EqualError(err, "session requires an input and a renderer")

	s, err = NewSession(nil, nil, &scriptedInput{}, &recorder{}, DefaultOptions())
	a.NoError(err)
	a.Equal(10000, s.Bankroll())
	a.Equal(Stats{}, s.Stats())
	a.Empty(s.Rounds())
}

func TestSession_PlayRound(t *testing.T) {
	type testCase struct {
		name        string
		top         string
		input       *scriptedInput
		result      Result
		bet         int
		bankroll    int
		playerState PlayerState
		dealerState DealerState
	}

	for _, tc := range []testCase{
		{
			name:        "player 20 beats dealer 19",
			top:         "13c,12d,10h,9s",
			input:       &scriptedInput{bets: []int{100}, moves: []Move{MoveStick}},
			result:      ResultPlayerWins,
			bet:         100,
			bankroll:    10100,
			playerState: PlayerStateStuck,
			dealerState: DealerStateSticking,
		},
		{
			name:        "player 18, dealer bust",
			top:         "10c,8d,10h,6s,7c",
			input:       &scriptedInput{bets: []int{100}, moves: []Move{MoveStick}},
			result:      ResultDealerBust,
			bet:         100,
			bankroll:    10100,
			playerState: PlayerStateStuck,
			dealerState: DealerStateBust,
		},
		{
			name:        "push on 19",
			top:         "10c,9d,10h,9s",
			input:       &scriptedInput{bets: []int{100}, moves: []Move{MoveStick}},
			result:      ResultPush,
			bet:         100,
			bankroll:    10000,
			playerState: PlayerStateStuck,
			dealerState: DealerStateSticking,
		},
		{
			name:        "player hits to 22",
			top:         "10c,2d,10h,7s,13c",
			input:       &scriptedInput{bets: []int{100}, moves: []Move{MoveHit}},
			result:      ResultPlayerBust,
			bet:         100,
			bankroll:    9900,
			playerState: PlayerStateBust,
			dealerState: DealerStateWaiting,
		},
		{
			name:        "dealt ace king",
			top:         "14s,13h,10h,7s",
			input:       &scriptedInput{bets: []int{100}},
			result:      ResultPlayerTwentyOne,
			bet:         100,
			bankroll:    10100,
			playerState: PlayerStateTwentyOne,
			dealerState: DealerStateWaiting,
		},
		{
			name:        "dealer 19 beats player 17",
			top:         "10c,7d,10h,9s",
			input:       &scriptedInput{bets: []int{500}, moves: []Move{MoveStick}},
			result:      ResultDealerWins,
			bet:         500,
			bankroll:    9500,
			playerState: PlayerStateStuck,
			dealerState: DealerStateSticking,
		},
		{
			name:        "dealer draws to 21",
			top:         "13c,12d,10h,6s,5c",
			input:       &scriptedInput{bets: []int{100}, moves: []Move{MoveStick}},
			result:      ResultDealerWins,
			bet:         100,
			bankroll:    9900,
			playerState: PlayerStateStuck,
			dealerState: DealerStateTwentyOne,
		},
		{
			name: "raise then lose",
			top:  "2c,3d,10h,8s,4c",
			input: &scriptedInput{
				bets:   []int{100, 50},
				moves:  []Move{MoveHit, MoveStick},
				raises: []bool{true},
			},
			result:      ResultDealerWins,
			bet:         150,
			bankroll:    9850,
			playerState: PlayerStateStuck,
			dealerState: DealerStateSticking,
		},
		{
			name: "raise then win",
			top:  "2c,3d,10h,8s,13c,6h",
			input: &scriptedInput{
				bets:   []int{100, 200},
				moves:  []Move{MoveHit, MoveHit},
				raises: []bool{true},
			},
			result:      ResultPlayerTwentyOne,
			bet:         300,
			bankroll:    10300,
			playerState: PlayerStateTwentyOne,
			dealerState: DealerStateWaiting,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			s, _ := newTestSession(t, tc.top, tc.input)

			r, err := s.PlayRound()
			a.NoError(err)
			a.True(r.IsSettled())
			a.Equal(tc.result, r.Settlement.Result)
			a.Equal(tc.bet, r.Bet)
			a.Equal(tc.bankroll, s.Bankroll())
			a.Equal(tc.bankroll, r.Settlement.Bankroll)
			a.Equal(tc.playerState, r.PlayerState)
			a.Equal(tc.dealerState, r.DealerState)
			a.Equal(Payout(tc.result, tc.bet), r.Settlement.Payout)
			a.Len(s.Rounds(), 1)
		})
	}
}

func TestSession_PlayRound_events(t *testing.T) {
	s, rec := newTestSession(t, "10c,2d,10h,7s,13c", &scriptedInput{bets: []int{100}, moves: []Move{MoveHit}})

	_, err := s.PlayRound()
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"bankroll 10000",
		"bet 100, bankroll 9900",
		"Player 10c,2d = 12",
		"player bust",
		"Player 10c,2d,13c = 22",
		"settled player-bust, payout 0, bankroll 9900",
	}, rec.events)
}

func TestSession_PlayRound_snapshot(t *testing.T) {
	s, _ := newTestSession(t, "13c,12d,10h,9s", &scriptedInput{bets: []int{100}, moves: []Move{MoveStick}})

	r, err := s.PlayRound()
	assert.NoError(t, err)

	r.ID = "test-round"
	snapshot.ValidateSnapshot(t, r, 0)
}

func TestSession_PlayRound_outOfMoney(t *testing.T) {
	s, _ := newTestSession(t, "", &scriptedInput{})
	s.bankroll = 0

	r, err := s.PlayRound()
	assert.Nil(t, r)
	assert.Equal(t, ErrOutOfMoney, err)
}

func TestSession_Run(t *testing.T) {
	a := assert.New(t)
	s, rec := newTestSession(t, "13c,12d,10h,9s", &scriptedInput{
		bets:  []int{100, 250},
		moves: []Move{MoveStick, MoveStick},
		again: []bool{true, false},
	})

	a.NoError(s.Run())
	a.Equal(10350, s.Bankroll())
	a.Equal(1, rec.count("banner"))
	a.Equal(1, rec.count("clear"))
	a.True(rec.sessionOver)
	a.NoError(rec.sessionError)
	a.Equal(Stats{Rounds: 2, Wins: 2, Net: 350}, rec.stats)
	a.Len(s.Rounds(), 2)
	a.NotEqual(s.Rounds()[0].ID, s.Rounds()[1].ID)
}

func TestSession_Run_noClear(t *testing.T) {
	opts := DefaultOptions()
	opts.ClearBetweenRounds = false
	s, rec := newTestSession(t, "13c,12d,10h,9s", &scriptedInput{
		bets:  []int{100, 100},
		moves: []Move{MoveStick, MoveStick},
		again: []bool{true, false},
	}, opts)

	assert.NoError(t, s.Run())
	assert.Equal(t, 0, rec.count("clear"))
}

func TestSession_Run_outOfMoney(t *testing.T) {
	a := assert.New(t)
	s, rec := newTestSession(t, "10c,7d,10h,9s", &scriptedInput{
		bets:  []int{100},
		moves: []Move{MoveStick},
		again: []bool{true},
	}, Options{StartingBankroll: 100})

	a.NoError(s.Run())
	a.Equal(0, s.Bankroll())
	a.True(rec.sessionOver)
	a.Equal(ErrOutOfMoney, rec.sessionError)
	a.Equal(Stats{Rounds: 1, Losses: 1, Net: -100}, rec.stats)
}

func TestSession_Run_inputClosed(t *testing.T) {
	a := assert.New(t)
	s, rec := newTestSession(t, "13c,12d,10h,9s", &scriptedInput{})

	a.NoError(s.Run())
	a.True(rec.sessionOver)
	a.NoError(rec.sessionError)
	a.Equal(10000, s.Bankroll())

	rounds := s.Rounds()
	a.Len(rounds, 1)
	a.False(rounds[0].IsSettled())
}
