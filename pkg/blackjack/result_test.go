package blackjack

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestResolve(t *testing.T) {
	a := assert.New(t)

	a.Equal(ResultPlayerBust, Resolve(PlayerStateBust, 22, DealerStateWaiting, 17))
	a.Equal(ResultPlayerTwentyOne, Resolve(PlayerStateTwentyOne, 21, DealerStateWaiting, 20))
	a.Equal(ResultPlayerWins, Resolve(PlayerStateStuck, 20, DealerStateSticking, 19))
	a.Equal(ResultDealerBust, Resolve(PlayerStateStuck, 18, DealerStateBust, 23))
	a.Equal(ResultDealerBust, Resolve(PlayerStateStuck, 12, DealerStateBust, 26))
	a.Equal(ResultPush, Resolve(PlayerStateStuck, 19, DealerStateSticking, 19))
	a.Equal(ResultDealerWins, Resolve(PlayerStateStuck, 17, DealerStateSticking, 18))
	a.Equal(ResultDealerWins, Resolve(PlayerStateStuck, 20, DealerStateTwentyOne, 21))
}

func TestPayout(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, Payout(ResultPlayerBust, 100))
	a.Equal(200, Payout(ResultPlayerTwentyOne, 100))
	a.Equal(200, Payout(ResultDealerBust, 100))
	a.Equal(200, Payout(ResultPlayerWins, 100))
	a.Equal(100, Payout(ResultPush, 100))
	a.Equal(0, Payout(ResultDealerWins, 100))
}

func TestResult_IsWin_IsLoss(t *testing.T) {
	a := assert.New(t)

	for _, result := range []Result{ResultPlayerTwentyOne, ResultDealerBust, ResultPlayerWins} {
		a.True(result.IsWin(), string(result))
		a.False(result.IsLoss(), string(result))
	}

	for _, result := range []Result{ResultPlayerBust, ResultDealerWins} {
		a.False(result.IsWin(), string(result))
		a.True(result.IsLoss(), string(result))
	}

	a.False(ResultPush.IsWin())
	a.False(ResultPush.IsLoss())
}

func TestStats_record(t *testing.T) {
	a := assert.New(t)

	var stats Stats
	stats.record(Settlement{Result: ResultPlayerWins, Bet: 100, Payout: 200})
	stats.record(Settlement{Result: ResultPush, Bet: 50, Payout: 50})
	stats.record(Settlement{Result: ResultPlayerBust, Bet: 75})

	a.Equal(Stats{Rounds: 3, Wins: 1, Losses: 1, Pushes: 1, Net: 25}, stats)
}
