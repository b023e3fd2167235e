package blackjack

import (
	"testing"

	"blackjack-console/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestSettle(t *testing.T) {
	test := func(t *testing.T, player, dealer string, bet int, outcome Outcome, payout int) {
		t.Helper()

		a := assert.New(t)
		result := Settle(deck.CardsFromString(player), deck.CardsFromString(dealer), bet)
		a.Equal(outcome, result.Outcome)
		a.Equal(payout, result.Payout)
		a.Equal(bet, result.Bet)
		a.Equal(payout-bet, result.Profit())
	}

	// rule 1: a player bust loses even when the dealer busts too
	test(t, "13c,12c,2c", "13d,12d,3d", 100, OutcomePlayerBust, 0)
	test(t, "13c,12c,2c", "10d,8d", 100, OutcomePlayerBust, 0)

	// rule 2
	test(t, "10c,8c", "13d,6d,10h", 100, OutcomeDealerBust, 200)
	test(t, "10c,5c,6c", "13d,6d,10h", 100, OutcomeDealerBust, 200)

	// rule 3 fires before rule 5
	test(t, "14s,13h", "9c,8c", 100, OutcomePlayerBlackjack, 250)
	test(t, "14s,13h", "9c,8c", 15, OutcomePlayerBlackjack, 37)
	test(t, "14s,13h", "10c,5c,6d", 10, OutcomePlayerBlackjack, 25)

	// rule 4
	test(t, "10c,5c,6c", "14s,13s", 100, OutcomeDealerBlackjack, 0)
	test(t, "10c,9c", "14s,12s", 100, OutcomeDealerBlackjack, 0)

	// rules 5-7
	test(t, "10c,10d", "10h,9h", 100, OutcomePlayerWins, 200)
	test(t, "10c,8d", "10h,9h", 100, OutcomeDealerWins, 0)
	test(t, "10c,9d", "10h,9h", 100, OutcomePush, 100)
	test(t, "10c,5c,6c", "10h,4h,7h", 50, OutcomePush, 50)

	// both naturals push
	test(t, "14s,13h", "14c,12d", 100, OutcomePush, 100)
}

func TestOutcome_Message(t *testing.T) {
	for _, o := range []Outcome{OutcomePlayerBust, OutcomeDealerBust, OutcomePlayerBlackjack, OutcomeDealerBlackjack, OutcomePlayerWins, OutcomeDealerWins, OutcomePush} {
		assert.NotEmpty(t, o.Message(), string(o))
	}

	assert.Panics(t, func() {
		_ = Outcome("bogus").Message()
	})

	assert.True(t, OutcomeDealerBust.PlayerWon())
	assert.True(t, OutcomePlayerBlackjack.PlayerWon())
	assert.False(t, OutcomePush.PlayerWon())
	assert.False(t, OutcomeDealerWins.PlayerWon())
}
