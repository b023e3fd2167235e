package blackjack

import (
	"fmt"

	"blackjack-console/pkg/deck"
)

// a natural pays 3:2, stake included that is bet * 5 / 2
const (
	blackjackPayoutNumerator   = 5
	blackjackPayoutDenominator = 2
)

// Outcome is how a round ended
type Outcome string

// Outcome constants, in the order they are checked
const (
	OutcomePlayerBust      Outcome = "player-bust"
	OutcomeDealerBust      Outcome = "dealer-bust"
	OutcomePlayerBlackjack Outcome = "player-blackjack"
	OutcomeDealerBlackjack Outcome = "dealer-blackjack"
	OutcomePlayerWins      Outcome = "player-wins"
	OutcomeDealerWins      Outcome = "dealer-wins"
	OutcomePush            Outcome = "push"
)

// Message returns a human readable description of the outcome
func (o Outcome) Message() string {
	switch o {
	case OutcomePlayerBust:
		return "💔 You BUST! Dealer wins!"
	case OutcomeDealerBust:
		return "🎉 Dealer BUSTS! You WIN!"
	case OutcomePlayerBlackjack:
		return "🎰 BLACKJACK! You win 3:2!"
	case OutcomeDealerBlackjack:
		return "💔 Dealer has BLACKJACK! You lose!"
	case OutcomePlayerWins:
		return "🎉 You WIN!"
	case OutcomeDealerWins:
		return "💔 Dealer wins!"
	case OutcomePush:
		return "🤝 It's a TIE! Bet returned."
	}

	panic(fmt.Sprintf("invalid outcome: %s", string(o)))
}

// PlayerWon returns true if the player made a profit
func (o Outcome) PlayerWon() bool {
	return o == OutcomeDealerBust || o == OutcomePlayerBlackjack || o == OutcomePlayerWins
}

// Result is the settlement of a round
type Result struct {
	Outcome     Outcome `json:"outcome"`
	Bet         int     `json:"bet"`
	Payout      int     `json:"payout"`
	PlayerValue int     `json:"playerValue"`
	DealerValue int     `json:"dealerValue"`

	// Balance is the session balance after the payout was credited
	Balance int `json:"balance"`
}

// Profit returns what the player gained (or lost) over the stake
func (r *Result) Profit() int {
	return r.Payout - r.Bet
}

// Settle determines the outcome and payout of the hands
// Payout includes the returned stake. The first matching rule wins.
func Settle(player, dealer deck.Hand, bet int) *Result {
	playerValue := player.Value()
	dealerValue := dealer.Value()

	playerBlackjack := player.IsBlackjack()
	dealerBlackjack := dealer.IsBlackjack()

	result := &Result{
		Bet:         bet,
		PlayerValue: playerValue,
		DealerValue: dealerValue,
	}

	switch {
	case playerValue > deck.BlackjackValue:
		result.Outcome = OutcomePlayerBust
	case dealerValue > deck.BlackjackValue:
		result.Outcome = OutcomeDealerBust
		result.Payout = bet * 2
	case playerBlackjack && !dealerBlackjack:
		result.Outcome = OutcomePlayerBlackjack
		result.Payout = bet * blackjackPayoutNumerator / blackjackPayoutDenominator
	case dealerBlackjack && !playerBlackjack:
		result.Outcome = OutcomeDealerBlackjack
	case playerValue > dealerValue:
		result.Outcome = OutcomePlayerWins
		result.Payout = bet * 2
	case playerValue < dealerValue:
		result.Outcome = OutcomeDealerWins
	default:
		result.Outcome = OutcomePush
		result.Payout = bet
	}

	return result
}
