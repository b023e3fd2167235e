package blackjack

import (
	"errors"
	"fmt"

	"blackjack-console/pkg/deck"
	"blackjack-console/pkg/playable"

	"github.com/google/uuid"
)

// DealerStandValue is the value at or above which the dealer stops drawing
const DealerStandValue = 17

// Round is a single bet-to-payout cycle
type Round struct {
	ID     string
	Bet    int
	Player deck.Hand
	Dealer deck.Hand
	State  RoundState
	Result *Result

	shoe  *deck.Shoe
	onLog func(messages ...*playable.LogMessage)
}

// NewRound returns a new Round object
func NewRound(shoe *deck.Shoe) *Round {
	return &Round{
		ID:     uuid.New().String(),
		Player: deck.Hand{},
		Dealer: deck.Hand{},
		State:  RoundStateAwaitingBet,
		shoe:   shoe,
	}
}

// Deal takes the bet and deals two cards each, alternating player then dealer
// If either hand is a natural, the round is settled immediately
func (r *Round) Deal(bet int) error {
	if r.State != RoundStateAwaitingBet {
		return fmt.Errorf("cannot deal from state: %s", r.State)
	}

	if bet <= 0 {
		return errors.New("bet must be > 0")
	}

	r.Bet = bet
	r.Player.Clear()
	r.Dealer.Clear()

	for i := 0; i < 2; i++ {
		r.Player.AddCard(r.shoe.Draw())
		r.Dealer.AddCard(r.shoe.Draw())
	}

	r.State = RoundStateDealt

	if r.Player.IsBlackjack() || r.Dealer.IsBlackjack() {
		r.settle()
		return nil
	}

	r.State = RoundStatePlayerTurn
	return nil
}

// Hit draws a card for the player
// A bust settles the round without a dealer turn, exactly 21 ends the player's turn
func (r *Round) Hit() (deck.Card, error) {
	if r.State != RoundStatePlayerTurn {
		return deck.Card{}, fmt.Errorf("cannot hit from state: %s", r.State)
	}

	card := r.shoe.Draw()
	r.Player.AddCard(card)
	r.sendLogMessage(playable.CardLogMessage(playable.SeatPlayer, card, "📥 You drew:"))

	switch value := r.Player.Value(); {
	case value > deck.BlackjackValue:
		r.sendLogMessage(playable.SimpleLogMessage(playable.SeatPlayer, "💥 BUST! You went over 21!"))
		r.settle()
	case value == deck.BlackjackValue:
		r.sendLogMessage(playable.SimpleLogMessage(playable.SeatPlayer, "🎉 You have 21!"))
		r.State = RoundStateDealerTurn
	}

	return card, nil
}

// Stand ends the player's turn
func (r *Round) Stand() error {
	if r.State != RoundStatePlayerTurn {
		return fmt.Errorf("cannot stand from state: %s", r.State)
	}

	r.sendLogMessage(playable.SimpleLogMessage(playable.SeatPlayer, "✋ You stand."))
	r.State = RoundStateDealerTurn
	return nil
}

// DealerShouldHit returns true if the dealer is below the stand value
func (r *Round) DealerShouldHit() bool {
	return r.Dealer.Value() < DealerStandValue
}

// DealerStep advances the dealer's turn by one step
// Below 17 the dealer draws and the card is returned. Otherwise the round is settled and nil is returned.
func (r *Round) DealerStep() (*deck.Card, error) {
	if r.State != RoundStateDealerTurn {
		return nil, fmt.Errorf("cannot play dealer from state: %s", r.State)
	}

	if r.DealerShouldHit() {
		card := r.shoe.Draw()
		r.Dealer.AddCard(card)
		r.sendLogMessage(playable.CardLogMessage(playable.SeatDealer, card, "📥 Dealer draws:"))
		return &card, nil
	}

	if r.Dealer.IsBust() {
		r.sendLogMessage(playable.SimpleLogMessage(playable.SeatDealer, "💥 Dealer BUSTS!"))
	} else {
		r.sendLogMessage(playable.SimpleLogMessage(playable.SeatDealer, "✋ Dealer stands at %d", r.Dealer.Value()))
	}

	r.settle()
	return nil, nil
}

// PlayDealer runs the dealer's turn to completion and returns the cards drawn
func (r *Round) PlayDealer() ([]deck.Card, error) {
	drawn := make([]deck.Card, 0)
	for {
		card, err := r.DealerStep()
		if err != nil {
			return nil, err
		}

		if card == nil {
			return drawn, nil
		}

		drawn = append(drawn, *card)
	}
}

// IsSettled returns true once the bet has been resolved
func (r *Round) IsSettled() bool {
	return r.State == RoundStateSettled
}

func (r *Round) settle() {
	r.Result = Settle(r.Player, r.Dealer, r.Bet)
	r.State = RoundStateSettled
}

func (r *Round) sendLogMessage(messages ...*playable.LogMessage) {
	if r.onLog != nil {
		r.onLog(messages...)
	}
}
