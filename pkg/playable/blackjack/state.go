package blackjack

import "blackjack-console/pkg/deck"

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateAwaitingBet is before a bet has been placed and any cards have been dealt
	RoundStateAwaitingBet RoundState = "awaiting-bet"

	// RoundStateDealt means both hands received their first two cards
	RoundStateDealt RoundState = "dealt"

	// RoundStatePlayerTurn means we are waiting for the player to hit or stand
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the dealer is drawing to 17
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateSettled means the bet was resolved
	RoundStateSettled RoundState = "settled"
)

// TableView is what the player is allowed to see of the table
type TableView struct {
	Player      deck.Hand `json:"player"`
	PlayerValue int       `json:"playerValue"`
	PlayerSoft  bool      `json:"playerSoft"`

	// Dealer only holds the up card while the hole card is hidden
	Dealer         deck.Hand `json:"dealer"`
	DealerValue    int       `json:"dealerValue"`
	HoleCardHidden bool      `json:"holeCardHidden"`

	Bet            int        `json:"bet"`
	State          RoundState `json:"state"`
	CardsRemaining int        `json:"cardsRemaining"`
}

// View returns the table as the player sees it
// When hideHoleCard is true, only the dealer's first card and no dealer value are shown
func (r *Round) View(hideHoleCard bool) *TableView {
	view := &TableView{
		Player:         r.Player.Clone(),
		PlayerValue:    r.Player.Value(),
		PlayerSoft:     r.Player.IsSoft(),
		Bet:            r.Bet,
		State:          r.State,
		CardsRemaining: r.shoe.Remaining(),
	}

	if hideHoleCard && len(r.Dealer) > 1 {
		view.Dealer = r.Dealer[:1].Clone()
		view.HoleCardHidden = true
		return view
	}

	view.Dealer = r.Dealer.Clone()
	view.DealerValue = r.Dealer.Value()
	return view
}
