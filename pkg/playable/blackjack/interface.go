package blackjack

import (
	"context"

	"blackjack-console/pkg/playable"
)

// DecisionSource supplies the player's decisions
// Every method must return a value that satisfies its constraints, re-asking on bad input is up to the implementation.
type DecisionSource interface {
	// RequestBet returns a bet where minimum <= bet <= balance, or ErrQuit
	RequestBet(ctx context.Context, balance, minimum int) (int, error)

	// RequestHitOrStand returns ActionHit or ActionStand
	RequestHitOrStand(ctx context.Context) (Action, error)

	// RequestContinue returns true if the player wants another round
	RequestContinue(ctx context.Context) (bool, error)
}

// Pauser can be implemented by a DecisionSource that wants to pace the dealer's draws
type Pauser interface {
	Pause(ctx context.Context) error
}

// Display renders the game
// Nothing it returns affects the game.
type Display interface {
	Clear()
	ShowWelcome(balance, minimumBet int)
	ShowTable(view *TableView)
	Log(messages ...*playable.LogMessage)
	ShowResult(result *Result)
	ShowGoodbye(balance int, broke bool)
}
