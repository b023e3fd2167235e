package blackjack

import (
	"errors"
	"fmt"
)

// ErrQuit is returned by a DecisionSource when the player would rather leave than bet
var ErrQuit = errors.New("player quit")

// BetError is an error on the size of a bet
type BetError struct {
	Min int
	Max int
	Got int
}

func (b BetError) Error() string {
	if b.Got < b.Min {
		return fmt.Sprintf("minimum bet is $%d, got $%d", b.Min, b.Got)
	}

	return fmt.Sprintf("bet of $%d exceeds the balance of $%d", b.Got, b.Max)
}
