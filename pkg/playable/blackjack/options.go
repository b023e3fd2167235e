package blackjack

import "errors"

// Options contains options for creating a new game of blackjack
type Options struct {
	StartingBalance int
	MinimumBet      int

	// ShuffleEachRound shuffles whatever is left in the shoe before every deal
	ShuffleEachRound bool
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingBalance:  1000,
		MinimumBet:       10,
		ShuffleEachRound: true,
	}
}

func (o Options) validate() error {
	if o.MinimumBet <= 0 {
		return errors.New("minimum bet must be > 0")
	}

	if o.StartingBalance <= 0 {
		return errors.New("starting balance must be > 0")
	}

	return nil
}
