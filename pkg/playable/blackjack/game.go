package blackjack

import (
	"context"
	"errors"
	"fmt"

	"blackjack-console/pkg/deck"
	"blackjack-console/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Game is a session of blackjack against the dealer
// The balance carries over from round to round until the session ends.
type Game struct {
	options   Options
	shoe      *deck.Shoe
	decisions DecisionSource
	display   Display
	logger    logrus.FieldLogger

	balance      int
	round        *Round
	roundsPlayed int
}

// NewGame returns a new game
func NewGame(logger logrus.FieldLogger, shoe *deck.Shoe, decisions DecisionSource, display Display, options Options) (*Game, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}

	if shoe == nil {
		return nil, errors.New("game requires a shoe")
	}

	if decisions == nil || display == nil {
		return nil, errors.New("game requires a decision source and a display")
	}

	g := &Game{
		options:   options,
		shoe:      shoe,
		decisions: decisions,
		display:   display,
		logger:    logger,
		balance:   options.StartingBalance,
	}

	shoe.SetReshuffleHandler(func() {
		g.logger.WithField("reshuffles", shoe.Reshuffles()).Info("shoe replenished")
		g.display.Log(playable.SimpleLogMessage(playable.SeatNone, "♻️  Reshuffling deck..."))
	})

	return g, nil
}

// Balance returns the current balance
func (g *Game) Balance() int {
	return g.balance
}

// RoundsPlayed returns the number of rounds that were settled
func (g *Game) RoundsPlayed() int {
	return g.roundsPlayed
}

// CurrentRound returns the most recent round, or nil if no bet has been placed yet
func (g *Game) CurrentRound() *Round {
	return g.round
}

// Play runs rounds until the player quits, declines another round, or can no longer cover the minimum bet
func (g *Game) Play(ctx context.Context) error {
	g.display.Clear()
	g.display.ShowWelcome(g.balance, g.options.MinimumBet)

	for g.canBet() {
		if _, err := g.PlayRound(ctx); err != nil {
			if errors.Is(err, ErrQuit) {
				break
			}

			return err
		}

		if !g.canBet() {
			break
		}

		again, err := g.decisions.RequestContinue(ctx)
		if err != nil {
			return err
		}

		if !again {
			break
		}

		g.display.Clear()
	}

	g.display.ShowGoodbye(g.balance, !g.canBet())
	return nil
}

// PlayRound plays a single round from bet to payout
// If the round cannot finish, the bet is returned to the balance and the error is returned.
func (g *Game) PlayRound(ctx context.Context) (result *Result, err error) {
	bet, err := g.decisions.RequestBet(ctx, g.balance, g.options.MinimumBet)
	if err != nil {
		return nil, err
	}

	if bet < g.options.MinimumBet || bet > g.balance {
		return nil, BetError{
			Min: g.options.MinimumBet,
			Max: g.balance,
			Got: bet,
		}
	}

	if g.options.ShuffleEachRound {
		g.shoe.Shuffle()
	}

	round := NewRound(g.shoe)
	round.onLog = g.display.Log
	g.round = round

	log := g.logger.WithFields(logrus.Fields{
		"round": round.ID,
		"bet":   bet,
	})

	g.balance -= bet
	defer func() {
		if err != nil && !round.IsSettled() {
			g.balance += bet
			log.WithError(err).Warn("round voided, bet returned")
		}
	}()

	if err := round.Deal(bet); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"player": deck.CardsToString(round.Player),
		"dealer": deck.CardsToString(round.Dealer),
	}).Debug("cards dealt")

	if round.IsSettled() {
		g.display.ShowTable(round.View(false))
		if round.Player.IsBlackjack() {
			g.display.Log(playable.SimpleLogMessage(playable.SeatPlayer, "🎰 BLACKJACK!"))
		}

		return g.settle(round, log), nil
	}

	if err := g.playerTurn(ctx, round); err != nil {
		return nil, err
	}

	if round.State == RoundStateDealerTurn {
		if err := g.dealerTurn(ctx, round); err != nil {
			return nil, err
		}
	} else {
		// the player busted, show the hole card anyway
		g.display.ShowTable(round.View(false))
	}

	return g.settle(round, log), nil
}

func (g *Game) playerTurn(ctx context.Context, round *Round) error {
	for round.State == RoundStatePlayerTurn {
		g.display.ShowTable(round.View(true))

		action, err := g.decisions.RequestHitOrStand(ctx)
		if err != nil {
			return err
		}

		switch action {
		case ActionHit:
			if _, err := round.Hit(); err != nil {
				return err
			}
		case ActionStand:
			if err := round.Stand(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid action: %d", action)
		}
	}

	return nil
}

func (g *Game) dealerTurn(ctx context.Context, round *Round) error {
	g.display.Log(playable.SimpleLogMessage(playable.SeatDealer, "🤖 Dealer's turn..."))
	g.display.ShowTable(round.View(false))

	pauser, _ := g.decisions.(Pauser)
	for round.State == RoundStateDealerTurn {
		hit := round.DealerShouldHit()
		if hit && pauser != nil {
			if err := pauser.Pause(ctx); err != nil {
				return err
			}
		}

		if _, err := round.DealerStep(); err != nil {
			return err
		}

		if hit {
			g.display.ShowTable(round.View(false))
		}
	}

	return nil
}

func (g *Game) settle(round *Round, log logrus.FieldLogger) *Result {
	result := round.Result
	g.balance += result.Payout
	result.Balance = g.balance
	g.roundsPlayed++

	log.WithFields(logrus.Fields{
		"player":  deck.CardsToString(round.Player),
		"dealer":  deck.CardsToString(round.Dealer),
		"outcome": result.Outcome,
		"payout":  result.Payout,
		"balance": g.balance,
	}).Info("round settled")

	g.display.ShowResult(result)
	return result
}

func (g *Game) canBet() bool {
	return g.balance >= g.options.MinimumBet
}
