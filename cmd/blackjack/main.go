package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"blackjack-console/internal/config"
	"blackjack-console/internal/console"
	"blackjack-console/internal/rng"
	"blackjack-console/pkg/deck"
	"blackjack-console/pkg/playable/blackjack"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var seed = flag.Int64("seed", 0, "seed for the shoe, overrides the configured seed (0 uses a secure random source)")

func main() {
	flag.Parse()

	// a .env file is optional
	_ = godotenv.Load()

	if err := config.Load(); err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	setupLogger()
	os.Exit(run())
}

func run() (code int) {
	cfg := config.Instance()

	ui := console.New(os.Stdin, os.Stdout, console.Options{
		ClearScreen: cfg.Display.ClearScreen && term.IsTerminal(int(os.Stdout.Fd())),
		DealerPause: cfg.Display.DealerPause,
	})
	defer ui.Close()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("unexpected panic")
			ui.ShowError(fmt.Errorf("%v", r))
			code = 1
		}
	}()

	shoe := deck.NewShoe(newGenerator(cfg))
	shoe.Shuffle()

	game, err := blackjack.NewGame(logrus.StandardLogger(), shoe, ui, ui, blackjack.Options{
		StartingBalance:  cfg.StartingBalance,
		MinimumBet:       cfg.MinimumBet,
		ShuffleEachRound: cfg.ShuffleEachRound,
	})
	if err != nil {
		ui.ShowError(err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = game.Play(ctx)
	logrus.WithFields(logrus.Fields{
		"rounds":  game.RoundsPlayed(),
		"balance": game.Balance(),
	}).Info("session ended")

	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		ui.ShowInterrupted(game.Balance())
		return 0
	case errors.Is(err, io.EOF):
		ui.ShowGoodbye(game.Balance(), false)
		return 0
	}

	logrus.WithError(err).Error("game ended with an error")
	ui.ShowError(err)
	return 1
}

func newGenerator(cfg config.Config) rng.Generator {
	s := cfg.Seed
	if *seed != 0 {
		s = *seed
	}

	if s == 0 {
		return rng.Crypto{}
	}

	gen := rng.NewSeeded(s)
	logrus.WithField("seed", gen.Seed()).Info("using a seeded shoe")
	return gen
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}
