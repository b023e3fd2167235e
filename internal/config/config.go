package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"blackjack-console/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack console
type Config struct {
	loaded           bool
	StartingBalance  int   `yaml:"startingBalance" envconfig:"starting_balance"`
	MinimumBet       int   `yaml:"minimumBet" envconfig:"minimum_bet"`
	Seed             int64 `yaml:"seed"`
	ShuffleEachRound bool  `yaml:"shuffleEachRound" envconfig:"shuffle_each_round"`
	Display          struct {
		ClearScreen bool `yaml:"clearScreen" envconfig:"clear_screen"`
		DealerPause bool `yaml:"dealerPause" envconfig:"dealer_pause"`
	}
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{
		StartingBalance:  1000,
		MinimumBet:       10,
		ShuffleEachRound: true,
	}

	cfg.Display.ClearScreen = true
	cfg.Display.DealerPause = true
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are layered: defaults, then the YAML file named by BJ_CONFIG_FILE, then BJ_* environment variables.
// A missing config file is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func (c Config) validate() error {
	if c.MinimumBet <= 0 {
		return errors.New("minimumBet must be > 0")
	}

	if c.StartingBalance <= 0 {
		return errors.New("startingBalance must be > 0")
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}

	return nil
}
