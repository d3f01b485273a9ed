package main

import (
	"blackjack-terminal/internal/config"
	"blackjack-terminal/internal/console"
	"blackjack-terminal/internal/rng"
	"blackjack-terminal/pkg/blackjack"
	"flag"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"os"
	"strings"
)

var seed = flag.Int64("seed", 0, "shuffle seed for a reproducible game (0 uses the configured seed)")
var bankroll = flag.Int("bankroll", 0, "starting bankroll (0 uses the configured bankroll)")

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not load .env")
	}

	if err := config.Load(); err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	cfg := config.Instance()
	setupLogger(cfg)

	opts := blackjack.DefaultOptions()
	opts.StartingBankroll = cfg.StartingBankroll
	opts.ClearBetweenRounds = cfg.ClearScreen
	if *bankroll > 0 {
		opts.StartingBankroll = *bankroll
	}

	shuffleSeed := cfg.Seed
	if *seed != 0 {
		shuffleSeed = *seed
	}

	con := console.NewStdio()
	session, err := blackjack.NewSession(logrus.StandardLogger(), rng.New(shuffleSeed), con, con, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not start session")
	}

	if err := session.Run(); err != nil {
		logrus.WithError(err).Fatal("session ended unexpectedly")
	}
}

func setupLogger(cfg config.Config) {
	logrus.SetOutput(os.Stderr)

	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
