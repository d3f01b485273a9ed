package main

import (
	"blackjack-terminal/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"os"
)

// prints the default configuration, suitable as a starting blackjack.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode configuration")
	}
}
