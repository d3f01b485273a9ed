package config

import (
	"blackjack-terminal/internal/util"
	"errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"os"
)

// FileEnv names the environment variable holding the config file path
const FileEnv = "BLACKJACK_CONFIG_FILE"

// Config provides configuration for the blackjack table
type Config struct {
	loaded           bool
	StartingBankroll int   `yaml:"startingBankroll" envconfig:"starting_bankroll"`
	Seed             int64 `yaml:"seed" envconfig:"seed"`
	ClearScreen      bool  `yaml:"clearScreen" envconfig:"clear_screen"`
	Log              struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	c := Config{
		StartingBankroll: 10000,
		Seed:             0,
		ClearScreen:      true,
	}
	c.Log.Level = "warn"
	c.Log.Format = "text"

	return c
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
// Defaults are overlaid by the YAML file (if it exists), then by BLACKJACK_* environment variables.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv(FileEnv, "blackjack.yaml")
	file, err := os.Open(configFile)
	switch {
	case os.IsNotExist(err):
		// the file is optional
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	}

	if err := envconfig.Process("blackjack", &c); err != nil {
		return err
	}

	if c.StartingBankroll <= 0 {
		return errors.New("startingBankroll must be > 0")
	}

	c.loaded = true
	config = c
	return nil
}
