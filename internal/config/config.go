package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the heads-up poker server
type Config struct {
	loaded bool

	Game struct {
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
	}
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

var config Config

// DefaultConfig returns a config with the default game options
func DefaultConfig() Config {
	var c Config
	c.Game.SmallBlind = 10
	c.Game.BigBlind = 20
	c.Game.StartingChips = 1000
	c.Log.Level = "info"
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
// A missing config file is not an error; environment variables still apply.
func Load() error {
	config = DefaultConfig()

	configFile := configFilePath()
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("hup", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// configFilePath returns the config file location, which may be overridden
// through the HUP_CONFIG_FILE environment variable
func configFilePath() string {
	if path, ok := os.LookupEnv("HUP_CONFIG_FILE"); ok && path != "" {
		return path
	}

	return "config.yaml"
}
