package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/luckybattlefield/internal/logging"
)

// Config holds game configuration options.
type Config struct {
	// Seed for every random draw: placement, combat and entity ids.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"LUCKY_SEED" envDefault:"0"`

	// Entities placed on every world entry.
	InitialEnemies int `env:"LUCKY_INITIAL_ENEMIES" envDefault:"4"`
	InitialChests  int `env:"LUCKY_INITIAL_CHESTS" envDefault:"3"`

	Log       logging.Config
	Telemetry TelemetryConfig
}

// TelemetryConfig controls trace export to Honeycomb.
type TelemetryConfig struct {
	Enabled bool   `env:"LUCKY_TELEMETRY" envDefault:"false"`
	APIKey  string `env:"HONEYCOMB_LUCKY_API_KEY"`
	Dataset string `env:"HONEYCOMB_LUCKY_DATASET"`
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		InitialEnemies: 4,
		InitialChests:  3,
		Log:            logging.Config{Level: "info", Format: "console"},
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.InitialEnemies < 0 || cfg.InitialChests < 0 {
		return Config{}, fmt.Errorf("initial entity counts must not be negative: enemies=%d chests=%d",
			cfg.InitialEnemies, cfg.InitialChests)
	}
	return cfg, nil
}
