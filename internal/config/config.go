package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/Makepad-fr/todoboard/internal/store/remote"
)

// Config is read once at startup. Nothing changes it afterwards.
type Config struct {
	Endpoint string        `env:"TODOBOARD_ENDPOINT"`
	Timeout  time.Duration `env:"TODOBOARD_TIMEOUT" envDefault:"15s"`
	Theme    string        `env:"TODOBOARD_THEME" envDefault:"classic"`

	// The TUI owns the terminal, so its logs only go to a file.
	LogFile  string `env:"TODOBOARD_LOG_FILE"`
	LogLevel string `env:"TODOBOARD_LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env files (missing ones are skipped) and then the environment.
// Variables already set in the environment win over .env values.
func Load(dotenv ...string) (*Config, error) {
	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = remote.DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("parse config: TODOBOARD_TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}
