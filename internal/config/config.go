package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the server configuration, read from the environment.
type Config struct {
	App struct {
		Port            int           `envconfig:"PORT" default:"8080"`
		ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
		ReportLocale    string        `envconfig:"REPORT_LOCALE" default:"fa"`
		LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	}

	Store Store
}

// Store selects and configures the persistence backend.
type Store struct {
	Backend  string `envconfig:"STORE_BACKEND" default:"sqlite"`
	Key      string `envconfig:"STATE_KEY" default:"expense-app-state"`
	DBPath   string `envconfig:"DB_PATH" default:"./data/ledger.db"`
	RedisURL string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB  int    `envconfig:"REDIS_DB" default:"0"`
}

// Load reads Config from the environment, applying defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
