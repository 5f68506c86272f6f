// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the server.
type Config struct {
	// Addr is the http listen address.
	Addr string `env:"ADDR" envDefault:":8080"`

	// Port, when set, overrides the port in Addr. Hosting platforms
	// set it.
	Port string `env:"PORT"`

	// TickMs is the world step interval in milliseconds.
	TickMs int `env:"TICK_MS" envDefault:"120"`

	// TileSize is the side of one board tile in the [-1,1] square.
	TileSize float32 `env:"TILE_SIZE" envDefault:"0.08"`

	// RespawnSteps is how many steps a dead snake sits out.
	RespawnSteps int `env:"RESPAWN_STEPS" envDefault:"40"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port != "" {
		cfg.Addr = ":" + cfg.Port
	}
	return cfg, nil
}

// StepEvery returns the world step interval.
func (c Config) StepEvery() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}
