// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"lifecounter/internal/counter"
	"lifecounter/internal/theme"
)

// Config holds the web server settings.
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	DBPath        string        `env:"LIFECOUNTER_DB_PATH" envDefault:"lifecounter.db"`
	MemoryStore   bool          `env:"LIFECOUNTER_MEMORY_STORE"`
	SystemTheme   string        `env:"THEME_SYSTEM_DEFAULT" envDefault:"dark"`
	StepInterval  time.Duration `env:"COUNTER_STEP_INTERVAL" envDefault:"80ms"`
	ClearDelay    time.Duration `env:"COUNTER_CLEAR_DELAY" envDefault:"600ms"`
	PulseDuration time.Duration `env:"COUNTER_PULSE_DURATION" envDefault:"100ms"`
	TableIdle     time.Duration `env:"TABLE_IDLE_TIMEOUT" envDefault:"24h"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, ok := theme.ParseMode(cfg.SystemTheme); !ok {
		return Config{}, fmt.Errorf("THEME_SYSTEM_DEFAULT must be light or dark, got %q", cfg.SystemTheme)
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	return ":" + strings.TrimPrefix(port, ":")
}

// SystemMode returns the configured fallback theme.
func (c Config) SystemMode() theme.Mode {
	mode, ok := theme.ParseMode(c.SystemTheme)
	if !ok {
		return theme.Dark
	}
	return mode
}

// CounterOptions returns the animation timings.
func (c Config) CounterOptions() counter.Options {
	return counter.Options{
		StepInterval:  c.StepInterval,
		ClearDelay:    c.ClearDelay,
		PulseDuration: c.PulseDuration,
	}
}
