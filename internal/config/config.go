// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"periodictutor/internal/adiabatic"
)

// Config is the full runtime configuration. The scenario knobs default to
// the standard diatomic-gas game and exist mostly for classroom setups
// that want a different gas or a stricter tolerance.
type Config struct {
	Addr       string `env:"PT_ADDR" envDefault:":8080"`
	DBPath     string `env:"PT_DB_PATH" envDefault:"periodictutor.db"`
	CORSOrigin string `env:"PT_CORS_ORIGIN" envDefault:"*"`

	InitialVolume   float64 `env:"PT_INITIAL_VOLUME" envDefault:"5.0"`
	InitialPressure float64 `env:"PT_INITIAL_PRESSURE" envDefault:"2.0"`
	TrueExponent    float64 `env:"PT_TRUE_EXPONENT" envDefault:"1.4"`
	Tolerance       float64 `env:"PT_TOLERANCE" envDefault:"0.1"`
	DomainStart     float64 `env:"PT_DOMAIN_START" envDefault:"1.0"`
	DomainEnd       float64 `env:"PT_DOMAIN_END" envDefault:"10.0"`
	DomainStep      float64 `env:"PT_DOMAIN_STEP" envDefault:"0.5"`
}

// Load parses configuration from the environment and validates the
// scenario it implies.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Scenario().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Scenario returns the game scenario the configuration describes.
func (c Config) Scenario() adiabatic.Scenario {
	return adiabatic.Scenario{
		InitialVolume:   c.InitialVolume,
		InitialPressure: c.InitialPressure,
		TrueExponent:    c.TrueExponent,
		Tolerance:       c.Tolerance,
		Domain: adiabatic.Domain{
			Start: c.DomainStart,
			End:   c.DomainEnd,
			Step:  c.DomainStep,
		},
	}
}
