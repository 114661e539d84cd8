// Package config loads funcintro settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vinodhalaharvi/funcintro/pkg/race"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all funcintro configuration.
type Config struct {
	Race    RaceConfig    `yaml:"race"`
	Bands   BandsConfig   `yaml:"bands"`
	Logging LoggingConfig `yaml:"logging"`
}

// RaceConfig configures the car race lesson.
type RaceConfig struct {
	Time      int    `yaml:"time"`
	Cars      int    `yaml:"cars"`
	Threshold int    `yaml:"threshold"`
	Sides     int    `yaml:"sides"`
	Seed      uint64 `yaml:"seed"`
}

// BandsConfig configures the band pipeline lessons.
type BandsConfig struct {
	Country string `yaml:"country"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	opts := race.DefaultOptions()
	return Config{
		Race: RaceConfig{
			Time:      opts.Time,
			Cars:      opts.Cars,
			Threshold: opts.Threshold,
			Sides:     opts.Sides,
			Seed:      1,
		},
		Bands:   BandsConfig{Country: "Canada"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the race parameters and band country.
func (c Config) Validate() error {
	r := c.Race
	switch {
	case r.Time <= 0:
		return fmt.Errorf("%w: race.time must be positive, got %d", ErrInvalid, r.Time)
	case r.Cars <= 0:
		return fmt.Errorf("%w: race.cars must be positive, got %d", ErrInvalid, r.Cars)
	case r.Sides <= 0:
		return fmt.Errorf("%w: race.sides must be positive, got %d", ErrInvalid, r.Sides)
	case r.Threshold < 0 || r.Threshold >= r.Sides:
		return fmt.Errorf("%w: race.threshold must be in [0, %d), got %d", ErrInvalid, r.Sides, r.Threshold)
	case c.Bands.Country == "":
		return fmt.Errorf("%w: bands.country must not be empty", ErrInvalid)
	}
	return nil
}

// RaceOptions converts the race settings for the race package.
func (c Config) RaceOptions() race.Options {
	return race.Options{
		Time:      c.Race.Time,
		Cars:      c.Race.Cars,
		Threshold: c.Race.Threshold,
		Sides:     c.Race.Sides,
	}
}
