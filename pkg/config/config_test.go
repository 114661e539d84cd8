package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinodhalaharvi/funcintro/pkg/race"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "funcintro.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, race.DefaultOptions(), cfg.RaceOptions())
	assert.Equal(t, uint64(1), cfg.Race.Seed)
	assert.Equal(t, "Canada", cfg.Bands.Country)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
race:
  cars: 5
  seed: 42
bands:
  country: Iceland
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Race.Cars)
	assert.Equal(t, uint64(42), cfg.Race.Seed)
	assert.Equal(t, 5, cfg.Race.Time, "unset fields keep their defaults")
	assert.Equal(t, "Iceland", cfg.Bands.Country)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "race: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero time", func(c *Config) { c.Race.Time = 0 }},
		{"negative cars", func(c *Config) { c.Race.Cars = -1 }},
		{"zero sides", func(c *Config) { c.Race.Sides = 0 }},
		{"threshold too high", func(c *Config) { c.Race.Threshold = 10 }},
		{"negative threshold", func(c *Config) { c.Race.Threshold = -1 }},
		{"empty country", func(c *Config) { c.Bands.Country = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "race:\n  time: 0\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}
