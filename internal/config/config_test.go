package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "user", cfg.Game.Player)
	assert.Equal(t, "casino", cfg.Game.Dealer)
	assert.Equal(t, 10_000, cfg.Game.TrainRounds)
	assert.True(t, cfg.Game.Verbose)
	assert.Equal(t, 1.0, cfg.Learning.Alpha)
	assert.Equal(t, 0.05, cfg.Learning.Epsilon)
	assert.Equal(t, 0.8, cfg.Learning.Gamma)
	assert.Equal(t, "random", cfg.Sample.Player)
	assert.Equal(t, "random", cfg.Sample.Dealer)
	assert.False(t, cfg.SurrenderAnyTime())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
game {
  player       = "q"
  dealer       = "random"
  decks        = 6
  rounds       = 50
  train_rounds = 0
  verbose      = false
  seed         = 42
  surrender    = "any"
}

learning {
  alpha   = 0.5
  epsilon = 0
  gamma   = 0.9
  table   = "q.json"
}

sample {
  player  = "counter"
  dealer  = "casino"
  samples = 200
  rounds  = 5
  batches = 3
  workers = 2
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, GameSettings{
		Player:      "q",
		Dealer:      "random",
		Decks:       6,
		Rounds:      50,
		TrainRounds: 0,
		Verbose:     false,
		Seed:        42,
		Surrender:   SurrenderAny,
	}, cfg.Game)
	assert.Equal(t, LearningSettings{Alpha: 0.5, Epsilon: 0, Gamma: 0.9, Table: "q.json"}, cfg.Learning)
	assert.Equal(t, SampleSettings{Player: "counter", Dealer: "casino", Samples: 200, Rounds: 5, Batches: 3, Workers: 2}, cfg.Sample)
	assert.True(t, cfg.SurrenderAnyTime())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  player = "counter"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Game.Player = "counter"
	assert.Equal(t, want, cfg)
}

func TestLoadRejectsBadHCL(t *testing.T) {
	_, err := Load(writeConfig(t, `game {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")

	_, err = Load(writeConfig(t, `game { decks = "many" }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL")

	_, err = Load(writeConfig(t, `table { }`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"no decks", func(c *Config) { c.Game.Decks = 0 }, "decks"},
		{"negative rounds", func(c *Config) { c.Game.Rounds = -1 }, "rounds"},
		{"negative training", func(c *Config) { c.Game.TrainRounds = -5 }, "train_rounds"},
		{"unknown surrender", func(c *Config) { c.Game.Surrender = "late" }, "surrender"},
		{"zero alpha", func(c *Config) { c.Learning.Alpha = 0 }, "alpha"},
		{"epsilon above one", func(c *Config) { c.Learning.Epsilon = 1.5 }, "epsilon"},
		{"negative gamma", func(c *Config) { c.Learning.Gamma = -0.1 }, "gamma"},
		{"no samples", func(c *Config) { c.Sample.Samples = 0 }, "samples"},
		{"no sample rounds", func(c *Config) { c.Sample.Rounds = 0 }, "sample rounds"},
		{"no batches", func(c *Config) { c.Sample.Batches = 0 }, "batches"},
		{"no workers", func(c *Config) { c.Sample.Workers = 0 }, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
