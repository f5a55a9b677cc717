// Package config loads blackjack settings from an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Surrender modes
const (
	SurrenderFirst = "first" // only as the first decision of a round
	SurrenderAny   = "any"   // at any decision of an unsplit round
)

// Config is the resolved configuration with every default applied
type Config struct {
	Game     GameSettings
	Learning LearningSettings
	Sample   SampleSettings
}

// GameSettings configures a table and the agents seated at it
type GameSettings struct {
	Player      string
	Dealer      string
	Decks       int
	Rounds      int // 0 plays until interrupted
	TrainRounds int
	Verbose     bool
	Seed        int64 // 0 picks a time-based seed
	Surrender   string
}

// LearningSettings are the Q-learning hyperparameters
type LearningSettings struct {
	Alpha   float64
	Epsilon float64
	Gamma   float64
	Table   string // Q-table file loaded before training and saved after, when set
}

// SampleSettings configures the performance sampler
type SampleSettings struct {
	Player  string
	Dealer  string
	Samples int // games per batch
	Rounds  int // rounds per game
	Batches int
	Workers int
}

// fileConfig is the HCL schema. Pointer fields tell "absent" apart from an
// explicit zero or false.
type fileConfig struct {
	Game     *gameBlock     `hcl:"game,block"`
	Learning *learningBlock `hcl:"learning,block"`
	Sample   *sampleBlock   `hcl:"sample,block"`
}

type gameBlock struct {
	Player      string `hcl:"player,optional"`
	Dealer      string `hcl:"dealer,optional"`
	Decks       int    `hcl:"decks,optional"`
	Rounds      *int   `hcl:"rounds,optional"`
	TrainRounds *int   `hcl:"train_rounds,optional"`
	Verbose     *bool  `hcl:"verbose,optional"`
	Seed        int64  `hcl:"seed,optional"`
	Surrender   string `hcl:"surrender,optional"`
}

type learningBlock struct {
	Alpha   *float64 `hcl:"alpha,optional"`
	Epsilon *float64 `hcl:"epsilon,optional"`
	Gamma   *float64 `hcl:"gamma,optional"`
	Table   string   `hcl:"table,optional"`
}

type sampleBlock struct {
	Player  string `hcl:"player,optional"`
	Dealer  string `hcl:"dealer,optional"`
	Samples int    `hcl:"samples,optional"`
	Rounds  int    `hcl:"rounds,optional"`
	Batches int    `hcl:"batches,optional"`
	Workers int    `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Player:      "user",
			Dealer:      "casino",
			Decks:       1,
			Rounds:      0,
			TrainRounds: 10_000,
			Verbose:     true,
			Surrender:   SurrenderFirst,
		},
		Learning: LearningSettings{
			Alpha:   1.0,
			Epsilon: 0.05,
			Gamma:   0.8,
		},
		Sample: SampleSettings{
			Player:  "random",
			Dealer:  "random",
			Samples: 1_000,
			Rounds:  10,
			Batches: 10,
			Workers: 4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; settings absent from the file keep their default values.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	fc.apply(cfg)
	return cfg, nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if g := fc.Game; g != nil {
		if g.Player != "" {
			cfg.Game.Player = g.Player
		}
		if g.Dealer != "" {
			cfg.Game.Dealer = g.Dealer
		}
		if g.Decks != 0 {
			cfg.Game.Decks = g.Decks
		}
		if g.Rounds != nil {
			cfg.Game.Rounds = *g.Rounds
		}
		if g.TrainRounds != nil {
			cfg.Game.TrainRounds = *g.TrainRounds
		}
		if g.Verbose != nil {
			cfg.Game.Verbose = *g.Verbose
		}
		if g.Seed != 0 {
			cfg.Game.Seed = g.Seed
		}
		if g.Surrender != "" {
			cfg.Game.Surrender = g.Surrender
		}
	}

	if l := fc.Learning; l != nil {
		if l.Alpha != nil {
			cfg.Learning.Alpha = *l.Alpha
		}
		if l.Epsilon != nil {
			cfg.Learning.Epsilon = *l.Epsilon
		}
		if l.Gamma != nil {
			cfg.Learning.Gamma = *l.Gamma
		}
		if l.Table != "" {
			cfg.Learning.Table = l.Table
		}
	}

	if s := fc.Sample; s != nil {
		if s.Player != "" {
			cfg.Sample.Player = s.Player
		}
		if s.Dealer != "" {
			cfg.Sample.Dealer = s.Dealer
		}
		if s.Samples != 0 {
			cfg.Sample.Samples = s.Samples
		}
		if s.Rounds != 0 {
			cfg.Sample.Rounds = s.Rounds
		}
		if s.Batches != 0 {
			cfg.Sample.Batches = s.Batches
		}
		if s.Workers != 0 {
			cfg.Sample.Workers = s.Workers
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", c.Game.Decks)
	}
	if c.Game.Rounds < 0 {
		return fmt.Errorf("rounds must not be negative, got %d", c.Game.Rounds)
	}
	if c.Game.TrainRounds < 0 {
		return fmt.Errorf("train_rounds must not be negative, got %d", c.Game.TrainRounds)
	}
	switch c.Game.Surrender {
	case SurrenderFirst, SurrenderAny:
	default:
		return fmt.Errorf("invalid surrender mode %q (want %q or %q)", c.Game.Surrender, SurrenderFirst, SurrenderAny)
	}

	if c.Learning.Alpha <= 0 || c.Learning.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0, 1], got %g", c.Learning.Alpha)
	}
	if c.Learning.Epsilon < 0 || c.Learning.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], got %g", c.Learning.Epsilon)
	}
	if c.Learning.Gamma < 0 || c.Learning.Gamma > 1 {
		return fmt.Errorf("gamma must be in [0, 1], got %g", c.Learning.Gamma)
	}

	if c.Sample.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", c.Sample.Samples)
	}
	if c.Sample.Rounds < 1 {
		return fmt.Errorf("sample rounds must be at least 1, got %d", c.Sample.Rounds)
	}
	if c.Sample.Batches < 1 {
		return fmt.Errorf("batches must be at least 1, got %d", c.Sample.Batches)
	}
	if c.Sample.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Sample.Workers)
	}
	return nil
}

// SurrenderAnyTime reports whether the permissive surrender rule is on
func (c *Config) SurrenderAnyTime() bool {
	return c.Game.Surrender == SurrenderAny
}
