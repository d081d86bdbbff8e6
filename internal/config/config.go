// Package config holds roundplan's YAML configuration and its defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roundplan/internal/logging"
	"github.com/katalvlaran/roundplan/rounds"
)

// Default artifact names, as the original batch tool wrote them.
const (
	DefaultRoundsFile     = "rodada.txt"
	DefaultAllocationFile = "alocacao.txt"
)

// AlgoCompare runs both solvers; it is a CLI mode, not a rounds.Algorithm.
const AlgoCompare = "compare"

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Solver SolverConfig `yaml:"solver"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SolverConfig tunes the round allocation run.
type SolverConfig struct {
	// Algorithm is "exact", "greedy" ("heuristic") or "compare".
	Algorithm  string        `yaml:"algorithm"`
	MaxRounds  int           `yaml:"max_rounds"`
	Components bool          `yaml:"components"`
	Timeout    time.Duration `yaml:"timeout"`
}

// OutputConfig names where the two artifacts go.
type OutputConfig struct {
	Dir            string `yaml:"dir"`
	RoundsFile     string `yaml:"rounds_file"`
	AllocationFile string `yaml:"allocation_file"`

	// Mirror echoes both artifacts to stdout.
	Mirror bool `yaml:"mirror"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: logging.FormatText},
		Solver: SolverConfig{
			Algorithm: string(rounds.AlgoExact),
		},
		Output: OutputConfig{
			Dir:            ".",
			RoundsFile:     DefaultRoundsFile,
			AllocationFile: DefaultAllocationFile,
			Mirror:         true,
		},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w: %v", path, ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if !logging.KnownLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !logging.KnownFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if !strings.EqualFold(c.Solver.Algorithm, AlgoCompare) {
		if _, err := rounds.ParseAlgorithm(strings.ToLower(c.Solver.Algorithm)); err != nil {
			return fmt.Errorf("%w: solver.algorithm %q", ErrInvalidConfig, c.Solver.Algorithm)
		}
	}
	if c.Solver.MaxRounds < 0 {
		return fmt.Errorf("%w: solver.max_rounds %d", ErrInvalidConfig, c.Solver.MaxRounds)
	}
	if c.Solver.Timeout < 0 {
		return fmt.Errorf("%w: solver.timeout %s", ErrInvalidConfig, c.Solver.Timeout)
	}
	if c.Output.RoundsFile == "" || c.Output.AllocationFile == "" {
		return fmt.Errorf("%w: output file names must be set", ErrInvalidConfig)
	}
	if c.Output.RoundsFile == c.Output.AllocationFile {
		return fmt.Errorf("%w: rounds_file and allocation_file are both %q", ErrInvalidConfig, c.Output.RoundsFile)
	}

	return nil
}

// SolverOptions translates the solver section into rounds options.
func (c Config) SolverOptions() []rounds.Option {
	opts := []rounds.Option{rounds.WithMaxRounds(c.Solver.MaxRounds)}
	if c.Solver.Components {
		opts = append(opts, rounds.WithComponents())
	}

	return opts
}
