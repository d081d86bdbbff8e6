package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roundplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "rodada.txt", cfg.Output.RoundsFile)
	assert.Equal(t, "alocacao.txt", cfg.Output.AllocationFile)
	assert.Equal(t, "exact", cfg.Solver.Algorithm)
	assert.True(t, cfg.Output.Mirror)
	assert.Len(t, cfg.SolverOptions(), 1)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
solver:
  algorithm: heuristic
  max_rounds: 6
  components: true
  timeout: 90s
output:
  dir: out
  mirror: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "heuristic", cfg.Solver.Algorithm)
	assert.Equal(t, 6, cfg.Solver.MaxRounds)
	assert.True(t, cfg.Solver.Components)
	assert.Equal(t, 90*time.Second, cfg.Solver.Timeout)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.False(t, cfg.Output.Mirror)
	assert.Equal(t, DefaultRoundsFile, cfg.Output.RoundsFile, "unset keys keep defaults")
	assert.Len(t, cfg.SolverOptions(), 2)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "solver:\n  algoritm: exact\n"))
	require.ErrorIs(t, err, ErrInvalidConfig, "unknown keys are rejected")

	_, err = Load(writeConfig(t, "solver:\n  algorithm: dsatur\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"level":      func(c *Config) { c.Log.Level = "loud" },
		"format":     func(c *Config) { c.Log.Format = "xml" },
		"algorithm":  func(c *Config) { c.Solver.Algorithm = "" },
		"max rounds": func(c *Config) { c.Solver.MaxRounds = -1 },
		"timeout":    func(c *Config) { c.Solver.Timeout = -time.Second },
		"empty file": func(c *Config) { c.Output.RoundsFile = "" },
		"same file":  func(c *Config) { c.Output.AllocationFile = c.Output.RoundsFile },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, name)
	}

	cfg := Default()
	cfg.Solver.Algorithm = "Compare"
	assert.NoError(t, cfg.Validate())
}
