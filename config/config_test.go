package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphbench/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "out/results", cfg.ResultsRoot)
	assert.Equal(t, "data", cfg.InputsRoot)
	assert.False(t, cfg.StrictInputs)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
inputs_root: graphs
strict_inputs: true
log:
  level: debug
generate:
  format: dot
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out/results", cfg.ResultsRoot, "unset keys keep their default")
	assert.Equal(t, "graphs", cfg.InputsRoot)
	assert.True(t, cfg.StrictInputs)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.LogFormatAuto, cfg.Log.Format)
	assert.Equal(t, "dot", cfg.Generate.Format)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "results_root: [unterminated\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "result_root: typo\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "log:\n  level: loud\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "log:\n  format: xml\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "generate:\n  format: png\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParseLevel(t *testing.T) {
	lvl, err := config.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = config.ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, lvl)
}
