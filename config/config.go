// SPDX-License-Identifier: MIT
// Package: graphbench/config
//
// config.go: YAML configuration for the graphbench CLI.
//
// Every field has a default, so the file is optional. Command-line flags
// and positional arguments override what is loaded here.

// Package config loads and validates graphbench's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphbench/graphio"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats accepted by LogConfig.Format.
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the root document.
type Config struct {
	ResultsRoot  string `yaml:"results_root"`
	InputsRoot   string `yaml:"inputs_root"`
	StrictInputs bool   `yaml:"strict_inputs"`

	Log      LogConfig      `yaml:"log"`
	Generate GenerateConfig `yaml:"generate"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // auto|text|json
}

// GenerateConfig holds generator defaults.
type GenerateConfig struct {
	Format string `yaml:"format"` // edgelist|graph6|dot
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ResultsRoot: "out/results",
		InputsRoot:  "data",
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatAuto,
		},
		Generate: GenerateConfig{
			Format: string(graphio.FormatEdgeList),
		},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns Default(); a path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = cfg.decode(data); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// decode overlays data onto c. Unknown keys are rejected.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}
	if _, err := graphio.ParseFormat(c.Generate.Format); err != nil {
		return fmt.Errorf("generate.format %q: %w", c.Generate.Format, ErrInvalidConfig)
	}

	return nil
}

// ParseLevel maps debug|info|warn|error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", s, ErrInvalidConfig)
	}

	return lvl, nil
}
