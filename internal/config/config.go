// SPDX-License-Identifier: MIT

// Package config loads the pauli CLI configuration from YAML.
//
// A missing path yields Default(); values present in the file override the
// defaults field by field. Command-line flags override both (see internal/cli).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pauli/mat2"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log output formats understood by the CLI logger.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = FormatText
)

// Config is the root configuration document.
//
//	tolerance: 1e-9
//	log:
//	  level: debug
//	  format: json
type Config struct {
	Tolerance float64   `yaml:"tolerance"`
	Log       LogConfig `yaml:"log"`
}

// LogConfig selects logger verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tolerance: mat2.DefaultTolerance,
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Load reads and validates the file at path. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes data on top of Default() and validates the result.
// Unknown keys are an error; empty data yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("tolerance %v: %w", c.Tolerance, ErrInvalidConfig)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON, FormatLogfmt:
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}

	return nil
}
