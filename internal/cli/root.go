// SPDX-License-Identifier: MIT

// Package cli wires the pauli library into a cobra command tree.
//
//	pauli verify                          run every Pauli identity check
//	pauli decompose 10 5+2i 3+4i 15       matrix → Pauli coefficients
//	pauli reconstruct -- 12.5 4+3i 1+1i -2.5 coefficients → matrix
//
// Negative scalars must follow "--" so they are not read as flags. Results
// are written to stdout as text (verify) or YAML (decompose, reconstruct);
// diagnostics go to stderr through the structured logger.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pauli/internal/config"
)

var (
	// ErrChecksFailed is returned by verify when at least one identity fails.
	ErrChecksFailed = errors.New("cli: verification failed")

	// ErrUsage indicates a wrong combination of arguments and flags.
	ErrUsage = errors.New("cli: invalid usage")

	// ErrMissingKey indicates an input file without the key a subcommand reads.
	ErrMissingKey = errors.New("cli: input file lacks required key")
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagTolerance = "tolerance"
	flagFile      = "file"
)

// app carries state resolved once in PersistentPreRunE.
type app struct {
	cfg    config.Config
	logger *log.Logger
}

// NewRootCmd builds the pauli command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pauli",
		Short: "Exact 2x2 complex algebra for the Pauli spin operators",
		Long: `pauli checks the algebra of the Pauli matrices and converts 2x2 complex
matrices to and from Pauli-basis coefficients.

Scalars are complex literals: 10, -2.5, 3i, 5+2i, (5+2i). Put "--" before
the scalars when any of them starts with a minus sign.

Example:
  pauli decompose 10 5+2i 3+4i 15
  pauli reconstruct -- 12.5 4+3i 1+1i -2.5
  pauli verify --tolerance 0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringP(flagConfig, "c", "", "Path to configuration file (YAML)")
	root.PersistentFlags().StringP(flagLogLevel, "l", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String(flagLogFormat, "", "Log format (text, json, logfmt)")
	root.PersistentFlags().Float64(flagTolerance, 0, "Absolute comparison tolerance (default from config, 1e-9)")

	root.AddCommand(
		newVerifyCmd(a),
		newDecomposeCmd(a),
		newReconstructCmd(a),
	)

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(flagLogLevel) {
		cfg.Log.Level, _ = cmd.Flags().GetString(flagLogLevel)
	}
	if cmd.Flags().Changed(flagLogFormat) {
		cfg.Log.Format, _ = cmd.Flags().GetString(flagLogFormat)
	}
	if cmd.Flags().Changed(flagTolerance) {
		cfg.Tolerance, _ = cmd.Flags().GetFloat64(flagTolerance)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded", "path", path, "tolerance", cfg.Tolerance)

	return nil
}

// newLogger builds a charmbracelet logger writing to w.
func newLogger(w io.Writer, lc config.LogConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level %q: %w", lc.Level, config.ErrInvalidConfig)
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "pauli",
		ReportTimestamp: true,
	})
	switch lc.Format {
	case config.FormatJSON:
		logger.SetFormatter(log.JSONFormatter)
	case config.FormatLogfmt:
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetFormatter(log.TextFormatter)
	}

	return logger, nil
}
