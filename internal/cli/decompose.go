// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pauli/decompose"
	"github.com/katalvlaran/pauli/mat2"
	"github.com/katalvlaran/pauli/verify"
)

// document is the YAML shape shared by decompose and reconstruct.
//
//	matrix:
//	  - [10, 5+2i]
//	  - [3+4i, 15]
//	coefficients:
//	  l0: 12.5
//	  lx: 4+3i
//	  ly: 1+1i
//	  lz: -2.5
//	hermitian: false
type document struct {
	Matrix       mat2.Matrix            `yaml:"matrix"`
	Coefficients decompose.Coefficients `yaml:"coefficients"`
	Hermitian    bool                   `yaml:"hermitian"`
}

// inputDocument is document as read from --file. Pointers tell an absent
// key apart from a zero value; unknown keys are rejected by the decoder.
type inputDocument struct {
	Matrix       *mat2.Matrix            `yaml:"matrix"`
	Coefficients *decompose.Coefficients `yaml:"coefficients"`
	Hermitian    *bool                   `yaml:"hermitian"`
}

func newDecomposeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompose [m00 m01 m10 m11]",
		Short: "Expand a 2x2 complex matrix in the Pauli basis",
		Long: `Expand a 2x2 complex matrix in the {I, X, Y, Z} basis.

The matrix is given either as four row-major scalars or as the "matrix"
key of a YAML file (--file).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString(flagFile)

			var m mat2.Matrix
			switch {
			case file != "" && len(args) == 0:
				doc, err := readDocument(file)
				if err != nil {
					return err
				}
				if doc.Matrix == nil {
					return fmt.Errorf("%s: key \"matrix\": %w", file, ErrMissingKey)
				}
				m = *doc.Matrix
			case file == "" && len(args) == 4:
				s, err := parseScalars(args)
				if err != nil {
					return err
				}
				m = mat2.New(s[0], s[1], s[2], s[3])
			default:
				return fmt.Errorf("decompose needs 4 scalars or --file: %w", ErrUsage)
			}

			c := decompose.Decompose(m)
			back := decompose.Reconstruct(c)
			a.logger.Debug("decomposed", "matrix", m, "roundTripDrift", mat2.MaxAbsDiff(m, back))

			return writeDocument(cmd.OutOrStdout(), document{
				Matrix:       m,
				Coefficients: c,
				Hermitian:    a.hermitian(m),
			})
		},
	}
	cmd.Flags().StringP(flagFile, "f", "", "YAML file with a \"matrix\" key")

	return cmd
}

func newReconstructCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconstruct [l0 lx ly lz]",
		Short: "Rebuild a 2x2 matrix from Pauli-basis coefficients",
		Long: `Rebuild l0*I + lx*X + ly*Y + lz*Z.

The coefficients are given either as four scalars or as the "coefficients"
key of a YAML file (--file).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString(flagFile)

			var c decompose.Coefficients
			switch {
			case file != "" && len(args) == 0:
				doc, err := readDocument(file)
				if err != nil {
					return err
				}
				if doc.Coefficients == nil {
					return fmt.Errorf("%s: key \"coefficients\": %w", file, ErrMissingKey)
				}
				c = *doc.Coefficients
			case file == "" && len(args) == 4:
				s, err := parseScalars(args)
				if err != nil {
					return err
				}
				c = decompose.FromArray(s)
			default:
				return fmt.Errorf("reconstruct needs 4 scalars or --file: %w", ErrUsage)
			}

			m := decompose.Reconstruct(c)
			a.logger.Debug("reconstructed", "matrix", m)

			return writeDocument(cmd.OutOrStdout(), document{
				Matrix:       m,
				Coefficients: c,
				Hermitian:    a.hermitian(m),
			})
		},
	}
	cmd.Flags().StringP(flagFile, "f", "", "YAML file with a \"coefficients\" key")

	return cmd
}

// hermitian is the single Hermiticity test behind the "hermitian" field of
// both subcommands, so a matrix and its coefficients always agree.
func (a *app) hermitian(m mat2.Matrix) bool {
	return verify.New(verify.WithTolerance(a.cfg.Tolerance)).IsHermitian(m)
}

func parseScalars(args []string) ([4]complex128, error) {
	var out [4]complex128
	for i, s := range args {
		c, err := mat2.ParseScalar(s)
		if err != nil {
			return out, fmt.Errorf("argument %d (%q): %w", i+1, s, err)
		}
		out[i] = c
	}

	return out, nil
}

func readDocument(path string) (inputDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return inputDocument{}, fmt.Errorf("failed to read input file: %w", err)
	}
	var doc inputDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return inputDocument{}, fmt.Errorf("failed to parse input file: %w", err)
	}

	return doc, nil
}

func writeDocument(w io.Writer, doc document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return enc.Close()
}
