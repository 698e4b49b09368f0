// SPDX-License-Identifier: MIT
// Package mat2: sentinel error set.
// Every algebraic operation on Matrix is total; these sentinels are returned
// only by ingestion helpers that accept dynamically shaped or textual data.
// Tests MUST match them via errors.Is.

package mat2

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when input rows/cols do not describe a 2×2 matrix.
	ErrBadShape = errors.New("mat2: input is not 2x2")

	// ErrOutOfRange indicates a row or column index outside {0, 1}.
	ErrOutOfRange = errors.New("mat2: index out of range")

	// ErrBadScalar indicates a textual entry that is not a complex literal.
	ErrBadScalar = errors.New("mat2: invalid complex scalar")
)

// Operation tags used when wrapping sentinels.
const (
	opFromRows    = "FromRows"
	opAt          = "At"
	opParseScalar = "ParseScalar"
	opUnmarshal   = "UnmarshalYAML"
)

// mat2Errorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func mat2Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
