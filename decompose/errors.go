// SPDX-License-Identifier: MIT

package decompose

import (
	"errors"
	"fmt"
)

// ErrBadCoefficients indicates a coefficient document that is not a mapping
// of l0/lx/ly/lz to complex literals.
var ErrBadCoefficients = errors.New("decompose: invalid coefficients")

const (
	opComponent = "Component"
	opUnmarshal = "UnmarshalYAML"
)

func decomposeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
