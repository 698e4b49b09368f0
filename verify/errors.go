// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
)

// ErrInvalidPair indicates a pair of indices for which a check is undefined,
// e.g. the distinct-product rule with a == b.
var ErrInvalidPair = errors.New("verify: invalid index pair")

const (
	opUnitary     = "Unitary"
	opHermitian   = "Hermitian"
	opInvolutory  = "Involutory"
	opDeterminant = "DeterminantIsMinusOne"
	opTraceless   = "Traceless"
	opProduct     = "ProductRule"
	opCommutator  = "CommutatorIdentity"
	opAnticomm    = "AnticommutatorIdentity"
)

func verifyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
