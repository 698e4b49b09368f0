// SPDX-License-Identifier: MIT

package pauli

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex indicates an Index outside {X, Y, Z} or an unknown name.
var ErrInvalidIndex = errors.New("pauli: invalid index")

const (
	opOf         = "Of"
	opParseIndex = "ParseIndex"
)

func pauliErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
