// SPDX-License-Identifier: MIT

package levicivita

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index outside {0, 1, 2}.
	ErrIndexOutOfRange = errors.New("levicivita: index out of range")

	// ErrRepeatedIndex is returned by Third when both indices are equal and
	// no unique third index exists.
	ErrRepeatedIndex = errors.New("levicivita: repeated index")
)

const (
	opSymbol = "Symbol"
	opThird  = "Third"
)

func levicivitaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
