// SPDX-License-Identifier: MIT

package pauli

import (
	"strconv"
	"strings"
)

// Index labels one of the three Pauli matrices. Its integer value (0, 1, 2)
// is the matching Levi-Civita argument.
type Index int

const (
	X Index = iota // σx
	Y              // σy
	Z              // σz
)

// Count is the number of Pauli indices.
const Count = 3

var indexNames = [Count]string{"X", "Y", "Z"}

// Valid reports whether idx is X, Y or Z.
func (idx Index) Valid() bool { return idx >= X && idx <= Z }

// String returns "X", "Y", "Z", or "Index(n)" for invalid values.
func (idx Index) String() string {
	if !idx.Valid() {
		return "Index(" + strconv.Itoa(int(idx)) + ")"
	}

	return indexNames[idx]
}

// Indices returns X, Y, Z in order.
func Indices() [Count]Index { return [Count]Index{X, Y, Z} }

// ParseIndex accepts "x", "Y", "sigma_z", "0".."2" (case-insensitive).
func ParseIndex(s string) (Index, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "SIGMA_")
	switch name {
	case "X", "0":
		return X, nil
	case "Y", "1":
		return Y, nil
	case "Z", "2":
		return Z, nil
	}

	return 0, pauliErrorf(opParseIndex, ErrInvalidIndex)
}
