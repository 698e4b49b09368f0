// SPDX-License-Identifier: MIT
// Package mat2_test contains shared generators for property tests.

package mat2_test

import (
	"github.com/katalvlaran/pauli/mat2"
	"pgregory.net/rapid"
)

// entryBound keeps generated entries small enough that a product chain of
// three matrices stays far from float64 rounding at propTol.
const entryBound = 10.0

// propTol is the absolute tolerance used by property tests.
const propTol = 1e-9

// scalarGen draws a complex scalar with both parts in [-entryBound, entryBound].
func scalarGen() *rapid.Generator[complex128] {
	return rapid.Custom(func(t *rapid.T) complex128 {
		re := rapid.Float64Range(-entryBound, entryBound).Draw(t, "re")
		im := rapid.Float64Range(-entryBound, entryBound).Draw(t, "im")

		return complex(re, im)
	})
}

// matrixGen draws an arbitrary 2×2 complex matrix.
func matrixGen() *rapid.Generator[mat2.Matrix] {
	return rapid.Custom(func(t *rapid.T) mat2.Matrix {
		s := scalarGen()

		return mat2.New(s.Draw(t, "m00"), s.Draw(t, "m01"), s.Draw(t, "m10"), s.Draw(t, "m11"))
	})
}
