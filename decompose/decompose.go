// SPDX-License-Identifier: MIT

package decompose

import (
	"github.com/katalvlaran/pauli/mat2"
	"github.com/katalvlaran/pauli/pauli"
)

// Decompose returns the Pauli-basis coefficients of a.
// Total: defined for every complex entry, including zeros.
//
// Complexity: O(1), no allocation.
func Decompose(a mat2.Matrix) Coefficients {
	return Coefficients{
		L0: (a.M00 + a.M11) / 2,
		LX: (a.M01 + a.M10) / 2,
		// 1/(2i) = −i/2, so the division is a quarter turn and a halving.
		LY: (a.M10 - a.M01) * -0.5i,
		LZ: (a.M00 - a.M11) / 2,
	}
}

// Reconstruct returns λ0·I + λx·X + λy·Y + λz·Z.
//
// Determinism:
//   - Terms are accumulated in basis order I, X, Y, Z.
//
// Complexity:
//   - 4 Scale + 4 Add calls, O(1), no allocation.
func Reconstruct(c Coefficients) mat2.Matrix {
	basis := pauli.Basis()
	weights := c.Array()

	out := mat2.Zero()
	for i, b := range basis {
		out = mat2.Add(out, mat2.Scale(weights[i], b))
	}

	return out
}
