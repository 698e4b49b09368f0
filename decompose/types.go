// SPDX-License-Identifier: MIT

package decompose

import (
	"math"

	"github.com/katalvlaran/pauli/mat2"
	"github.com/katalvlaran/pauli/pauli"
)

// Coefficients are the coordinates (λ0, λx, λy, λz) of a matrix in the
// {I, X, Y, Z} basis.
type Coefficients struct {
	L0 complex128 // identity weight
	LX complex128 // σx weight
	LY complex128 // σy weight
	LZ complex128 // σz weight
}

// FromArray builds Coefficients from {λ0, λx, λy, λz}.
func FromArray(a [4]complex128) Coefficients {
	return Coefficients{L0: a[0], LX: a[1], LY: a[2], LZ: a[3]}
}

// Array returns {λ0, λx, λy, λz}, aligned with pauli.Basis().
func (c Coefficients) Array() [4]complex128 {
	return [4]complex128{c.L0, c.LX, c.LY, c.LZ}
}

// Component returns the weight of the Pauli matrix selected by idx.
// Returns pauli.ErrInvalidIndex for anything but X, Y, Z.
func (c Coefficients) Component(idx pauli.Index) (complex128, error) {
	if !idx.Valid() {
		return 0, decomposeErrorf(opComponent, pauli.ErrInvalidIndex)
	}

	return c.Array()[int(idx)+1], nil
}

// Equal reports whether all four coefficients agree within tol.
func (c Coefficients) Equal(o Coefficients, tol float64) bool {
	a, b := c.Array(), o.Array()
	for i := range a {
		if !mat2.ScalarEqual(a[i], b[i], tol) {
			return false
		}
	}

	return true
}

// IsReal reports whether every coefficient has |imag| ≤ tol.
// At tol = 0 this holds exactly when the decomposed matrix is Hermitian; for
// tol > 0 it is not the same test as an entry-wise m† ≈ m comparison, since
// λy = (c−b)/(2i) halves the off-diagonal mismatch.
func (c Coefficients) IsReal(tol float64) bool {
	if math.IsNaN(tol) || tol < 0 {
		return false
	}
	for _, v := range c.Array() {
		if math.Abs(imag(v)) > tol {
			return false
		}
	}

	return true
}
