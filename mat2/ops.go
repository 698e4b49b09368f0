// SPDX-License-Identifier: MIT
// Package mat2: algebraic kernels.
//
// Purpose:
//   - Provide the closed set of operations on Matrix used by the Pauli layers.
//   - Keep every kernel pure: operands are values, results are fresh values.
//
// Determinism:
//   - Fixed evaluation order per entry; no loops, no allocation.
//   - Complex products go through cmul, which rounds each real product on its
//     own (an explicit float64 conversion forbids fused multiply-add).

package mat2

import "math/cmplx"

// cmul returns (a+bi)(c+di) = (ac−bd) + (ad+bc)i.
func cmul(x, y complex128) complex128 {
	a, b := real(x), imag(x)
	c, d := real(y), imag(y)

	return complex(float64(a*c)-float64(b*d), float64(a*d)+float64(b*c))
}

// Add returns a + b.
func Add(a, b Matrix) Matrix {
	return Matrix{
		M00: a.M00 + b.M00, M01: a.M01 + b.M01,
		M10: a.M10 + b.M10, M11: a.M11 + b.M11,
	}
}

// Sub returns a − b.
func Sub(a, b Matrix) Matrix {
	return Matrix{
		M00: a.M00 - b.M00, M01: a.M01 - b.M01,
		M10: a.M10 - b.M10, M11: a.M11 - b.M11,
	}
}

// Neg returns −a.
func Neg(a Matrix) Matrix {
	return Matrix{M00: -a.M00, M01: -a.M01, M10: -a.M10, M11: -a.M11}
}

// Scale returns c·a.
//
// Complexity:
//   - 4 complex multiplications, no allocation.
func Scale(c complex128, a Matrix) Matrix {
	return Matrix{
		M00: cmul(c, a.M00), M01: cmul(c, a.M01),
		M10: cmul(c, a.M10), M11: cmul(c, a.M11),
	}
}

// Mul returns the matrix product a·b.
//
//	(ab)ij = ai0·b0j + ai1·b1j
//
// Determinism:
//   - Each entry sums its two products left to right; every real product is
//     rounded on its own (see cmul).
//
// Complexity:
//   - 8 complex multiplications, 4 additions, no allocation.
func Mul(a, b Matrix) Matrix {
	return Matrix{
		M00: cmul(a.M00, b.M00) + cmul(a.M01, b.M10),
		M01: cmul(a.M00, b.M01) + cmul(a.M01, b.M11),
		M10: cmul(a.M10, b.M00) + cmul(a.M11, b.M10),
		M11: cmul(a.M10, b.M01) + cmul(a.M11, b.M11),
	}
}

// Transpose returns aᵀ.
func Transpose(a Matrix) Matrix {
	return Matrix{M00: a.M00, M01: a.M10, M10: a.M01, M11: a.M11}
}

// Conj returns the entry-wise complex conjugate of a.
func Conj(a Matrix) Matrix {
	return Matrix{
		M00: cmplx.Conj(a.M00), M01: cmplx.Conj(a.M01),
		M10: cmplx.Conj(a.M10), M11: cmplx.Conj(a.M11),
	}
}

// Dagger returns the conjugate transpose a†: conjugate each entry, then swap
// the off-diagonal positions.
func Dagger(a Matrix) Matrix {
	return Transpose(Conj(a))
}

// Trace returns m00 + m11.
func Trace(a Matrix) complex128 {
	return a.M00 + a.M11
}

// Det returns m00·m11 − m01·m10.
//
// Complexity:
//   - 2 complex multiplications, O(1).
func Det(a Matrix) complex128 {
	return cmul(a.M00, a.M11) - cmul(a.M01, a.M10)
}

// Commutator returns [a, b] = ab − ba.
//
// Complexity:
//   - Two Mul calls and one Sub, O(1).
func Commutator(a, b Matrix) Matrix {
	return Sub(Mul(a, b), Mul(b, a))
}

// Anticommutator returns {a, b} = ab + ba.
func Anticommutator(a, b Matrix) Matrix {
	return Add(Mul(a, b), Mul(b, a))
}
