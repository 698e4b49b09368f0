// SPDX-License-Identifier: MIT

package mat2

// Dim is the fixed row and column count of every Matrix.
const Dim = 2

// DefaultTolerance is the entry-wise absolute tolerance used by ApproxEqual.
const DefaultTolerance = 1e-9

// Matrix is a 2×2 complex matrix
//
//	[ M00  M01 ]
//	[ M10  M11 ]
//
// It is a plain value: copying it copies all four entries, and no function in
// this package mutates its arguments.
type Matrix struct {
	M00, M01 complex128 // first row
	M10, M11 complex128 // second row
}

// New builds a Matrix from its entries in row-major order.
func New(m00, m01, m10, m11 complex128) Matrix {
	return Matrix{M00: m00, M01: m01, M10: m10, M11: m11}
}

// Identity returns the 2×2 identity.
func Identity() Matrix { return Matrix{M00: 1, M11: 1} }

// Zero returns the 2×2 zero matrix.
func Zero() Matrix { return Matrix{} }
