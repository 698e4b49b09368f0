// SPDX-License-Identifier: MIT
// Package mat2: boundary between dynamically shaped data and Matrix.
//
// Matrix itself cannot be mis-shaped, so shape validation happens exactly
// once, here, when data arrives as slices or indices.

package mat2

// FromRows builds a Matrix from a row-major [][]complex128.
// Returns ErrBadShape unless rows is exactly 2 rows of exactly 2 entries.
//
// Complexity:
//   - Time O(len(rows)) for the shape scan, Space O(1).
func FromRows(rows [][]complex128) (Matrix, error) {
	if len(rows) != Dim {
		return Matrix{}, mat2Errorf(opFromRows, ErrBadShape)
	}
	for _, r := range rows {
		if len(r) != Dim {
			return Matrix{}, mat2Errorf(opFromRows, ErrBadShape)
		}
	}

	return New(rows[0][0], rows[0][1], rows[1][0], rows[1][1]), nil
}

// Rows returns the entries as a fixed-size row-major array.
func (m Matrix) Rows() [Dim][Dim]complex128 {
	return [Dim][Dim]complex128{
		{m.M00, m.M01},
		{m.M10, m.M11},
	}
}

// At returns the entry at row i, column j.
// Returns ErrOutOfRange for indices outside {0, 1}.
func (m Matrix) At(i, j int) (complex128, error) {
	if i < 0 || i >= Dim || j < 0 || j >= Dim {
		return 0, mat2Errorf(opAt, ErrOutOfRange)
	}

	return m.Rows()[i][j], nil
}
