// SPDX-License-Identifier: MIT

package pauli

import "github.com/katalvlaran/pauli/mat2"

var (
	identity = mat2.Identity()
	sigmaX   = mat2.New(0, 1, 1, 0)
	sigmaY   = mat2.New(0, -1i, 1i, 0)
	sigmaZ   = mat2.New(1, 0, 0, -1)

	// Derived, not literal: σ± = ½(X ± iY).
	sigmaPlus  = mat2.Scale(0.5, mat2.Add(sigmaX, mat2.Scale(1i, sigmaY)))
	sigmaMinus = mat2.Scale(0.5, mat2.Sub(sigmaX, mat2.Scale(1i, sigmaY)))

	byIndex = [Count]mat2.Matrix{sigmaX, sigmaY, sigmaZ}
)

// I returns the 2×2 identity.
func I() mat2.Matrix { return identity }

// SigmaX returns σx = [[0, 1], [1, 0]].
func SigmaX() mat2.Matrix { return sigmaX }

// SigmaY returns σy = [[0, −i], [i, 0]].
func SigmaY() mat2.Matrix { return sigmaY }

// SigmaZ returns σz = [[1, 0], [0, −1]].
func SigmaZ() mat2.Matrix { return sigmaZ }

// SigmaPlus returns the raising operator σ+ = ½(X + iY).
func SigmaPlus() mat2.Matrix { return sigmaPlus }

// SigmaMinus returns the lowering operator σ− = ½(X − iY).
func SigmaMinus() mat2.Matrix { return sigmaMinus }

// Of returns the Pauli matrix selected by idx.
// Returns ErrInvalidIndex for anything but X, Y, Z.
func Of(idx Index) (mat2.Matrix, error) {
	if !idx.Valid() {
		return mat2.Matrix{}, pauliErrorf(opOf, ErrInvalidIndex)
	}

	return byIndex[idx], nil
}

// MustOf is Of for indices known to be valid; it panics otherwise.
func MustOf(idx Index) mat2.Matrix {
	m, err := Of(idx)
	if err != nil {
		panic(err)
	}

	return m
}

// Basis returns {I, X, Y, Z}, the basis used by package decompose.
func Basis() [Count + 1]mat2.Matrix {
	return [Count + 1]mat2.Matrix{identity, sigmaX, sigmaY, sigmaZ}
}
