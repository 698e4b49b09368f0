// Package decompose converts between a 2×2 complex matrix and its
// coordinates in the Pauli basis {I, X, Y, Z}.
//
// Every 2×2 complex matrix A = [[a, b], [c, d]] has a unique expansion
//
//	A = λ0·I + λx·X + λy·Y + λz·Z
//
// with
//
//	λ0 = (a+d)/2   λx = (b+c)/2   λy = (c−b)/(2i)   λz = (a−d)/2
//
// Decompose computes the four coefficients; Reconstruct recombines them with
// the basis matrices from package pauli. The map is a linear bijection, so
// Reconstruct(Decompose(A)) equals A up to float64 rounding.
//
// A is Hermitian exactly when all four coefficients are real.
//
// Usage:
//
//	c := decompose.Decompose(mat2.New(10, 5+2i, 3+4i, 15))
//	// c = {L0: 12.5, LX: 4+3i, LY: 1+1i, LZ: -2.5}
//	a := decompose.Reconstruct(c)
package decompose
