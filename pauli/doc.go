// Package pauli defines the Pauli spin basis as process-wide immutable
// constants built on mat2.Matrix.
//
//	I = [[1, 0], [0, 1]]     X = [[0, 1], [1, 0]]
//	Y = [[0, −i], [i, 0]]    Z = [[1, 0], [0, −1]]
//
// together with the ladder operators derived from X and Y:
//
//	σ+ = ½(X + iY) = [[0, 1], [0, 0]]
//	σ− = ½(X − iY) = [[0, 0], [1, 0]]
//
// The matrices live in unexported package variables initialised once; the
// accessors return copies (mat2.Matrix is a value), so callers cannot alter
// the basis. Index selects X, Y or Z and doubles as a Levi-Civita argument.
//
// Algebraic facts about the basis (unitarity, commutation rules, …) are
// checked by package verify, not asserted here.
package pauli
