// Package verify checks the algebraic facts of the Pauli basis numerically.
//
// Every check is a pure function of the constants in package pauli, the
// Levi-Civita symbol and a tolerance. A failed identity is reported as false
// (or as a failed Result), never as an error; errors are reserved for caller
// misuse such as an out-of-range Index.
//
// Checked facts, for P ∈ {X, Y, Z}:
//
//	P†P = I              (unitary)
//	P† = P               (Hermitian)
//	P·P = I              (involutory)
//	det P = −1, tr P = 0
//	P_a·P_b = i·ε_abc·P_c                   for distinct a, b
//	[P_i, P_j] = 2i·Σ_k ε_ijk·P_k           for all i, j
//	{σ+, σ−} = I,  σ+·σ+ = σ−·σ− = 0
//
// Usage:
//
//	v := verify.New(verify.WithTolerance(1e-12))
//	ok, err := v.CommutatorIdentity(pauli.X, pauli.Y)
//	report := v.Report() // every check over every index and pair
package verify
