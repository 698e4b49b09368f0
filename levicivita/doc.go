// Package levicivita provides the three-index Levi-Civita symbol ε_ijk over
// the index set {0, 1, 2}.
//
// ε_ijk is +1 for the cyclic rotations of (0,1,2), −1 for the cyclic
// rotations of (2,1,0), and 0 whenever two indices coincide. It is the
// structure constant of the Pauli commutation relations:
//
//	[σ_i, σ_j] = 2i · Σ_k ε_ijk · σ_k
//
// Usage:
//
//	s, err := levicivita.Symbol(0, 1, 2) // s == 1
//	k, err := levicivita.Third(2, 0)     // k == 1
//
// Indices outside {0,1,2} are a caller error and surface as
// ErrIndexOutOfRange. Repeated indices are checked first, so a repeated
// pair yields 0 even when the third index is out of range.
package levicivita
