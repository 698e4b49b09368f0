// SPDX-License-Identifier: MIT

package verify

import (
	"github.com/katalvlaran/pauli/levicivita"
	"github.com/katalvlaran/pauli/mat2"
	"github.com/katalvlaran/pauli/pauli"
)

// Verifier evaluates Pauli identities under a fixed tolerance.
// It holds no mutable state and is safe for concurrent use.
type Verifier struct {
	tol float64
}

// New returns a Verifier configured by opts.
func New(opts ...Option) *Verifier {
	o := gatherOptions(opts...)

	return &Verifier{tol: o.tol}
}

// Tolerance returns the absolute tolerance in effect.
func (v *Verifier) Tolerance() float64 { return v.tol }

// ---------- Generic predicates ----------

// IsUnitary reports whether m†m ≈ I.
func (v *Verifier) IsUnitary(m mat2.Matrix) bool {
	return mat2.Equal(mat2.Mul(mat2.Dagger(m), m), pauli.I(), v.tol)
}

// IsHermitian reports whether m† ≈ m.
func (v *Verifier) IsHermitian(m mat2.Matrix) bool {
	return mat2.Equal(mat2.Dagger(m), m, v.tol)
}

// IsInvolutory reports whether m·m ≈ I.
func (v *Verifier) IsInvolutory(m mat2.Matrix) bool {
	return mat2.Equal(mat2.Mul(m, m), pauli.I(), v.tol)
}

// ---------- Per-index checks ----------

// Unitary checks P†P = I for the Pauli matrix at idx.
func (v *Verifier) Unitary(idx pauli.Index) (bool, error) {
	p, err := pauli.Of(idx)
	if err != nil {
		return false, verifyErrorf(opUnitary, err)
	}

	return v.IsUnitary(p), nil
}

// Hermitian checks P† = P for the Pauli matrix at idx.
func (v *Verifier) Hermitian(idx pauli.Index) (bool, error) {
	p, err := pauli.Of(idx)
	if err != nil {
		return false, verifyErrorf(opHermitian, err)
	}

	return v.IsHermitian(p), nil
}

// Involutory checks P·P = I for the Pauli matrix at idx.
func (v *Verifier) Involutory(idx pauli.Index) (bool, error) {
	p, err := pauli.Of(idx)
	if err != nil {
		return false, verifyErrorf(opInvolutory, err)
	}

	return v.IsInvolutory(p), nil
}

// DeterminantIsMinusOne checks det P = −1 for the Pauli matrix at idx.
func (v *Verifier) DeterminantIsMinusOne(idx pauli.Index) (bool, error) {
	p, err := pauli.Of(idx)
	if err != nil {
		return false, verifyErrorf(opDeterminant, err)
	}

	return mat2.ScalarEqual(mat2.Det(p), -1, v.tol), nil
}

// Traceless checks tr P = 0 for the Pauli matrix at idx.
func (v *Verifier) Traceless(idx pauli.Index) (bool, error) {
	p, err := pauli.Of(idx)
	if err != nil {
		return false, verifyErrorf(opTraceless, err)
	}

	return mat2.ScalarEqual(mat2.Trace(p), 0, v.tol), nil
}

// ProductRule checks P_a·P_b = i·ε_abc·P_c, where c is the index distinct
// from a and b. Returns ErrInvalidPair when a == b.
func (v *Verifier) ProductRule(a, b pauli.Index) (bool, error) {
	pa, err := pauli.Of(a)
	if err != nil {
		return false, verifyErrorf(opProduct, err)
	}
	pb, err := pauli.Of(b)
	if err != nil {
		return false, verifyErrorf(opProduct, err)
	}
	if a == b {
		return false, verifyErrorf(opProduct, ErrInvalidPair)
	}

	c, err := levicivita.Third(int(a), int(b))
	if err != nil {
		return false, verifyErrorf(opProduct, err)
	}
	eps, err := levicivita.Symbol(int(a), int(b), c)
	if err != nil {
		return false, verifyErrorf(opProduct, err)
	}
	want := mat2.Scale(complex(0, float64(eps)), pauli.MustOf(pauli.Index(c)))

	return mat2.Equal(mat2.Mul(pa, pb), want, v.tol), nil
}

// CommutatorIdentity checks [P_i, P_j] = 2i·Σ_k ε_ijk·P_k for any ordered
// pair, including i == j where both sides vanish.
//
// Complexity:
//   - One Commutator plus a three-term sum over k, O(1).
func (v *Verifier) CommutatorIdentity(i, j pauli.Index) (bool, error) {
	pi, err := pauli.Of(i)
	if err != nil {
		return false, verifyErrorf(opCommutator, err)
	}
	pj, err := pauli.Of(j)
	if err != nil {
		return false, verifyErrorf(opCommutator, err)
	}

	rhs := mat2.Zero()
	for _, k := range pauli.Indices() {
		eps, err := levicivita.Symbol(int(i), int(j), int(k))
		if err != nil {
			return false, verifyErrorf(opCommutator, err)
		}
		rhs = mat2.Add(rhs, mat2.Scale(complex(0, 2*float64(eps)), pauli.MustOf(k)))
	}

	return mat2.Equal(mat2.Commutator(pi, pj), rhs, v.tol), nil
}

// AnticommutatorIdentity checks {P_i, P_j} = 2·δ_ij·I.
func (v *Verifier) AnticommutatorIdentity(i, j pauli.Index) (bool, error) {
	pi, err := pauli.Of(i)
	if err != nil {
		return false, verifyErrorf(opAnticomm, err)
	}
	pj, err := pauli.Of(j)
	if err != nil {
		return false, verifyErrorf(opAnticomm, err)
	}

	want := mat2.Zero()
	if i == j {
		want = mat2.Scale(2, pauli.I())
	}

	return mat2.Equal(mat2.Anticommutator(pi, pj), want, v.tol), nil
}

// ---------- Ladder operators ----------

// LadderAnticommutator checks σ+·σ− + σ−·σ+ = I.
func (v *Verifier) LadderAnticommutator() bool {
	return mat2.Equal(mat2.Anticommutator(pauli.SigmaPlus(), pauli.SigmaMinus()), pauli.I(), v.tol)
}

// RaisingNilpotent checks σ+·σ+ = 0.
func (v *Verifier) RaisingNilpotent() bool {
	return mat2.IsZero(mat2.Mul(pauli.SigmaPlus(), pauli.SigmaPlus()), v.tol)
}

// LoweringNilpotent checks σ−·σ− = 0.
func (v *Verifier) LoweringNilpotent() bool {
	return mat2.IsZero(mat2.Mul(pauli.SigmaMinus(), pauli.SigmaMinus()), v.tol)
}
