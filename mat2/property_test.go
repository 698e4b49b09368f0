// SPDX-License-Identifier: MIT

package mat2_test

import (
	"testing"

	"github.com/katalvlaran/pauli/mat2"
	"pgregory.net/rapid"
)

// TestProperty_DaggerLaws checks (a†)† = a and (ab)† = b†a†.
func TestProperty_DaggerLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := matrixGen().Draw(t, "a")
		b := matrixGen().Draw(t, "b")

		if got := mat2.Dagger(mat2.Dagger(a)); got != a {
			t.Fatalf("(a†)† = %v, want %v", got, a)
		}
		lhs := mat2.Dagger(mat2.Mul(a, b))
		rhs := mat2.Mul(mat2.Dagger(b), mat2.Dagger(a))
		if !mat2.Equal(lhs, rhs, propTol) {
			t.Fatalf("(ab)† != b†a†: diff %g", mat2.MaxAbsDiff(lhs, rhs))
		}
	})
}

// TestProperty_TraceAndDet checks tr(ab) = tr(ba) and det(ab) = det(a)det(b).
func TestProperty_TraceAndDet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := matrixGen().Draw(t, "a")
		b := matrixGen().Draw(t, "b")

		if !mat2.ScalarEqual(mat2.Trace(mat2.Mul(a, b)), mat2.Trace(mat2.Mul(b, a)), propTol) {
			t.Fatalf("tr(ab) != tr(ba)")
		}
		// det values reach ~1e5 here, so compare with a scaled tolerance.
		if !mat2.ScalarEqual(mat2.Det(mat2.Mul(a, b)), mat2.Det(a)*mat2.Det(b), 1e-6) {
			t.Fatalf("det(ab) = %v, det(a)det(b) = %v", mat2.Det(mat2.Mul(a, b)), mat2.Det(a)*mat2.Det(b))
		}
	})
}

// TestProperty_Brackets checks antisymmetry of the commutator, symmetry of
// the anticommutator, and ab = ([a,b] + {a,b}) / 2.
func TestProperty_Brackets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := matrixGen().Draw(t, "a")
		b := matrixGen().Draw(t, "b")

		if !mat2.Equal(mat2.Commutator(a, b), mat2.Neg(mat2.Commutator(b, a)), propTol) {
			t.Fatalf("[a,b] != -[b,a]")
		}
		if mat2.Anticommutator(a, b) != mat2.Anticommutator(b, a) {
			t.Fatalf("{a,b} != {b,a}")
		}
		half := mat2.Scale(0.5, mat2.Add(mat2.Commutator(a, b), mat2.Anticommutator(a, b)))
		if !mat2.Equal(half, mat2.Mul(a, b), propTol) {
			t.Fatalf("([a,b]+{a,b})/2 != ab: diff %g", mat2.MaxAbsDiff(half, mat2.Mul(a, b)))
		}
	})
}

// TestProperty_Distributive checks a(b+c) = ab + ac and associativity.
func TestProperty_Distributive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := matrixGen().Draw(t, "a")
		b := matrixGen().Draw(t, "b")
		c := matrixGen().Draw(t, "c")

		lhs := mat2.Mul(a, mat2.Add(b, c))
		rhs := mat2.Add(mat2.Mul(a, b), mat2.Mul(a, c))
		if !mat2.Equal(lhs, rhs, propTol) {
			t.Fatalf("a(b+c) != ab+ac: diff %g", mat2.MaxAbsDiff(lhs, rhs))
		}
		// (ab)c entries reach ~1e4; float64 keeps ~1e-12 absolute here.
		if !mat2.Equal(mat2.Mul(mat2.Mul(a, b), c), mat2.Mul(a, mat2.Mul(b, c)), 1e-8) {
			t.Fatalf("(ab)c != a(bc)")
		}
	})
}
