// SPDX-License-Identifier: MIT

package pauli_test

import (
	"testing"

	"github.com/katalvlaran/pauli/mat2"
	"github.com/katalvlaran/pauli/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasis_Entries(t *testing.T) {
	assert.Equal(t, mat2.New(1, 0, 0, 1), pauli.I())
	assert.Equal(t, mat2.New(0, 1, 1, 0), pauli.SigmaX())
	assert.Equal(t, mat2.New(0, -1i, 1i, 0), pauli.SigmaY())
	assert.Equal(t, mat2.New(1, 0, 0, -1), pauli.SigmaZ())
}

// TestLadder_Entries checks that the derived ladder operators land on the
// expected elementary matrices.
func TestLadder_Entries(t *testing.T) {
	assert.Equal(t, mat2.New(0, 1, 0, 0), pauli.SigmaPlus())
	assert.Equal(t, mat2.New(0, 0, 1, 0), pauli.SigmaMinus())
	assert.Equal(t, pauli.SigmaMinus(), mat2.Dagger(pauli.SigmaPlus()), "σ− = (σ+)†")
}

func TestOf_ByIndex(t *testing.T) {
	want := map[pauli.Index]mat2.Matrix{
		pauli.X: pauli.SigmaX(),
		pauli.Y: pauli.SigmaY(),
		pauli.Z: pauli.SigmaZ(),
	}
	for idx, m := range want {
		got, err := pauli.Of(idx)
		require.NoError(t, err)
		assert.Equal(t, m, got, idx.String())
		assert.Equal(t, m, pauli.MustOf(idx))
	}
}

func TestOf_Invalid(t *testing.T) {
	for _, idx := range []pauli.Index{-1, 3, 42} {
		_, err := pauli.Of(idx)
		assert.ErrorIs(t, err, pauli.ErrInvalidIndex, idx.String())
	}
	assert.Panics(t, func() { pauli.MustOf(3) })
}

// TestAccessors_ReturnCopies ensures callers cannot alter the basis.
func TestAccessors_ReturnCopies(t *testing.T) {
	x := pauli.SigmaX()
	x.M00 = 42
	b := pauli.Basis()
	b[0].M11 = -7
	require.Equal(t, complex128(42), x.M00)
	require.Equal(t, complex128(-7), b[0].M11)

	assert.Equal(t, mat2.New(0, 1, 1, 0), pauli.SigmaX())
	assert.Equal(t, mat2.Identity(), pauli.I())
}

func TestBasis_Order(t *testing.T) {
	b := pauli.Basis()
	assert.Equal(t, pauli.I(), b[0])
	for _, idx := range pauli.Indices() {
		assert.Equal(t, pauli.MustOf(idx), b[int(idx)+1])
	}
}
