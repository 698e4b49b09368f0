// SPDX-License-Identifier: MIT

package pauli_test

import (
	"fmt"

	"github.com/katalvlaran/pauli/pauli"
)

// ExampleOf prints the three Pauli matrices and the ladder operators.
func ExampleOf() {
	for _, idx := range pauli.Indices() {
		m, _ := pauli.Of(idx)
		fmt.Println(idx, m)
	}
	fmt.Println("σ+", pauli.SigmaPlus())
	fmt.Println("σ−", pauli.SigmaMinus())
	// Output:
	// X [[0 1] [1 0]]
	// Y [[0 -1i] [1i 0]]
	// Z [[1 0] [0 -1]]
	// σ+ [[0 1] [0 0]]
	// σ− [[0 0] [1 0]]
}
