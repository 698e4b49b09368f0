// SPDX-License-Identifier: MIT

package levicivita_test

import (
	"fmt"

	"github.com/katalvlaran/pauli/levicivita"
)

// ExampleSymbol prints ε_ijk over all permutations of (0,1,2).
func ExampleSymbol() {
	for _, p := range [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}, {1, 0, 2}, {0, 2, 1}} {
		s, _ := levicivita.Symbol(p[0], p[1], p[2])
		fmt.Printf("ε%v = %+d\n", p, s)
	}

	_, err := levicivita.Symbol(0, 1, 3)
	fmt.Println(err)
	// Output:
	// ε[0 1 2] = +1
	// ε[1 2 0] = +1
	// ε[2 0 1] = +1
	// ε[2 1 0] = -1
	// ε[1 0 2] = -1
	// ε[0 2 1] = -1
	// Symbol: levicivita: index out of range
}
