// SPDX-License-Identifier: MIT

package levicivita

// N is the number of distinct indices.
const N = 3

// Symbol returns ε_ijk.
//
// Evaluation order:
//  1. any two indices equal → 0 (no range check needed for a zero answer);
//  2. any index outside [0, N) → ErrIndexOutOfRange;
//  3. (i,j,k) a cyclic rotation of (0,1,2) → +1, otherwise −1.
//
// Complexity: O(1).
func Symbol(i, j, k int) (int, error) {
	if i == j || j == k || i == k {
		return 0, nil
	}
	if !valid(i) || !valid(j) || !valid(k) {
		return 0, levicivitaErrorf(opSymbol, ErrIndexOutOfRange)
	}
	// With three distinct indices in {0,1,2}, the permutation is even iff
	// j follows i cyclically.
	if j == (i+1)%N {
		return 1, nil
	}

	return -1, nil
}

// MustSymbol is Symbol for indices known to be valid; it panics otherwise.
func MustSymbol(i, j, k int) int {
	s, err := Symbol(i, j, k)
	if err != nil {
		panic(err)
	}

	return s
}

// Third returns the index k such that {i, j, k} = {0, 1, 2}.
// Returns ErrIndexOutOfRange for invalid indices and ErrRepeatedIndex when
// i == j.
//
// Complexity: O(1).
func Third(i, j int) (int, error) {
	if !valid(i) || !valid(j) {
		return 0, levicivitaErrorf(opThird, ErrIndexOutOfRange)
	}
	if i == j {
		return 0, levicivitaErrorf(opThird, ErrRepeatedIndex)
	}

	return N - i - j, nil // 0+1+2 = 3
}

func valid(i int) bool { return i >= 0 && i < N }
