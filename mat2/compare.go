// SPDX-License-Identifier: MIT

package mat2

import (
	"math"
	"math/cmplx"
)

// Equal reports whether every entry-wise magnitude difference |aij − bij| is
// at most tol. A negative or NaN tol never matches; NaN entries never match.
//
// Complexity:
//   - Time O(1): at most four cmplx.Abs calls, short-circuiting on the
//     first entry outside tol.
func Equal(a, b Matrix, tol float64) bool {
	if math.IsNaN(tol) || tol < 0 {
		return false
	}

	return cmplx.Abs(a.M00-b.M00) <= tol &&
		cmplx.Abs(a.M01-b.M01) <= tol &&
		cmplx.Abs(a.M10-b.M10) <= tol &&
		cmplx.Abs(a.M11-b.M11) <= tol
}

// ApproxEqual is Equal with DefaultTolerance.
func ApproxEqual(a, b Matrix) bool {
	return Equal(a, b, DefaultTolerance)
}

// IsZero reports whether every entry of a has magnitude at most tol.
func IsZero(a Matrix, tol float64) bool {
	return Equal(a, Zero(), tol)
}

// MaxAbsDiff returns max |aij − bij| over the four entries.
// Handy in test failure messages to see how far off a comparison was.
func MaxAbsDiff(a, b Matrix) float64 {
	d := cmplx.Abs(a.M00 - b.M00)
	d = math.Max(d, cmplx.Abs(a.M01-b.M01))
	d = math.Max(d, cmplx.Abs(a.M10-b.M10))

	return math.Max(d, cmplx.Abs(a.M11-b.M11))
}

// ScalarEqual reports whether |x − y| ≤ tol for two complex scalars.
func ScalarEqual(x, y complex128, tol float64) bool {
	if math.IsNaN(tol) || tol < 0 {
		return false
	}

	return cmplx.Abs(x-y) <= tol
}
