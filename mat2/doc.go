// Package mat2 implements exact 2×2 complex matrix algebra on a fixed-size
// value type.
//
// 🚀 What is mat2?
//
//	A tiny, allocation-free replacement for a general numeric array when
//	every operand is a 2×2 complex matrix:
//	  • Matrix is four complex128 fields, so "always 2×2" is a type fact
//	  • Add, Sub, Scale, Mul, Dagger, Trace, Det, Commutator, Anticommutator
//	  • tolerance-based equality (Equal, ApproxEqual, MaxAbsDiff)
//	  • shape-checked ingestion from [][]complex128 and YAML
//
// ✨ Key properties:
//   - values, not pointers: every operation returns a fresh Matrix
//   - pure and total: no operation on a Matrix can fail
//   - Mul rounds each real product explicitly, so results do not depend on
//     whether the target fuses multiply-add
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pauli/mat2"
//
//	a := mat2.New(1, 2i, -2i, 1)
//	h := mat2.Equal(mat2.Dagger(a), a, mat2.DefaultTolerance) // Hermitian?
//
// Errors only arise at the boundary where untyped data enters the package
// (FromRows, At, YAML decoding); see errors.go.
package mat2
