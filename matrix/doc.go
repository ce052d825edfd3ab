// Package matrix offers generic dense matrices with run-time extents and
// lazily evaluated arithmetic.
//
// The matrix package provides:
//
//   - Matrix[T] over any built-in integer or floating element type, stored
//     row-major in a single Buffer.
//   - Extents: each dimension is either fixed at construction or Dynamic. Both
//     fixed selects fixed-length storage (FullyStatic); otherwise the buffer
//     grows on assignment (FullyDynamic, DynamicRows, DynamicColumns).
//   - Expression nodes (Add, Sub, Mul, MulScalar, DivScalar, ScalarDiv) that
//     validate shapes eagerly and compute elements on demand.
//   - Epsilon-aware comparison (Equal, Compare) and conversions (Cast, Square).
//
// Numerical algorithms (determinant, inverse, LU, substitution, block,
// transpose) live in the ops subpackage.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.Identity[float64](2, 2)
//	sum, _ := matrix.Add[float64](a, b)
//	m, _ := matrix.Eval[float64](sum)
//	fmt.Print(m) // [2, 2]\n[3, 5]\n
//
// Errors are package sentinels wrapped with operation context; match them
// with errors.Is.
package matrix
