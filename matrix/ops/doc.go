// SPDX-License-Identifier: MIT

// Package ops provides the numerical algorithms of the matrix package:
// determinant, inverse, LU decomposition, forward/backward substitution,
// linear solve, transpose, block extraction and a singularity test.
//
// Every algorithm reads its input through matrix.Expr, so matrices and lazy
// expression nodes are accepted alike. Determinant, inverse, LU and the
// substitutions compute in float64 regardless of the element type and convert
// the result back at the end; integral targets are rounded, not truncated.
//
// Factorization is Doolittle row reduction. By default no rows are swapped, so
// a matrix whose leading minors vanish fails with matrix.ErrZeroPivot even when
// it is invertible. WithPartialPivoting opts into row exchanges.
//
// Degenerate sizes are handled in closed form:
//
//	n = 0: det 1, inverse is the empty matrix
//	n = 1: det a, inverse 1/a
//	n = 2: det ad - bc, inverse by adjugate
//
// Squareness is checked eagerly (matrix.ErrNonSquare) unless WithUnchecked is
// passed, in which case the leading min(rows, cols) square block is used.
package ops
