// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/mpp/matrix"
)

// triangularInput validates a square system matrix a and a single-column b with
// matching rows, returning both as float64 buffers.
func triangularInput[T matrix.Number](tag string, a, b matrix.Expr[T]) (int, []float64, []float64, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return 0, nil, nil, opsErrorf(tag, err)
	}
	n, buf, err := squareInput(tag, a, defaultOptions())
	if err != nil {
		return 0, nil, nil, err
	}
	if b.Cols() != 1 || b.Rows() != n {
		return 0, nil, nil, opsErrorf(tag, fmt.Errorf("%w: right-hand side is %dx%d, want %dx1",
			matrix.ErrDimensionMismatch, b.Rows(), b.Cols(), n))
	}
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		rhs[i] = float64(b.Elem(i, 0))
	}

	return n, buf, rhs, nil
}

// ForwardSub solves a·x = b for lower-triangular a by forward substitution.
// Entries above a's diagonal are ignored.
//
// Inputs:
//   - a: square n×n lower-triangular Expr.
//   - b: n×1 column.
//
// Returns:
//   - x as an n×1 *matrix.Matrix[float64].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrDimensionMismatch if b is not an n×1 column.
//   - matrix.ErrZeroPivot if a diagonal entry is zero or NaN.
//
// Complexity:
//   - Time O(n^2), Space O(n^2) for the float64 copy of a.
func ForwardSub[T matrix.Number](a, b matrix.Expr[T]) (*matrix.Matrix[float64], error) {
	n, buf, rhs, err := triangularInput(opForwardSub, a, b)
	if err != nil {
		return nil, err
	}
	x, err := forwardSubstitute(n, buf, rhs)
	if err != nil {
		return nil, opsErrorf(opForwardSub, err)
	}

	return matrix.Adopt(n, 1, x)
}

// BackSub solves a·x = b for upper-triangular a by backward substitution.
// Entries below a's diagonal are ignored.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrDimensionMismatch if b is not an n×1 column.
//   - matrix.ErrZeroPivot if a diagonal entry is zero or NaN.
//
// Complexity:
//   - Time O(n^2), Space O(n^2) for the float64 copy of a.
func BackSub[T matrix.Number](a, b matrix.Expr[T]) (*matrix.Matrix[float64], error) {
	n, buf, rhs, err := triangularInput(opBackSub, a, b)
	if err != nil {
		return nil, err
	}
	x, err := backSubstitute(n, buf, rhs)
	if err != nil {
		return nil, opsErrorf(opBackSub, err)
	}

	return matrix.Adopt(n, 1, x)
}

// Solve returns X with a·X = b for square a and an n×k right-hand side b.
// Implementation:
//   - Stage 1: Validate shapes; copy a and b to float64.
//   - Stage 2: Factor a = L·U (P·a = L·U with WithPartialPivoting).
//   - Stage 3: For each column of b, forward-substitute through L, then
//     back-substitute through U.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrDimensionMismatch if b.Rows() != a.Rows().
//   - matrix.ErrZeroPivot when elimination or substitution meets a zero pivot,
//     which includes every singular a.
//
// Complexity:
//   - Time O(n^3 + n^2·k), Space O(n^2 + n·k).
func Solve[T matrix.Number](a, b matrix.Expr[T], opts ...Option) (*matrix.Matrix[float64], error) {
	o := gatherOptions(opts)
	o.unchecked = false
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	n, buf, err := squareInput(opSolve, a, o)
	if err != nil {
		return nil, err
	}
	if b.Rows() != n {
		return nil, opsErrorf(opSolve, fmt.Errorf("%w: right-hand side has %d rows, want %d",
			matrix.ErrDimensionMismatch, b.Rows(), n))
	}

	k := b.Cols()
	rhs := make([]float64, n*k)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			rhs[matrix.Index(k, i, j)] = float64(b.Elem(i, j))
		}
	}

	l, u, perm, _, err := factor(n, buf, o.pivoting)
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	x, err := luSolveColumns(n, k, l, u, perm, rhs)
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}

	return matrix.Adopt(n, k, x)
}
