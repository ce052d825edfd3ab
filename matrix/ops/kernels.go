// SPDX-License-Identifier: MIT
// Package ops: raw-buffer kernels.
//
// Purpose:
//   - Run elimination and substitution over flat row-major []float64 buffers,
//     decoupled from Matrix so every storage kind shares one implementation.
//
// Notes:
//   - All buffers are n×n with stride n and addressed through matrix.Index.
//   - A pivot is unusable when it is NaN or |p| < matrix.Float64Epsilon.

package ops

import (
	"fmt"
	"math"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/mpp/matrix"
)

var log = logging.Logger("mpp/ops")

// Operation tags used to wrap errors with context.
const (
	opDet        = "Det"
	opInverse    = "Inverse"
	opLU         = "LU"
	opPLU        = "PLU"
	opForwardSub = "ForwardSub"
	opBackSub    = "BackSub"
	opSolve      = "Solve"
	opTranspose  = "Transpose"
	opBlock      = "Block"
	opSingular   = "Singular"
)

// opsErrorf wraps err with an operation tag.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isZeroOrNaN reports whether v cannot serve as a pivot or divisor.
func isZeroOrNaN(v float64) bool {
	return math.IsNaN(v) || math.Abs(v) < matrix.Float64Epsilon
}

// luInPlace factors the n×n buffer u into L·U by row reduction.
// Implementation:
//   - Stage 1: For each column k, optionally exchange row k with the row of
//     largest |u[i][k]|, i >= k (only when perm != nil).
//   - Stage 2: Multiply the running determinant by the pivot u[k][k].
//   - Stage 3: For each row i below k, store f = u[i][k]/u[k][k] in l[i][k] and
//     subtract f·row k from row i of u.
//
// Behavior highlights:
//   - l must hold the identity and u a copy of A on entry. On success u is
//     upper-triangular, l is unit-lower-triangular and l·u == P·A.
//   - A zero pivot whose column is already zero below it needs no elimination;
//     the step is skipped, the sub-epsilon entries below it are cleared and the
//     determinant becomes zero.
//   - perm (len n, initialized 0..n-1) records row exchanges: row k of P·A is
//     row perm[k] of A. Each exchange flips the determinant's sign.
//
// Errors:
//   - matrix.ErrZeroPivot when a NaN pivot is met at any step, or a zero pivot
//     with a non-zero entry below it before the last step.
//
// Complexity:
//   - Time O(n^3), Space O(1) beyond the buffers.
func luInPlace(n int, l, u []float64, perm []int) (float64, error) {
	det := 1.0
	for k := 0; k < n; k++ {
		if perm != nil {
			if p := pivotRow(n, u, k); p != k {
				swapRows(n, u, k, p, n)
				swapRows(n, l, k, p, k)
				perm[k], perm[p] = perm[p], perm[k]
				det = -det
			}
		}

		pivot := u[matrix.Index(n, k, k)]
		det *= pivot
		if math.IsNaN(pivot) {
			log.Debugf("NaN pivot at step %d of %d", k, n)
			return det, fmt.Errorf("%w: step %d is NaN", matrix.ErrZeroPivot, k)
		}
		if isZeroOrNaN(pivot) && k+1 < n {
			if !columnZeroBelow(n, u, k) {
				log.Debugf("zero pivot at step %d of %d: %g", k, n, pivot)
				return det, fmt.Errorf("%w: step %d", matrix.ErrZeroPivot, k)
			}
			// entries below are within epsilon of zero; U must stay triangular
			for i := k + 1; i < n; i++ {
				u[matrix.Index(n, i, k)] = 0
			}
			continue
		}

		for i := k + 1; i < n; i++ {
			f := u[matrix.Index(n, i, k)] / pivot
			l[matrix.Index(n, i, k)] = f
			// the eliminated entry is exactly zero, not f·pivot's rounding residue
			u[matrix.Index(n, i, k)] = 0
			for j := k + 1; j < n; j++ {
				u[matrix.Index(n, i, j)] -= f * u[matrix.Index(n, k, j)]
			}
		}
	}

	return det, nil
}

// pivotRow returns the row i >= k with the largest |u[i][k]|; ties keep the
// upper row.
func pivotRow(n int, u []float64, k int) int {
	best, bestAbs := k, math.Abs(u[matrix.Index(n, k, k)])
	for i := k + 1; i < n; i++ {
		if v := math.Abs(u[matrix.Index(n, i, k)]); v > bestAbs {
			best, bestAbs = i, v
		}
	}

	return best
}

// swapRows exchanges the first width entries of rows a and b.
func swapRows(n int, buf []float64, a, b, width int) {
	ra, rb := buf[matrix.Index(n, a, 0):], buf[matrix.Index(n, b, 0):]
	for j := 0; j < width; j++ {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

func columnZeroBelow(n int, u []float64, k int) bool {
	for i := k + 1; i < n; i++ {
		if !isZeroOrNaN(u[matrix.Index(n, i, k)]) || math.IsNaN(u[matrix.Index(n, i, k)]) {
			return false
		}
	}

	return true
}

// forwardSubstitute solves a·x = b for lower-triangular n×n a, top-down:
//
//	x[r] = (b[r] - Σ_{c<r} a[r][c]·x[c]) / a[r][r]
//
// Errors:
//   - matrix.ErrZeroPivot if a diagonal entry is zero or NaN.
//
// Complexity:
//   - Time O(n^2), Space O(n) for x.
func forwardSubstitute(n int, a, b []float64) ([]float64, error) {
	x := make([]float64, n)
	for r := 0; r < n; r++ {
		diag := a[matrix.Index(n, r, r)]
		if isZeroOrNaN(diag) {
			return nil, fmt.Errorf("%w: diagonal %d is %g", matrix.ErrZeroPivot, r, diag)
		}
		sum := b[r]
		for c := 0; c < r; c++ {
			sum -= a[matrix.Index(n, r, c)] * x[c]
		}
		x[r] = sum / diag
	}

	return x, nil
}

// backSubstitute solves a·x = b for upper-triangular n×n a, bottom-up:
//
//	x[r] = (b[r] - Σ_{c>r} a[r][c]·x[c]) / a[r][r]
//
// Errors:
//   - matrix.ErrZeroPivot if a diagonal entry is zero or NaN.
//
// Complexity:
//   - Time O(n^2), Space O(n) for x.
func backSubstitute(n int, a, b []float64) ([]float64, error) {
	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		diag := a[matrix.Index(n, r, r)]
		if isZeroOrNaN(diag) {
			return nil, fmt.Errorf("%w: diagonal %d is %g", matrix.ErrZeroPivot, r, diag)
		}
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[matrix.Index(n, r, c)] * x[c]
		}
		x[r] = sum / diag
	}

	return x, nil
}

// identityBuffer returns a fresh n×n identity.
func identityBuffer(n int) []float64 {
	buf := make([]float64, n*n)
	for i := 0; i < n; i++ {
		buf[matrix.Index(n, i, i)] = 1
	}

	return buf
}

// identityPerm returns 0..n-1.
func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	return perm
}

// luSolveColumns solves A·X = B for each of the cols columns of the n×cols
// row-major rhs, given l·u == P·A. perm == nil means P = I.
func luSolveColumns(n, cols int, l, u []float64, perm []int, rhs []float64) ([]float64, error) {
	out := make([]float64, n*cols)
	b := make([]float64, n)
	for j := 0; j < cols; j++ {
		for i := 0; i < n; i++ {
			src := i
			if perm != nil {
				src = perm[i]
			}
			b[i] = rhs[matrix.Index(cols, src, j)]
		}
		y, err := forwardSubstitute(n, l, b)
		if err != nil {
			return nil, err
		}
		x, err := backSubstitute(n, u, y)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			out[matrix.Index(cols, i, j)] = x[i]
		}
	}

	return out, nil
}
