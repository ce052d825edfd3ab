// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/katalvlaran/mpp/matrix"
)

// squareInput validates m and copies its leading square block into a float64
// buffer. With checked options m must be square.
func squareInput[T matrix.Number](tag string, m matrix.Expr[T], o Options) (int, []float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, nil, opsErrorf(tag, err)
	}
	if !o.unchecked {
		if err := matrix.ValidateSquare(m); err != nil {
			return 0, nil, opsErrorf(tag, err)
		}
	}

	n := min(m.Rows(), m.Cols())
	buf := make([]float64, n*n)
	// Fast path: a square float64 matrix is copied directly.
	if d, ok := any(m).(*matrix.Matrix[float64]); ok && d.Rows() == n && d.Cols() == n {
		copy(buf, d.Data())
		return n, buf, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			buf[matrix.Index(n, i, j)] = float64(m.Elem(i, j))
		}
	}

	return n, buf, nil
}

// squareExtents returns options reproducing m's extents for an n×n result when
// m is a *Matrix whose extents admit that shape; otherwise none (dynamic).
func squareExtents[T matrix.Number](m matrix.Expr[T], n int) []matrix.Option {
	src, ok := m.(*matrix.Matrix[T])
	if !ok {
		return nil
	}
	re, ce := src.RowsExtent(), src.ColsExtent()
	if matrix.ValidateExtents(re, ce, n, n) != nil {
		return nil
	}

	return []matrix.Option{matrix.WithExtents(re, ce)}
}

// convert casts a float64 result to To, rounding for integral targets.
// NaN is rejected for every To; an integral To also rejects ±Inf and values
// outside its range, where Go's conversion is implementation-defined.
func convert[To matrix.Number](v float64) (To, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: NaN", matrix.ErrNotRepresentable)
	}
	if matrix.IsFloat[To]() {
		return To(v), nil
	}

	r := math.Round(v)
	lo, hi := integerRange[To]()
	if !(r >= lo && r < hi) {
		return 0, fmt.Errorf("%w: %g outside [%g, %g)", matrix.ErrNotRepresentable, v, lo, hi)
	}

	return To(r), nil
}

// integerRange returns the half-open range [lo, hi) of integer type To as
// float64. Both bounds are powers of two, so they are exact.
func integerRange[To matrix.Number]() (lo, hi float64) {
	var zero To
	bits := int(unsafe.Sizeof(zero)) * 8
	if zero-1 < zero {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}

	return 0, math.Ldexp(1, bits)
}

// factor runs luInPlace on a copy of a. perm is nil unless pivoting is requested.
func factor(n int, a []float64, pivoting bool) (l, u []float64, perm []int, det float64, err error) {
	l = identityBuffer(n)
	u = append([]float64(nil), a...)
	if pivoting {
		perm = identityPerm(n)
	}
	det, err = luInPlace(n, l, u, perm)

	return l, u, perm, det, err
}

// LU computes the Doolittle factorization A = L·U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square unless WithUnchecked); copy it to float64.
//   - Stage 2: Row-reduce a copy into U while recording multipliers in L.
//
// Behavior highlights:
//   - Rows are never exchanged, whatever the options; use PLU for that.
//   - A column already zero below a zero pivot is skipped, so some singular
//     matrices still factor.
//
// Inputs:
//   - m: square Expr (n×n), any element type.
//
// Returns:
//   - *matrix.Matrix[float64]: L (unit lower triangular).
//   - *matrix.Matrix[float64]: U (upper triangular).
//
// Both carry m's extents when m is a *Matrix.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrZeroPivot.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU[T matrix.Number](m matrix.Expr[T], opts ...Option) (*matrix.Matrix[float64], *matrix.Matrix[float64], error) {
	o := gatherOptions(opts)
	n, a, err := squareInput(opLU, m, o)
	if err != nil {
		return nil, nil, err
	}
	l, u, _, _, err := factor(n, a, false)
	if err != nil {
		return nil, nil, opsErrorf(opLU, err)
	}

	ext := squareExtents(m, n)
	L, err := matrix.Adopt(n, n, l, ext...)
	if err != nil {
		return nil, nil, opsErrorf(opLU, err)
	}
	U, err := matrix.Adopt(n, n, u, ext...)
	if err != nil {
		return nil, nil, opsErrorf(opLU, err)
	}

	return L, U, nil
}

// PLU computes the partially pivoted factorization P·A = L·U.
// Implementation:
//   - Stage 1: Validate and copy m as LU does.
//   - Stage 2: At each column pick the row with the largest |pivot|, exchange,
//     then eliminate below it.
//
// Returns:
//   - P: permutation matrix (row k has its 1 in column perm[k]).
//   - L: unit lower triangular; U: upper triangular.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrZeroPivot (NaN input only).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func PLU[T matrix.Number](m matrix.Expr[T], opts ...Option) (P, L, U *matrix.Matrix[float64], err error) {
	o := gatherOptions(opts)
	n, a, err := squareInput(opPLU, m, o)
	if err != nil {
		return nil, nil, nil, err
	}
	l, u, perm, _, err := factor(n, a, true)
	if err != nil {
		return nil, nil, nil, opsErrorf(opPLU, err)
	}

	p := make([]float64, n*n)
	for k, src := range perm {
		p[matrix.Index(n, k, src)] = 1
	}

	ext := squareExtents(m, n)
	if P, err = matrix.Adopt(n, n, p, ext...); err != nil {
		return nil, nil, nil, opsErrorf(opPLU, err)
	}
	if L, err = matrix.Adopt(n, n, l, ext...); err != nil {
		return nil, nil, nil, opsErrorf(opPLU, err)
	}
	if U, err = matrix.Adopt(n, n, u, ext...); err != nil {
		return nil, nil, nil, opsErrorf(opPLU, err)
	}

	return P, L, U, nil
}
