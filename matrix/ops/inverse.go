// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/mpp/matrix"
)

// Inverse returns A^{-1} in m's own element type. Integral element types
// receive the rounded inverse. See InverseAs.
func Inverse[T matrix.Number](m matrix.Expr[T], opts ...Option) (*matrix.Matrix[T], error) {
	return InverseAs[T](m, opts...)
}

// InverseAs returns A^{-1} with elements converted to To.
// Implementation:
//   - Stage 1: Validate m (not nil, square unless WithUnchecked).
//   - Stage 2: Dispatch on size: 0 → empty, 1 → 1/a, 2 → adjugate / det.
//   - Stage 3 (n >= 3): factor A = L·U (P·A = L·U with pivoting); reject a zero
//     determinant; solve L·y = e_j and U·x = y for every identity column e_j.
//
// Behavior highlights:
//   - The result carries m's extents when m is a *Matrix.
//   - Computation is float64; integral To is rounded per element.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrSingular if the determinant is zero (within epsilon) or NaN.
//   - matrix.ErrZeroPivot when unpivoted elimination meets a zero pivot.
//   - matrix.ErrNotRepresentable when an element does not fit an integral To.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func InverseAs[To, T matrix.Number](m matrix.Expr[T], opts ...Option) (*matrix.Matrix[To], error) {
	o := gatherOptions(opts)
	n, a, err := squareInput(opInverse, m, o)
	if err != nil {
		return nil, err
	}
	inv, err := inverseBuffer(n, a, o.pivoting)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	out := make([]To, len(inv))
	for k, v := range inv {
		if out[k], err = convert[To](v); err != nil {
			return nil, opsErrorf(opInverse, fmt.Errorf("element (%d,%d): %w", k/n, k%n, err))
		}
	}
	res, err := matrix.Adopt(n, n, out, squareExtents(m, n)...)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	return res, nil
}

// inverseBuffer inverts the n×n buffer a in float64.
func inverseBuffer(n int, a []float64, pivoting bool) ([]float64, error) {
	switch n {
	case 0:
		log.Debugf("inverse: empty matrix")
		return []float64{}, nil
	case 1:
		if isZeroOrNaN(a[0]) {
			return nil, fmt.Errorf("%w: 1x1 element is %g", matrix.ErrSingular, a[0])
		}
		return []float64{1 / a[0]}, nil
	case 2:
		det := a[0]*a[3] - a[1]*a[2]
		if isZeroOrNaN(det) {
			return nil, fmt.Errorf("%w: 2x2 determinant is %g", matrix.ErrSingular, det)
		}
		return []float64{a[3] / det, -a[1] / det, -a[2] / det, a[0] / det}, nil
	}

	l, u, perm, det, err := factor(n, a, pivoting)
	if err != nil {
		return nil, err
	}
	if isZeroOrNaN(det) {
		log.Debugf("inverse: %dx%d determinant %g", n, n, det)
		return nil, fmt.Errorf("%w: determinant is %g", matrix.ErrSingular, det)
	}

	return luSolveColumns(n, n, l, u, perm, identityBuffer(n))
}
