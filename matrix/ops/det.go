// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/mpp/matrix"

// Det returns the determinant of m in its own element type.
// See DetAs.
func Det[T matrix.Number](m matrix.Expr[T], opts ...Option) (T, error) {
	return DetAs[T](m, opts...)
}

// DetAs returns the determinant of m converted to To.
// Implementation:
//   - Stage 1: Validate m (not nil, square unless WithUnchecked).
//   - Stage 2: Dispatch on size: 0 → 1, 1 → a, 2 → ad - bc, otherwise the
//     product of U's diagonal from LU (pivoted with WithPartialPivoting).
//   - Stage 3: Convert the float64 result to To, rounding for integral To.
//
// Behavior highlights:
//   - Integral determinants come out exact for well-scaled inputs, e.g.
//     det([[7,3,1],[8,8,2],[5,8,2]]) == 6.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrZeroPivot when unpivoted elimination meets a zero pivot, or
//     any elimination step meets a NaN pivot.
//   - matrix.ErrNotRepresentable when the determinant is NaN, or does not fit
//     an integral To (e.g. -2 into uint8).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func DetAs[To, T matrix.Number](m matrix.Expr[T], opts ...Option) (To, error) {
	o := gatherOptions(opts)
	n, a, err := squareInput(opDet, m, o)
	if err != nil {
		return 0, err
	}
	d, err := detBuffer(n, a, o.pivoting)
	if err != nil {
		return 0, opsErrorf(opDet, err)
	}

	v, err := convert[To](d)
	if err != nil {
		return 0, opsErrorf(opDet, err)
	}

	return v, nil
}

// detBuffer computes the determinant of the n×n buffer a in float64.
func detBuffer(n int, a []float64, pivoting bool) (float64, error) {
	switch n {
	case 0:
		log.Debugf("det: empty matrix")
		return 1, nil
	case 1:
		return a[0], nil
	case 2:
		return a[0]*a[3] - a[1]*a[2], nil
	}

	_, _, _, det, err := factor(n, a, pivoting)
	if err != nil {
		return 0, err
	}

	return det, nil
}
