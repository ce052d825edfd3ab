// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/mpp/matrix"

// Singular reports whether det(m) is epsilon-equivalent to zero.
// Elimination always uses partial pivoting here, so a zero leading pivot does
// not hide the answer: [[0, 1], [1, 0]] is not singular, [[0]] is.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (unless WithUnchecked).
//   - matrix.ErrZeroPivot only for inputs containing NaN.
func Singular[T matrix.Number](m matrix.Expr[T], opts ...Option) (bool, error) {
	o := gatherOptions(opts)
	n, a, err := squareInput(opSingular, m, o)
	if err != nil {
		return false, err
	}
	d, err := detBuffer(n, a, true)
	if err != nil {
		return false, opsErrorf(opSingular, err)
	}

	return matrix.EqualElem(d, 0), nil
}
