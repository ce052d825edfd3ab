// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/mpp/matrix"

// Transpose returns a fresh matrix with rows and columns exchanged.
// When m is a *Matrix its extents are exchanged too, so a matrix with fixed
// 3 rows and dynamic columns transposes into one with dynamic rows and fixed
// 3 columns.
//
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(r·c), Space O(r·c).
func Transpose[T matrix.Number](m matrix.Expr[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opsErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()

	var opts []matrix.Option
	if src, ok := m.(*matrix.Matrix[T]); ok {
		re, ce := src.ColsExtent(), src.RowsExtent()
		if matrix.ValidateExtents(re, ce, cols, rows) == nil {
			opts = append(opts, matrix.WithExtents(re, ce))
		}
	}

	out := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[matrix.Index(rows, j, i)] = m.Elem(i, j)
		}
	}
	res, err := matrix.Adopt(cols, rows, out, opts...)
	if err != nil {
		return nil, opsErrorf(opTranspose, err)
	}

	return res, nil
}
