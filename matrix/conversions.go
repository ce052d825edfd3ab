// SPDX-License-Identifier: MIT
// Package matrix: element-type and shape conversions.

package matrix

// Square builds the lazy product e × e.
//
// Errors:
//   - ErrNilMatrix if e is nil.
//   - ErrNonSquare if e is not square.
func Square[T Number](e Expr[T]) (*BinaryExpr[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opSquare, err)
	}
	if err := ValidateSquare(e); err != nil {
		return nil, matrixErrorf(opSquare, err)
	}

	return &BinaryExpr[T]{op: OpMul, left: e, right: e}, nil
}

// Cast converts every element of e to To with a Go conversion.
// A *Matrix source passes its extents on to the result; any other expression
// yields a fully dynamic matrix.
//
// Errors:
//   - ErrNilMatrix if e is nil.
func Cast[To, From Number](e Expr[From]) (*Matrix[To], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opCast, err)
	}
	rows, cols := e.Rows(), e.Cols()
	re, ce := DefaultRowsExtent, DefaultColumnsExtent
	if src, ok := e.(*Matrix[From]); ok {
		re, ce = src.RowsExtent(), src.ColsExtent()
	}

	// a moved-from source reports fixed extents over a 0×0 shape
	if ValidateExtents(re, ce, rows, cols) != nil {
		re, ce = DefaultRowsExtent, DefaultColumnsExtent
	}
	out, err := build[To](opCast, rows, cols, []Option{WithExtents(re, ce)})
	if err != nil {
		return nil, err
	}
	data := out.buf.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[Index(cols, i, j)] = To(e.Elem(i, j))
		}
	}

	return out, nil
}
