// SPDX-License-Identifier: MIT
// Package matrix provides elementwise and product arithmetic over any Expr.
//
// Purpose:
//   - Build lazy expression nodes after validating operand shapes eagerly.
//   - Materialize expressions into new or existing matrices.
//   - Offer compound assignment on *Matrix that is safe under aliasing.
//
// Notes:
//   - Validation happens when a node is built, never during evaluation.
//   - Materialization always evaluates into scratch storage first, so
//     m.AddAssign(Mul(m, m)) reads the old m throughout.

package matrix

// Add builds the lazy elementwise sum a + b.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrNotSameSize if shapes differ.
func Add[T Number](a, b Expr[T]) (*BinaryExpr[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return &BinaryExpr[T]{op: OpAdd, left: a, right: b}, nil
}

// Sub builds the lazy elementwise difference a - b.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrNotSameSize if shapes differ.
func Sub[T Number](a, b Expr[T]) (*BinaryExpr[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return &BinaryExpr[T]{op: OpSub, left: a, right: b}, nil
}

// Mul builds the lazy matrix product a × b.
// Implementation:
//   - Stage 1: Validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: Return a node whose Elem(i, j) is the dot product of row i of a
//     and column j of b.
//
// Behavior highlights:
//   - No intermediate storage; each element costs O(a.Cols()) on every read.
//     Materialize with Eval before reading a product repeatedly.
//
// Errors:
//   - ErrNilMatrix, ErrNotMultipliable.
//
// Complexity:
//   - Full evaluation is O(n·m·p) for (n×m)·(m×p).
func Mul[T Number](a, b Expr[T]) (*BinaryExpr[T], error) {
	if err := ValidateBinaryMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return &BinaryExpr[T]{op: OpMul, left: a, right: b}, nil
}

// MulScalar builds the lazy broadcast product a * s (equivalently s * a).
func MulScalar[T Number](a Expr[T], s T) (*ScalarExpr[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}

	return &ScalarExpr[T]{op: OpMul, operand: a, scalar: s}, nil
}

// DivScalar builds the lazy broadcast quotient a / s.
//
// Errors:
//   - ErrNilMatrix if a is nil.
//   - ErrDivisionByZero if T is an integer type and s == 0. Floating division
//     by zero follows IEEE 754.
func DivScalar[T Number](a Expr[T], s T) (*ScalarExpr[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if s == 0 && !IsFloat[T]() {
		return nil, matrixErrorf(opDivScalar, ErrDivisionByZero)
	}

	return &ScalarExpr[T]{op: OpDiv, operand: a, scalar: s}, nil
}

// ScalarDiv builds the lazy broadcast quotient s / a, element by element.
// For integer T a zero element panics when evaluated, as Go integer division does.
func ScalarDiv[T Number](s T, a Expr[T]) (*ScalarExpr[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScalarDiv, err)
	}

	return &ScalarExpr[T]{op: OpDiv, operand: a, scalar: s, scalarFirst: true}, nil
}

// evaluate materializes e into a fresh row-major slice.
func evaluate[T Number](e Expr[T]) []T {
	rows, cols := e.Rows(), e.Cols()
	out := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[Index(cols, i, j)] = e.Elem(i, j)
		}
	}

	return out
}

// Eval materializes e into a new matrix, row-major.
// With no options the result is fully dynamic.
//
// Errors:
//   - ErrNilMatrix if e is nil.
//   - ErrIncompatibleExtents if e's shape contradicts a fixed extent in opts.
func Eval[T Number](e Expr[T], opts ...Option) (*Matrix[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opEval, err)
	}
	rows, cols := e.Rows(), e.Cols()
	re, ce, err := gatherOptions(opts).resolve(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opEval, err)
	}

	m := &Matrix[T]{rows: rows, cols: cols}
	m.setExtents(re, ce)
	data := evaluate(e)
	if typeOf(re, ce) == FullyStatic {
		m.buf = &ArrayBuffer[T]{data: data}
	} else {
		m.buf = &VectorBuffer[T]{data: data}
	}

	return m, nil
}

// Assign materializes e into m. Growable storage is resized to e's shape;
// fixed extents must match it.
//
// Errors:
//   - ErrNilMatrix if e is nil.
//   - ErrIncompatibleExtents if e's shape contradicts a fixed extent of m.
func (m *Matrix[T]) Assign(e Expr[T]) error {
	if err := ValidateNotNil(e); err != nil {
		return matrixErrorf(opAssign, err)
	}
	rows, cols := e.Rows(), e.Cols()
	if err := ValidateExtents(m.RowsExtent(), m.ColsExtent(), rows, cols); err != nil {
		return matrixErrorf(opAssign, err)
	}
	m.install(rows, cols, evaluate(e))

	return nil
}

// AddAssign performs m = m + e.
//
// Errors:
//   - ErrNilMatrix, ErrNotSameSize. m is unchanged on error.
func (m *Matrix[T]) AddAssign(e Expr[T]) error {
	if err := ValidateBinarySameShape[T](m, e); err != nil {
		return matrixErrorf(opAddAssign, err)
	}
	rhs := evaluate(e)
	data := m.Data()
	for k := range data {
		data[k] += rhs[k]
	}

	return nil
}

// SubAssign performs m = m - e.
//
// Errors:
//   - ErrNilMatrix, ErrNotSameSize. m is unchanged on error.
func (m *Matrix[T]) SubAssign(e Expr[T]) error {
	if err := ValidateBinarySameShape[T](m, e); err != nil {
		return matrixErrorf(opSubAssign, err)
	}
	rhs := evaluate(e)
	data := m.Data()
	for k := range data {
		data[k] -= rhs[k]
	}

	return nil
}

// MulAssign performs m = m × e (matrix product). The result has m.Rows() rows
// and e.Cols() columns.
//
// Errors:
//   - ErrNilMatrix, ErrNotMultipliable.
//   - ErrIncompatibleExtents if the product's shape contradicts a fixed extent of m.
func (m *Matrix[T]) MulAssign(e Expr[T]) error {
	prod, err := Mul[T](m, e)
	if err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	rows, cols := prod.Rows(), prod.Cols()
	if err = ValidateExtents(m.RowsExtent(), m.ColsExtent(), rows, cols); err != nil {
		return matrixErrorf(opMulAssign, err)
	}
	m.install(rows, cols, evaluate[T](prod))

	return nil
}

// ScaleAssign performs m = m * s.
func (m *Matrix[T]) ScaleAssign(s T) {
	data := m.Data()
	for k := range data {
		data[k] *= s
	}
}

// DivAssign performs m = m / s.
//
// Errors:
//   - ErrDivisionByZero if T is an integer type and s == 0. m is unchanged.
func (m *Matrix[T]) DivAssign(s T) error {
	if s == 0 && !IsFloat[T]() {
		return matrixErrorf(opDivAssign, ErrDivisionByZero)
	}
	data := m.Data()
	for k := range data {
		data[k] /= s
	}

	return nil
}
