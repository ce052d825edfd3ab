// SPDX-License-Identifier: MIT

// Package matrix: the Matrix value container.
//
// What & Why:
//
//	Matrix[T] owns a row-major Buffer of rows*cols elements together with a
//	row extent and a column extent. A fixed extent pins the matching dimension
//	for the life of the value; Dynamic lets it change on assignment. The pair of
//	extents selects the storage kind (see Type).
//
// Invariants:
//   - Buffer length == rows*cols.
//   - A fixed extent equals the matching dimension (a moved-from matrix is 0×0).
//   - rows == 0 iff cols == 0.
//
// Complexity:
//
//	Rows/Cols/At/Set/Elem/SetElem run in O(1); Clone and assignment are O(rows*cols).
package matrix

import (
	"fmt"
	"strings"
)

// Operation tags used to wrap errors with context.
const (
	opNew        = "New"
	opFromRows   = "FromRows"
	opFromSlice  = "FromSlice"
	opAdopt      = "Adopt"
	opIdentity   = "Identity"
	opEval       = "Eval"
	opAssign     = "Assign"
	opAddAssign  = "AddAssign"
	opSubAssign  = "SubAssign"
	opMulAssign  = "MulAssign"
	opDivAssign  = "DivAssign"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opMulScalar  = "MulScalar"
	opDivScalar  = "DivScalar"
	opScalarDiv  = "ScalarDiv"
	opSquare     = "Square"
	opCast       = "Cast"
	ctxAt        = "At"
	ctxSet       = "Set"
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps err with an operation tag, keeping errors.Is intact.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elemErrorf wraps err with Matrix method and coordinate context.
func elemErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Index is the row-major offset of (row, col) in a matrix with cols columns.
// Every kernel addresses storage through this function.
func Index(cols, row, col int) int { return row*cols + col }

// Matrix is a dense row-major matrix of T with run-time extents.
// The zero value is an empty fully dynamic matrix ready to use.
type Matrix[T Number] struct {
	rows, cols int
	// fixed extents; meaningful only when the matching fixed flag is set
	rowsExt, colsExt     int
	rowsFixed, colsFixed bool
	buf                  Buffer[T]
}

// build allocates a zeroed rows×cols matrix under opts.
func build[T Number](tag string, rows, cols int, opts []Option) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	re, ce, err := gatherOptions(opts).resolve(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	m := &Matrix[T]{rows: rows, cols: cols}
	m.setExtents(re, ce)
	m.buf = newBuffer[T](re, ce, rows*cols)

	return m, nil
}

func (m *Matrix[T]) setExtents(re, ce Extent) {
	m.rowsFixed, m.rowsExt = !re.IsDynamic(), int(re)
	m.colsFixed, m.colsExt = !ce.IsDynamic(), int(ce)
}

// New returns a zero-filled rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions for negative sizes or one zero side.
//   - ErrIncompatibleExtents if a fixed extent from opts disagrees with the shape.
func New[T Number](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return build[T](opNew, rows, cols, opts)
}

// Filled returns a rows×cols matrix with every element set to v.
func Filled[T Number](rows, cols int, v T, opts ...Option) (*Matrix[T], error) {
	m, err := build[T](opNew, rows, cols, opts)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// FromRows builds a matrix from nested rows. The input is copied.
// An empty outer slice yields a 0×0 matrix.
//
// Errors:
//   - ErrUnequalRows when rows have different lengths.
//   - ErrInvalidDimensions when rows exist but are all empty.
//   - ErrIncompatibleExtents if the shape contradicts a fixed extent.
func FromRows[T Number](rows [][]T, opts ...Option) (*Matrix[T], error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("%w: row %d has %d columns, row 0 has %d", ErrUnequalRows, i, len(rows[i]), c))
		}
	}

	m, err := build[T](opFromRows, r, c, opts)
	if err != nil {
		return nil, err
	}
	data := m.buf.Data()
	for i, row := range rows {
		copy(data[Index(c, i, 0):], row)
	}

	return m, nil
}

// FromSlice builds a rows×cols matrix from a flat row-major slice, copying it.
//
// Errors:
//   - ErrInvalidDimensions when len(data) != rows*cols or the shape is invalid.
//   - ErrIncompatibleExtents if the shape contradicts a fixed extent.
func FromSlice[T Number](rows, cols int, data []T, opts ...Option) (*Matrix[T], error) {
	if err := validateDataLen(rows, cols, len(data)); err != nil {
		return nil, matrixErrorf(opFromSlice, err)
	}
	m, err := build[T](opFromSlice, rows, cols, opts)
	if err != nil {
		return nil, err
	}
	copy(m.buf.Data(), data)

	return m, nil
}

// Adopt builds a rows×cols matrix that takes ownership of data without copying.
// The caller must not use data afterwards.
func Adopt[T Number](rows, cols int, data []T, opts ...Option) (*Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opAdopt, err)
	}
	if err := validateDataLen(rows, cols, len(data)); err != nil {
		return nil, matrixErrorf(opAdopt, err)
	}
	re, ce, err := gatherOptions(opts).resolve(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdopt, err)
	}

	m := &Matrix[T]{rows: rows, cols: cols}
	m.setExtents(re, ce)
	if typeOf(re, ce) == FullyStatic {
		m.buf = &ArrayBuffer[T]{data: data}
	} else {
		m.buf = &VectorBuffer[T]{data: data}
	}

	return m, nil
}

func validateDataLen(rows, cols, n int) error {
	if rows < 0 || cols < 0 || rows*cols != n {
		return fmt.Errorf("%w: %d elements cannot fill %dx%d", ErrInvalidDimensions, n, rows, cols)
	}

	return nil
}

// Identity returns the rows×cols identity matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows != cols or rows == 0.
//   - ErrIncompatibleExtents if the shape contradicts a fixed extent.
func Identity[T Number](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows != cols || rows == 0 {
		// MakeIdentity reports the precise reason.
		return nil, MakeIdentity[T](NewVectorBuffer[T](0), rows, cols, 0, 1)
	}
	m, err := build[T](opIdentity, rows, cols, opts)
	if err != nil {
		return nil, err
	}
	if err = MakeIdentity(m.buf, rows, cols, 0, 1); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// RowsExtent returns the fixed row extent or Dynamic.
func (m *Matrix[T]) RowsExtent() Extent {
	if !m.rowsFixed {
		return Dynamic
	}

	return Extent(m.rowsExt)
}

// ColsExtent returns the fixed column extent or Dynamic.
func (m *Matrix[T]) ColsExtent() Extent {
	if !m.colsFixed {
		return Dynamic
	}

	return Extent(m.colsExt)
}

// Type reports the storage kind selected by the extents.
func (m *Matrix[T]) Type() Type { return typeOf(m.RowsExtent(), m.ColsExtent()) }

// Data returns the live row-major backing slice. Writes through it are visible
// in m. Intended for kernels; prefer At/Set elsewhere.
func (m *Matrix[T]) Data() []T {
	if m.buf == nil {
		return nil
	}

	return m.buf.Data()
}

// Buffer returns the owned buffer, allocating an empty one for the zero value.
func (m *Matrix[T]) Buffer() Buffer[T] {
	m.ensureBuffer()

	return m.buf
}

func (m *Matrix[T]) ensureBuffer() {
	if m.buf == nil {
		m.buf = newBuffer[T](m.RowsExtent(), m.ColsExtent(), m.rows*m.cols)
	}
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		var zero T
		return zero, elemErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.buf.Data()[Index(m.cols, row, col)], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return elemErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.buf.Data()[Index(m.cols, row, col)] = v

	return nil
}

// Elem returns the element at (row, col) without a bounds check.
// Out-of-range indices are a caller bug; the runtime may panic.
func (m *Matrix[T]) Elem(row, col int) T { return m.buf.Data()[Index(m.cols, row, col)] }

// SetElem stores v at (row, col) without a bounds check.
func (m *Matrix[T]) SetElem(row, col int, v T) { m.buf.Data()[Index(m.cols, row, col)] = v }

// Clone returns a deep copy with the same extents and storage kind.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{
		rows: m.rows, cols: m.cols,
		rowsExt: m.rowsExt, colsExt: m.colsExt,
		rowsFixed: m.rowsFixed, colsFixed: m.colsFixed,
	}
	c.buf = newBuffer[T](m.RowsExtent(), m.ColsExtent(), len(m.Data()))
	copy(c.buf.Data(), m.Data())

	return c
}

// Move transfers m's storage to a new Matrix and leaves m as an empty 0×0
// matrix. Extents stay with both values.
func (m *Matrix[T]) Move() *Matrix[T] {
	m.ensureBuffer()
	out := *m
	m.rows, m.cols = 0, 0
	m.buf = newBuffer[T](m.RowsExtent(), m.ColsExtent(), 0)

	return &out
}

// Do visits elements in row-major order and stops early when f returns false.
func (m *Matrix[T]) Do(f func(row, col int, v T) bool) {
	data := m.Data()
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if !f(i, j, data[Index(m.cols, i, j)]) {
				return
			}
		}
	}
}

// Apply replaces every element with f(row, col, v), in row-major order.
func (m *Matrix[T]) Apply(f func(row, col int, v T) T) {
	data := m.Data()
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			k := Index(m.cols, i, j)
			data[k] = f(i, j, data[k])
		}
	}
}

// Fill sets every element to v.
func (m *Matrix[T]) Fill(v T) {
	data := m.Data()
	for i := range data {
		data[i] = v
	}
}

// String provides a readable row-wise dump: one "[a, b, c]" line per row.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	data := m.Data()
	for i := 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", data[Index(m.cols, i, j)])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// install replaces m's contents with a rows×cols row-major slice. Fixed
// extents must already have been validated against the shape.
func (m *Matrix[T]) install(rows, cols int, data []T) {
	m.ensureBuffer()
	n := rows * cols
	switch {
	case m.buf.Growable():
		var zero T
		m.buf.Resize(n, zero)
		copy(m.buf.Data(), data)
	case m.buf.Len() == n:
		copy(m.buf.Data(), data)
	default:
		// a moved-from fixed matrix regains its storage
		m.buf = &ArrayBuffer[T]{data: data}
	}
	m.rows, m.cols = rows, cols
}
