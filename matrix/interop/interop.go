// SPDX-License-Identifier: MIT

// Package interop bridges matrix values and gonum.org/v1/gonum/mat.
//
// Adapter exposes any matrix.Expr as a read-only mat.Matrix without copying,
// so gonum routines (Det, Inverse, Solve, Mul, formatting) can consume lazy
// expressions directly. ToDense and FromGonum copy in each direction.
package interop

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpp/matrix"
)

const (
	opNewAdapter = "NewAdapter"
	opToDense    = "ToDense"
	opFromGonum  = "FromGonum"
)

func interopErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Adapter is a read-only mat.Matrix view of a matrix.Expr.
// Elements are converted to float64 on every At call.
type Adapter[T matrix.Number] struct {
	e matrix.Expr[T]
}

var _ mat.Matrix = (*Adapter[float64])(nil)

// NewAdapter wraps e. Errors: matrix.ErrNilMatrix.
func NewAdapter[T matrix.Number](e matrix.Expr[T]) (*Adapter[T], error) {
	if err := matrix.ValidateNotNil(e); err != nil {
		return nil, interopErrorf(opNewAdapter, err)
	}

	return &Adapter[T]{e: e}, nil
}

// Dims returns the wrapped shape.
func (a *Adapter[T]) Dims() (r, c int) { return a.e.Rows(), a.e.Cols() }

// At returns element (i, j) as float64. Like gonum types it panics on an
// out-of-range index.
func (a *Adapter[T]) At(i, j int) float64 {
	if i < 0 || i >= a.e.Rows() {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= a.e.Cols() {
		panic(mat.ErrColAccess)
	}

	return float64(a.e.Elem(i, j))
}

// T returns the implicit transpose.
func (a *Adapter[T]) T() mat.Matrix { return mat.Transpose{Matrix: a} }

// ToDense copies e into a new *mat.Dense. A 0×0 input yields an empty Dense,
// which gonum represents as the zero value.
//
// Errors:
//   - matrix.ErrNilMatrix.
func ToDense[T matrix.Number](e matrix.Expr[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(e); err != nil {
		return nil, interopErrorf(opToDense, err)
	}
	rows, cols := e.Rows(), e.Cols()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}, nil
	}

	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[matrix.Index(cols, i, j)] = float64(e.Elem(i, j))
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies m into a new matrix of T. Integral T receives rounded
// values. opts set the extents of the result.
//
// Errors:
//   - matrix.ErrNilMatrix if m is nil.
//   - matrix.ErrIncompatibleExtents if m's shape contradicts a fixed extent.
func FromGonum[T matrix.Number](m mat.Matrix, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	if m == nil {
		return nil, interopErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	var rows, cols int
	if d, ok := m.(*mat.Dense); !ok || !d.IsEmpty() {
		rows, cols = m.Dims()
	}

	integral := !matrix.IsFloat[T]()
	data := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			if integral {
				v = math.Round(v)
			}
			data[matrix.Index(cols, i, j)] = T(v)
		}
	}

	out, err := matrix.Adopt(rows, cols, data, opts...)
	if err != nil {
		return nil, interopErrorf(opFromGonum, err)
	}

	return out, nil
}
