// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for expression nodes and assignment.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpp/matrix"
)

func TestBinaryExpressions(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})

	tests := []struct {
		name  string
		build func(x, y matrix.Expr[int]) (*matrix.BinaryExpr[int], error)
		want  [][]int
		op    matrix.Op
	}{
		{"add", matrix.Add[int], [][]int{{6, 8}, {10, 12}}, matrix.OpAdd},
		{"sub", matrix.Sub[int], [][]int{{-4, -4}, {-4, -4}}, matrix.OpSub},
		{"mul", matrix.Mul[int], [][]int{{19, 22}, {43, 50}}, matrix.OpMul},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e, err := tc.build(a, b)
			require.NoError(t, err)
			require.Equal(t, tc.op, e.Op())
			require.Equal(t, tc.want, toRows[int](e))

			// Same result through the generic (non-*Matrix) path.
			h, err := tc.build(hide[int]{a}, hide[int]{b})
			require.NoError(t, err)
			require.Equal(t, tc.want, toRows[int](mustEval[int](t, h)))
		})
	}
}

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	e, err := matrix.Mul[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, 2, e.Rows())
	require.Equal(t, 2, e.Cols())
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, toRows[float64](e))

	_, err = matrix.Mul[float64](a, a)
	require.ErrorIs(t, err, matrix.ErrNotMultipliable)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestExpressions_ShapeAndNilErrors(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	c := mustRows(t, [][]int{{1, 2, 3}})
	var typedNil *matrix.Matrix[int]

	_, err := matrix.Add[int](a, c)
	require.ErrorIs(t, err, matrix.ErrNotSameSize)
	_, err = matrix.Sub[int](a, c)
	require.ErrorIs(t, err, matrix.ErrNotSameSize)

	_, err = matrix.Add[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul[int](a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MulScalar[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ScalarDiv[int](2, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNestedExpression(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})
	prod, err := matrix.Mul[int](a, b)
	require.NoError(t, err)
	sum, err := matrix.Add[int](prod, a)
	require.NoError(t, err)
	scaled, err := matrix.MulScalar[int](sum, 2)
	require.NoError(t, err)

	require.Equal(t, [][]int{{40, 48}, {92, 108}}, toRows[int](scaled))
}

func TestExpressions_AreLazy(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})
	e, err := matrix.Add[int](a, b)
	require.NoError(t, err)

	require.NoError(t, a.Set(0, 0, 100))
	require.Equal(t, 105, e.Elem(0, 0))
}

func TestScalarExpressions(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{1, 2}, {3, 4}})

	mul, err := matrix.MulScalar[int](a, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{3, 6}, {9, 12}}, toRows[int](mul))
	require.Equal(t, 3, mul.Scalar())

	div, err := matrix.DivScalar[int](a, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {1, 2}}, toRows[int](div))

	rdiv, err := matrix.ScalarDiv[int](12, a)
	require.NoError(t, err)
	require.Equal(t, matrix.OpDiv, rdiv.Op())
	require.Equal(t, [][]int{{12, 6}, {4, 3}}, toRows[int](rdiv))

	_, err = matrix.DivScalar[int](a, 0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	require.ErrorIs(t, err, matrix.ErrNumerical)

	f := mustRows(t, [][]float64{{1, -1}})
	inf, err := matrix.DivScalar[float64](f, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(inf.Elem(0, 0), 1))
	require.True(t, math.IsInf(inf.Elem(0, 1), -1))
}

func TestEval_Extents(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	e, err := matrix.MulScalar[float64](a, 0.5)
	require.NoError(t, err)

	m := mustEval[float64](t, e)
	require.Equal(t, matrix.FullyDynamic, m.Type())
	require.Equal(t, [][]float64{{0.5, 1}, {1.5, 2}}, toRows[float64](m))

	s := mustEval[float64](t, e, matrix.WithStaticShape())
	require.Equal(t, matrix.FullyStatic, s.Type())

	_, err = matrix.Eval[float64](e, matrix.WithExtents(3, 3))
	require.ErrorIs(t, err, matrix.ErrIncompatibleExtents)
	_, err = matrix.Eval[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAssign(t *testing.T) {
	t.Parallel()

	dyn := mustRows(t, [][]int{{1}})
	src := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, dyn.Assign(src))
	require.Equal(t, toRows[int](src), toRows[int](dyn))

	static := mustRows(t, [][]int{{1, 2}, {3, 4}}, matrix.WithStaticShape())
	err := static.Assign(src)
	require.ErrorIs(t, err, matrix.ErrIncompatibleExtents)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, toRows[int](static))

	rowsFixed := mustRows(t, [][]int{{1, 2}, {3, 4}}, matrix.WithRowsExtent(2))
	require.NoError(t, rowsFixed.Assign(src))
	require.Equal(t, 3, rowsFixed.Cols())
}

func TestCompoundAssign(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{1, 1}, {1, 1}})

	require.NoError(t, m.AddAssign(b))
	require.Equal(t, []int{2, 3, 4, 5}, m.Data())
	require.NoError(t, m.SubAssign(b))
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())

	m.ScaleAssign(2)
	require.Equal(t, []int{2, 4, 6, 8}, m.Data())
	require.NoError(t, m.DivAssign(2))
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())

	require.ErrorIs(t, m.DivAssign(0), matrix.ErrDivisionByZero)
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())

	wide := mustRows(t, [][]int{{1, 2, 3}})
	require.ErrorIs(t, m.AddAssign(wide), matrix.ErrNotSameSize)
	require.ErrorIs(t, m.SubAssign(wide), matrix.ErrNotSameSize)
	require.ErrorIs(t, m.AddAssign(nil), matrix.ErrNilMatrix)
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())
}

func TestCompoundAssign_SelfReference(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]int{{1, 2}, {3, 4}})
	sq, err := matrix.Mul[int](m, m)
	require.NoError(t, err)
	require.NoError(t, m.AddAssign(sq))
	require.Equal(t, [][]int{{8, 12}, {18, 26}}, toRows[int](m))

	p := mustRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, p.MulAssign(p))
	require.Equal(t, [][]int{{7, 10}, {15, 22}}, toRows[int](p))
}

func TestMulAssign_Shapes(t *testing.T) {
	t.Parallel()

	col := mustRows(t, [][]int{{1}, {1}})

	dyn := mustRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, dyn.MulAssign(col))
	require.Equal(t, [][]int{{3}, {7}}, toRows[int](dyn))

	static := mustRows(t, [][]int{{1, 2}, {3, 4}}, matrix.WithStaticShape())
	require.ErrorIs(t, static.MulAssign(col), matrix.ErrIncompatibleExtents)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, toRows[int](static))

	row := mustRows(t, [][]int{{1, 2, 3}})
	require.ErrorIs(t, static.MulAssign(row), matrix.ErrNotMultipliable)
}
