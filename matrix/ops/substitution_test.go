// SPDX-License-Identifier: MIT
package ops_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpp/matrix"
	"github.com/katalvlaran/mpp/matrix/ops"
)

func TestForwardSub(t *testing.T) {
	t.Parallel()

	l := mustRows(t, [][]float64{{2, 0}, {3, 4}})
	b := mustRows(t, [][]float64{{4}, {14}})
	x, err := ops.ForwardSub[float64](l, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2}, {2}}, toRows[float64](x))

	// Integer systems are solved in float64.
	li := mustRows(t, [][]int{{2, 0}, {1, 4}})
	bi := mustRows(t, [][]int{{1}, {1}})
	xi, err := ops.ForwardSub[int](li, bi)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5}, {0.125}}, toRows[float64](xi))
}

func TestBackSub(t *testing.T) {
	t.Parallel()

	u := mustRows(t, [][]float64{{2, 1}, {0, 4}})
	b := mustRows(t, [][]float64{{5}, {8}})
	x, err := ops.BackSub[float64](u, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1.5}, {2}}, toRows[float64](x))
}

func TestSubstitution_Errors(t *testing.T) {
	t.Parallel()

	sq := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	col := mustRows(t, [][]float64{{1}, {1}})

	tests := []struct {
		name string
		a, b matrix.Expr[float64]
		want error
	}{
		{"non-square", mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), col, matrix.ErrNonSquare},
		{"rhs rows", sq, mustRows(t, [][]float64{{1}, {2}, {3}}), matrix.ErrDimensionMismatch},
		{"rhs cols", sq, mustRows(t, [][]float64{{1, 2}, {3, 4}}), matrix.ErrDimensionMismatch},
		{"zero diagonal", mustRows(t, [][]float64{{1, 0}, {0, 0}}), col, matrix.ErrZeroPivot},
		{"NaN diagonal", mustRows(t, [][]float64{{math.NaN(), 0}, {0, 1}}), col, matrix.ErrZeroPivot},
		{"nil rhs", sq, nil, matrix.ErrNilMatrix},
		{"nil system", nil, col, matrix.ErrNilMatrix},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ops.ForwardSub(tc.a, tc.b)
			require.ErrorIs(t, err, tc.want)
			_, err = ops.BackSub(tc.a, tc.b)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_MatchesGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	for n := 1; n <= 6; n++ {
		a := dominant(t, rng, n)
		rhs := make([]float64, n*2)
		for i := range rhs {
			rhs[i] = rng.Float64()
		}
		b, err := matrix.FromSlice(n, 2, rhs)
		require.NoError(t, err)

		x, err := ops.Solve[float64](a, b)
		require.NoError(t, err)

		var want mat.Dense
		require.NoError(t, want.Solve(toGonum(a), toGonum(b)))
		requireClose(t, mustDense(t, &want), x, 1e-9)
	}
}

func TestSolve_PivotingAndErrors(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	b := mustRows(t, [][]float64{{3}, {5}})

	_, err := ops.Solve[float64](a, b)
	require.ErrorIs(t, err, matrix.ErrZeroPivot)

	x, err := ops.Solve[float64](a, b, ops.WithPartialPivoting())
	require.NoError(t, err)
	requireClose(t, mustRows(t, [][]float64{{5}, {3}}), x, tol)

	_, err = ops.Solve[float64](a, mustRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = ops.Solve[float64](mustRows(t, [][]float64{{1, 2}}), b, ops.WithUnchecked())
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
