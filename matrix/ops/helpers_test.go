// SPDX-License-Identifier: MIT
package ops_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpp/matrix"
)

// tol is the absolute tolerance for float64 reconstructions of small, well
// conditioned inputs.
const tol = 1e-9

// hide masks the concrete type of an Expr so fast paths are skipped.
type hide[T matrix.Number] struct{ matrix.Expr[T] }

func mustRows[T matrix.Number](t *testing.T, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

func toRows[T matrix.Number](e matrix.Expr[T]) [][]T {
	out := make([][]T, e.Rows())
	for i := range out {
		out[i] = make([]T, e.Cols())
		for j := range out[i] {
			out[i][j] = e.Elem(i, j)
		}
	}

	return out
}

// product evaluates a×b.
func product(t *testing.T, a, b matrix.Expr[float64]) *matrix.Matrix[float64] {
	t.Helper()
	e, err := matrix.Mul(a, b)
	require.NoError(t, err)
	m, err := matrix.Eval[float64](e)
	require.NoError(t, err)

	return m
}

// requireClose asserts elementwise |a-b| <= tol with equal shapes.
func requireClose(t *testing.T, want, got matrix.Expr[float64], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			require.InDeltaf(t, want.Elem(i, j), got.Elem(i, j), tol, "at (%d,%d)", i, j)
		}
	}
}

// dominant returns a deterministic n×n strictly diagonally dominant matrix,
// which factors without pivoting.
func dominant(t *testing.T, rng *rand.Rand, n int) *matrix.Matrix[float64] {
	t.Helper()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		var off float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			data[matrix.Index(n, i, j)] = v
			if v < 0 {
				off -= v
			} else {
				off += v
			}
		}
		data[matrix.Index(n, i, i)] = off + 1 + rng.Float64()
	}
	m, err := matrix.Adopt(n, n, data)
	require.NoError(t, err)

	return m
}

// toGonum copies m into a gonum Dense for use as an oracle.
func toGonum(m *matrix.Matrix[float64]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), append([]float64(nil), m.Data()...))
}
