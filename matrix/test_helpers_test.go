// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for constructors and kernels.
//   - Keep all data finite unless a test is about NaN handling.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpp/matrix"
)

// hide wraps any Expr to hide its concrete type from type assertions.
// Use hide{X} to force the generic Elem-based path instead of *Matrix fast paths
// and extent inheritance.
type hide[T matrix.Number] struct{ matrix.Expr[T] }

// mustRows builds a fully dynamic matrix from nested rows or fails the test.
func mustRows[T matrix.Number](t *testing.T, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// mustEval materializes e or fails the test.
func mustEval[T matrix.Number](t *testing.T, e matrix.Expr[T], opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.Eval(e, opts...)
	require.NoError(t, err)

	return m
}

// mustAt reads (i, j) or fails the test.
func mustAt[T matrix.Number](t *testing.T, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// toRows copies an expression into nested rows for readable assertions.
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
