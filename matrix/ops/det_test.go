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

func TestDet_ClosedFormSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int
		want int
	}{
		{"0x0 empty product", nil, 1},
		{"1x1", [][]int{{-7}}, -7},
		{"2x2", [][]int{{3, 8}, {4, 6}}, 3*6 - 8*4},
		{"2x2 singular", [][]int{{1, 2}, {2, 4}}, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustRows(t, tc.rows)
			got, err := ops.Det[int](m)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDet_ConcreteScenario(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int{{7, 3, 1}, {8, 8, 2}, {5, 8, 2}})

	got, err := ops.Det[int](a)
	require.NoError(t, err)
	require.Equal(t, 6, got)

	asFloat, err := ops.DetAs[float64, int](a)
	require.NoError(t, err)
	require.InDelta(t, 6.0, asFloat, tol)

	viaExpr, err := ops.Det[int](hide[int]{a})
	require.NoError(t, err)
	require.Equal(t, 6, viaExpr)
}

func TestDet_MatchesGonum(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 7; n++ {
		m := dominant(t, rng, n)
		got, err := ops.Det[float64](m)
		require.NoError(t, err)
		want := mat.Det(toGonum(m))
		require.InEpsilonf(t, want, got, 1e-9, "n=%d", n)
	}
}

func TestDet_NonSquare(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]int{{7, 3, 1}, {8, 8, 2}})

	_, err := ops.Det[int](m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	// Unchecked mode evaluates the leading 2x2 block.
	got, err := ops.Det[int](m, ops.WithUnchecked())
	require.NoError(t, err)
	require.Equal(t, 7*8-3*8, got)

	_, err = ops.Det[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDet_ZeroPivot(t *testing.T) {
	t.Parallel()

	// det = 16, but the leading pivot is zero.
	m := mustRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {4, 5, 6}})

	_, err := ops.Det[float64](m)
	require.ErrorIs(t, err, matrix.ErrZeroPivot)
	require.ErrorIs(t, err, matrix.ErrNumerical)

	got, err := ops.Det[float64](m, ops.WithPartialPivoting())
	require.NoError(t, err)
	require.InDelta(t, 16.0, got, tol)
}

func TestDet_ZeroColumnSkipsElimination(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2, 3}, {0, 0, 0}, {0, 0, 5}})
	got, err := ops.Det[float64](m)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestDetAs_RoundsIntegralTargets(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{0.3, 0.1, 0.2}, {0.1, 0.4, 0.1}, {0.2, 0.1, 0.5}})
	f, err := ops.DetAs[float64, float64](m)
	require.NoError(t, err)
	require.InDelta(t, 0.04, f, tol)

	// The float product lands near 40, not necessarily on it; rounding recovers it.
	scaled, err := matrix.MulScalar[float64](m, 10)
	require.NoError(t, err)
	i, err := ops.DetAs[int64, float64](scaled)
	require.NoError(t, err)
	require.Equal(t, int64(40), i)
}

func TestDet_NaNInput(t *testing.T) {
	t.Parallel()

	lastPivot := mustRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, math.NaN()}})
	_, err := ops.Det[float64](lastPivot)
	require.ErrorIs(t, err, matrix.ErrZeroPivot)

	_, err = ops.DetAs[int64, float64](lastPivot)
	require.ErrorIs(t, err, matrix.ErrNumerical)

	_, err = ops.Det[float64](lastPivot, ops.WithPartialPivoting())
	require.ErrorIs(t, err, matrix.ErrZeroPivot)

	for _, rows := range [][][]float64{{{math.NaN()}}, {{1, math.NaN()}, {2, 3}}} {
		_, err = ops.Det[float64](mustRows(t, rows))
		require.ErrorIs(t, err, matrix.ErrNotRepresentable)
		_, err = ops.DetAs[int64, float64](mustRows(t, rows))
		require.ErrorIs(t, err, matrix.ErrNotRepresentable)
	}
}

func TestDetAs_IntegralRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		ok   bool
	}{
		{"-2 into uint8", errOf(ops.Det[uint8](mustRows(t, [][]uint8{{1, 2}, {3, 4}}))), false},
		{"255 into uint8", errOf(ops.DetAs[uint8, int](mustRows(t, [][]int{{255}}))), true},
		{"256 into uint8", errOf(ops.DetAs[uint8, int](mustRows(t, [][]int{{256}}))), false},
		{"-128 into int8", errOf(ops.DetAs[int8, int](mustRows(t, [][]int{{-128}}))), true},
		{"-129 into int8", errOf(ops.DetAs[int8, int](mustRows(t, [][]int{{-129}}))), false},
		{"+Inf into int64", errOf(ops.DetAs[int64, float64](mustRows(t, [][]float64{{math.Inf(1)}}))), false},
		{"1e19 into int64", errOf(ops.DetAs[int64, float64](mustRows(t, [][]float64{{1e19}}))), false},
		{"1e19 into uint64", errOf(ops.DetAs[uint64, float64](mustRows(t, [][]float64{{1e19}}))), true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.ok {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, matrix.ErrNotRepresentable)
			require.ErrorIs(t, tc.err, matrix.ErrNumerical)
		})
	}

	// Float targets keep IEEE infinities.
	inf, err := ops.DetAs[float64, float64](mustRows(t, [][]float64{{math.Inf(1)}}))
	require.NoError(t, err)
	require.True(t, math.IsInf(inf, 1))
}

// errOf keeps only the error of a (value, error) pair.
func errOf(_ any, err error) error { return err }
