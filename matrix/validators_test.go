// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mpp/matrix"
)

func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Expr[int] {
		m, err := matrix.New[int](r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Expr[int]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrNotSameSize},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrNotSameSize},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateSquareAndMul(t *testing.T) {
	t.Parallel()

	sq := mustRows(t, [][]int{{1, 2}, {3, 4}})
	row := mustRows(t, [][]int{{1, 2, 3}})

	require.NoError(t, matrix.ValidateSquare[int](sq))
	require.ErrorIs(t, matrix.ValidateSquare[int](row), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateBinaryMulCompatible[int](row, hide[int]{mustRows(t, [][]int{{1}, {2}, {3}})}))
	require.ErrorIs(t, matrix.ValidateBinaryMulCompatible[int](sq, row), matrix.ErrNotMultipliable)
}

func TestValidateShapeAndExtents(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateShape(0, 0))
	require.NoError(t, matrix.ValidateShape(1, 5))
	require.ErrorIs(t, matrix.ValidateShape(-1, 1), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(0, 1), matrix.ErrInvalidDimensions)

	require.NoError(t, matrix.ValidateExtents(matrix.Dynamic, matrix.Dynamic, 7, 9))
	require.NoError(t, matrix.ValidateExtents(2, matrix.Dynamic, 2, 9))
	require.ErrorIs(t, matrix.ValidateExtents(2, matrix.Dynamic, 3, 9), matrix.ErrIncompatibleExtents)
	require.ErrorIs(t, matrix.ValidateExtents(matrix.Dynamic, 4, 3, 9), matrix.ErrIncompatibleExtents)
}
