// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/mpp/matrix"
)

// Block copies the inclusive sub-matrix spanning rows top..bottom and columns
// left..right of m into a new fully dynamic matrix.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - matrix.ErrBlockOutOfBounds if any index is negative or past its dimension;
//     the message names the offending index.
//   - matrix.ErrBlockOverlap if top > bottom or left > right.
//
// Complexity:
//   - Time O(h·w), Space O(h·w) for an h×w block.
func Block[T matrix.Number](m matrix.Expr[T], top, left, bottom, right int) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opsErrorf(opBlock, err)
	}
	if err := validateBlock(m.Rows(), m.Cols(), top, left, bottom, right); err != nil {
		return nil, opsErrorf(opBlock, err)
	}

	h, w := bottom-top+1, right-left+1
	out := make([]T, h*w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			out[matrix.Index(w, i, j)] = m.Elem(top+i, left+j)
		}
	}

	return matrix.Adopt(h, w, out)
}

// validateBlock checks the four corner indices against a rows×cols source.
func validateBlock(rows, cols, top, left, bottom, right int) error {
	bounds := []struct {
		name  string
		idx   int
		limit int
	}{
		{"top row", top, rows},
		{"top column", left, cols},
		{"bottom row", bottom, rows},
		{"bottom column", right, cols},
	}
	for _, b := range bounds {
		if b.idx < 0 || b.idx >= b.limit {
			return fmt.Errorf("%w: %s index %d not in [0, %d)", matrix.ErrBlockOutOfBounds, b.name, b.idx, b.limit)
		}
	}
	if top > bottom {
		return fmt.Errorf("%w: top row index %d bigger than bottom row index %d", matrix.ErrBlockOverlap, top, bottom)
	}
	if left > right {
		return fmt.Errorf("%w: top column index %d bigger than bottom column index %d", matrix.ErrBlockOverlap, left, right)
	}

	return nil
}
