// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across matrix and
// matrix/ops. Algorithms return these sentinels (optionally wrapped with an
// operation tag) and tests match them via errors.Is. No public surface panics on
// user-triggered conditions.
//
// The set is layered so callers can match at the precision they need:
//
//	ErrInvalidArgument
//	  ├── ErrDimensionMismatch
//	  │     ├── ErrNotSameSize      (Add/Sub, AddAssign/SubAssign)
//	  │     ├── ErrNotMultipliable  (Mul, MulAssign)
//	  │     └── ErrNonSquare        (Det/Inverse/LU/substitution)
//	  ├── ErrInvalidDimensions, ErrUnequalRows, ErrIncompatibleExtents
//	  ├── ErrBlockOutOfBounds, ErrBlockOverlap
//	  └── ErrNilMatrix
//	ErrOutOfRange                   (checked element access)
//	ErrNumerical
//	  ├── ErrZeroPivot
//	  ├── ErrSingular
//	  ├── ErrDivisionByZero
//	  └── ErrNotRepresentable

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every caller-detectable precondition violation.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

	// ErrNotSameSize is returned by elementwise operations on differently shaped operands.
	ErrNotSameSize = fmt.Errorf("%w: matrices are not the same size", ErrDimensionMismatch)

	// ErrNotMultipliable is returned when left.Cols() != right.Rows().
	ErrNotMultipliable = fmt.Errorf("%w: matrices are not multipliable", ErrDimensionMismatch)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: dimensions are not square", ErrDimensionMismatch)

	// ErrInvalidDimensions covers negative sizes, one-side-zero shapes and
	// identity requests that are non-square or of rank 0.
	ErrInvalidDimensions = fmt.Errorf("%w: invalid dimensions", ErrInvalidArgument)

	// ErrUnequalRows is returned by FromRows when the rows are ragged.
	ErrUnequalRows = fmt.Errorf("%w: initializer does not have equal columns in rows", ErrInvalidArgument)

	// ErrIncompatibleExtents is returned when a shape contradicts a fixed extent.
	ErrIncompatibleExtents = fmt.Errorf("%w: dimensions are not compatible with matrix extents", ErrInvalidArgument)

	// ErrBlockOutOfBounds is returned by ops.Block for an index outside the source.
	ErrBlockOutOfBounds = fmt.Errorf("%w: block index out of bounds", ErrInvalidArgument)

	// ErrBlockOverlap is returned by ops.Block when a top index exceeds its bottom index.
	ErrBlockOverlap = fmt.Errorf("%w: block indices overlap", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil matrix or expression was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return this; Elem/SetElem do not check.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNumerical is the root of failures detected while computing.
	ErrNumerical = errors.New("matrix: numerical failure")

	// ErrZeroPivot is returned when elimination or substitution meets a zero
	// (within epsilon) or NaN pivot. The default LU does not pivot, so a
	// non-singular matrix may still produce this.
	ErrZeroPivot = fmt.Errorf("%w: zero or NaN pivot", ErrNumerical)

	// ErrSingular is returned by inversion when the determinant is zero or NaN.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrNumerical)

	// ErrDivisionByZero is returned for integer division by a zero scalar.
	ErrDivisionByZero = fmt.Errorf("%w: integer division by zero", ErrNumerical)

	// ErrNotRepresentable is returned when a computed value is NaN, or cannot be
	// held by the requested integer type (infinite or out of range).
	ErrNotRepresentable = fmt.Errorf("%w: result not representable in target type", ErrNumerical)
)
