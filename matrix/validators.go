// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape and extent checks.
//   - Keep expression constructors and kernels minimal by delegating guards here.
//   - Return sentinel errors wrapped with a validator tag so errors.Is matches.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate only on failure.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).
//   - ValidateSameShape/ValidateMulCompatible/ValidateSquare assume non-nil inputs.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether e is a nil interface or a typed nil node of this package.
func isNil[T Number](e Expr[T]) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Matrix[T]:
		return v == nil
	case *BinaryExpr[T]:
		return v == nil
	case *ScalarExpr[T]:
		return v == nil
	default:
		return false
	}
}

// ValidateNotNil ensures the expression reference is non-nil.
//
// Returns ErrNilMatrix for a nil interface and for typed nil *Matrix,
// *BinaryExpr and *ScalarExpr values.
// Complexity: O(1).
func ValidateNotNil[T Number](e Expr[T]) error {
	if isNil(e) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape rejects negative sizes and shapes with exactly one zero side.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", fmt.Errorf("%w: negative size %dx%d", ErrInvalidDimensions, rows, cols))
	}
	if (rows == 0) != (cols == 0) {
		return validatorErrorf("ValidateShape", fmt.Errorf("%w: %dx%d has exactly one zero side", ErrInvalidDimensions, rows, cols))
	}

	return nil
}

// ValidateExtents ensures a rows×cols value fits the given extents: every fixed
// extent must equal the matching dimension.
func ValidateExtents(rowsExt, colsExt Extent, rows, cols int) error {
	if !rowsExt.IsDynamic() && int(rowsExt) != rows {
		return validatorErrorf("ValidateExtents: Rows",
			fmt.Errorf("%w: rows %d, extent %d", ErrIncompatibleExtents, rows, int(rowsExt)))
	}
	if !colsExt.IsDynamic() && int(colsExt) != cols {
		return validatorErrorf("ValidateExtents: Columns",
			fmt.Errorf("%w: columns %d, extent %d", ErrIncompatibleExtents, cols, int(colsExt)))
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions (ErrNotSameSize).
// Assumes a and b are not nil.
func ValidateSameShape[T Number](a, b Expr[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrNotSameSize)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrNotSameSize)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() (ErrNotMultipliable).
// Assumes a and b are not nil.
func ValidateMulCompatible[T Number](a, b Expr[T]) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%w: %dx%d * %dx%d", ErrNotMultipliable, a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}

	return nil
}

// ValidateSquare checks that e is square (ErrNonSquare).
// Assumes e is not nil.
func ValidateSquare[T Number](e Expr[T]) error {
	if e.Rows() != e.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%w: %dx%d", ErrNonSquare, e.Rows(), e.Cols()))
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T Number](a, b Expr[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateBinaryMulCompatible is the composite NotNil(a) → NotNil(b) → MulCompatible.
func ValidateBinaryMulCompatible[T Number](a, b Expr[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryMulCompatible", err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return validatorErrorf("ValidateBinaryMulCompatible", err)
	}

	return nil
}
