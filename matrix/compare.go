// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"math"
)

// CompareElem three-way compares two elements.
// Floating values whose difference is below Epsilon[T]() compare equal; integers
// compare exactly. A NaN orders before every number as in cmp.Compare.
func CompareElem[T Number](a, b T) int {
	if a == b {
		return 0
	}
	if eps := Epsilon[T](); eps > 0 && math.Abs(float64(a)-float64(b)) < eps {
		return 0
	}

	return cmp.Compare(a, b)
}

// EqualElem reports whether a and b are equivalent under CompareElem.
// NaN is never equal to anything, itself included.
func EqualElem[T Number](a, b T) bool {
	if a != a || b != b {
		return false
	}

	return CompareElem(a, b) == 0
}

// Compare orders two expressions: by rows, then by columns, then
// lexicographically over elements in row-major order using CompareElem.
// Returns -1, 0 or +1.
//
// Compare is a total order, so NaN compares equal to NaN and below every
// number, as in cmp.Compare. Equal is stricter: it never matches NaN, so
// Compare(a, a) == 0 does not imply Equal(a, a).
func Compare[T Number](a, b Expr[T]) int {
	if c := cmp.Compare(a.Rows(), b.Rows()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Cols(), b.Cols()); c != 0 {
		return c
	}
	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if c := CompareElem(a.Elem(i, j), b.Elem(i, j)); c != 0 {
				return c
			}
		}
	}

	return 0
}

// Equal reports whether a and b have the same shape and pairwise equivalent
// elements under EqualElem. Nil operands are equal only to each other.
func Equal[T Number](a, b Expr[T]) bool {
	if an, bn := isNil(a), isNil(b); an || bn {
		return an && bn
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !EqualElem(a.Elem(i, j), b.Elem(i, j)) {
				return false
			}
		}
	}

	return true
}
