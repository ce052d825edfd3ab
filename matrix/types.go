// SPDX-License-Identifier: MIT

// Package matrix: element constraint, extents and storage kinds.
// This file contains ONLY the domain-facing scalar/shape types; errors and
// options live in errors.go and options.go.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Matrix can hold: every built-in integer
// and floating type (and types derived from them).
type Number interface {
	constraints.Integer | constraints.Float
}

// Machine epsilon of the two floating widths.
const (
	Float32Epsilon = 0x1p-23
	Float64Epsilon = 0x1p-52
)

// IsFloat reports whether T is a floating type.
// Integer division truncates 1/2 to zero; floating division does not.
func IsFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// Epsilon returns the machine epsilon of T: Float32Epsilon for 32-bit floats,
// Float64Epsilon for 64-bit floats and 0 for integers.
func Epsilon[T Number]() float64 {
	if !IsFloat[T]() {
		return 0
	}
	// 2^-30 vanishes next to 1 in float32 but not in float64.
	probe := 0x1p-30
	if one := T(1); one+T(probe) == one {
		return Float32Epsilon
	}

	return Float64Epsilon
}

// Extent bounds one dimension of a Matrix: a fixed size (>= 0) or Dynamic.
type Extent int

// Dynamic marks an extent resolved at construction time.
const Dynamic Extent = -1

// IsDynamic reports whether e is the Dynamic marker.
func (e Extent) IsDynamic() bool { return e == Dynamic }

// String renders a fixed extent as its size and Dynamic as "dynamic".
func (e Extent) String() string {
	if e == Dynamic {
		return "dynamic"
	}

	return fmt.Sprintf("%d", int(e))
}

// Type reports which storage kind a Matrix uses, derived from its extents.
type Type uint8

// Storage kinds.
const (
	FullyStatic    Type = iota // both extents fixed; fixed-length buffer
	FullyDynamic               // both extents dynamic; growable buffer
	DynamicRows                // rows dynamic, columns fixed; growable buffer
	DynamicColumns             // rows fixed, columns dynamic; growable buffer
)

// typeOf derives the storage kind from a pair of extents.
func typeOf(rows, cols Extent) Type {
	switch {
	case !rows.IsDynamic() && !cols.IsDynamic():
		return FullyStatic
	case rows.IsDynamic() && cols.IsDynamic():
		return FullyDynamic
	case rows.IsDynamic():
		return DynamicRows
	default:
		return DynamicColumns
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case FullyStatic:
		return "fully static"
	case FullyDynamic:
		return "fully dynamic"
	case DynamicRows:
		return "dynamic rows"
	case DynamicColumns:
		return "dynamic columns"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}
