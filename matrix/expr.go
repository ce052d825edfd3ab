// SPDX-License-Identifier: MIT

// Package matrix: lazily evaluated expression nodes.
//
// An Expr is anything with a shape and element access. *Matrix[T] is an Expr,
// and so are the nodes built by Add, Sub, Mul, MulScalar, DivScalar and
// ScalarDiv. A node stores references to its operands and computes Elem on
// demand; nothing is materialized until Eval, Assign or a compound assignment
// walks it. Nodes compose: Add(Mul(a, b), c) is a tree evaluated element by
// element.
//
// Operands are not copied. Mutating an operand while a node is alive changes
// what the node evaluates to.
package matrix

import "fmt"

// Expr is the matrix-like capability shared by matrices and expression nodes.
type Expr[T Number] interface {
	// Rows returns the row count.
	Rows() int
	// Cols returns the column count.
	Cols() int
	// Elem returns element (i, j). Indices are not checked.
	Elem(i, j int) T
}

// Op identifies the arithmetic carried by an expression node.
type Op uint8

// Operators.
const (
	OpAdd Op = iota // elementwise sum
	OpSub           // elementwise difference
	OpMul           // matrix product (BinaryExpr) or broadcast product (ScalarExpr)
	OpDiv           // broadcast division (ScalarExpr only)
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// BinaryExpr is a node combining two expressions.
type BinaryExpr[T Number] struct {
	op          Op
	left, right Expr[T]
}

// Op returns the node operator.
func (e *BinaryExpr[T]) Op() Op { return e.op }

// Rows returns left.Rows().
func (e *BinaryExpr[T]) Rows() int { return e.left.Rows() }

// Cols returns right.Cols(). For OpAdd and OpSub it equals left.Cols().
func (e *BinaryExpr[T]) Cols() int { return e.right.Cols() }

// Elem computes element (i, j) on demand. For OpMul this is the dot product of
// row i of left and column j of right, O(left.Cols()).
func (e *BinaryExpr[T]) Elem(i, j int) T {
	switch e.op {
	case OpAdd:
		return e.left.Elem(i, j) + e.right.Elem(i, j)
	case OpSub:
		return e.left.Elem(i, j) - e.right.Elem(i, j)
	default:
		var sum T
		n := e.left.Cols()
		for k := 0; k < n; k++ {
			sum += e.left.Elem(i, k) * e.right.Elem(k, j)
		}

		return sum
	}
}

// ScalarExpr is a node combining an expression with a scalar.
type ScalarExpr[T Number] struct {
	op          Op
	operand     Expr[T]
	scalar      T
	scalarFirst bool
}

// Op returns the node operator.
func (e *ScalarExpr[T]) Op() Op { return e.op }

// Scalar returns the scalar operand.
func (e *ScalarExpr[T]) Scalar() T { return e.scalar }

// Rows returns operand.Rows().
func (e *ScalarExpr[T]) Rows() int { return e.operand.Rows() }

// Cols returns operand.Cols().
func (e *ScalarExpr[T]) Cols() int { return e.operand.Cols() }

// Elem computes element (i, j) on demand.
// For a scalar-first division this is scalar / operand(i, j); integer element
// types panic on a zero element like any Go integer division.
func (e *ScalarExpr[T]) Elem(i, j int) T {
	v := e.operand.Elem(i, j)
	switch {
	case e.op == OpMul:
		return v * e.scalar
	case e.scalarFirst:
		return e.scalar / v
	default:
		return v / e.scalar
	}
}
