// Package mpp is a generic dense-matrix toolkit: containers with static or
// dynamic extents, lazy arithmetic expressions, and an LU kernel for
// determinants, inverses and triangular solves.
//
// 🚀 What is in mpp?
//
//	• matrix/          Matrix[T] over any integer or float type, extents, buffers,
//	                   lazy Add/Sub/Mul and scalar expressions, compound assignment
//	• matrix/ops/      Det, Inverse, LU, PLU, ForwardSub, BackSub, Solve,
//	                   Transpose, Block, Singular
//	• matrix/interop/  gonum mat.Matrix adapter and Dense conversions
//	• matrix/codec/    protobuf wire message and the "1 2; 3 4" text form
//	• matrix/render/   heat-map images through gonum/plot
//	• cmd/mppcalc/     command-line front end
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{7, 3, 1}, {8, 8, 2}, {5, 8, 2}})
//	d, _ := ops.Det[int](a) // 6
//
// Errors are sentinel values in package matrix, grouped so that
// errors.Is(err, matrix.ErrInvalidArgument) or errors.Is(err, matrix.ErrNumerical)
// classifies any failure.
//
//	go get github.com/katalvlaran/mpp
package mpp
