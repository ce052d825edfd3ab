// SPDX-License-Identifier: MIT

// Package matrix: storage buffers.
// A Matrix owns exactly one Buffer holding rows*cols elements in row-major order.
// Two strategies exist:
//   - ArrayBuffer: fixed length, chosen when both extents are fixed.
//   - VectorBuffer: growable, chosen when any extent is Dynamic.
//
// The free functions AllocateOrResize, Reserve and MakeIdentity dispatch on
// Growable() so that callers never branch on the concrete strategy.
package matrix

import "fmt"

// Buffer is the contiguous element store behind a Matrix.
type Buffer[T Number] interface {
	// Data returns the live row-major backing slice (not a copy).
	Data() []T
	// Len returns the number of stored elements.
	Len() int
	// Growable reports whether Resize/Reserve change the buffer.
	Growable() bool
	// Resize sets the length to n, filling new slots with fill.
	Resize(n int, fill T)
	// Reserve ensures capacity for at least n elements.
	Reserve(n int)
}

// ArrayBuffer is a fixed-length buffer. Its length is set once at construction.
type ArrayBuffer[T Number] struct {
	data []T
}

// NewArrayBuffer allocates a zeroed fixed buffer of n elements.
func NewArrayBuffer[T Number](n int) *ArrayBuffer[T] {
	return &ArrayBuffer[T]{data: make([]T, n)}
}

// Data returns the backing slice.
func (b *ArrayBuffer[T]) Data() []T { return b.data }

// Len returns the fixed length.
func (b *ArrayBuffer[T]) Len() int { return len(b.data) }

// Growable is always false.
func (b *ArrayBuffer[T]) Growable() bool { return false }

// Resize is a no-op: the length of a fixed buffer never changes.
func (b *ArrayBuffer[T]) Resize(int, T) {}

// Reserve is a no-op.
func (b *ArrayBuffer[T]) Reserve(int) {}

// VectorBuffer is a growable buffer backed by a Go slice.
type VectorBuffer[T Number] struct {
	data []T
}

// NewVectorBuffer allocates a zeroed growable buffer of n elements.
func NewVectorBuffer[T Number](n int) *VectorBuffer[T] {
	return &VectorBuffer[T]{data: make([]T, n)}
}

// Data returns the backing slice.
func (b *VectorBuffer[T]) Data() []T { return b.data }

// Len returns the current length.
func (b *VectorBuffer[T]) Len() int { return len(b.data) }

// Growable is always true.
func (b *VectorBuffer[T]) Growable() bool { return true }

// Resize sets the length to n. Existing elements up to min(old, n) are kept;
// slots past the old length are set to fill.
func (b *VectorBuffer[T]) Resize(n int, fill T) {
	old := len(b.data)
	if n <= old {
		b.data = b.data[:n]
		return
	}
	b.Reserve(n)
	b.data = b.data[:n]
	for i := old; i < n; i++ {
		b.data[i] = fill
	}
}

// Reserve grows the capacity to at least n without changing the length.
func (b *VectorBuffer[T]) Reserve(n int) {
	if n <= cap(b.data) {
		return
	}
	grown := make([]T, len(b.data), n)
	copy(grown, b.data)
	b.data = grown
}

// newBuffer picks the storage strategy for the given extents.
func newBuffer[T Number](rowsExt, colsExt Extent, n int) Buffer[T] {
	if typeOf(rowsExt, colsExt) == FullyStatic {
		return NewArrayBuffer[T](n)
	}

	return NewVectorBuffer[T](n)
}

// AllocateOrResize makes a growable buffer hold exactly rows*cols elements,
// filling new slots with fill. Fixed buffers are left untouched.
func AllocateOrResize[T Number](buf Buffer[T], rows, cols int, fill T) {
	if buf.Growable() {
		buf.Resize(rows*cols, fill)
	}
}

// Reserve pre-reserves rows*cols elements in a growable buffer. Fixed buffers
// are left untouched.
func Reserve[T Number](buf Buffer[T], rows, cols int) {
	if buf.Growable() {
		buf.Reserve(rows * cols)
	}
}

// MakeIdentity overwrites buf with the rows×cols identity: zero everywhere and
// one on the main diagonal. Growable buffers are resized first.
//
// Errors:
//   - ErrInvalidDimensions if rows != cols or rows == 0.
//   - ErrIncompatibleExtents if buf is fixed and its length is not rows*cols.
func MakeIdentity[T Number](buf Buffer[T], rows, cols int, zero, one T) error {
	if rows != cols {
		return matrixErrorf(opIdentity, fmt.Errorf("%w: identity of %dx%d is not square", ErrInvalidDimensions, rows, cols))
	}
	if rows <= 0 {
		return matrixErrorf(opIdentity, fmt.Errorf("%w: identity rank must be positive, got %d", ErrInvalidDimensions, rows))
	}
	if !buf.Growable() && buf.Len() != rows*cols {
		return matrixErrorf(opIdentity, fmt.Errorf("%w: fixed buffer holds %d elements, need %d",
			ErrIncompatibleExtents, buf.Len(), rows*cols))
	}

	AllocateOrResize(buf, rows, cols, zero)
	data := buf.Data()
	for i := range data {
		data[i] = zero
	}
	for i := 0; i < rows; i++ {
		data[Index(cols, i, i)] = one
	}

	return nil
}
