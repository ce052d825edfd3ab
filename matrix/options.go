// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves extents against a shape.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes the storage kind or extent checks.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - An extent is either a fixed size (>= 0) or Dynamic. A fixed extent must
//     equal the matching dimension of every value assigned to the matrix.
//   - Both extents fixed selects an ArrayBuffer; anything else a VectorBuffer.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRowsExtent is the row extent of a matrix built without options.
	DefaultRowsExtent = Dynamic

	// DefaultColumnsExtent is the column extent of a matrix built without options.
	DefaultColumnsExtent = Dynamic
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRowsExtentInvalid    = "matrix: WithRowsExtent: extent must be >= 0 or Dynamic"
	panicColumnsExtentInvalid = "matrix: WithColumnsExtent: extent must be >= 0 or Dynamic"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last write wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved construction policy. Fields are unexported; use
// the WithX constructors.
type Options struct {
	rowsExt     Extent
	colsExt     Extent
	staticShape bool
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		rowsExt: DefaultRowsExtent,
		colsExt: DefaultColumnsExtent,
	}
}

// WithRowsExtent fixes (or, with Dynamic, frees) the row extent.
// Panics if e < 0 and e != Dynamic.
func WithRowsExtent(e Extent) Option {
	if e < 0 && e != Dynamic {
		panic(panicRowsExtentInvalid)
	}

	return func(o *Options) { o.rowsExt = e }
}

// WithColumnsExtent fixes (or, with Dynamic, frees) the column extent.
// Panics if e < 0 and e != Dynamic.
func WithColumnsExtent(e Extent) Option {
	if e < 0 && e != Dynamic {
		panic(panicColumnsExtentInvalid)
	}

	return func(o *Options) { o.colsExt = e }
}

// WithExtents sets both extents at once.
func WithExtents(rows, cols Extent) Option {
	r, c := WithRowsExtent(rows), WithColumnsExtent(cols)

	return func(o *Options) {
		r(o)
		c(o)
	}
}

// WithStaticShape fixes both extents to the shape the matrix is constructed with.
func WithStaticShape() Option {
	return func(o *Options) { o.staticShape = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// resolve returns the extents to use for a rows×cols value, or
// ErrIncompatibleExtents if a fixed extent disagrees with the shape.
func (o Options) resolve(rows, cols int) (Extent, Extent, error) {
	if o.staticShape {
		return Extent(rows), Extent(cols), nil
	}
	if err := ValidateExtents(o.rowsExt, o.colsExt, rows, cols); err != nil {
		return 0, 0, err
	}

	return o.rowsExt, o.colsExt, nil
}
