// SPDX-License-Identifier: MIT

// Package ops: functional options for the numerical algorithms.
package ops

// Defaults.
const (
	// DefaultUnchecked keeps eager squareness validation on.
	DefaultUnchecked = false

	// DefaultPartialPivoting keeps plain Doolittle elimination without row swaps.
	DefaultPartialPivoting = false
)

// Option configures an algorithm call.
type Option func(*Options)

// Options holds the resolved algorithm policy.
type Options struct {
	unchecked bool
	pivoting  bool
}

func defaultOptions() Options {
	return Options{
		unchecked: DefaultUnchecked,
		pivoting:  DefaultPartialPivoting,
	}
}

// WithUnchecked skips the squareness check. A non-square input is then
// processed through its leading min(rows, cols) square block.
func WithUnchecked() Option {
	return func(o *Options) { o.unchecked = true }
}

// WithPartialPivoting makes factorization of size >= 3 pick the largest
// remaining pivot in each column and swap rows accordingly. Results then differ
// from the unpivoted path in the last bits for ill-conditioned inputs.
func WithPartialPivoting() Option {
	return func(o *Options) { o.pivoting = true }
}

func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
