// SPDX-License-Identifier: MIT
// Package minroots: construction options.

package minroots

// Options bundles the tunables accepted by the table builders and group
// constructors. Zero values select the defaults.
type Options struct {
	// MaxRoots caps the number of minimal roots a build may register.
	// 0 means unlimited; the minimal root set is finite for every Coxeter
	// matrix, so the cap is a resource guard, not a termination requirement.
	MaxRoots int
}

// DefaultOptions returns the default construction options.
func DefaultOptions() Options { return Options{} }

// Option mutates Options prior to construction.
type Option func(*Options)

// WithMaxRoots caps the number of minimal roots; n <= 0 means unlimited.
func WithMaxRoots(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxRoots = n
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
