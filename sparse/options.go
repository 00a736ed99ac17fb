// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the codec.
// Defaults are constants (single source of truth); public APIs consume
// ...Option and never expose the internal option state.

package sparse

// DefaultStrictHeader keeps the tolerant historical header behavior:
// everything left of '=' on the two shape lines is ignored. Existing
// sample files rely on this, so strictness is opt-in.
const DefaultStrictHeader = false

// Option mutates codec options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options is the internal option state gathered per Parse call.
type options struct {
	strictHeader bool
}

// WithStrictHeader requires the header labels to read literally "rows"
// and "cols"; any other text left of '=' becomes ErrFormat.
func WithStrictHeader() Option {
	return func(o *options) { o.strictHeader = true }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{strictHeader: DefaultStrictHeader}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
