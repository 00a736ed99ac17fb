// SPDX-License-Identifier: MIT

// Package sparse: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// call-site context via %w); callers and tests match them with errors.Is.
// No public entry point panics on user input.

package sparse

import "errors"

var (
	// ErrInvalidDimensions indicates a negative row or column count at construction.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrFormat indicates a malformed header or entry line during Parse.
	// The whole parse fails atomically; no partial matrix is returned.
	ErrFormat = errors.New("sparse: malformed input text")

	// ErrOutOfRange indicates a coordinate outside [0,rows)×[0,cols).
	// Raised by Set directly and by Parse for out-of-bounds entries.
	ErrOutOfRange = errors.New("sparse: coordinate out of range")

	// ErrDimensionMismatch indicates operand shapes incompatible with the
	// requested operation: Add/Sub with differing shapes, or Mul where
	// a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrUnknownOp indicates an operation value Apply or ParseOp does not recognize.
	ErrUnknownOp = errors.New("sparse: unknown operation")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
