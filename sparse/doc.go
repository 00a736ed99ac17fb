// SPDX-License-Identifier: MIT

// Package sparse implements a compact sparse matrix of signed integers,
// its plain-text codec, and the three elementary binary operations.
//
// What:
//
//   - Matrix stores only non-zero cells, keyed by (row, col).
//   - Parse / Serialize convert between a Matrix and the textual
//     "rows= / cols= / (r, c, v)" representation, structurally
//     byte-compatible with the existing sample files.
//   - Add, Sub, Mul allocate fresh results; operands are never mutated.
//   - Apply dispatches one of the three operations by Op value,
//     decoupled from terminal and file I/O.
//
// Why:
//
//   - File interchange: matrices far too sparse for dense storage travel
//     as short text files.
//   - Batch pipelines: parse two operands, apply one operation, serialize
//     the result; no hidden state in between.
//
// Complexity:
//
//   - At/Set:    O(1) expected.
//   - Add/Sub:   O(nnz(a) + nnz(b)).
//   - Mul:       O(nnz(a) · avg nnz per used row of b).
//   - Parse:     O(lines); Serialize: O(nnz·log nnz) for row-major order.
//
// Options:
//
//   - WithStrictHeader: require the header labels to read literally
//     "rows" / "cols" instead of the tolerant split-on-'=' behavior.
//
// Errors:
//
//   - ErrInvalidDimensions: negative shape requested at construction.
//   - ErrFormat: malformed header or entry line during Parse.
//   - ErrOutOfRange: coordinate outside declared bounds on write.
//   - ErrDimensionMismatch: operand shapes incompatible with an operation.
//   - ErrUnknownOp: Apply or ParseOp received an unrecognized operation.
//   - ErrNilMatrix: nil operand passed to an operation.
//
// Values are int64; sums and products wrap on overflow with Go's native
// two's-complement semantics.
package sparse
