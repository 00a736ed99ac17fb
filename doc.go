// Package spmx is a small toolkit for sparse integer matrices stored as
// plain text: parse them, add, subtract or multiply them, and write the
// result back in the same format.
//
// 🚀 What is spmx?
//
//	A compact, deterministic library plus a thin CLI:
//		• sparse/   — the Matrix type: composite-key storage of non-zero
//		  cells, a strict atomic text codec, and the three binary
//		  operations with full shape validation
//		• cmd/spmx/ — file-oriented commands (add/sub/mul) and the
//		  interactive compute menu
//
// ✨ Why choose spmx?
//
//   - Minimal API, clear naming: parse, apply, serialize
//   - Sentinel errors matched with errors.Is, never panics on user input
//   - Reproducible output: entries always serialize row-major ascending
//   - Pure operations: operands are never mutated, results never alias
//
// Wire format, compatible with the existing sample files:
//
//	rows=3
//	cols=3
//	(0, 1, 3)
//	(2, 0, -1)
//
//	go get github.com/katalvlaran/spmx/sparse
package spmx
