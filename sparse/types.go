// SPDX-License-Identifier: MIT

// Package sparse: domain types. Errors live in errors.go and codec
// options in options.go, per the package conventions.

package sparse

import "fmt"

// coord is the composite map key for one stored cell. A struct key keeps
// lookups allocation-free, with no per-element string composition.
type coord struct {
	row int
	col int
}

// Entry is one non-zero cell in export order (row-major ascending).
type Entry struct {
	Row, Col int
	Val      int64
}

// Matrix is a rows×cols grid of int64 values storing only non-zero cells.
//
// Invariants, maintained by every constructor and operation:
//   - no stored value is zero (zero is represented by absence);
//   - every stored key lies inside [0,rows)×[0,cols);
//   - cells is a mapping, so coordinates are unique.
//
// The zero Matrix value is not usable; construct via New or Parse.
// Operations never retain or alias an operand's cell storage.
type Matrix struct {
	rows  int
	cols  int
	cells map[coord]int64
}

var _ fmt.Stringer = (*Matrix)(nil)
